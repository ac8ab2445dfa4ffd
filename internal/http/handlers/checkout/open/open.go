// Package open реализует HTTP-обработчик открытия оплаты пакета монет.
//
// Handler принимает индекс пакета в каталоге, открывает диалог оплаты на его
// цену и возвращает состояние диалога. Повторное открытие до закрытия
// предыдущего диалога отклоняется.
package open

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/apierr"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/models"
)

// Handler обрабатывает POST /checkout.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает открытие оплаты.
type Service interface {
	OpenCheckout(ctx context.Context, visitorID string, pkg int) (checkout.View, error)
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Открыть оплату пакета
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.OpenCheckoutRequest true "Индекс пакета в каталоге"
// @Success 201 {object} response.Response{data=checkout.View}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пакет не найден"
// @Failure 409 {object} response.ErrorResponse "Диалог оплаты уже открыт"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /checkout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.open"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	visitorID, ok := middlewarectx.VisitorFromContext(r.Context())
	if !ok {
		log.Error("visitor not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var req models.OpenCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	view, err := h.service.OpenCheckout(r.Context(), visitorID, *req.Package)
	if err != nil {
		apierr.Render(w, r, log, err)
		return
	}

	log.Info("checkout opened", sl.Visitor(visitorID), slog.Int("package", *req.Package))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(view))
}
