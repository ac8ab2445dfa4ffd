// Package method выбирает способ оплаты в открытом диалоге.
package method

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

// Handler обрабатывает PUT /checkout/method.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает выбор способа оплаты.
type Service interface {
	SelectMethod(ctx context.Context, visitorID, method string) (checkout.View, error)
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
// @Summary Выбрать способ оплаты
// @Description Доступно только на шаге выбора способа оплаты.
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MethodRequest true "Способ оплаты"
// @Success 200 {object} response.Response{data=checkout.View}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Неверный шаг диалога"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /checkout/method [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.method"
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

	var req models.MethodRequest
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

	view, err := h.service.SelectMethod(r.Context(), visitorID, req.Method)
	if err != nil {
		apierr.Render(w, r, log, err)
		return
	}

	log.Info("payment method selected", slog.String("method", req.Method))
	render.JSON(w, r, response.OKWithData(view))
}
