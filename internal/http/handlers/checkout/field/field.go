// Package field применяет ввод в поле формы оплаты.
//
// Значение проходит то же форматирование, что и при наборе с клавиатуры:
// номер карты группируется по четыре цифры, срок действия получает "/",
// а правка, превышающая допустимую длину, отклоняется с accepted=false.
package field

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

// Handler обрабатывает PATCH /checkout/fields.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает ввод в форму оплаты.
type Service interface {
	SetField(ctx context.Context, visitorID, field, value string) (bool, checkout.View, error)
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
// @Summary Ввести значение поля
// @Tags Checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.FieldRequest true "Поле и новое значение"
// @Success 200 {object} response.Response{data=models.FieldResult}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Диалог оплаты не открыт"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /checkout/fields [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.field"
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

	var req models.FieldRequest
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

	accepted, view, err := h.service.SetField(r.Context(), visitorID, req.Field, req.Value)
	if err != nil {
		apierr.Render(w, r, log, err)
		return
	}

	// Значения полей не логируются: в них данные карты.
	log.Debug("field edited", slog.String("field", req.Field), slog.Bool("accepted", accepted))
	render.JSON(w, r, response.OKWithData(models.FieldResult{
		Accepted: accepted,
		Checkout: view,
	}))
}
