// Package navigate переключает активный раздел витрины.
//
// Handler принимает JSON с именем раздела, валидирует его и возвращает
// обновленный снимок витрины.
package navigate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/saya-shop/internal/http/apierr"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/models"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

// Handler обрабатывает PUT /storefront/section.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис витрины
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает переключение раздела.
type Service interface {
	Navigate(ctx context.Context, visitorID, section string) (storefront.View, error)
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
// @Summary Перейти в раздел
// @Tags Storefront
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.NavigateRequest true "Раздел витрины"
// @Success 200 {object} response.Response{data=storefront.View}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет токена посетителя"
// @Failure 409 {object} response.ErrorResponse "Витрина закрыта"
// @Failure 422 {object} response.ErrorResponse "Неизвестный раздел"
// @Router /storefront/section [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.storefront.navigate"
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

	var req models.NavigateRequest
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

	view, err := h.service.Navigate(r.Context(), visitorID, req.Section)
	if err != nil {
		apierr.Render(w, r, log, err)
		return
	}

	log.Info("section changed", sl.Visitor(visitorID), slog.String("section", req.Section))
	render.JSON(w, r, response.OKWithData(view))
}
