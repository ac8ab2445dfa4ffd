// Package read отдает снимок витрины посетителя.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

// Handler обрабатывает GET /storefront.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение витрины.
type Service interface {
	Storefront(ctx context.Context, visitorID string) storefront.View
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Состояние витрины
// @Description Активный раздел, выбранный пакет и диалог оплаты. CVV в ответе замаскирован.
// @Tags Storefront
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=storefront.View}
// @Failure 401 {object} response.ErrorResponse "Нет токена посетителя"
// @Router /storefront [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.storefront.read"
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

	render.JSON(w, r, response.OKWithData(h.service.Storefront(r.Context(), visitorID)))
}
