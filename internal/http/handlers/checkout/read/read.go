// Package read отдает состояние диалога оплаты посетителя.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
)

// Handler обрабатывает GET /checkout.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение диалога оплаты.
type Service interface {
	Checkout(ctx context.Context, visitorID string) checkout.View
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Состояние диалога оплаты
// @Description Закрытый диалог возвращается с open=false и пустыми полями.
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=checkout.View}
// @Failure 401 {object} response.ErrorResponse "Нет токена посетителя"
// @Router /checkout [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.read"

	visitorID, ok := middlewarectx.VisitorFromContext(r.Context())
	if !ok {
		h.log.Error("visitor not found in context",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	render.JSON(w, r, response.OKWithData(h.service.Checkout(r.Context(), visitorID)))
}
