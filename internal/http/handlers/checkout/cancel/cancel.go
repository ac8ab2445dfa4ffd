// Package cancel закрывает диалог оплаты без зачисления монет.
//
// Закрытие на шаге обработки отменяет ожидающие таймеры: монеты не
// зачисляются, уведомление об успехе не приходит.
package cancel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/apierr"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
)

// Handler обрабатывает DELETE /checkout.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает закрытие диалога.
type Service interface {
	Cancel(ctx context.Context, visitorID string) (checkout.View, error)
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Закрыть диалог оплаты
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=checkout.View}
// @Failure 409 {object} response.ErrorResponse "Диалог оплаты не открыт"
// @Router /checkout [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.cancel"
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

	view, err := h.service.Cancel(r.Context(), visitorID)
	if err != nil {
		apierr.Render(w, r, log, err)
		return
	}

	log.Info("checkout cancelled")
	render.JSON(w, r, response.OKWithData(view))
}
