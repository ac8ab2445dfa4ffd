// Package drain отдает накопленные уведомления посетителя и очищает очередь.
package drain

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
)

// Handler обрабатывает GET /notifications.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение уведомлений.
type Service interface {
	Notifications(ctx context.Context, visitorID string) ([]notify.Notification, error)
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Уведомления посетителя
// @Description Возвращает уведомления в порядке появления. Прочитанные уведомления удаляются.
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]notify.Notification}
// @Failure 500 {object} response.ErrorResponse "Хранилище уведомлений недоступно"
// @Router /notifications [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.notifications.drain"
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

	items, err := h.service.Notifications(r.Context(), visitorID)
	if err != nil {
		log.Error("failed to drain notifications", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read notifications"))
		return
	}

	render.JSON(w, r, response.OKWithData(items))
}
