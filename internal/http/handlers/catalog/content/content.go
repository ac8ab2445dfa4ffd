// Package content отдает тексты разделов витрины: о сервисе, FAQ, поддержка и контакты.
package content

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
)

// Handler обрабатывает GET /content.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение текстов витрины.
type Service interface {
	Content(ctx context.Context) catalog.Content
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Тексты витрины
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response{data=catalog.Content}
// @Router /content [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(h.service.Content(r.Context())))
}
