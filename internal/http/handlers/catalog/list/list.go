// Package list отдает каталог пакетов монет.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
)

// Handler обрабатывает GET /packages.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение каталога.
type Service interface {
	Packages(ctx context.Context) []catalog.Package
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пакетов монет
// @Description Возвращает пакеты в порядке отображения. Индекс в списке используется при открытии оплаты.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response{data=[]catalog.Package}
// @Router /packages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(h.service.Packages(r.Context())))
}
