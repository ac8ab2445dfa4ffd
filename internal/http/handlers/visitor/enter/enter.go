// Package enter реализует HTTP-обработчик входа посетителя на витрину.
//
// Handler выпускает новый идентификатор посетителя и токен, которым
// последующие запросы связываются с его витриной.
package enter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/models"
)

// Handler обрабатывает POST /visitors.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает выдачу токена посетителю.
type Service interface {
	EnterVisitor(ctx context.Context) (visitorID, token string, err error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Войти на витрину
// @Description Создает витрину нового посетителя и возвращает токен для последующих запросов.
// @Tags Visitors
// @Produce json
// @Success 201 {object} response.Response{data=models.Visitor}
// @Failure 500 {object} response.ErrorResponse "Не удалось выпустить токен"
// @Router /visitors [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.visitor.enter"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	visitorID, token, err := h.service.EnterVisitor(r.Context())
	if err != nil {
		log.Error("failed to enter visitor", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue visitor token"))
		return
	}

	log.Info("visitor token issued", sl.Visitor(visitorID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(models.Visitor{
		VisitorID: visitorID,
		Token:     token,
	}))
}
