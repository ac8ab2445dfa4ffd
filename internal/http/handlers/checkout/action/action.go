// Package action выполняет шаговые действия диалога оплаты: continue, submit и back.
//
// Ошибка проверки данных возвращается с кодом 422 и именем поля; то же
// сообщение посетитель получает уведомлением.
package action

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/apierr"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
)

// Handler обрабатывает POST /checkout/{action}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает шаговые действия диалога.
type Service interface {
	Act(ctx context.Context, visitorID, action string) (checkout.View, error)
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Шаг диалога оплаты
// @Description continue завершает выбор способа, submit отправляет данные карты, back возвращает к выбору способа.
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Param action path string true "Действие" Enums(continue, submit, back)
// @Success 200 {object} response.Response{data=checkout.View}
// @Failure 402 {object} response.ErrorResponse "Платёж отклонён"
// @Failure 404 {object} response.ErrorResponse "Неизвестное действие"
// @Failure 409 {object} response.ErrorResponse "Неверный шаг диалога"
// @Failure 422 {object} response.ErrorResponse "Неверные данные оплаты"
// @Router /checkout/{action} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.action"
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

	action := chi.URLParam(r, "action")
	view, err := h.service.Act(r.Context(), visitorID, action)
	if err != nil {
		apierr.Render(w, r, log, err)
		return
	}

	log.Info("checkout action applied", slog.String("action", action), slog.String("step", string(view.Step)))
	render.JSON(w, r, response.OKWithData(view))
}
