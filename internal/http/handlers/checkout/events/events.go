// Package events отдает изменения диалога оплаты по WebSocket.
//
// После подключения клиент получает текущее состояние диалога, затем каждое
// изменение, включая переходы по таймеру (обработка платежа и закрытие после
// успеха). Входящие сообщения клиента игнорируются.
package events

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Handler обрабатывает GET /checkout/ws.
type Handler struct {
	log      *slog.Logger
	service  Service
	upgrader websocket.Upgrader
}

// Service описывает подписку на диалог оплаты.
type Service interface {
	Subscribe(ctx context.Context, visitorID string) (<-chan checkout.View, func())
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP godoc
// @Summary Поток состояний диалога оплаты
// @Description WebSocket. Токен передается параметром token. Каждое сообщение — checkout.View.
// @Tags Checkout
// @Param token query string true "Токен посетителя"
// @Success 101 {object} checkout.View
// @Failure 401 {object} response.ErrorResponse "Нет токена посетителя"
// @Router /checkout/ws [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.events"
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

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader уже ответил клиенту.
		log.Info("websocket upgrade failed", sl.Err(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates, unsubscribe := h.service.Subscribe(ctx, visitorID)
	defer unsubscribe()

	go readPump(conn, cancel)

	log.Info("checkout stream opened", sl.Visitor(visitorID))
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case v, ok := <-updates:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "storefront closed"))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(v); err != nil {
				log.Info("failed to write checkout view", sl.Err(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			log.Info("checkout stream closed", sl.Visitor(visitorID))
			return
		}
	}
}

// readPump нужен для обработки pong и close; по ошибке чтения отменяет поток.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
