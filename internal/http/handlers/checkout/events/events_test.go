package events

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
)

type fakeService struct {
	updates      chan checkout.View
	unsubscribed chan struct{}
}

func (f *fakeService) Subscribe(_ context.Context, visitorID string) (<-chan checkout.View, func()) {
	return f.updates, func() { close(f.unsubscribed) }
}

func withVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middlewarectx.VisitorID, "v1")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TestEventsHandler_StreamsViews(t *testing.T) {
	svc := &fakeService{
		updates:      make(chan checkout.View, 2),
		unsubscribed: make(chan struct{}),
	}
	svc.updates <- checkout.View{Open: true, Step: checkout.StepMethod, Amount: 450}
	svc.updates <- checkout.View{Open: true, Step: checkout.StepProcessing, Amount: 450}

	srv := httptest.NewServer(withVisitor(New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	var v checkout.View
	require.NoError(t, conn.ReadJSON(&v))
	assert.Equal(t, checkout.StepMethod, v.Step)
	require.NoError(t, conn.ReadJSON(&v))
	assert.Equal(t, checkout.StepProcessing, v.Step)
	assert.Equal(t, int64(450), v.Amount)

	require.NoError(t, conn.Close())
	select {
	case <-svc.unsubscribed:
	case <-time.After(time.Second):
		t.Fatal("subscription was not released after client disconnect")
	}
}

func TestEventsHandler_ClosedStorefront(t *testing.T) {
	svc := &fakeService{
		updates:      make(chan checkout.View),
		unsubscribed: make(chan struct{}),
	}
	close(svc.updates)

	srv := httptest.NewServer(withVisitor(New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
}

func TestEventsHandler_Unauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	New(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeService{}).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/ws", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
