package read

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Checkout(ctx context.Context, visitorID string) checkout.View {
	args := m.Called(ctx, visitorID)
	return args.Get(0).(checkout.View)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("диалог на шаге карты", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Checkout", mock.Anything, "v1").Return(checkout.View{
			Open:    true,
			Step:    checkout.StepCard,
			CardCVV: "•••",
		})

		req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
		req = req.WithContext(context.WithValue(req.Context(), middlewarectx.VisitorID, "v1"))
		w := httptest.NewRecorder()

		New(logger, mockService).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), `"step":"card"`))
		assert.True(t, strings.Contains(w.Body.String(), `"card_cvv":"•••"`))
		mockService.AssertExpectations(t)
	})

	t.Run("без посетителя", func(t *testing.T) {
		mockService := new(MockService)
		w := httptest.NewRecorder()

		New(logger, mockService).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
	})
}
