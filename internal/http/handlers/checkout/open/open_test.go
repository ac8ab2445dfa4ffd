package open

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) OpenCheckout(ctx context.Context, visitorID string, pkg int) (checkout.View, error) {
	args := m.Called(ctx, visitorID, pkg)
	return args.Get(0).(checkout.View), args.Error(1)
}

func TestOpenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "открыт первый пакет",
			body: `{"package":0}`,
			setupMock: func(m *MockService) {
				m.On("OpenCheckout", mock.Anything, "v1", 0).Return(checkout.View{
					Open:        true,
					Step:        checkout.StepMethod,
					Method:      checkout.MethodCard,
					Amount:      450,
					Description: "500 монет",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"amount":450`,
		},
		{
			name:           "пакет не указан",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Package is a required field",
		},
		{
			name:           "отрицательный индекс",
			body:           `{"package":-1}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Package must be at least 0",
		},
		{
			name:           "некорректный JSON",
			body:           `package=1`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "пакет не найден",
			body: `{"package":42}`,
			setupMock: func(m *MockService) {
				m.On("OpenCheckout", mock.Anything, "v1", 42).
					Return(checkout.View{}, fmt.Errorf("storefront.Buy: %w", catalog.ErrUnknownPackage))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   catalog.ErrUnknownPackage.Error(),
		},
		{
			name: "диалог уже открыт",
			body: `{"package":1}`,
			setupMock: func(m *MockService) {
				m.On("OpenCheckout", mock.Anything, "v1", 1).
					Return(checkout.View{Open: true}, fmt.Errorf("storefront.Buy: %w", checkout.ErrAlreadyOpen))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   checkout.ErrAlreadyOpen.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.VisitorID, "v1"))
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
