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

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Storefront(ctx context.Context, visitorID string) storefront.View {
	args := m.Called(ctx, visitorID)
	return args.Get(0).(storefront.View)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		visitorID      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "витрина посетителя",
			visitorID: "v1",
			setupMock: func(m *MockService) {
				m.On("Storefront", mock.Anything, "v1").
					Return(storefront.View{VisitorID: "v1", Section: catalog.SectionFAQ})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"section":"faq"`,
		},
		{
			name:           "нет посетителя в контексте",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, "/storefront", nil)
			if tt.visitorID != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.VisitorID, tt.visitorID))
			}
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
