package navigate

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

func (m *MockService) Navigate(ctx context.Context, visitorID, section string) (storefront.View, error) {
	args := m.Called(ctx, visitorID, section)
	return args.Get(0).(storefront.View), args.Error(1)
}

func TestNavigateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "переход в FAQ",
			body: `{"section":"faq"}`,
			setupMock: func(m *MockService) {
				m.On("Navigate", mock.Anything, "v1", "faq").
					Return(storefront.View{VisitorID: "v1", Section: catalog.SectionFAQ}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"section":"faq"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"section":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "неизвестный раздел",
			body:           `{"section":"shop"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Section must be one of",
		},
		{
			name: "витрина закрыта",
			body: `{"section":"about"}`,
			setupMock: func(m *MockService) {
				m.On("Navigate", mock.Anything, "v1", "about").Return(storefront.View{}, storefront.ErrClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   storefront.ErrClosed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPut, "/storefront/section", strings.NewReader(tt.body))
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
