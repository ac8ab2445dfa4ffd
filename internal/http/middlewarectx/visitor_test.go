package middlewarectx_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/lib/jwt"
)

type TokenParserMock struct {
	mock.Mock
}

func (m *TokenParserMock) ParseToken(tokenStr string) (*jwt.VisitorClaims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*jwt.VisitorClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestVisitorMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		query          string
		token          string
		mockClaims     *jwt.VisitorClaims
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "нет токена",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "неверная схема заголовка",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "недействительный токен",
			authHeader:     "Bearer broken",
			token:          "broken",
			mockErr:        errors.New("token is expired"),
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "токен в заголовке",
			authHeader:     "Bearer good",
			token:          "good",
			mockClaims:     &jwt.VisitorClaims{VisitorID: "v1"},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "токен в параметре запроса",
			query:          "?token=good",
			token:          "good",
			mockClaims:     &jwt.VisitorClaims{VisitorID: "v1"},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := new(TokenParserMock)
			if tt.token != "" {
				parser.On("ParseToken", tt.token).Return(tt.mockClaims, tt.mockErr).Once()
			}

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := middlewarectx.VisitorFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, "v1", id)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout"+tt.query, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middlewarectx.VisitorMiddleware(parser, newNoopLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			parser.AssertExpectations(t)
		})
	}
}
