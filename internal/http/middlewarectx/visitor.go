// Package middlewarectx содержит HTTP middleware витрины.
//
// VisitorMiddleware берёт токен посетителя из заголовка Authorization или
// параметра token (для WebSocket), проверяет его и кладёт идентификатор
// посетителя в контекст запроса.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/saya-shop/internal/http/response"
	"github.com/magabrotheeeer/saya-shop/internal/lib/jwt"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// VisitorID — ключ идентификатора посетителя в контексте.
const VisitorID Key = "visitor_id"

// TokenParser разбирает токен посетителя, см. jwt.MakerImpl.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.VisitorClaims, error)
}

// VisitorMiddleware возвращает HTTP middleware, который проверяет токен посетителя.
func VisitorMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.VisitorMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := extractToken(r)
			if !ok {
				log.Info("missing visitor token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}

			claims, err := parser.ParseToken(tokenStr)
			if err != nil {
				log.Info("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), VisitorID, claims.VisitorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorFromContext возвращает идентификатор посетителя, положенный VisitorMiddleware.
func VisitorFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(VisitorID).(string)
	return id, ok && id != ""
}

func extractToken(r *http.Request) (string, bool) {
	if h := r.Header.Get("Authorization"); h != "" {
		if !strings.HasPrefix(h, "Bearer ") {
			return "", false
		}
		token := strings.TrimPrefix(h, "Bearer ")
		return token, token != ""
	}
	token := r.URL.Query().Get("token")
	return token, token != ""
}
