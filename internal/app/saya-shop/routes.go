package sayashop

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/catalog/content"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/catalog/list"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/action"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/cancel"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/events"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/field"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/method"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/open"
	checkoutread "github.com/magabrotheeeer/saya-shop/internal/http/handlers/checkout/read"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/health"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/notifications/drain"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/storefront/navigate"
	storefrontread "github.com/magabrotheeeer/saya-shop/internal/http/handlers/storefront/read"
	"github.com/magabrotheeeer/saya-shop/internal/http/handlers/visitor/enter"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/services/shop"
)

// Deps — зависимости маршрутов.
type Deps struct {
	Service *shop.Service
	Tokens  middlewarectx.TokenParser
	Limiter *middlewarectx.RateLimiter
	Metrics http.Handler
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	svc := deps.Service

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/packages", list.New(logger, svc).ServeHTTP)
		r.Get("/content", content.New(logger, svc).ServeHTTP)
		r.With(middlewarectx.RateLimitMiddleware(logger, deps.Limiter)).
			Post("/visitors", enter.New(logger, svc).ServeHTTP)

		// Группа с токеном посетителя
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.VisitorMiddleware(deps.Tokens, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))

			r.Get("/storefront", storefrontread.New(logger, svc).ServeHTTP)
			r.Put("/storefront/section", navigate.New(logger, svc).ServeHTTP)

			r.Post("/checkout", open.New(logger, svc).ServeHTTP)
			r.Get("/checkout", checkoutread.New(logger, svc).ServeHTTP)
			r.Delete("/checkout", cancel.New(logger, svc).ServeHTTP)
			r.Patch("/checkout/fields", field.New(logger, svc).ServeHTTP)
			r.Put("/checkout/method", method.New(logger, svc).ServeHTTP)
			r.Get("/checkout/ws", events.New(logger, svc).ServeHTTP)
			r.Post("/checkout/{action}", action.New(logger, svc).ServeHTTP)

			r.Get("/notifications", drain.New(logger, svc).ServeHTTP)
		})
	})

	r.Handle("/metrics", deps.Metrics)
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
