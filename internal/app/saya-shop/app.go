// Package sayashop собирает HTTP-приложение витрины: ленту уведомлений,
// публикацию покупок, реестр витрин посетителей и маршруты API.
package sayashop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/saya-shop/internal/cache"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/config"
	"github.com/magabrotheeeer/saya-shop/internal/events"
	"github.com/magabrotheeeer/saya-shop/internal/http/middlewarectx"
	"github.com/magabrotheeeer/saya-shop/internal/lib/jwt"
	"github.com/magabrotheeeer/saya-shop/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/metrics"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
	"github.com/magabrotheeeer/saya-shop/internal/services/shop"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

const (
	shutdownTimeout = 15 * time.Second
	forgetTimeout   = 2 * time.Second
)

// App — HTTP-сервер витрины и его инфраструктура.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	registry *storefront.Registry
	cache    *cache.Cache
	amqpConn *amqp.Connection
	amqpCh   *amqp.Channel
}

// New подключает внешние сервисы, включенные в cfg, и собирает роутер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.New"

	a := &App{logger: logger}

	var feed notify.Feed
	if cfg.RedisEnabled {
		c, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.cache = c
		feed = notify.NewRedisFeed(c, cfg.FeedTTL)
		logger.Info("notifications are stored in redis", slog.String("address", cfg.AddressRedis))
	} else {
		feed = notify.NewMemoryFeed(0)
		logger.Info("notifications are stored in memory")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitEnabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.amqpConn = conn
		ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ.Exchange, rabbitmq.PurchaseQueues(cfg.RabbitMQ.RoutingKey))
		if err != nil {
			a.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.amqpCh = ch
		publisher = events.NewAMQPPublisher(ch, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.RoutingKey)
		logger.Info("purchases are published to rabbitmq", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(promRegistry)

	a.registry = storefront.NewRegistry(cfg.MaxVisitors, cfg.VisitorTTL,
		func(visitorID string) *storefront.Storefront {
			return storefront.New(visitorID, storefront.Deps{
				Log:             logger,
				Notifier:        feed,
				Publisher:       publisher,
				Recorder:        m,
				Gateway:         checkout.DemoGateway{},
				ProcessingDelay: cfg.ProcessingDelay,
				SuccessDelay:    cfg.SuccessDelay,
			})
		},
		storefront.WithEvictHook(func(visitorID string) {
			ctx, cancel := context.WithTimeout(context.Background(), forgetTimeout)
			defer cancel()
			if err := feed.Forget(ctx, visitorID); err != nil {
				logger.Warn("failed to forget notifications", sl.Visitor(visitorID), sl.Err(err))
			}
		}),
		storefront.WithCountHook(m.VisitorsChanged),
	)

	tokens := jwt.NewJWTMaker(cfg.SecretKey, cfg.TokenTTL)
	service := shop.NewService(a.registry, feed, tokens, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Service: service,
		Tokens:  tokens,
		Limiter: middlewarectx.NewRateLimiter(cfg.RPS, cfg.Burst),
		Metrics: promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
	})

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close отменяет таймеры всех витрин и закрывает соединения.
func (a *App) close() {
	if a.registry != nil {
		a.registry.Purge()
	}
	if a.amqpCh != nil {
		if err := a.amqpCh.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq channel", sl.Err(err))
		}
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis client", sl.Err(err))
		}
	}
}
