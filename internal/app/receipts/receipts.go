// Package receipts собирает воркер, который читает события о покупках из RabbitMQ
// и отправляет покупателям чеки по SMTP.
package receipts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/saya-shop/internal/cache"
	"github.com/magabrotheeeer/saya-shop/internal/config"
	"github.com/magabrotheeeer/saya-shop/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/lib/smtp"
	"github.com/magabrotheeeer/saya-shop/internal/services/receipt"
)

const sentTTL = 7 * 24 * time.Hour

// App — воркер рассылки чеков.
type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	cache   *cache.Cache
	service *receipt.Service
	workers int
	logger  *slog.Logger
}

// New подключается к брокеру и объявляет очередь событий о покупках.
// Если Redis включен, отправленные чеки запоминаются в нём.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "receipts.New"

	var opts []receipt.Option
	var sent *cache.Cache
	if cfg.RedisEnabled {
		c, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sent = c
		opts = append(opts, receipt.WithSentLog(c, sentTTL))
	}
	closeCache := func() {
		if sent != nil {
			_ = sent.Close()
		}
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		closeCache()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ.Exchange, rabbitmq.PurchaseQueues(cfg.RabbitMQ.RoutingKey))
	if err != nil {
		_ = conn.Close()
		closeCache()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(cfg.ReceiptWorkers, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		closeCache()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		cache:   sent,
		service: receipt.NewService(logger, transport, opts...),
		workers: cfg.ReceiptWorkers,
		logger:  logger,
	}, nil
}

// Run читает очередь до отмены ctx или разрыва соединения с брокером.
func (a *App) Run(ctx context.Context) error {
	const op = "receipts.Run"

	closed := a.conn.NotifyClose(make(chan *amqp.Error, 1))

	done, err := rabbitmq.ConsumeMessages(ctx, a.ch, rabbitmq.ReceiptQueue, a.workers, a.logger, a.service.Send)
	if err != nil {
		a.logger.Error("failed to start receipts consumer", sl.Err(err))
		a.close()
		return fmt.Errorf("%s: %w", op, err)
	}
	a.logger.Info("receipts consumer started", slog.String("queue", rabbitmq.ReceiptQueue), slog.Int("workers", a.workers))

	select {
	case <-ctx.Done():
		a.logger.Info("receipts worker shutting down gracefully")
		<-done
		a.close()
		return nil
	case amqpErr := <-closed:
		<-done
		a.closeCache()
		if amqpErr == nil {
			return nil
		}
		return fmt.Errorf("%s: connection closed: %w", op, amqpErr)
	}
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	a.closeCache()
}

func (a *App) closeCache() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis client", sl.Err(err))
	}
	a.cache = nil
}
