// Package events публикует события витрины для внешних потребителей.
package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/saya-shop/internal/lib/rabbitmq"
)

// Purchase — событие успешной (демонстрационной) покупки монет.
type Purchase struct {
	ID          string    `json:"id"`
	VisitorID   string    `json:"visitor_id"`
	Amount      int64     `json:"amount"`
	Coins       string    `json:"coins"`
	Method      string    `json:"method"`
	Email       string    `json:"email"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewPurchase заполняет идентификатор и время события.
func NewPurchase(visitorID string, amount int64, coins, method, email string) Purchase {
	return Purchase{
		ID:          uuid.NewString(),
		VisitorID:   visitorID,
		Amount:      amount,
		Coins:       coins,
		Method:      method,
		Email:       email,
		CompletedAt: time.Now().UTC(),
	}
}

// Publisher отправляет события о покупках.
type Publisher interface {
	PublishPurchase(ctx context.Context, p Purchase) error
}

// NopPublisher ничего не публикует. Используется, когда брокер выключен в конфиге.
type NopPublisher struct{}

// PublishPurchase реализует Publisher.
func (NopPublisher) PublishPurchase(context.Context, Purchase) error { return nil }

// AMQPPublisher публикует события в обменник RabbitMQ.
type AMQPPublisher struct {
	mu         sync.Mutex
	ch         rabbitmq.Channel
	exchange   string
	routingKey string
}

// NewAMQPPublisher создаёт издателя поверх открытого канала.
func NewAMQPPublisher(ch rabbitmq.Channel, exchange, routingKey string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange, routingKey: routingKey}
}

// PublishPurchase реализует Publisher.
func (p *AMQPPublisher) PublishPurchase(ctx context.Context, purchase Purchase) error {
	const op = "events.PublishPurchase"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := rabbitmq.PublishMessage(p.ch, p.exchange, p.routingKey, purchase); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
