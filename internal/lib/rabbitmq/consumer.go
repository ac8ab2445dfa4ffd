package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
)

// ErrDrop помечает сообщение, которое бессмысленно обрабатывать повторно.
// Такое сообщение отклоняется без возврата в очередь.
var ErrDrop = errors.New("message dropped")

// Consumer — часть *amqp.Channel, нужная для чтения очереди.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// ConsumeMessages читает очередь queueName и передаёт тела сообщений в handler,
// обрабатывая не больше workers сообщений одновременно. Успешные сообщения
// подтверждаются, упавшие возвращаются в очередь, кроме ошибок с ErrDrop.
// Чтение прекращается по отмене ctx или закрытию канала доставки. Возвращённый
// канал закрывается, когда чтение остановлено и все начатые обработчики завершились.
func ConsumeMessages(ctx context.Context, ch Consumer, queueName string, workers int, log *slog.Logger, handler func([]byte) error) (<-chan struct{}, error) {
	const op = "rabbitmq.ConsumeMessages"

	delivery, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if workers < 1 {
		workers = 1
	}
	log = log.With(slog.String("op", op), slog.String("queue", queueName))

	done := make(chan struct{})
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	go func() {
		defer close(done)
		defer wg.Wait()
		for {
			select {
			case d, ok := <-delivery:
				if !ok {
					return
				}
				select {
				case sem <- struct{}{}:
				case <-ctx.Done():
					// сообщение без подтверждения вернётся в очередь при закрытии канала
					return
				}
				wg.Add(1)
				go func(d amqp.Delivery) {
					defer wg.Done()
					defer func() { <-sem }()
					settle(log, d, handler(d.Body))
				}(d)
			case <-ctx.Done():
				return
			}
		}
	}()
	return done, nil
}

func settle(log *slog.Logger, d amqp.Delivery, err error) {
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			log.Error("failed to ack message", sl.Err(ackErr))
		}
	case errors.Is(err, ErrDrop):
		log.Warn("message dropped", sl.Err(err))
		if rejectErr := d.Reject(false); rejectErr != nil {
			log.Error("failed to reject message", sl.Err(rejectErr))
		}
	default:
		log.Error("failed to handle message", sl.Err(err))
		if nackErr := d.Nack(false, true); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
	}
}
