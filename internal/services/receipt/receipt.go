// Package receipt рассылает чеки о покупке монет на email, указанный в диалоге оплаты.
package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/textproto"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/events"
	"github.com/magabrotheeeer/saya-shop/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/lib/smtp"
)

// Subject — тема письма с чеком.
const Subject = "Чек об оплате монет Saya"

const storeTimeout = 2 * time.Second

// Transport открывает SMTP-сессию, см. smtp.Transport.
type Transport interface {
	Connect() (smtp.Client, error)
	From() string
}

// SentLog помнит отправленные чеки, см. cache.Cache.
type SentLog interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service отправляет чеки.
type Service struct {
	transport Transport
	log       *slog.Logger
	validate  *validator.Validate
	sent      SentLog
	sentTTL   time.Duration
}

// Option настраивает Service.
type Option func(*Service)

// WithSentLog включает защиту от повторной отправки чека при повторной доставке события.
func WithSentLog(sent SentLog, ttl time.Duration) Option {
	return func(s *Service) {
		s.sent = sent
		s.sentTTL = ttl
	}
}

// NewService создает новый экземпляр Service.
func NewService(log *slog.Logger, transport Transport, opts ...Option) *Service {
	s := &Service{transport: transport, log: log, validate: validator.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send разбирает событие о покупке и отправляет чек покупателю.
// Битое событие, некорректный адрес и постоянный отказ сервера (5xx) на RCPT
// отклоняются через rabbitmq.ErrDrop, остальные ошибки SMTP возвращаются для повтора.
func (s *Service) Send(body []byte) error {
	const op = "receipt.Send"
	log := s.log.With(slog.String("op", op))

	var p events.Purchase
	if err := json.Unmarshal(body, &p); err != nil {
		log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("%s: error unmarshalling message: %w: %w", op, rabbitmq.ErrDrop, err)
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		log.Warn("purchase without email, receipt skipped", slog.String("purchase_id", p.ID))
		return nil
	}
	if err := s.validateAddress(email); err != nil {
		log.Warn("invalid receipt email", slog.String("purchase_id", p.ID), sl.Err(err))
		return fmt.Errorf("%s: %w: %w", op, rabbitmq.ErrDrop, err)
	}
	if s.alreadySent(log, p.ID) {
		log.Info("receipt already sent", slog.String("purchase_id", p.ID))
		return nil
	}

	if err := s.sendEmail(email, Subject, Compose(p)); err != nil {
		if errors.Is(err, errRecipientRejected) {
			log.Warn("receipt recipient rejected", slog.String("purchase_id", p.ID), sl.Err(err))
			return fmt.Errorf("%s: %w: %w", op, rabbitmq.ErrDrop, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.markSent(log, p.ID)
	log.Info("receipt sent", slog.String("purchase_id", p.ID), sl.Visitor(p.VisitorID))
	return nil
}

var errRecipientRejected = errors.New("recipient rejected")

// validateAddress принимает только адрес вида user@host, без имени и переводов строк.
func (s *Service) validateAddress(email string) error {
	if strings.ContainsAny(email, "\r\n") {
		return errors.New("email contains line break")
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return fmt.Errorf("email %q is not a valid address: %w", email, err)
	}
	return nil
}

func sentKey(purchaseID string) string {
	return "receipt:sent:" + purchaseID
}

// alreadySent при недоступном хранилище считает чек неотправленным.
func (s *Service) alreadySent(log *slog.Logger, purchaseID string) bool {
	if s.sent == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var sentAt time.Time
	found, err := s.sent.Get(ctx, sentKey(purchaseID), &sentAt)
	if err != nil {
		log.Warn("failed to check sent receipts", sl.Err(err))
		return false
	}
	return found
}

func (s *Service) markSent(log *slog.Logger, purchaseID string) {
	if s.sent == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := s.sent.Set(ctx, sentKey(purchaseID), time.Now().UTC(), s.sentTTL); err != nil {
		log.Warn("failed to remember sent receipt", sl.Err(err))
	}
}

// Compose собирает текст чека.
func Compose(p events.Purchase) string {
	var b strings.Builder
	b.WriteString("Здравствуйте!\n\n")
	b.WriteString("Спасибо за покупку в магазине Saya.\n\n")
	fmt.Fprintf(&b, "Пакет: %s монет\n", p.Coins)
	fmt.Fprintf(&b, "Сумма: %d ₽\n", p.Amount)
	fmt.Fprintf(&b, "Способ оплаты: %s\n", checkout.Method(p.Method).Label())
	fmt.Fprintf(&b, "Номер операции: %s\n", p.ID)
	fmt.Fprintf(&b, "Дата: %s UTC\n\n", p.CompletedAt.UTC().Format("02.01.2006 15:04"))
	b.WriteString("Платёж демонстрационный, деньги не списывались.\n")
	return b.String()
}

func (s *Service) sendEmail(to, subject, bodyText string) error {
	from := s.transport.From()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"Date: " + time.Now().UTC().Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		strings.ReplaceAll(bodyText, "\n", "\r\n"),
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("mail from %s: %w", from, err)
	}
	if err := client.Rcpt(to); err != nil {
		var protoErr *textproto.Error
		if errors.As(err, &protoErr) && protoErr.Code >= 500 {
			return fmt.Errorf("rcpt to: %w: %w", errRecipientRejected, err)
		}
		return fmt.Errorf("rcpt to: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("quit: %w", err)
	}
	return nil
}
