// Package shop — сервисный слой HTTP API витрины: выдача токенов посетителям,
// доступ к витрине посетителя в реестре и маскирование данных карты в ответах.
package shop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

// ErrUnknownAction возвращается для неизвестного действия над диалогом оплаты.
var ErrUnknownAction = errors.New("unknown checkout action")

// Action — шаговое действие диалога оплаты.
type Action string

const (
	ActionContinue Action = "continue"
	ActionSubmit   Action = "submit"
	ActionBack     Action = "back"
)

// TokenMaker выпускает токены посетителей, см. jwt.MakerImpl.
type TokenMaker interface {
	GenerateToken(visitorID string) (string, error)
}

// Registry хранит витрины посетителей, см. storefront.Registry.
type Registry interface {
	Get(visitorID string) *storefront.Storefront
}

// Service реализует операции API над витриной посетителя.
type Service struct {
	registry Registry
	feed     notify.Feed
	tokens   TokenMaker
	log      *slog.Logger
}

// NewService создаёт Service.
func NewService(registry Registry, feed notify.Feed, tokens TokenMaker, log *slog.Logger) *Service {
	return &Service{
		registry: registry,
		feed:     feed,
		tokens:   tokens,
		log:      log,
	}
}

// EnterVisitor регистрирует нового посетителя и выдаёт ему токен.
func (s *Service) EnterVisitor(_ context.Context) (visitorID, token string, err error) {
	const op = "services.shop.EnterVisitor"

	visitorID = uuid.NewString()
	token, err = s.tokens.GenerateToken(visitorID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	s.registry.Get(visitorID)
	s.log.Info("visitor entered", sl.Visitor(visitorID))
	return visitorID, token, nil
}

// Packages возвращает каталог пакетов.
func (s *Service) Packages(_ context.Context) []catalog.Package {
	return catalog.Packages()
}

// Content возвращает статические тексты витрины.
func (s *Service) Content(_ context.Context) catalog.Content {
	return catalog.StaticContent()
}

// Storefront возвращает снимок витрины посетителя.
func (s *Service) Storefront(_ context.Context, visitorID string) storefront.View {
	return MaskView(s.registry.Get(visitorID).View())
}

// Navigate переключает активный раздел витрины.
func (s *Service) Navigate(_ context.Context, visitorID, section string) (storefront.View, error) {
	v, err := s.registry.Get(visitorID).Navigate(catalog.Section(section))
	return MaskView(v), err
}

// OpenCheckout открывает оплату пакета с индексом pkg.
func (s *Service) OpenCheckout(_ context.Context, visitorID string, pkg int) (checkout.View, error) {
	v, err := s.registry.Get(visitorID).Buy(pkg)
	return MaskCheckout(v.Checkout), err
}

// Checkout возвращает состояние диалога оплаты.
func (s *Service) Checkout(_ context.Context, visitorID string) checkout.View {
	return MaskCheckout(s.registry.Get(visitorID).View().Checkout)
}

// SetField применяет ввод в поле формы оплаты.
func (s *Service) SetField(_ context.Context, visitorID, field, value string) (bool, checkout.View, error) {
	f, err := checkout.ParseField(field)
	if err != nil {
		return false, checkout.View{}, err
	}
	accepted, v, err := s.registry.Get(visitorID).SetField(f, value)
	return accepted, MaskCheckout(v.Checkout), err
}

// SelectMethod выбирает способ оплаты.
func (s *Service) SelectMethod(_ context.Context, visitorID, method string) (checkout.View, error) {
	m, err := checkout.ParseMethod(method)
	if err != nil {
		return checkout.View{}, err
	}
	v, err := s.registry.Get(visitorID).SelectMethod(m)
	return MaskCheckout(v.Checkout), err
}

// Act выполняет шаговое действие: продолжить, оплатить или вернуться назад.
func (s *Service) Act(ctx context.Context, visitorID, action string) (checkout.View, error) {
	sf := s.registry.Get(visitorID)

	var (
		v   storefront.View
		err error
	)
	switch Action(action) {
	case ActionContinue:
		v, err = sf.Continue(ctx)
	case ActionSubmit:
		v, err = sf.Submit(ctx)
	case ActionBack:
		v, err = sf.Back()
	default:
		return checkout.View{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return MaskCheckout(v.Checkout), err
}

// Cancel закрывает диалог оплаты.
func (s *Service) Cancel(_ context.Context, visitorID string) (checkout.View, error) {
	v, err := s.registry.Get(visitorID).Cancel()
	return MaskCheckout(v.Checkout), err
}

// Subscribe подписывает на изменения диалога оплаты. Снимки уже замаскированы.
func (s *Service) Subscribe(ctx context.Context, visitorID string) (<-chan checkout.View, func()) {
	raw, unsubscribe := s.registry.Get(visitorID).Subscribe()
	out := make(chan checkout.View, cap(raw))
	go func() {
		defer close(out)
		for {
			select {
			case v, ok := <-raw:
				if !ok {
					return
				}
				select {
				case out <- MaskCheckout(v):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, unsubscribe
}

// Notifications забирает накопленные уведомления посетителя.
func (s *Service) Notifications(ctx context.Context, visitorID string) ([]notify.Notification, error) {
	const op = "services.shop.Notifications"

	items, err := s.feed.Drain(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if items == nil {
		items = []notify.Notification{}
	}
	return items, nil
}

// MaskCheckout заменяет цифры CVV точками.
func MaskCheckout(v checkout.View) checkout.View {
	v.CardCVV = strings.Repeat("•", len(v.CardCVV))
	return v
}

// MaskView маскирует диалог оплаты внутри снимка витрины.
func MaskView(v storefront.View) storefront.View {
	v.Checkout = MaskCheckout(v.Checkout)
	return v
}
