// Package storefront связывает каталог и платёжный терминал в состояние витрины
// одного посетителя: активный раздел, выбранный пакет, диалог оплаты и уведомления.
//
// Все операции витрины и колбэки таймеров терминала выполняются под одним мьютексом,
// поэтому для терминала события обрабатываются строго по одному.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/events"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
)

// ErrClosed возвращается для витрины, удалённой из реестра.
var ErrClosed = errors.New("storefront is closed")

// Тексты уведомлений.
const (
	TitleError          = "Ошибка"
	TitlePaymentSuccess = "Оплата прошла успешно! 🎉"
	MessageDeclined     = "Платёж отклонён, попробуйте другой способ оплаты"
)

const (
	sideEffectTimeout = 3 * time.Second
	subscriberBuffer  = 16
)

// Notifier доставляет уведомления посетителю.
type Notifier interface {
	Push(ctx context.Context, visitorID string, n notify.Notification) error
}

// Recorder собирает метрики витрины, см. metrics.Metrics.
type Recorder interface {
	CheckoutOpened()
	CheckoutCompleted(method string, amount int64)
	CheckoutCancelled(step string)
	ValidationFailed(field string)
	GatewayDeclined()
	SideEffectFailed(kind string)
}

// Deps — зависимости витрины. Незаданные поля заменяются пустыми реализациями.
type Deps struct {
	Log       *slog.Logger
	Notifier  Notifier
	Publisher events.Publisher
	Recorder  Recorder
	Gateway   checkout.Gateway
	// Scheduler — базовый планировщик таймеров терминала. Колбэки всегда
	// выполняются под мьютексом витрины.
	Scheduler       checkout.Scheduler
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
}

// View — снимок витрины.
type View struct {
	VisitorID string           `json:"visitor_id"`
	Section   catalog.Section  `json:"section"`
	Selected  *catalog.Package `json:"selected,omitempty"`
	Checkout  checkout.View    `json:"checkout"`
}

// Storefront — состояние витрины одного посетителя.
type Storefront struct {
	mu sync.Mutex

	visitorID string
	section   catalog.Section
	selected  *catalog.Package
	term      *checkout.Terminal
	closed    bool

	log       *slog.Logger
	notifier  Notifier
	publisher events.Publisher
	recorder  Recorder

	subs    map[int]chan checkout.View
	nextSub int
}

// New создаёт витрину посетителя visitorID.
func New(visitorID string, deps Deps) *Storefront {
	s := &Storefront{
		visitorID: visitorID,
		section:   catalog.SectionPackages,
		log:       deps.Log,
		notifier:  deps.Notifier,
		publisher: deps.Publisher,
		recorder:  deps.Recorder,
		subs:      make(map[int]chan checkout.View),
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.log = s.log.With(sl.Visitor(visitorID))
	if s.publisher == nil {
		s.publisher = events.NopPublisher{}
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}

	opts := []checkout.Option{
		checkout.WithScheduler(checkout.NewLockedScheduler(&s.mu, deps.Scheduler)),
		checkout.WithObserver(s.broadcast),
	}
	if deps.Gateway != nil {
		opts = append(opts, checkout.WithGateway(deps.Gateway))
	}
	if deps.ProcessingDelay > 0 && deps.SuccessDelay > 0 {
		opts = append(opts, checkout.WithDelays(deps.ProcessingDelay, deps.SuccessDelay))
	}
	s.term = checkout.New(opts...)
	return s
}

// VisitorID возвращает идентификатор посетителя.
func (s *Storefront) VisitorID() string {
	return s.visitorID
}

// View возвращает снимок витрины.
func (s *Storefront) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// Navigate делает раздел активным.
func (s *Storefront) Navigate(section catalog.Section) (View, error) {
	const op = "storefront.Navigate"

	sec, err := catalog.ParseSection(string(section))
	if err != nil {
		return View{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}
	s.section = sec
	return s.view(), nil
}

// Buy выбирает пакет из каталога и открывает диалог оплаты на его цену.
func (s *Storefront) Buy(index int) (View, error) {
	const op = "storefront.Buy"

	pkg, err := catalog.Lookup(index)
	if err != nil {
		return View{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}

	err = s.term.Open(checkout.Params{
		Amount:      pkg.Price,
		Description: pkg.Description(),
		OnSuccess:   func() { s.paymentSucceeded(pkg) },
		OnClose:     s.checkoutClosed,
	})
	if err != nil {
		return s.view(), fmt.Errorf("%s: %w", op, err)
	}
	s.selected = &pkg
	s.recorder.CheckoutOpened()
	s.log.Info("checkout opened", slog.Int64("amount", pkg.Price), slog.String("coins", pkg.Coins))
	return s.view(), nil
}

// SetField применяет ввод в поле формы оплаты.
func (s *Storefront) SetField(field checkout.Field, value string) (bool, View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, View{}, ErrClosed
	}
	accepted, err := s.term.SetField(field, value)
	return accepted, s.view(), err
}

// SelectMethod выбирает способ оплаты.
func (s *Storefront) SelectMethod(m checkout.Method) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}
	err := s.term.SelectMethod(m)
	return s.view(), err
}

// Continue завершает шаг выбора способа оплаты.
func (s *Storefront) Continue(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}
	err := s.term.Continue(ctx)
	s.reportFailure(ctx, err)
	return s.view(), err
}

// Submit отправляет данные карты.
func (s *Storefront) Submit(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}
	err := s.term.Submit(ctx)
	s.reportFailure(ctx, err)
	return s.view(), err
}

// Back возвращает диалог к выбору способа оплаты.
func (s *Storefront) Back() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}
	err := s.term.Back()
	return s.view(), err
}

// Cancel закрывает диалог оплаты без зачисления монет.
func (s *Storefront) Cancel() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrClosed
	}
	if !s.term.IsOpen() {
		return s.view(), checkout.ErrNotOpen
	}
	s.cancel()
	return s.view(), nil
}

// Subscribe подписывает на изменения диалога оплаты, включая переходы по таймеру.
// Медленный подписчик пропускает снимки. Канал закрывается вызовом отписки или Close.
func (s *Storefront) Subscribe() (<-chan checkout.View, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan checkout.View, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.term.View()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// Close закрывает диалог оплаты, отменяя таймеры, и отключает подписчиков.
// Повторный вызов ничего не делает.
func (s *Storefront) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.term.IsOpen() {
		s.cancel()
	}
	s.closed = true
	for id, c := range s.subs {
		delete(s.subs, id)
		close(c)
	}
}

func (s *Storefront) cancel() {
	step := s.term.View().Step
	s.term.Close()
	s.recorder.CheckoutCancelled(string(step))
	s.log.Info("checkout cancelled", slog.String("step", string(step)))
}

func (s *Storefront) view() View {
	v := View{
		VisitorID: s.visitorID,
		Section:   s.section,
		Checkout:  s.term.View(),
	}
	if s.selected != nil {
		pkg := *s.selected
		v.Selected = &pkg
	}
	return v
}

// reportFailure превращает ошибку проверки или отказ шлюза в уведомление.
func (s *Storefront) reportFailure(ctx context.Context, err error) {
	if err == nil {
		return
	}
	var verr *checkout.ValidationError
	var gerr *checkout.GatewayError
	switch {
	case errors.As(err, &verr):
		s.recorder.ValidationFailed(string(verr.Field))
		s.push(ctx, notify.New(TitleError, verr.Message, notify.VariantDestructive))
	case errors.As(err, &gerr):
		s.recorder.GatewayDeclined()
		s.log.Warn("payment declined", sl.Err(gerr.Err))
		s.push(ctx, notify.New(TitleError, MessageDeclined, notify.VariantDestructive))
	}
}

// paymentSucceeded выполняется из колбэка таймера под мьютексом витрины.
func (s *Storefront) paymentSucceeded(pkg catalog.Package) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	cv := s.term.View()
	s.recorder.CheckoutCompleted(string(cv.Method), pkg.Price)
	s.log.Info("payment succeeded",
		slog.Int64("amount", pkg.Price),
		slog.String("coins", pkg.Coins),
		slog.String("method", string(cv.Method)),
	)

	s.push(ctx, notify.New(TitlePaymentSuccess, pkg.CreditedMessage(), notify.VariantDefault))

	purchase := events.NewPurchase(s.visitorID, pkg.Price, pkg.Coins, string(cv.Method), cv.Email)
	if err := s.publisher.PublishPurchase(ctx, purchase); err != nil {
		s.recorder.SideEffectFailed("event")
		s.log.Error("failed to publish purchase", sl.Err(err))
	}
}

func (s *Storefront) checkoutClosed() {
	s.selected = nil
}

func (s *Storefront) push(ctx context.Context, n notify.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Push(ctx, s.visitorID, n); err != nil {
		s.recorder.SideEffectFailed("notification")
		s.log.Error("failed to push notification", sl.Err(err))
	}
}

// broadcast рассылает снимок подписчикам без блокировки.
func (s *Storefront) broadcast(v checkout.View) {
	for _, c := range s.subs {
		select {
		case c <- v:
		default:
		}
	}
}

type nopRecorder struct{}

func (nopRecorder) CheckoutOpened() {}
func (nopRecorder) CheckoutCompleted(string, int64) {}
func (nopRecorder) CheckoutCancelled(string) {}
func (nopRecorder) ValidationFailed(string) {}
func (nopRecorder) GatewayDeclined() {}
func (nopRecorder) SideEffectFailed(string) {}
