package checkout

import (
	"context"
	"strings"
	"time"
)

const (
	// DefaultProcessingDelay — длительность имитации обработки платежа.
	DefaultProcessingDelay = 2500 * time.Millisecond
	// DefaultSuccessDelay — сколько показывается экран успеха до автозакрытия.
	DefaultSuccessDelay = 2000 * time.Millisecond
)

// Params — параметры открытия диалога. Сумма только отображается, арифметики над ней нет.
type Params struct {
	Amount      int64
	Description string
	// OnSuccess вызывается ровно один раз после успешной оплаты, перед закрытием.
	OnSuccess func()
	// OnClose вызывается при каждом закрытии диалога: отмена, закрытие извне, успех.
	OnClose func()
}

// View — снимок состояния терминала только для чтения.
type View struct {
	Open        bool   `json:"open"`
	Step        Step   `json:"step"`
	Method      Method `json:"method"`
	Email       string `json:"email"`
	CardNumber  string `json:"card_number"`
	CardExpiry  string `json:"card_expiry"`
	CardCVV     string `json:"card_cvv"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type session struct {
	step       Step
	method     Method
	email      string
	cardNumber string
	cardExpiry string
	cardCVV    string
}

func defaultSession() session {
	return session{step: StepMethod, method: MethodCard}
}

// Terminal — модальный диалог оплаты. Одновременно открыт не более одного сеанса.
//
// Terminal не синхронизирован: все вызовы, включая колбэки таймеров, должны
// выполняться последовательно. Для реальных часов используйте LockedScheduler
// с тем же мьютексом, которым владелец защищает свои вызовы.
type Terminal struct {
	sched           Scheduler
	gateway         Gateway
	observer        func(View)
	processingDelay time.Duration
	successDelay    time.Duration

	open       bool
	params     Params
	s          session
	generation uint64
	pending    Timer
}

// Option настраивает Terminal.
type Option func(*Terminal)

// WithScheduler задаёт планировщик таймеров.
func WithScheduler(s Scheduler) Option {
	return func(t *Terminal) { t.sched = s }
}

// WithDelays задаёт задержки обработки и экрана успеха.
func WithDelays(processing, success time.Duration) Option {
	return func(t *Terminal) {
		t.processingDelay = processing
		t.successDelay = success
	}
}

// WithGateway подключает платёжный шлюз вместо DemoGateway.
func WithGateway(g Gateway) Option {
	return func(t *Terminal) { t.gateway = g }
}

// WithObserver подписывает fn на каждое изменение состояния, в том числе по таймеру.
func WithObserver(fn func(View)) Option {
	return func(t *Terminal) { t.observer = fn }
}

// New создаёт закрытый терминал.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		sched:           ClockScheduler{},
		gateway:         DemoGateway{},
		processingDelay: DefaultProcessingDelay,
		successDelay:    DefaultSuccessDelay,
		s:               defaultSession(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsOpen сообщает, открыт ли диалог.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Open открывает диалог с начальным состоянием: шаг выбора способа, оплата картой, пустые поля.
func (t *Terminal) Open(p Params) error {
	if t.open {
		return ErrAlreadyOpen
	}
	t.open = true
	t.params = p
	t.generation++
	t.reset()
	t.notify()
	return nil
}

// Close закрывает диалог без вызова OnSuccess. Отложенный таймер отменяется,
// а его колбэк, если уже в очереди, ничего не изменит. Повторный вызов ничего не делает.
func (t *Terminal) Close() {
	if !t.open {
		return
	}
	t.finish()
}

// SetEmail задаёт email для чека.
func (t *Terminal) SetEmail(email string) error {
	if err := t.require("set email", StepMethod); err != nil {
		return err
	}
	t.s.email = email
	t.notify()
	return nil
}

// SelectMethod выбирает способ оплаты.
func (t *Terminal) SelectMethod(m Method) error {
	if err := t.require("select method", StepMethod); err != nil {
		return err
	}
	if _, err := ParseMethod(string(m)); err != nil {
		return err
	}
	t.s.method = m
	t.notify()
	return nil
}

// SetCardNumber применяет ввод номера карты. accepted == false означает, что правка
// отклонена форматированием и прежнее значение сохранено.
func (t *Terminal) SetCardNumber(input string) (accepted bool, err error) {
	return t.applyCardInput("set card number", input, FormatCardNumber, &t.s.cardNumber)
}

// SetCardExpiry применяет ввод срока действия.
func (t *Terminal) SetCardExpiry(input string) (accepted bool, err error) {
	return t.applyCardInput("set card expiry", input, FormatExpiry, &t.s.cardExpiry)
}

// SetCardCVV применяет ввод CVV.
func (t *Terminal) SetCardCVV(input string) (accepted bool, err error) {
	return t.applyCardInput("set card cvv", input, FormatCVV, &t.s.cardCVV)
}

// SetField применяет ввод в поле формы по его имени.
func (t *Terminal) SetField(f Field, value string) (accepted bool, err error) {
	switch f {
	case FieldEmail:
		if err := t.SetEmail(value); err != nil {
			return false, err
		}
		return true, nil
	case FieldCardNumber:
		return t.SetCardNumber(value)
	case FieldCardExpiry:
		return t.SetCardExpiry(value)
	case FieldCardCVV:
		return t.SetCardCVV(value)
	default:
		return false, ErrUnknownField
	}
}

// Continue завершает шаг выбора способа: для карты переходит к вводу данных,
// для остальных способов сразу к обработке.
func (t *Terminal) Continue(ctx context.Context) error {
	if err := t.require("continue", StepMethod); err != nil {
		return err
	}
	if strings.TrimSpace(t.s.email) == "" {
		return ErrEmailRequired
	}
	if t.s.method == MethodCard {
		t.s.step = StepCard
		t.notify()
		return nil
	}
	return t.startProcessing(ctx)
}

// Submit проверяет данные карты и запускает обработку. Поля проверяются по порядку:
// номер, срок действия, CVV; возвращается первая ошибка.
func (t *Terminal) Submit(ctx context.Context) error {
	if err := t.require("submit", StepCard); err != nil {
		return err
	}
	switch {
	case !validCardNumber(t.s.cardNumber):
		return ErrInvalidCardNumber
	case !validExpiry(t.s.cardExpiry):
		return ErrInvalidExpiry
	case !validCVV(t.s.cardCVV):
		return ErrInvalidCVV
	}
	return t.startProcessing(ctx)
}

// Back возвращает с шага карты к выбору способа. Введённые данные сохраняются.
func (t *Terminal) Back() error {
	if err := t.require("back", StepCard); err != nil {
		return err
	}
	t.s.step = StepMethod
	t.notify()
	return nil
}

// View возвращает снимок состояния.
func (t *Terminal) View() View {
	return View{
		Open:        t.open,
		Step:        t.s.step,
		Method:      t.s.method,
		Email:       t.s.email,
		CardNumber:  t.s.cardNumber,
		CardExpiry:  t.s.cardExpiry,
		CardCVV:     t.s.cardCVV,
		Amount:      t.params.Amount,
		Description: t.params.Description,
	}
}

func (t *Terminal) applyCardInput(op, input string, format func(string) (string, bool), dst *string) (bool, error) {
	if err := t.require(op, StepCard); err != nil {
		return false, err
	}
	formatted, ok := format(input)
	if !ok {
		return false, nil
	}
	*dst = formatted
	t.notify()
	return true, nil
}

func (t *Terminal) require(op string, step Step) error {
	if !t.open {
		return ErrNotOpen
	}
	if t.s.step != step {
		return &WrongStepError{Op: op, Step: t.s.step}
	}
	return nil
}

func (t *Terminal) startProcessing(ctx context.Context) error {
	charge := Charge{
		Amount:      t.params.Amount,
		Description: t.params.Description,
		Email:       t.s.email,
		Method:      t.s.method,
	}
	if t.s.method == MethodCard {
		digits := CardDigits(t.s.cardNumber)
		charge.CardLast4 = digits[len(digits)-4:]
	}
	if err := t.gateway.Charge(ctx, charge); err != nil {
		return &GatewayError{Err: err}
	}

	gen := t.generation
	t.s.step = StepProcessing
	t.pending = t.sched.AfterFunc(t.processingDelay, func() { t.processed(gen) })
	t.notify()
	return nil
}

func (t *Terminal) processed(gen uint64) {
	if !t.live(gen) {
		return
	}
	t.s.step = StepSuccess
	t.pending = t.sched.AfterFunc(t.successDelay, func() { t.succeeded(gen) })
	t.notify()
}

func (t *Terminal) succeeded(gen uint64) {
	if !t.live(gen) {
		return
	}
	t.pending = nil
	if cb := t.params.OnSuccess; cb != nil {
		cb()
	}
	// OnSuccess мог сам закрыть диалог.
	if t.live(gen) {
		t.finish()
	}
}

// live сообщает, что таймер с токеном gen относится к текущему открытому сеансу.
func (t *Terminal) live(gen uint64) bool {
	return t.open && t.generation == gen
}

func (t *Terminal) finish() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.generation++
	t.reset()
	onClose := t.params.OnClose
	t.open = false
	t.params = Params{}
	t.notify()
	if onClose != nil {
		onClose()
	}
}

func (t *Terminal) reset() {
	t.s = defaultSession()
}

func (t *Terminal) notify() {
	if t.observer != nil {
		t.observer(t.View())
	}
}
