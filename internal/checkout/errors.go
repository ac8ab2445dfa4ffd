package checkout

import (
	"errors"
	"fmt"
)

// Field — поле формы оплаты.
type Field string

const (
	FieldEmail      Field = "email"
	FieldCardNumber Field = "card_number"
	FieldCardExpiry Field = "card_expiry"
	FieldCardCVV    Field = "card_cvv"
)

// ParseField разбирает имя поля формы.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldEmail, FieldCardNumber, FieldCardExpiry, FieldCardCVV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// ValidationError — ошибка проверки введённых данных. Сообщение показывается
// пользователю как есть.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is сравнивает ошибки по полю, чтобы errors.Is работал с сентинелами пакета.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// Ошибки проверки формы оплаты.
var (
	ErrEmailRequired     = &ValidationError{Field: FieldEmail, Message: "Укажите email для получения чека"}
	ErrInvalidCardNumber = &ValidationError{Field: FieldCardNumber, Message: "Неверный номер карты"}
	ErrInvalidExpiry     = &ValidationError{Field: FieldCardExpiry, Message: "Неверный срок действия"}
	ErrInvalidCVV        = &ValidationError{Field: FieldCardCVV, Message: "Неверный CVV код"}
)

// Ошибки обращения к терминалу в неподходящем состоянии.
var (
	ErrNotOpen       = errors.New("payment terminal is not open")
	ErrAlreadyOpen   = errors.New("payment terminal is already open")
	ErrUnknownMethod = errors.New("unknown payment method")
	ErrUnknownField  = errors.New("unknown checkout field")
)

// WrongStepError возвращается, когда операция недоступна на текущем шаге.
type WrongStepError struct {
	Op   string
	Step Step
}

func (e *WrongStepError) Error() string {
	return fmt.Sprintf("%s is not allowed on step %q", e.Op, e.Step)
}

// GatewayError оборачивает отказ платёжного шлюза.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return "payment gateway declined: " + e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
