// Package checkout реализует платёжный терминал витрины: пошаговую машину состояний
// диалога оплаты (выбор способа → данные карты → обработка → успех), форматирование
// полей карты при вводе и проверку данных перед оплатой.
//
// Терминал не обращается к сети и ничего не сохраняет: обработка платежа имитируется
// двумя таймерами, которые планируются через Scheduler.
package checkout

import "fmt"

// Step — шаг диалога оплаты.
type Step string

const (
	// StepMethod — ввод email и выбор способа оплаты.
	StepMethod Step = "method"
	// StepCard — ввод данных банковской карты.
	StepCard Step = "card"
	// StepProcessing — имитация обработки платежа.
	StepProcessing Step = "processing"
	// StepSuccess — платёж прошёл, диалог скоро закроется сам.
	StepSuccess Step = "success"
)

// Title возвращает заголовок диалога для шага.
func (s Step) Title() string {
	switch s {
	case StepMethod:
		return "Оплата через Robokassa"
	case StepCard:
		return "Данные карты"
	case StepProcessing:
		return "Обработка платежа..."
	case StepSuccess:
		return "Оплата успешна! 🎉"
	default:
		return ""
	}
}

// Method — способ оплаты.
type Method string

const (
	// MethodCard — банковская карта, требует шага ввода данных карты.
	MethodCard Method = "card"
	// MethodFastPayment — система быстрых платежей (СБП).
	MethodFastPayment Method = "sbp"
	// MethodEWallet — электронный кошелёк ЮMoney.
	MethodEWallet Method = "yandex"
)

// Methods возвращает способы оплаты в порядке отображения.
func Methods() []Method {
	return []Method{MethodCard, MethodFastPayment, MethodEWallet}
}

// Label возвращает подпись способа оплаты.
func (m Method) Label() string {
	switch m {
	case MethodCard:
		return "Банковская карта"
	case MethodFastPayment:
		return "СБП"
	case MethodEWallet:
		return "ЮMoney"
	default:
		return string(m)
	}
}

// ParseMethod разбирает строковое значение способа оплаты.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}
