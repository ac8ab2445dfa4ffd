package checkout

import "strings"

const (
	cardNumberDigits = 16
	expiryDigits     = 4
	cvvDigits        = 3
	cardGroupSize    = 4
)

// FormatCardNumber форматирует ввод номера карты: убирает пробелы и прочие нецифровые
// символы, группирует цифры по четыре через пробел. Если цифр больше 16, правка
// отклоняется (ok == false) и вызывающий должен оставить прежнее значение.
func FormatCardNumber(input string) (string, bool) {
	digits := onlyDigits(input)
	if len(digits) > cardNumberDigits {
		return "", false
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%cardGroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// FormatExpiry форматирует срок действия в вид MM/YY. Разделитель ставится,
// как только введены две цифры; больше четырёх цифр ввести нельзя.
func FormatExpiry(input string) (string, bool) {
	digits := onlyDigits(input)
	if len(digits) > expiryDigits {
		return "", false
	}
	if len(digits) >= 2 {
		return digits[:2] + "/" + digits[2:], true
	}
	return digits, true
}

// FormatCVV оставляет в CVV только цифры, не больше трёх.
func FormatCVV(input string) (string, bool) {
	digits := onlyDigits(input)
	if len(digits) > cvvDigits {
		return "", false
	}
	return digits, true
}

// CardDigits возвращает цифры отформатированного номера карты без пробелов.
func CardDigits(cardNumber string) string {
	return onlyDigits(cardNumber)
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func validCardNumber(cardNumber string) bool {
	return len(CardDigits(cardNumber)) == cardNumberDigits
}

// validExpiry проверяет только форму MM/YY, без проверки месяца и года.
func validExpiry(expiry string) bool {
	if len(expiry) != 5 || expiry[2] != '/' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if expiry[i] < '0' || expiry[i] > '9' {
			return false
		}
	}
	return true
}

func validCVV(cvv string) bool {
	if len(cvv) != cvvDigits {
		return false
	}
	return onlyDigits(cvv) == cvv
}
