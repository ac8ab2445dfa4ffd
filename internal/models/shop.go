// Package models содержит структуры запросов и ответов HTTP API витрины.
package models

import (
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
)

// Visitor — выданный токен посетителя.
type Visitor struct {
	VisitorID string `json:"visitor_id"`
	Token     string `json:"token"`
}

// NavigateRequest переключает активный раздел витрины.
type NavigateRequest struct {
	Section string `json:"section" validate:"required,oneof=packages about faq support contacts"`
}

// OpenCheckoutRequest открывает оплату пакета по его индексу в каталоге.
// Указатель отличает отсутствующее поле от пакета с индексом 0.
type OpenCheckoutRequest struct {
	Package *int `json:"package" validate:"required,min=0"`
}

// FieldRequest — ввод в поле формы оплаты. Пустое значение очищает поле.
type FieldRequest struct {
	Field string `json:"field" validate:"required,oneof=email card_number card_expiry card_cvv"`
	Value string `json:"value"`
}

// MethodRequest выбирает способ оплаты.
type MethodRequest struct {
	Method string `json:"method" validate:"required,oneof=card sbp yandex"`
}

// FieldResult — результат ввода. Accepted == false, если правка отклонена форматированием.
type FieldResult struct {
	Accepted bool          `json:"accepted"`
	Checkout checkout.View `json:"checkout"`
}
