// Package metrics содержит Prometheus-метрики витрины.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics хранит все метрики витрины
type Metrics struct {
	CheckoutOpenedTotal     prometheus.Counter
	CheckoutCompletedTotal  *prometheus.CounterVec
	CheckoutCancelledTotal  *prometheus.CounterVec
	ValidationFailuresTotal *prometheus.CounterVec
	GatewayDeclinesTotal    prometheus.Counter
	CoinsRevenueRublesTotal prometheus.Counter
	ActiveVisitors          prometheus.Gauge
	SideEffectFailuresTotal *prometheus.CounterVec
}

// NewMetrics создаёт метрики и регистрирует их в registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		CheckoutOpenedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saya_checkout_opened_total",
			Help: "Total number of opened payment dialogs",
		}),
		CheckoutCompletedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saya_checkout_completed_total",
				Help: "Total number of successful demo payments",
			},
			[]string{"method"},
		),
		CheckoutCancelledTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saya_checkout_cancelled_total",
				Help: "Total number of payment dialogs closed before success",
			},
			[]string{"step"},
		),
		ValidationFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saya_checkout_validation_failures_total",
				Help: "Total number of rejected checkout submissions",
			},
			[]string{"field"},
		),
		GatewayDeclinesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saya_checkout_gateway_declines_total",
			Help: "Total number of payments declined by the gateway",
		}),
		CoinsRevenueRublesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saya_coins_revenue_rubles_total",
			Help: "Sum of demo payment amounts in rubles",
		}),
		ActiveVisitors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "saya_active_visitors",
			Help: "Number of storefronts held in the visitor registry",
		}),
		SideEffectFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "saya_side_effect_failures_total",
				Help: "Failures of notification and event delivery",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(
		m.CheckoutOpenedTotal,
		m.CheckoutCompletedTotal,
		m.CheckoutCancelledTotal,
		m.ValidationFailuresTotal,
		m.GatewayDeclinesTotal,
		m.CoinsRevenueRublesTotal,
		m.ActiveVisitors,
		m.SideEffectFailuresTotal,
	)
	return m
}

// CheckoutOpened отмечает открытие диалога оплаты.
func (m *Metrics) CheckoutOpened() {
	m.CheckoutOpenedTotal.Inc()
}

// CheckoutCompleted отмечает успешную оплату.
func (m *Metrics) CheckoutCompleted(method string, amount int64) {
	m.CheckoutCompletedTotal.WithLabelValues(method).Inc()
	m.CoinsRevenueRublesTotal.Add(float64(amount))
}

// CheckoutCancelled отмечает закрытие диалога до успеха на шаге step.
func (m *Metrics) CheckoutCancelled(step string) {
	m.CheckoutCancelledTotal.WithLabelValues(step).Inc()
}

// ValidationFailed отмечает отклонённую проверку поля.
func (m *Metrics) ValidationFailed(field string) {
	m.ValidationFailuresTotal.WithLabelValues(field).Inc()
}

// GatewayDeclined отмечает отказ платёжного шлюза.
func (m *Metrics) GatewayDeclined() {
	m.GatewayDeclinesTotal.Inc()
}

// VisitorsChanged выставляет число витрин в реестре.
func (m *Metrics) VisitorsChanged(n int) {
	m.ActiveVisitors.Set(float64(n))
}

// SideEffectFailed отмечает сбой доставки уведомления или события.
func (m *Metrics) SideEffectFailed(kind string) {
	m.SideEffectFailuresTotal.WithLabelValues(kind).Inc()
}
