package tui

import (
	"sort"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
)

// fakeClock копит запланированные сообщения и отдаёт их по advance.
type fakeClock struct {
	now   time.Duration
	queue []scheduledMsg
	seq   int
}

type scheduledMsg struct {
	at  time.Duration
	seq int
	fn  func(time.Time) tea.Msg
}

func (c *fakeClock) Tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.seq++
	c.queue = append(c.queue, scheduledMsg{at: c.now + d, seq: c.seq, fn: fn})
	return nil
}

func newTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	m := New(Options{Tick: clock.Tick})
	t.Cleanup(m.sf.Close)
	return m, clock
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = apply(t, m, key(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = apply(t, m, key(string(r)))
	}
	return m
}

// advance доставляет в модель все сообщения, срок которых наступил.
func advance(t *testing.T, m Model, clock *fakeClock, d time.Duration) Model {
	t.Helper()
	target := clock.now + d
	for {
		sort.SliceStable(clock.queue, func(i, j int) bool {
			if clock.queue[i].at != clock.queue[j].at {
				return clock.queue[i].at < clock.queue[j].at
			}
			return clock.queue[i].seq < clock.queue[j].seq
		})
		if len(clock.queue) == 0 || clock.queue[0].at > target {
			break
		}
		next := clock.queue[0]
		clock.queue = clock.queue[1:]
		clock.now = next.at
		m = apply(t, m, next.fn(time.Time{}))
	}
	clock.now = target
	return m
}

func assertContains(t *testing.T, view, want string) {
	t.Helper()
	if !strings.Contains(view, want) {
		t.Fatalf("view does not contain %q:\n%s", want, view)
	}
}

func assertNotContains(t *testing.T, view, unwanted string) {
	t.Helper()
	if strings.Contains(view, unwanted) {
		t.Fatalf("view unexpectedly contains %q:\n%s", unwanted, view)
	}
}

func TestFlow_CardPurchase(t *testing.T) {
	m, clock := newTestModel(t)
	assertContains(t, m.View(), "Выбери свой пакет")
	assertContains(t, m.View(), "450 ₽")

	m = press(t, m, "enter")
	cv := m.sf.View().Checkout
	if !cv.Open || cv.Amount != 450 {
		t.Fatalf("checkout = %+v, want open with amount 450", cv)
	}
	assertContains(t, m.View(), "500 монет • 450 ₽")

	m = press(t, m, "enter")
	assertContains(t, m.View(), "Укажите email для получения чека")

	m = typeText(t, m, "a@b.com")
	m = press(t, m, "enter")
	if got := m.sf.View().Checkout.Step; got != checkout.StepCard {
		t.Fatalf("step = %q, want card", got)
	}

	m = typeText(t, m, "4111111111111111")
	m = press(t, m, "tab")
	m = typeText(t, m, "1225")
	m = press(t, m, "tab")
	m = typeText(t, m, "123")

	view := m.View()
	assertContains(t, view, "4111 1111 1111 1111")
	assertContains(t, view, "12/25")
	assertContains(t, view, "•••")

	m = press(t, m, "enter")
	assertContains(t, m.View(), "Обработка платежа...")

	m = advance(t, m, clock, checkout.DefaultProcessingDelay)
	assertContains(t, m.View(), "Оплата успешна!")

	m = advance(t, m, clock, checkout.DefaultSuccessDelay)
	if m.sf.View().Checkout.Open {
		t.Fatal("checkout should close after success delay")
	}
	assertContains(t, m.View(), "500 монет зачислены на ваш счёт")

	m = advance(t, m, clock, toastTTL)
	assertNotContains(t, m.View(), "зачислены")
}

func TestFlow_FastPaymentSkipsCard(t *testing.T) {
	m, clock := newTestModel(t)

	m = press(t, m, "right", "right", "enter")
	if got := m.sf.View().Checkout.Amount; got != 1820 {
		t.Fatalf("amount = %d, want 1820", got)
	}

	m = typeText(t, m, "a@b.com")
	m = press(t, m, "down", "enter")
	if got := m.sf.View().Checkout.Step; got != checkout.StepProcessing {
		t.Fatalf("step = %q, want processing", got)
	}

	m = advance(t, m, clock, checkout.DefaultProcessingDelay+checkout.DefaultSuccessDelay)
	assertContains(t, m.View(), "2,000 монет зачислены на ваш счёт")
}

func TestFlow_EscDuringProcessingCancelsPayment(t *testing.T) {
	m, clock := newTestModel(t)

	m = press(t, m, "enter")
	m = typeText(t, m, "a@b.com")
	m = press(t, m, "down", "enter", "esc")
	if m.sf.View().Checkout.Open {
		t.Fatal("esc should close checkout")
	}

	m = advance(t, m, clock, 10*time.Second)
	assertNotContains(t, m.View(), "зачислены")
	if len(m.sched.pending) != 0 {
		t.Fatalf("pending timers = %d, want 0", len(m.sched.pending))
	}
}

func TestFlow_BackKeepsCardInput(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "enter")
	m = typeText(t, m, "a@b.com")
	m = press(t, m, "enter")
	m = typeText(t, m, "4111")
	m = press(t, m, "ctrl+b")
	if got := m.sf.View().Checkout.Step; got != checkout.StepMethod {
		t.Fatalf("step = %q, want method", got)
	}

	m = press(t, m, "enter")
	if got := m.sf.View().Checkout.CardNumber; got != "4111" {
		t.Fatalf("card number = %q, want 4111", got)
	}
}

func TestFlow_BackspaceRemovesFormattedDigits(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "enter")
	m = typeText(t, m, "a@b.com")
	m = press(t, m, "backspace")
	if got := m.sf.View().Checkout.Email; got != "a@b.co" {
		t.Fatalf("email = %q, want a@b.co", got)
	}
	m = typeText(t, m, "m")
	m = press(t, m, "enter", "tab")
	m = typeText(t, m, "12")
	if got := m.sf.View().Checkout.CardExpiry; got != "12/" {
		t.Fatalf("expiry = %q, want 12/", got)
	}
	m = press(t, m, "backspace")
	if got := m.sf.View().Checkout.CardExpiry; got != "1" {
		t.Fatalf("expiry = %q, want 1", got)
	}
}

func TestBrowse_SectionsAndFAQ(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "3")
	if got := m.sf.View().Section; got != catalog.SectionFAQ {
		t.Fatalf("section = %q, want faq", got)
	}
	faq := catalog.StaticContent().FAQ
	assertNotContains(t, m.View(), faq[0].Answer)

	m = press(t, m, "enter")
	assertContains(t, m.View(), "Безопасна ли оплата?")
	if m.faqOpen != 0 {
		t.Fatalf("faqOpen = %d, want 0", m.faqOpen)
	}

	m = press(t, m, "down", "enter")
	if m.faqOpen != 1 {
		t.Fatalf("faqOpen = %d, want 1", m.faqOpen)
	}
	m = press(t, m, "enter")
	if m.faqOpen != -1 {
		t.Fatalf("faqOpen = %d, want -1", m.faqOpen)
	}

	m = press(t, m, "tab", "tab")
	if got := m.sf.View().Section; got != catalog.SectionContacts {
		t.Fatalf("section = %q, want contacts", got)
	}
	assertContains(t, m.View(), "@SayaGAMeOFFICIAL")

	m = press(t, m, "shift+tab", "tab", "tab")
	if got := m.sf.View().Section; got != catalog.SectionPackages {
		t.Fatalf("section = %q, want packages", got)
	}
}

func TestToastsExpireIndependently(t *testing.T) {
	m, clock := newTestModel(t)

	m = press(t, m, "enter", "enter")
	m = advance(t, m, clock, time.Second)
	m = press(t, m, "enter")
	if len(m.toasts) != 2 {
		t.Fatalf("toasts = %d, want 2", len(m.toasts))
	}

	m = advance(t, m, clock, toastTTL-time.Second)
	if len(m.toasts) != 1 {
		t.Fatalf("toasts = %d, want 1", len(m.toasts))
	}
	m = advance(t, m, clock, time.Second)
	if len(m.toasts) != 0 {
		t.Fatalf("toasts = %d, want 0", len(m.toasts))
	}
}

func TestDropLast(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"12/":     "1",
		"12/2":    "12",
		"4111 1":  "4111",
		"4111 ":   "411",
		"a@b.com": "a@b.co",
	}
	for in, want := range tests {
		if got := dropLast(in); got != want {
			t.Errorf("dropLast(%q) = %q, want %q", in, got, want)
		}
	}
}
