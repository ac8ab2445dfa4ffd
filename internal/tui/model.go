// Package tui — терминальная витрина на bubbletea: разделы, сетка пакетов,
// FAQ и диалог оплаты поверх той же витрины, что обслуживает HTTP API.
package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/magabrotheeeer/saya-shop/internal/catalog"
	"github.com/magabrotheeeer/saya-shop/internal/checkout"
	"github.com/magabrotheeeer/saya-shop/internal/lib/sl"
	"github.com/magabrotheeeer/saya-shop/internal/notify"
	"github.com/magabrotheeeer/saya-shop/internal/storefront"
)

const (
	localVisitor = "local"
	gridColumns  = 5
	toastTTL     = 4 * time.Second
	spinnerEvery = 120 * time.Millisecond
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type (
	toastExpiredMsg struct{ id int }
	spinnerTickMsg  struct{}
)

type toast struct {
	id int
	notify.Notification
}

// Options настраивает модель.
type Options struct {
	Log *slog.Logger
	// Tick по умолчанию tea.Tick; тесты подменяют его виртуальными часами.
	Tick            TickFunc
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
}

// Model — состояние терминальной витрины.
type Model struct {
	sf      *storefront.Storefront
	feed    *notify.MemoryFeed
	sched   *teaScheduler
	tick    TickFunc
	log     *slog.Logger
	content catalog.Content

	width     int
	pkgCursor int
	faqCursor int
	faqOpen   int
	cardFocus checkout.Field

	toasts    []toast
	nextToast int

	spinner        int
	spinnerRunning bool
}

// New создаёт модель с закрытым диалогом оплаты на разделе пакетов.
func New(opts Options) Model {
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}

	sched := newTeaScheduler(opts.Tick)
	feed := notify.NewMemoryFeed(0)
	sf := storefront.New(localVisitor, storefront.Deps{
		Log:             opts.Log,
		Notifier:        feed,
		Gateway:         checkout.DemoGateway{},
		Scheduler:       sched,
		ProcessingDelay: opts.ProcessingDelay,
		SuccessDelay:    opts.SuccessDelay,
	})

	return Model{
		sf:        sf,
		feed:      feed,
		sched:     sched,
		tick:      opts.Tick,
		log:       opts.Log,
		content:   catalog.StaticContent(),
		width:     120,
		faqOpen:   -1,
		cardFocus: checkout.FieldCardNumber,
	}
}

// Init реализует tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update реализует tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case timerFiredMsg:
		m.sched.fire(msg.id)
		cmd := m.settle()
		return m, cmd
	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil
	case spinnerTickMsg:
		if m.sf.View().Checkout.Step != checkout.StepProcessing {
			m.spinnerRunning = false
			return m, nil
		}
		m.spinner = (m.spinner + 1) % len(spinnerFrames)
		return m, m.tick(spinnerEvery, func(time.Time) tea.Msg { return spinnerTickMsg{} })
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.sf.Close()
			return m, tea.Quit
		}
		if m.sf.View().Checkout.Open {
			return m.updateCheckout(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.sf.View()
	key := msg.String()

	switch key {
	case "q":
		m.sf.Close()
		return m, tea.Quit
	case "tab":
		return m.navigate(shiftSection(view.Section, 1))
	case "shift+tab":
		return m.navigate(shiftSection(view.Section, -1))
	case "1", "2", "3", "4", "5":
		return m.navigate(catalog.Sections()[int(key[0]-'1')])
	}

	switch view.Section {
	case catalog.SectionPackages:
		total := len(catalog.Packages())
		switch key {
		case "left", "h":
			m.pkgCursor = clamp(m.pkgCursor-1, total)
		case "right", "l":
			m.pkgCursor = clamp(m.pkgCursor+1, total)
		case "up", "k":
			m.pkgCursor = clamp(m.pkgCursor-gridColumns, total)
		case "down", "j":
			m.pkgCursor = clamp(m.pkgCursor+gridColumns, total)
		case "enter", " ":
			if _, err := m.sf.Buy(m.pkgCursor); err != nil {
				m.log.Warn("failed to open checkout", sl.Err(err))
			}
			m.cardFocus = checkout.FieldCardNumber
			cmd := m.settle()
			return m, cmd
		}
	case catalog.SectionFAQ:
		total := len(m.content.FAQ)
		switch key {
		case "up", "k":
			m.faqCursor = clamp(m.faqCursor-1, total)
		case "down", "j":
			m.faqCursor = clamp(m.faqCursor+1, total)
		case "enter", " ":
			if m.faqOpen == m.faqCursor {
				m.faqOpen = -1
			} else {
				m.faqOpen = m.faqCursor
			}
		}
	}
	return m, nil
}

func (m Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cv := m.sf.View().Checkout

	if msg.Type == tea.KeyEsc {
		if _, err := m.sf.Cancel(); err != nil {
			m.log.Warn("failed to cancel checkout", sl.Err(err))
		}
		cmd := m.settle()
		return m, cmd
	}

	switch cv.Step {
	case checkout.StepMethod:
		switch msg.Type {
		case tea.KeyEnter:
			m.report(m.sf.Continue(context.Background()))
		case tea.KeyUp:
			m.report(m.sf.SelectMethod(shiftMethod(cv.Method, -1)))
		case tea.KeyDown:
			m.report(m.sf.SelectMethod(shiftMethod(cv.Method, 1)))
		case tea.KeyBackspace:
			m.edit(checkout.FieldEmail, dropLast(cv.Email))
		case tea.KeyRunes, tea.KeySpace:
			m.edit(checkout.FieldEmail, cv.Email+string(msg.Runes))
		}
	case checkout.StepCard:
		switch msg.Type {
		case tea.KeyEnter:
			m.report(m.sf.Submit(context.Background()))
		case tea.KeyCtrlB:
			m.report(m.sf.Back())
		case tea.KeyTab, tea.KeyDown:
			m.cardFocus = shiftCardField(m.cardFocus, 1)
		case tea.KeyShiftTab, tea.KeyUp:
			m.cardFocus = shiftCardField(m.cardFocus, -1)
		case tea.KeyBackspace:
			m.edit(m.cardFocus, dropLast(cardValue(cv, m.cardFocus)))
		case tea.KeyRunes:
			m.edit(m.cardFocus, cardValue(cv, m.cardFocus)+string(msg.Runes))
		}
	}
	cmd := m.settle()
	return m, cmd
}

func (m Model) navigate(section catalog.Section) (tea.Model, tea.Cmd) {
	if _, err := m.sf.Navigate(section); err != nil {
		m.log.Warn("failed to navigate", sl.Err(err))
	}
	return m, nil
}

func (m Model) edit(field checkout.Field, value string) {
	if _, _, err := m.sf.SetField(field, value); err != nil {
		m.log.Warn("failed to edit field", slog.String("field", string(field)), sl.Err(err))
	}
}

// report логирует ошибку; посетитель видит её через уведомление витрины.
func (m Model) report(_ storefront.View, err error) {
	if err != nil {
		m.log.Info("checkout step rejected", sl.Err(err))
	}
}

// settle собирает команды после изменения витрины: новые таймеры,
// тосты из ленты уведомлений и анимацию обработки платежа.
func (m *Model) settle() tea.Cmd {
	cmds := m.sched.flush()

	items, err := m.feed.Drain(context.Background(), localVisitor)
	if err != nil {
		m.log.Error("failed to drain notifications", sl.Err(err))
	}
	for _, n := range items {
		m.nextToast++
		id := m.nextToast
		m.toasts = append(m.toasts, toast{id: id, Notification: n})
		cmds = append(cmds, m.tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} }))
	}

	if !m.spinnerRunning && m.sf.View().Checkout.Step == checkout.StepProcessing {
		m.spinnerRunning = true
		cmds = append(cmds, m.tick(spinnerEvery, func(time.Time) tea.Msg { return spinnerTickMsg{} }))
	}
	return tea.Batch(cmds...)
}

func shiftSection(cur catalog.Section, delta int) catalog.Section {
	sections := catalog.Sections()
	for i, s := range sections {
		if s == cur {
			return sections[(i+delta+len(sections))%len(sections)]
		}
	}
	return catalog.SectionPackages
}

func shiftMethod(cur checkout.Method, delta int) checkout.Method {
	methods := checkout.Methods()
	for i, mt := range methods {
		if mt == cur {
			return methods[(i+delta+len(methods))%len(methods)]
		}
	}
	return checkout.MethodCard
}

var cardFields = []checkout.Field{checkout.FieldCardNumber, checkout.FieldCardExpiry, checkout.FieldCardCVV}

func shiftCardField(cur checkout.Field, delta int) checkout.Field {
	for i, f := range cardFields {
		if f == cur {
			return cardFields[(i+delta+len(cardFields))%len(cardFields)]
		}
	}
	return checkout.FieldCardNumber
}

func cardValue(v checkout.View, f checkout.Field) string {
	switch f {
	case checkout.FieldCardExpiry:
		return v.CardExpiry
	case checkout.FieldCardCVV:
		return v.CardCVV
	default:
		return v.CardNumber
	}
}

// dropLast удаляет последний значимый символ вместе с разделителями
// форматирования, иначе "12/" после удаления снова превратится в "12/".
func dropLast(s string) string {
	s = strings.TrimRight(s, " /")
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return strings.TrimRight(string(r[:len(r)-1]), " /")
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
