package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/magabrotheeeer/saya-shop/internal/checkout"
)

// TickFunc планирует сообщение через d, см. tea.Tick.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// timerFiredMsg доставляет срабатывание таймера терминала в цикл Update.
type timerFiredMsg struct{ id int }

// teaScheduler реализует checkout.Scheduler поверх команд bubbletea: колбэк
// выполняется внутри Update, когда приходит timerFiredMsg.
// Используется только из горутины Update, поэтому без блокировок.
type teaScheduler struct {
	tick    TickFunc
	nextID  int
	pending map[int]func()
	cmds    []tea.Cmd
}

func newTeaScheduler(tick TickFunc) *teaScheduler {
	return &teaScheduler{
		tick:    tick,
		pending: make(map[int]func()),
	}
}

// AfterFunc реализует checkout.Scheduler.
func (s *teaScheduler) AfterFunc(d time.Duration, f func()) checkout.Timer {
	s.nextID++
	id := s.nextID
	s.pending[id] = f
	s.cmds = append(s.cmds, s.tick(d, func(time.Time) tea.Msg { return timerFiredMsg{id: id} }))
	return teaTimer{s: s, id: id}
}

// fire выполняет колбэк, если таймер не был остановлен.
func (s *teaScheduler) fire(id int) {
	f, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	f()
}

// flush забирает команды таймеров, запланированных с прошлого вызова.
func (s *teaScheduler) flush() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}

type teaTimer struct {
	s  *teaScheduler
	id int
}

func (t teaTimer) Stop() bool {
	_, ok := t.s.pending[t.id]
	delete(t.s.pending, t.id)
	return ok
}
