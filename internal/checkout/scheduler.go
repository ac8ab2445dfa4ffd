package checkout

import (
	"sync"
	"time"
)

// Timer — запланированный одноразовый вызов.
type Timer interface {
	// Stop отменяет вызов. Возвращает false, если вызов уже произошёл или был отменён.
	Stop() bool
}

// Scheduler планирует отложенные вызовы терминала.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler планирует вызовы на реальных часах через time.AfterFunc.
// Колбэки выполняются в отдельной горутине.
type ClockScheduler struct{}

// AfterFunc реализует Scheduler.
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// LockedScheduler выполняет колбэки под мьютексом владельца терминала,
// так что срабатывание таймера не пересекается с обработкой пользовательских команд.
type LockedScheduler struct {
	mu   sync.Locker
	next Scheduler
}

// NewLockedScheduler оборачивает next так, чтобы колбэки выполнялись под mu.
func NewLockedScheduler(mu sync.Locker, next Scheduler) *LockedScheduler {
	if next == nil {
		next = ClockScheduler{}
	}
	return &LockedScheduler{mu: mu, next: next}
}

// AfterFunc реализует Scheduler.
func (s *LockedScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.next.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		f()
	})
}

// ManualScheduler — планировщик с виртуальными часами для тестов. Время двигается
// только вызовом Advance, колбэки выполняются синхронно в вызывающей горутине.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewManualScheduler создаёт планировщик с нулевым виртуальным временем.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc реализует Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Stop реализует Timer.
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

// Advance сдвигает виртуальное время на d и по порядку вызывает все наступившие
// таймеры, включая запланированные из колбэков в пределах окна.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDue(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.at
		next.fired = true
		s.remove(next)
		s.mu.Unlock()

		next.f()
	}
}

// Pending возвращает число таймеров, которые ещё не сработали и не отменены.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Now возвращает текущее виртуальное время.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) nextDue(target time.Duration) *manualTimer {
	var next *manualTimer
	for _, t := range s.timers {
		if t.at > target {
			continue
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

// remove убирает сработавший или отменённый таймер. Вызывается под s.mu.
func (s *ManualScheduler) remove(t *manualTimer) {
	for i, cur := range s.timers {
		if cur == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
