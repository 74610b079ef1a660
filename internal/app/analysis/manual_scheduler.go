package analysis

import (
	"sync"
	"time"
)

// ManualScheduler планировщик для тестов: задачи выполняются только по Advance.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*manualTask
}

type manualTask struct {
	s       *ManualScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) AfterFunc(d time.Duration, f func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTask{s: m, at: m.now + d, f: f}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance сдвигает время и выполняет созревшие задачи вне блокировки
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due []*manualTask
	rest := m.tasks[:0]
	for _, t := range m.tasks {
		if t.stopped {
			continue
		}
		if t.at <= m.now {
			t.fired = true
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	m.tasks = rest
	m.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Pending число задач, которые еще не выполнены и не остановлены
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *manualTask) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
