package snap

import (
	"sort"
	"sync"
	"time"
)

// Cancel stops a scheduled task. Calling it more than once, or after the task
// ran, does nothing.
type Cancel func()

// Scheduler defers work to a later turn of the UI loop.
type Scheduler interface {
	// Defer runs fn on the next turn of the loop.
	Defer(fn func()) Cancel
	// After runs fn on the first turn at least d from now.
	After(d time.Duration, fn func()) Cancel
}

type task struct {
	seq      uint64
	due      time.Time
	deferred bool
	fn       func()
	canceled bool
}

// LoopScheduler is a Scheduler drained by calling Run from the owning loop,
// once per tick. Tasks only ever run inside Run.
type LoopScheduler struct {
	mu     sync.Mutex
	now    func() time.Time
	seq    uint64
	tasks  []*task
	closed bool
}

// NewLoopScheduler creates a scheduler that reads the time from now when
// computing deadlines. Nil uses time.Now.
func NewLoopScheduler(now func() time.Time) *LoopScheduler {
	if now == nil {
		now = time.Now
	}
	return &LoopScheduler{now: now}
}

func (s *LoopScheduler) Defer(fn func()) Cancel {
	return s.add(&task{deferred: true, fn: fn})
}

func (s *LoopScheduler) After(d time.Duration, fn func()) Cancel {
	return s.add(&task{due: s.now().Add(d), fn: fn})
}

func (s *LoopScheduler) add(t *task) Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || t.fn == nil {
		return func() {}
	}
	s.seq++
	t.seq = s.seq
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		t.canceled = true
		s.mu.Unlock()
	}
}

// Run executes every task that is due at now. Deferred tasks are always due.
// Tasks scheduled while Run is executing wait for the next call.
// It returns the number of tasks run.
func (s *LoopScheduler) Run(now time.Time) int {
	s.mu.Lock()
	var due, keep []*task
	for _, t := range s.tasks {
		switch {
		case t.canceled:
		case t.deferred || !now.Before(t.due):
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.tasks = keep
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.deferred != b.deferred {
			return a.deferred
		}
		if !a.due.Equal(b.due) {
			return a.due.Before(b.due)
		}
		return a.seq < b.seq
	})

	ran := 0
	for _, t := range due {
		s.mu.Lock()
		skip := t.canceled || s.closed
		t.canceled = true
		s.mu.Unlock()
		if skip {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}

// Pending returns how many tasks are still queued.
func (s *LoopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Close drops every queued task. Later Defer and After calls are ignored.
func (s *LoopScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.tasks = nil
	s.mu.Unlock()
}
