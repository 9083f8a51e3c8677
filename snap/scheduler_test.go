package snap

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func TestDeferRunsOnNextRun(t *testing.T) {
	clk := &fakeClock{now: epoch}
	s := NewLoopScheduler(clk.Now)

	var order []string
	s.Defer(func() {
		order = append(order, "first")
		s.Defer(func() { order = append(order, "nested") })
	})
	s.Defer(func() { order = append(order, "second") })

	if n := s.Run(clk.now); n != 2 {
		t.Fatalf("ran %d tasks, want 2", n)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order %v", order)
	}
	if s.Pending() != 1 {
		t.Fatalf("nested task should wait for the next run")
	}
	s.Run(clk.now)
	if len(order) != 3 || order[2] != "nested" {
		t.Fatalf("order %v", order)
	}
}

func TestAfterWaitsForDeadline(t *testing.T) {
	clk := &fakeClock{now: epoch}
	s := NewLoopScheduler(clk.Now)

	var fired []int
	s.After(50*time.Millisecond, func() { fired = append(fired, 50) })
	s.After(20*time.Millisecond, func() { fired = append(fired, 20) })

	s.Run(clk.advance(10 * time.Millisecond))
	if len(fired) != 0 {
		t.Fatalf("fired early: %v", fired)
	}
	s.Run(clk.advance(40 * time.Millisecond))
	if len(fired) != 2 || fired[0] != 20 || fired[1] != 50 {
		t.Fatalf("fired %v, want [20 50]", fired)
	}
	if s.Pending() != 0 {
		t.Fatalf("pending %d after all ran", s.Pending())
	}
}

func TestCancel(t *testing.T) {
	clk := &fakeClock{now: epoch}
	s := NewLoopScheduler(clk.Now)

	ran := false
	cancel := s.After(time.Millisecond, func() { ran = true })
	cancel()
	cancel()
	s.Run(clk.advance(time.Second))
	if ran {
		t.Fatalf("canceled task ran")
	}
}

func TestCancelFromEarlierTaskInSameRun(t *testing.T) {
	s := NewLoopScheduler(nil)
	ran := false
	var cancel Cancel
	s.Defer(func() { cancel() })
	cancel = s.Defer(func() { ran = true })
	s.Run(time.Now())
	if ran {
		t.Fatalf("task canceled by an earlier task still ran")
	}
}

func TestCloseDropsTasks(t *testing.T) {
	clk := &fakeClock{now: epoch}
	s := NewLoopScheduler(clk.Now)

	ran := 0
	s.Defer(func() { ran++ })
	s.After(time.Millisecond, func() { ran++ })
	s.Close()
	s.Defer(func() { ran++ })()
	if n := s.Run(clk.advance(time.Second)); n != 0 || ran != 0 {
		t.Fatalf("ran %d tasks after close", ran)
	}
}
