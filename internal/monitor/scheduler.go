package monitor

import (
	"fmt"
	"time"
)

// Timer identifies one armed refresh timer. Expiries carry it back to the
// scheduler, which only honours the one it armed last.
type Timer struct {
	ID       uint64
	Interval time.Duration
}

// Scheduler decides when automatic refreshes fire. It does not own a clock:
// callers wait Timer.Interval and hand the timer back to Expire.
type Scheduler struct {
	interval time.Duration
	running  bool
	armed    uint64
	nextID   uint64
}

// NewScheduler creates a stopped scheduler
func NewScheduler(interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	return &Scheduler{interval: interval}, nil
}

// Interval returns the configured refresh interval
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Running reports whether auto-update is armed
func (s *Scheduler) Running() bool {
	return s.running
}

// Start arms a new timer. It returns false if one is already armed.
func (s *Scheduler) Start() (Timer, bool) {
	if s.running {
		return Timer{}, false
	}
	s.nextID++
	s.armed = s.nextID
	s.running = true
	return Timer{ID: s.armed, Interval: s.interval}, true
}

// Stop disarms the current timer and reports whether one was armed
func (s *Scheduler) Stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	s.armed = 0
	return true
}

// StopTimer disarms t only if it is still the live timer
func (s *Scheduler) StopTimer(t Timer) bool {
	if !s.running || t.ID != s.armed {
		return false
	}
	return s.Stop()
}

// SetInterval replaces the interval. Auto-update always stops and must be
// started again explicitly.
func (s *Scheduler) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	s.Stop()
	s.interval = interval
	return nil
}

// Expire handles a timer going off. It returns the re-armed timer and true
// when t is the live timer, false for stale ones.
func (s *Scheduler) Expire(t Timer) (Timer, bool) {
	if !s.running || t.ID != s.armed {
		return Timer{}, false
	}
	return Timer{ID: s.armed, Interval: s.interval}, true
}
