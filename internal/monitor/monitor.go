package monitor

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Monitor is the state of one memory panel: its sample window, refresh
// schedule and axis settings. Every mutation holds the same lock so a tick
// never observes a half-applied resize or interval change.
type Monitor struct {
	mu        sync.Mutex
	buffer    *Buffer
	sampler   *Sampler
	scheduler *Scheduler
	policy    AxisPolicy
	capacity  float64
	ticks     int
	failures  int
	lastErr   error
}

// Snapshot is a consistent copy of the panel state for rendering
type Snapshot struct {
	Points    []Point
	Labels    []string
	Axis      AxisRange
	Policy    AxisPolicy
	MaxSample int
	Capacity  float64
	Latest    Sample
	Running   bool
	Interval  time.Duration
	Ticks     int
	Failures  int
	LastErr   error
}

// New creates a stopped monitor with a placeholder-filled window
func New(p ValueProvider, maxSample int, interval time.Duration, policy AxisPolicy) (*Monitor, error) {
	buffer, err := NewBuffer(maxSample)
	if err != nil {
		return nil, err
	}
	scheduler, err := NewScheduler(interval)
	if err != nil {
		return nil, err
	}
	return &Monitor{
		buffer:    buffer,
		sampler:   NewSampler(p),
		scheduler: scheduler,
		policy:    policy,
	}, nil
}

// Sampler exposes the sampler so callers can adjust scaling or the clock
func (m *Monitor) Sampler() *Sampler {
	return m.sampler
}

// Tick takes one sample and appends it. On provider failure the window is
// left as it was; the schedule is unaffected either way.
func (m *Monitor) Tick(ctx context.Context) (Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.sampler.Sample(ctx)
	if err != nil {
		m.failures++
		m.lastErr = err
		log.Printf("Tick skipped: %v", err)
		return Sample{}, err
	}
	m.buffer.Append(s)
	m.ticks++
	m.lastErr = nil

	capacity, err := m.sampler.Capacity(ctx)
	if err != nil {
		log.Printf("Keeping previous capacity %.2fMB: %v", m.capacity, err)
	} else {
		m.capacity = capacity
	}
	return s, nil
}

// RefreshCapacity queries the provider ceiling without sampling usage
func (m *Monitor) RefreshCapacity(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	capacity, err := m.sampler.Capacity(ctx)
	if err != nil {
		return err
	}
	m.capacity = capacity
	return nil
}

// Resize changes the number of samples kept
func (m *Monitor) Resize(maxSample int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buffer.Resize(maxSample)
}

// MaxSample returns the current window size
func (m *Monitor) MaxSample() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buffer.Capacity()
}

// Start arms auto-update
func (m *Monitor) Start() (Timer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduler.Start()
}

// Stop disarms auto-update
func (m *Monitor) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduler.Stop()
}

// SetInterval changes the auto-update interval, stopping auto-update
func (m *Monitor) SetInterval(interval time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduler.SetInterval(interval)
}

// Expire reports whether t is the live timer and returns it re-armed
func (m *Monitor) Expire(t Timer) (Timer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduler.Expire(t)
}

// Running reports whether auto-update is armed
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduler.Running()
}

// Interval returns the auto-update interval
func (m *Monitor) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduler.Interval()
}

// Policy returns the active axis policy
func (m *Monitor) Policy() AxisPolicy {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.policy
}

// SetPolicy selects the axis policy, deselecting the other
func (m *Monitor) SetPolicy(p AxisPolicy) error {
	if p != HighestObserved && p != ExternalCapacity {
		return ErrInvalidArgument
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policy = p
	return nil
}

// TogglePolicy switches to the other axis policy and returns it
func (m *Monitor) TogglePolicy() AxisPolicy {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policy = m.policy.Toggle()
	return m.policy
}

// Tooltip returns the hover text for the sample at index
func (m *Monitor) Tooltip(index int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Tooltip(m.buffer, index, m.capacity)
}

// Snapshot copies everything a renderer needs
func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	latest, _ := m.buffer.At(m.buffer.Len() - 1)
	return Snapshot{
		Points:    Project(m.buffer),
		Labels:    m.buffer.Labels(),
		Axis:      AxisBounds(m.policy, m.buffer, m.capacity),
		Policy:    m.policy,
		MaxSample: m.buffer.Capacity(),
		Capacity:  m.capacity,
		Latest:    latest,
		Running:   m.scheduler.Running(),
		Interval:  m.scheduler.Interval(),
		Ticks:     m.ticks,
		Failures:  m.failures,
		LastErr:   m.lastErr,
	}
}

// Run drives auto-update with real timers until ctx is done or the
// scheduler is stopped. report is called after every tick.
func (m *Monitor) Run(ctx context.Context, report func(Sample, error)) error {
	t, ok := m.Start()
	if !ok {
		return errors.New("auto-update already running")
	}
	// a restart by someone else arms a new timer that is not ours to stop
	defer func() {
		m.mu.Lock()
		m.scheduler.StopTimer(t)
		m.mu.Unlock()
	}()

	timer := time.NewTimer(t.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			next, live := m.Expire(t)
			if !live {
				return nil
			}
			s, err := m.Tick(ctx)
			if report != nil {
				report(s, err)
			}
			t = next
			timer.Reset(t.Interval)
		}
	}
}
