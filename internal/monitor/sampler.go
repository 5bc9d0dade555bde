package monitor

import (
	"context"
	"fmt"
	"math"
	"time"
)

// BytesToMB converts provider readings in bytes to the MB shown on the chart
const BytesToMB = 0.000001

// ValueProvider is the external source of memory readings
type ValueProvider interface {
	// CurrentUsage returns the memory in use
	CurrentUsage(ctx context.Context) (float64, error)
	// MaxCapacity returns the memory ceiling the usage is measured against
	MaxCapacity(ctx context.Context) (float64, error)
}

// Sampler turns one provider reading into one Sample
type Sampler struct {
	Provider ValueProvider
	Scale    float64
	Now      func() time.Time
}

// NewSampler creates a sampler converting bytes to MB
func NewSampler(p ValueProvider) *Sampler {
	return &Sampler{
		Provider: p,
		Scale:    BytesToMB,
		Now:      time.Now,
	}
}

// Sample queries the provider once. Failures are not retried.
func (s *Sampler) Sample(ctx context.Context) (Sample, error) {
	raw, err := s.Provider.CurrentUsage(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: usage: %w", ErrProviderUnavailable, err)
	}
	value, err := s.normalize(raw)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: usage: %w", ErrProviderUnavailable, err)
	}
	return Sample{Value: value, Time: s.Now()}, nil
}

// Capacity queries the provider ceiling with the same scaling as Sample
func (s *Sampler) Capacity(ctx context.Context) (float64, error) {
	raw, err := s.Provider.MaxCapacity(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: capacity: %w", ErrProviderUnavailable, err)
	}
	value, err := s.normalize(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: capacity: %w", ErrProviderUnavailable, err)
	}
	return value, nil
}

func (s *Sampler) normalize(raw float64) (float64, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return 0, fmt.Errorf("bad reading %v", raw)
	}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	return Round2(raw * scale), nil
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
