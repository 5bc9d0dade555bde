package monitor

import (
	"fmt"
	"time"
)

// PlaceholderLabel is shown for samples that were never recorded
const PlaceholderLabel = "---"

// TimestampLayout is how sample times are labelled in tooltips
const TimestampLayout = "01/02/06 - 15:04:05"

// Sample is one memory reading in MB
type Sample struct {
	Value float64
	Time  time.Time
}

// IsPlaceholder reports whether the sample only pads the window
func (s Sample) IsPlaceholder() bool {
	return s.Time.IsZero()
}

// Label returns the sample timestamp formatted for display
func (s Sample) Label() string {
	if s.IsPlaceholder() {
		return PlaceholderLabel
	}
	return s.Time.Format(TimestampLayout)
}

// Buffer is a sliding window holding capacity+1 samples, oldest first.
// The extra slot keeps the newest reading alongside a full window of history.
type Buffer struct {
	samples  []Sample
	capacity int
}

// NewBuffer creates a buffer prefilled with placeholders so a chart never starts empty
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Buffer{
		samples:  make([]Sample, capacity+1),
		capacity: capacity,
	}, nil
}

// Capacity returns the configured window size
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Len returns the number of buffered samples, always Capacity()+1
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Append adds a sample at the back and evicts the oldest ones that no longer fit
func (b *Buffer) Append(s Sample) {
	b.samples = append(b.samples, s)
	for len(b.samples) > b.capacity+1 {
		b.samples = b.samples[1:]
	}
}

// Resize changes the window size. Shrinking drops the oldest samples, growing
// pads the front with placeholders so recent history stays at the back.
func (b *Buffer) Resize(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	want := capacity + 1
	for len(b.samples) > want {
		b.samples = b.samples[1:]
	}
	if missing := want - len(b.samples); missing > 0 {
		padded := make([]Sample, missing, want)
		b.samples = append(padded, b.samples...)
	}
	b.capacity = capacity
	return nil
}

// At returns the sample at index
func (b *Buffer) At(index int) (Sample, error) {
	if index < 0 || index >= len(b.samples) {
		return Sample{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(b.samples))
	}
	return b.samples[index], nil
}

// Values returns the sample values in chronological order
func (b *Buffer) Values() []float64 {
	values := make([]float64, len(b.samples))
	for i, s := range b.samples {
		values[i] = s.Value
	}
	return values
}

// Labels returns the sample timestamps in chronological order
func (b *Buffer) Labels() []string {
	labels := make([]string, len(b.samples))
	for i, s := range b.samples {
		labels[i] = s.Label()
	}
	return labels
}

// Highest returns the largest buffered value, 0 for an all-placeholder window
func (b *Buffer) Highest() float64 {
	highest := 0.0
	for _, s := range b.samples {
		if s.Value > highest {
			highest = s.Value
		}
	}
	return highest
}
