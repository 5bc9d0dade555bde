package monitor

import (
	"fmt"
	"math"
	"strings"
)

// Point is one chart position, shared by the line and the markers
type Point struct {
	Index int
	Value float64
}

// AxisRange is the vertical extent of the chart
type AxisRange struct {
	Min float64
	Max float64
}

// AxisPolicy selects how the vertical upper bound is derived.
// Being a single value, exactly one policy is active at a time.
type AxisPolicy int

const (
	// HighestObserved scales to the largest buffered value plus headroom
	HighestObserved AxisPolicy = iota
	// ExternalCapacity scales to the provider's memory ceiling
	ExternalCapacity
)

// axisHeadroom is added above the highest observed value, in MB
const axisHeadroom = 50

func (p AxisPolicy) String() string {
	switch p {
	case HighestObserved:
		return "highest"
	case ExternalCapacity:
		return "capacity"
	default:
		return fmt.Sprintf("AxisPolicy(%d)", int(p))
	}
}

// Description is the label used in the properties view
func (p AxisPolicy) Description() string {
	switch p {
	case HighestObserved:
		return "Current highest memory value"
	case ExternalCapacity:
		return "Total RAM allocated"
	default:
		return p.String()
	}
}

// Toggle returns the other policy
func (p AxisPolicy) Toggle() AxisPolicy {
	if p == HighestObserved {
		return ExternalCapacity
	}
	return HighestObserved
}

// ParseAxisPolicy parses the config names "highest" and "capacity"
func ParseAxisPolicy(s string) (AxisPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "highest":
		return HighestObserved, nil
	case "capacity":
		return ExternalCapacity, nil
	default:
		return HighestObserved, fmt.Errorf("%w: axis policy %q", ErrInvalidArgument, s)
	}
}

// Project maps the buffer to chart points
func Project(b *Buffer) []Point {
	points := make([]Point, b.Len())
	for i, v := range b.Values() {
		points[i] = Point{Index: i, Value: v}
	}
	return points
}

// Tooltip describes the sample at index, including its share of externalMax
func Tooltip(b *Buffer, index int, externalMax float64) (string, error) {
	s, err := b.At(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\nAt sample: %d\nMemory used: %.2fMB\nTotal RAM usage: %.2f%%",
		s.Label(), index, s.Value, PercentOf(s.Value, externalMax)), nil
}

// PercentOf returns value as a percentage of total, 0 when total is unknown
func PercentOf(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(value / total * 100)
}

// AxisBounds computes the vertical range for the given policy
func AxisBounds(policy AxisPolicy, b *Buffer, externalMax float64) AxisRange {
	if policy == ExternalCapacity {
		return AxisRange{Min: 0, Max: externalMax}
	}
	return AxisRange{Min: 0, Max: math.Floor(b.Highest()/10)*10 + axisHeadroom}
}

// TickSpacing picks how many major ticks to draw across sampleCount samples
// so the axis has neither too few nor too many gridlines
func TickSpacing(sampleCount int) (int, error) {
	if sampleCount <= 0 {
		return 0, fmt.Errorf("%w: sample count %d", ErrInvalidArgument, sampleCount)
	}
	divisors := divisorsOf(sampleCount)
	if len(divisors) < 2 {
		return 1, nil
	}
	// second-largest divisor, i.e. the largest proper one: 24 -> 12, 20 -> 10, 7 -> 1
	return divisors[len(divisors)-2], nil
}

func divisorsOf(n int) []int {
	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if i != n/i {
			high = append(high, n/i)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}
