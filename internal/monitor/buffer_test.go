package monitor

import (
	"errors"
	"testing"
	"time"
)

func sampleAt(v float64, sec int) Sample {
	return Sample{Value: v, Time: time.Date(2020, 11, 27, 10, 0, sec, 0, time.UTC)}
}

func TestNewBufferPrefilled(t *testing.T) {
	b, err := NewBuffer(20)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if b.Len() != 21 {
		t.Fatalf("Len() = %d, want 21", b.Len())
	}
	for i, label := range b.Labels() {
		if label != PlaceholderLabel {
			t.Errorf("label %d = %q, want %q", i, label, PlaceholderLabel)
		}
	}
	if b.Highest() != 0 {
		t.Errorf("Highest() = %v, want 0", b.Highest())
	}
}

func TestNewBufferInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -50} {
		if _, err := NewBuffer(c); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewBuffer(%d) error = %v, want ErrInvalidCapacity", c, err)
		}
	}
}

func TestAppendNeverExceedsCapacity(t *testing.T) {
	b, _ := NewBuffer(5)
	for i := 0; i < 1000; i++ {
		b.Append(sampleAt(float64(i), i%60))
		if b.Len() != 6 {
			t.Fatalf("after %d appends Len() = %d, want 6", i+1, b.Len())
		}
	}
	values := b.Values()
	want := []float64{994, 995, 996, 997, 998, 999}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestResizeKeepsLengthInvariant(t *testing.T) {
	b, _ := NewBuffer(20)
	for _, c := range []int{1, 50, 2, 2, 33, 20, 7} {
		if err := b.Resize(c); err != nil {
			t.Fatalf("Resize(%d): %v", c, err)
		}
		if b.Len() != c+1 {
			t.Errorf("after Resize(%d) Len() = %d, want %d", c, b.Len(), c+1)
		}
		if b.Capacity() != c {
			t.Errorf("after Resize(%d) Capacity() = %d", c, b.Capacity())
		}
		b.Append(sampleAt(1, 0))
		if b.Len() != c+1 {
			t.Errorf("append after Resize(%d) Len() = %d", c, b.Len())
		}
	}
}

func TestResizeInvalidLeavesBufferUnchanged(t *testing.T) {
	b, _ := NewBuffer(3)
	b.Append(sampleAt(7, 1))
	before := b.Values()
	if err := b.Resize(0); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("Resize(0) error = %v, want ErrInvalidCapacity", err)
	}
	after := b.Values()
	if len(after) != len(before) || b.Capacity() != 3 {
		t.Fatalf("buffer changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("value %d changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestResizeShrinkThenGrowKeepsRecentHistory(t *testing.T) {
	b, _ := NewBuffer(20)
	for i := 0; i < 21; i++ {
		b.Append(sampleAt(float64(100+i), i))
	}
	before := b.Values()
	recent := before[len(before)-6:]

	if err := b.Resize(5); err != nil {
		t.Fatal(err)
	}
	if err := b.Resize(20); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 21 {
		t.Fatalf("Len() = %d, want 21", b.Len())
	}
	got := b.Values()[15:]
	for i := range recent {
		if got[i] != recent[i] {
			t.Errorf("recent[%d] = %v, want %v", i, got[i], recent[i])
		}
	}
	// regrown slots are older placeholders
	for i := 0; i < 15; i++ {
		s, _ := b.At(i)
		if !s.IsPlaceholder() {
			t.Errorf("slot %d = %+v, want placeholder", i, s)
		}
	}
}

func TestAtBounds(t *testing.T) {
	b, _ := NewBuffer(2)
	b.Append(sampleAt(42, 5))

	s, err := b.At(2)
	if err != nil || s.Value != 42 {
		t.Fatalf("At(2) = %+v, %v", s, err)
	}
	for _, i := range []int{-1, 3, 100} {
		if _, err := b.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
}

func TestHighest(t *testing.T) {
	b, _ := NewBuffer(4)
	for _, v := range []float64{12.5, 980.25, 3, 400} {
		b.Append(sampleAt(v, 0))
	}
	if got := b.Highest(); got != 980.25 {
		t.Errorf("Highest() = %v, want 980.25", got)
	}
}

func TestSampleLabel(t *testing.T) {
	if got := (Sample{}).Label(); got != "---" {
		t.Errorf("placeholder label = %q", got)
	}
	s := Sample{Value: 1, Time: time.Date(2020, 11, 27, 14, 5, 9, 0, time.UTC)}
	if got := s.Label(); got != "11/27/20 - 14:05:09" {
		t.Errorf("label = %q", got)
	}
}
