package expressions

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

// ErrNoExample is returned when a quick example is requested for an entry
// that has none
var ErrNoExample = errors.New("entry has no quick example")

const (
	MathematicalFunctions = "Mathematical Functions"
	Waves                 = "Waves"
	Conditions            = "Conditions"
	GeneralCommands       = "General Commands"
)

// Entry is one expression in the library
type Entry struct {
	Category    string
	Expression  string
	Description string
	Example     string
}

// HasExample reports whether the entry can send a quick example
func (e Entry) HasExample() bool {
	return e.Example != ""
}

// Categories returns the category names in display order
func Categories() []string {
	return []string{MathematicalFunctions, Waves, Conditions, GeneralCommands}
}

// Catalog returns every entry grouped by category in display order and
// sorted by expression within a category
func Catalog() []Entry {
	order := make(map[string]int)
	for i, c := range Categories() {
		order[c] = i
	}
	entries := make([]Entry, len(library))
	copy(entries, library)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return order[entries[i].Category] < order[entries[j].Category]
		}
		return entries[i].Expression < entries[j].Expression
	})
	return entries
}

// ByCategory returns the catalog entries of one category
func ByCategory(category string) []Entry {
	var entries []Entry
	for _, e := range Catalog() {
		if e.Category == category {
			entries = append(entries, e)
		}
	}
	return entries
}

// Target receives a generated expression
type Target interface {
	SetExpression(text string) error
}

// Apply sends the entry's expression, or its quick example when
// useExample is set, to target
func Apply(target Target, e Entry, useExample bool) (string, error) {
	text := e.Expression
	if useExample {
		if !e.HasExample() {
			return "", fmt.Errorf("%q: %w", e.Expression, ErrNoExample)
		}
		text = e.Example
	}
	if err := target.SetExpression(text); err != nil {
		return "", fmt.Errorf("failed to set expression: %w", err)
	}
	return text, nil
}

// WriterTarget writes "<knob> <expression>" lines to W
type WriterTarget struct {
	mu   sync.Mutex
	W    io.Writer
	Knob string
}

func NewWriterTarget(w io.Writer, knob string) *WriterTarget {
	return &WriterTarget{W: w, Knob: knob}
}

func (t *WriterTarget) SetExpression(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintf(t.W, "%s %s\n", t.Knob, text)
	return err
}
