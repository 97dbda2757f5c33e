package dialect

import "c0nst/internal/source"

// Hint is a small piece of evidence suggesting a particular form.
// It is not itself a diagnostic.
type Hint struct {
	Form   Form
	Score  int
	Reason string
	Span   source.Span
}

// Evidence aggregates per-file hints.
type Evidence struct {
	hints []Hint
}

// NewEvidence creates a new Evidence container.
func NewEvidence() *Evidence {
	return &Evidence{
		hints: make([]Hint, 0, 16),
	}
}

// Add appends a hint to the evidence collection.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

// Hints returns the collected hints.
func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}
