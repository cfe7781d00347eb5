package trace

import (
	"fmt"
	"iter"
)

// Builder records events in emission order for a single engine call.
//
// The builder is append-only: events can be added but never changed or
// removed. Build seals it; later Emit calls are rejected so the returned
// Trace can never observe a mutation.
type Builder[E any] struct {
	events []E
	onEmit EmitFunc[E]
	sealed bool
}

// NewBuilder returns an empty Builder with room for capHint events.
// A negative capHint is treated as zero.
func NewBuilder[E any](capHint int) *Builder[E] {
	if capHint < 0 {
		capHint = 0
	}

	return &Builder[E]{events: make([]E, 0, capHint)}
}

// OnEmit registers fn to be called synchronously after each successful Emit.
// A nil fn clears the hook.
func (b *Builder[E]) OnEmit(fn EmitFunc[E]) *Builder[E] {
	b.onEmit = fn

	return b
}

// Emit appends e and reports whether it was recorded.
// It returns false once the builder has been sealed by Build.
func (b *Builder[E]) Emit(e E) bool {
	if b.sealed {
		return false
	}
	b.events = append(b.events, e)
	if b.onEmit != nil {
		b.onEmit(len(b.events)-1, e)
	}

	return true
}

// Len returns the number of events recorded so far.
func (b *Builder[E]) Len() int { return len(b.events) }

// Build seals the builder and returns the recorded sequence.
// Calling Build again returns the same sequence.
func (b *Builder[E]) Build() Trace[E] {
	b.sealed = true

	return Trace[E]{events: b.events}
}

// Trace is a finite, immutable, ordered sequence of events.
// The zero value is an empty trace.
type Trace[E any] struct {
	events []E
}

// Of builds a Trace from a copy of events.
func Of[E any](events ...E) Trace[E] {
	cp := make([]E, len(events))
	copy(cp, events)

	return Trace[E]{events: cp}
}

// Len returns the number of events.
func (t Trace[E]) Len() int { return len(t.events) }

// At returns event k, or ErrStepOutOfRange.
func (t Trace[E]) At(k int) (E, error) {
	if k < 0 || k >= len(t.events) {
		var zero E

		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, k, len(t.events))
	}

	return t.events[k], nil
}

// Events returns a copy of all events in order.
func (t Trace[E]) Events() []E {
	cp := make([]E, len(t.events))
	copy(cp, t.events)

	return cp
}

// All iterates over (step, event) pairs in emission order.
func (t Trace[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range t.events {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Index returns the first step whose event satisfies pred, or -1.
func (t Trace[E]) Index(pred func(E) bool) int {
	for i, e := range t.events {
		if pred(e) {
			return i
		}
	}

	return -1
}

// Count returns how many events satisfy pred.
func (t Trace[E]) Count(pred func(E) bool) int {
	n := 0
	for _, e := range t.events {
		if pred(e) {
			n++
		}
	}

	return n
}

// Last returns the final event; ok is false for an empty trace.
func (t Trace[E]) Last() (e E, ok bool) {
	if len(t.events) == 0 {
		return e, false
	}

	return t.events[len(t.events)-1], true
}
