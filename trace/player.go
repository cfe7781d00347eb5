package trace

// Player is a playback cursor over a Trace.
//
// It mirrors the controls of a step-by-step visualiser: advance, go back,
// rewind, seek to an arbitrary step, and jump straight to the final answer.
// A Player over an empty trace has no current event and every move fails.
//
// Player is not safe for concurrent use; give each viewer its own.
type Player[E any] struct {
	tr      Trace[E]
	isFinal func(E) bool
	cur     int
}

// NewPlayer positions a player on step 0 of tr.
// isFinal identifies the terminal answer event for JumpToFinal; when nil,
// the last event is treated as final.
func NewPlayer[E any](tr Trace[E], isFinal func(E) bool) *Player[E] {
	return &Player[E]{tr: tr, isFinal: isFinal}
}

// Step returns the current step index, or -1 when the trace is empty.
func (p *Player[E]) Step() int {
	if p.tr.Len() == 0 {
		return -1
	}

	return p.cur
}

// Len returns the length of the underlying trace.
func (p *Player[E]) Len() int { return p.tr.Len() }

// Current returns the event at the cursor.
func (p *Player[E]) Current() (e E, ok bool) {
	if p.tr.Len() == 0 {
		return e, false
	}

	return p.tr.events[p.cur], true
}

// Next advances one step; it returns false at the end of the trace.
func (p *Player[E]) Next() bool {
	if p.cur+1 >= p.tr.Len() {
		return false
	}
	p.cur++

	return true
}

// Prev steps back once; it returns false at step 0.
func (p *Player[E]) Prev() bool {
	if p.cur == 0 || p.tr.Len() == 0 {
		return false
	}
	p.cur--

	return true
}

// Reset rewinds to step 0.
func (p *Player[E]) Reset() { p.cur = 0 }

// AtEnd reports whether the cursor sits on the last event.
func (p *Player[E]) AtEnd() bool { return p.cur >= p.tr.Len()-1 }

// Seek moves the cursor to step k.
//
// Errors:
//   - ErrEmptyTrace     - the trace has no events.
//   - ErrStepOutOfRange - k is outside [0, Len()).
func (p *Player[E]) Seek(k int) error {
	if p.tr.Len() == 0 {
		return ErrEmptyTrace
	}
	if _, err := p.tr.At(k); err != nil {
		return err
	}
	p.cur = k

	return nil
}

// FinalStep returns the index of the terminal answer event, or -1.
func (p *Player[E]) FinalStep() int {
	if p.isFinal == nil {
		return p.tr.Len() - 1
	}

	return p.tr.Index(p.isFinal)
}

// JumpToFinal moves the cursor onto the terminal answer event.
// It returns false, leaving the cursor untouched, when none exists.
func (p *Player[E]) JumpToFinal() bool {
	k := p.FinalStep()
	if k < 0 {
		return false
	}
	p.cur = k

	return true
}
