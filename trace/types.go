package trace

import "errors"

// Sentinel errors returned by trace accessors and the Player.
var (
	// ErrStepOutOfRange indicates a step index outside [0, Len()).
	ErrStepOutOfRange = errors.New("trace: step index out of range")

	// ErrEmptyTrace indicates an operation that needs at least one event.
	ErrEmptyTrace = errors.New("trace: trace is empty")
)

// EmitFunc observes events as they are appended to a Builder.
// step is the zero-based index the event received.
type EmitFunc[E any] func(step int, e E)
