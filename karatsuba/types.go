package karatsuba

import "errors"

// Base is the single-digit threshold: operands below it are multiplied directly.
const Base = 10

// DigitTreeDepth is the default number of split levels of DigitTree.
const DigitTreeDepth = 3

// ErrMalformedTrace indicates a step sequence that Multiply could not have produced.
var ErrMalformedTrace = errors.New("karatsuba: malformed trace")

// StepKind tags a trace Step.
type StepKind int

const (
	// KindDirect is the single-digit shortcut; it is the only step of its trace.
	KindDirect StepKind = iota

	// KindStart opens a recursion level.
	KindStart

	// KindBaseCase closes a level whose operands include a single digit.
	KindBaseCase

	// KindSplit records the high/low decomposition of both operands.
	KindSplit

	// KindCombine closes a level by combining z0, z1 and z2.
	KindCombine

	// KindFinal carries the signed top-level answer.
	KindFinal
)

var kindNames = [...]string{
	KindDirect:   "direct",
	KindStart:    "start",
	KindBaseCase: "base-case",
	KindSplit:    "split",
	KindCombine:  "combine",
	KindFinal:    "final",
}

// String returns the wire name of the kind.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Split is the decomposition of one level:
// X = High1·10^M + Low1 and Y = High2·10^M + Low2.
type Split struct {
	High1, Low1 int64
	High2, Low2 int64
	M           int
}

// SubProducts are the three recursive products of one level.
type SubProducts struct {
	Z0, Z1, Z2 int64
}

// Step is one recorded step of a Karatsuba run.
//
// Field use by kind:
//   - direct, final — X, Y are the signed caller operands; Result is signed.
//   - start         — X, Y as received by the level; Result = X·Y (reference only).
//   - base-case     — X, Y absolute; Result = X·Y.
//   - split         — Split set; Result is 0.
//   - combine       — Split and Sub set;
//     Result = Z2·10^(2M) + (Z1−Z2−Z0)·10^M + Z0.
type Step struct {
	Kind    StepKind
	Level   int
	X, Y    int64
	Split   *Split
	Sub     *SubProducts
	Result  int64
	Message string
}

// IsFinal reports whether s carries the signed answer of its trace.
func IsFinal(s Step) bool { return s.Kind == KindFinal || s.Kind == KindDirect }

// Option configures Multiply.
type Option func(*Options)

// Options holds Multiply configuration.
//
//   - OnStep — called synchronously after each step is recorded.
type Options struct {
	OnStep func(step int, s Step)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep registers an observer for every recorded step.
// A nil fn is ignored.
func WithOnStep(fn func(step int, s Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
