package closestpair

import (
	"math"
	"strconv"
)

// BruteForceMax is the largest sub-problem solved by exhaustive comparison.
const BruteForceMax = 3

// StripLookahead is how many y-ordered successors each strip point is
// compared against. Only a constant number of strip points can lie within
// δ above a given point while staying ≥ δ apart within each half; six
// successors are enough to find any pair closer than δ.
const StripLookahead = 6

// Point is an immutable pair of coordinates. Two points are equal when their
// coordinates are equal.
type Point struct {
	X, Y float64
}

// String renders the point as "(x,y)" using the shortest exact decimal form.
func (p Point) String() string {
	return "(" + formatNum(p.X) + "," + formatNum(p.Y) + ")"
}

// Pair is a candidate pair, stored in the order it was discovered.
type Pair struct {
	A, B Point
}

// Distance returns the Euclidean distance between the two points of the pair.
func (p Pair) Distance() float64 { return Distance(p.A, p.B) }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// EventKind tags a trace Event.
type EventKind int

const (
	// KindError marks invalid input. It is always the only event of its trace.
	KindError EventKind = iota

	// KindSpecialCase marks an advisory about degenerate (collinear) geometry.
	KindSpecialCase

	// KindDivide marks a split of the point set or the start of a strip scan.
	KindDivide

	// KindCompare marks one examined pair.
	KindCompare

	// KindResult marks the final answer. A successful trace ends with exactly one.
	KindResult
)

var kindNames = [...]string{
	KindError:       "error",
	KindSpecialCase: "special-case",
	KindDivide:      "divide",
	KindCompare:     "compare",
	KindResult:      "result",
}

// String returns the wire name of the kind ("error", "special-case", ...).
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Strip describes the vertical band scanned for pairs that straddle the
// dividing line: Left = midpoint−δ, Right = midpoint+δ.
type Strip struct {
	Left, Right float64
	Delta       float64
	Points      []Point // strip members in ascending y order
}

// Event is one recorded step of a closest-pair run.
//
// Optional fields are nil when they do not apply to the kind:
//   - Pair, Distance — compare and result events.
//   - Midpoint       — divide events.
//   - Strip          — the divide event that opens a strip scan.
//
// Points is the subset the step works on. Events never alias the caller's
// input, but events of one step group may share slices: treat them as read-only.
type Event struct {
	Kind     EventKind
	Points   []Point
	Pair     *Pair
	Distance *float64
	Midpoint *float64
	Strip    *Strip
	Message  string
}

// IsResult reports whether e is the final answer event.
func IsResult(e Event) bool { return e.Kind == KindResult }

// IsError reports whether e reports invalid input.
func IsError(e Event) bool { return e.Kind == KindError }

// Option configures Solve.
type Option func(*Options)

// Options holds Solve configuration.
//
//   - OnEvent — called synchronously after each event is recorded, with the
//     event's step index. Useful for live rendering while the trace is built.
type Options struct {
	OnEvent func(step int, e Event)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{}
}

// WithOnEvent registers an observer for every recorded event.
// A nil fn is ignored.
func WithOnEvent(fn func(step int, e Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}

// formatNum prints f in its shortest round-trip decimal form, so 3 prints
// as "3" and 0.1 as "0.1".
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
