package closestpair

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/dacviz/trace"
)

// Solve runs the divide-and-conquer closest-pair algorithm on points and
// returns the full trace of the run.
//
// Solve never fails: invalid input is reported as a single KindError event
// (see package doc for the edge policy). On success the last event is the
// only KindResult event; its Distance is the global minimum and its Pair a
// witnessing pair.
//
// The caller's slice is copied before use and never modified.
//
// Example:
//
//	tr := closestpair.Solve([]closestpair.Point{{0, 0}, {3, 4}, {0, 0.1}})
//	res, _ := tr.Last()
//	fmt.Printf("%.2f\n", *res.Distance) // 0.10
func Solve(points []Point, opts ...Option) trace.Trace[Event] {
	// 1) Collect options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) One builder per call; the runner is its only writer.
	tb := trace.NewBuilder[Event](estimateEvents(len(points)))
	if cfg.OnEvent != nil {
		tb.OnEmit(cfg.OnEvent)
	}
	r := &runner{tb: tb}

	// 3) Work on a private copy of the input.
	r.run(clonePoints(points))

	return tb.Build()
}

// ResultIndex returns the step of the result event in tr, or -1 when the
// trace ended with an error.
func ResultIndex(tr trace.Trace[Event]) int {
	return tr.Index(IsResult)
}

// BruteForce compares every pair of points and returns the minimum distance
// with the first pair (in i<j order) achieving it. ok is false for fewer
// than two points. It records nothing and serves as an independent check.
func BruteForce(points []Point) (dist float64, pair Pair, ok bool) {
	if len(points) < 2 {
		return 0, Pair{}, false
	}
	dist = math.Inf(1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d < dist {
				dist, pair = d, Pair{A: points[i], B: points[j]}
			}
		}
	}

	return dist, pair, true
}

// runner holds the mutable state of a single Solve call.
type runner struct {
	tb *trace.Builder[Event]
}

func (r *runner) emit(e Event) { r.tb.Emit(e) }

// run validates, handles the short cuts, and drives the recursion.
func (r *runner) run(points []Point) {
	if !r.validate(points) {
		return
	}

	// Two points need no recursion.
	if len(points) == 2 {
		pair := Pair{A: points[0], B: points[1]}
		r.emitResult(points, pair, pair.Distance())

		return
	}

	r.adviseCollinear(points)

	px := sortedBy(points, func(a, b Point) bool { return a.X < b.X })
	py := sortedBy(points, func(a, b Point) bool { return a.Y < b.Y })

	dist, pair := r.closest(px, py)
	r.emitResult(points, pair, dist)
}

// closest returns the minimum distance and its pair among px.
// py is ordered by y and holds every point of px; it may also hold points
// of the neighbouring half that share the dividing x, which only widen the
// strip scans.
func (r *runner) closest(px, py []Point) (float64, Pair) {
	if len(px) <= BruteForceMax {
		return r.bruteForce(px)
	}

	// 1) Split at the middle index; the dividing line passes through px[mid].
	mid := len(px) / 2
	qx, rx := px[:mid], px[mid:]
	midX := px[mid].X
	r.emit(Event{
		Kind:     KindDivide,
		Points:   clonePoints(px),
		Midpoint: ptr(midX),
		Message:  fmt.Sprintf("Dividing points at x = %s", formatNum(midX)),
	})

	// 2) Split the y order at the dividing line; px[mid] goes left.
	qy, ry := partitionY(py, midX)

	// 3) Solve both halves; the left half wins ties.
	dl, pl := r.closest(qx, qy)
	dr, pr := r.closest(rx, ry)
	delta, best := dl, pl
	if dr < dl {
		delta, best = dr, pr
	}

	// 4) Look for a closer pair straddling the line.
	return r.closestSplit(px, py, midX, delta, best)
}

// bruteForce compares all pairs of a small subset, one compare event each.
func (r *runner) bruteForce(px []Point) (float64, Pair) {
	subset := clonePoints(px)
	minDist := math.Inf(1)
	best := Pair{A: px[0], B: px[1]}
	for i := 0; i < len(px); i++ {
		for j := i + 1; j < len(px); j++ {
			d := Distance(px[i], px[j])
			r.emitCompare(subset, px[i], px[j], d, "Comparing points %s and %s. Distance: %.2f")
			if d < minDist {
				minDist, best = d, Pair{A: px[i], B: px[j]}
			}
		}
	}

	return minDist, best
}

// closestSplit scans the strip |x − midX| ≤ delta in y order, comparing each
// point with at most StripLookahead successors.
func (r *runner) closestSplit(px, py []Point, midX, delta float64, best Pair) (float64, Pair) {
	left, right := midX-delta, midX+delta
	sy := make([]Point, 0, len(py))
	for _, p := range py {
		if p.X >= left && p.X <= right {
			sy = append(sy, p)
		}
	}

	r.emit(Event{
		Kind:     KindDivide,
		Points:   clonePoints(px),
		Midpoint: ptr(midX),
		Strip:    &Strip{Left: left, Right: right, Delta: delta, Points: sy},
		Message:  fmt.Sprintf("Checking split pairs around x = %s with delta = %.2f", formatNum(midX), delta),
	})

	minDist := delta
	for i := range sy {
		end := min(i+StripLookahead+1, len(sy))
		for j := i + 1; j < end; j++ {
			d := Distance(sy[i], sy[j])
			r.emitCompare(sy, sy[i], sy[j], d, "Comparing split pair %s and %s. Distance: %.2f")
			if d < minDist {
				minDist, best = d, Pair{A: sy[i], B: sy[j]}
			}
		}
	}

	return minDist, best
}

func (r *runner) emitCompare(subset []Point, a, b Point, d float64, format string) {
	r.emit(Event{
		Kind:     KindCompare,
		Points:   subset,
		Pair:     &Pair{A: a, B: b},
		Distance: ptr(d),
		Message:  fmt.Sprintf(format, a, b, d),
	})
}

func (r *runner) emitResult(points []Point, pair Pair, d float64) {
	r.emit(Event{
		Kind:     KindResult,
		Points:   points,
		Pair:     &pair,
		Distance: ptr(d),
		Message:  fmt.Sprintf("Found closest pair: %s and %s with distance %.2f", pair.A, pair.B, d),
	})
}

// partitionY splits py, keeping y order, into the points with x ≤ midX
// and those with x > midX.
func partitionY(py []Point, midX float64) (qy, ry []Point) {
	qy = make([]Point, 0, len(py)/2+1)
	ry = make([]Point, 0, len(py)/2+1)
	for _, p := range py {
		if p.X <= midX {
			qy = append(qy, p)
		} else {
			ry = append(ry, p)
		}
	}

	return qy, ry
}

// sortedBy returns a stably sorted copy of points.
func sortedBy(points []Point, less func(a, b Point) bool) []Point {
	out := clonePoints(points)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

func clonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	return out
}

// estimateEvents sizes the builder for roughly n·log2(n) events.
func estimateEvents(n int) int {
	if n < 2 {
		return 1
	}

	return n * (bits.Len(uint(n)) + 2)
}

func ptr[T any](v T) *T { return &v }
