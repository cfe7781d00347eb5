package closestpair_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/dacviz/closestpair"
	"github.com/katalvlaran/dacviz/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pt = closestpair.Point

// kinds flattens a trace into its sequence of kinds.
func kinds(tr trace.Trace[closestpair.Event]) []closestpair.EventKind {
	out := make([]closestpair.EventKind, 0, tr.Len())
	for _, e := range tr.All() {
		out = append(out, e.Kind)
	}

	return out
}

// lastResult asserts the trace ends with its only result event and returns it.
func lastResult(t *testing.T, tr trace.Trace[closestpair.Event]) closestpair.Event {
	t.Helper()
	last, ok := tr.Last()
	require.True(t, ok, "trace must not be empty")
	require.Equal(t, closestpair.KindResult, last.Kind, "last event must be the result")
	require.Equal(t, 1, tr.Count(closestpair.IsResult), "exactly one result event")
	require.NotNil(t, last.Distance)
	require.NotNil(t, last.Pair)

	return last
}

// ------------------------------------------------------------------------
// 1. Validation: every invalid input yields exactly one error event.
// ------------------------------------------------------------------------

func TestSolve_InsufficientPoints(t *testing.T) {
	for _, pts := range [][]pt{nil, {}, {{X: 1, Y: 2}}} {
		tr := closestpair.Solve(pts)
		require.Equal(t, 1, tr.Len())
		e, _ := tr.At(0)
		assert.Equal(t, closestpair.KindError, e.Kind)
		assert.Contains(t, e.Message, "Insufficient points")
		assert.Equal(t, -1, closestpair.ResultIndex(tr))
	}
}

func TestSolve_Duplicates(t *testing.T) {
	cases := map[string][]pt{
		"two identical":  {{X: 1, Y: 1}, {X: 1, Y: 1}},
		"three with dup": {{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}},
		"signed zero":    {{X: 0, Y: 0}, {X: 5, Y: 5}, {X: math.Copysign(0, -1), Y: 0}},
	}
	for name, pts := range cases {
		t.Run(name, func(t *testing.T) {
			tr := closestpair.Solve(pts)
			require.Equal(t, 1, tr.Len())
			e, _ := tr.At(0)
			assert.True(t, closestpair.IsError(e))
			assert.Equal(t, "Duplicate points detected.", e.Message)
		})
	}
}

func TestSolve_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		tr := closestpair.Solve([]pt{{X: 0, Y: 0}, {X: 1, Y: bad}, {X: 2, Y: 2}})
		require.Equal(t, 1, tr.Len())
		e, _ := tr.At(0)
		assert.Equal(t, closestpair.KindError, e.Kind)
		assert.Contains(t, e.Message, "index 1")
	}
}

// ------------------------------------------------------------------------
// 2. Short cuts and advisories.
// ------------------------------------------------------------------------

func TestSolve_TwoPoints(t *testing.T) {
	tr := closestpair.Solve([]pt{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.Equal(t, 1, tr.Len())
	res := lastResult(t, tr)
	assert.Equal(t, 5.0, *res.Distance)
	assert.Equal(t, closestpair.Pair{A: pt{X: 0, Y: 0}, B: pt{X: 3, Y: 4}}, *res.Pair)
	assert.Equal(t, "Found closest pair: (0,0) and (3,4) with distance 5.00", res.Message)
}

func TestSolve_HorizontalLine(t *testing.T) {
	tr := closestpair.Solve([]pt{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 1, Y: 0}, {X: 10, Y: 0}, {X: 12, Y: 0}})

	first, _ := tr.At(0)
	assert.Equal(t, closestpair.KindSpecialCase, first.Kind)
	assert.Contains(t, first.Message, "horizontal")
	assert.Equal(t, 1, tr.Count(func(e closestpair.Event) bool { return e.Kind == closestpair.KindSpecialCase }))

	res := lastResult(t, tr)
	assert.Equal(t, 1.0, *res.Distance)
	assert.Equal(t, closestpair.Pair{A: pt{X: 0, Y: 0}, B: pt{X: 1, Y: 0}}, *res.Pair)
}

func TestSolve_VerticalLine(t *testing.T) {
	tr := closestpair.Solve([]pt{{X: 0, Y: 3}, {X: 0, Y: 1}, {X: 0, Y: 7}, {X: 0, Y: 2.5}, {X: 0, Y: 9}})

	first, _ := tr.At(0)
	assert.Equal(t, closestpair.KindSpecialCase, first.Kind)
	assert.Contains(t, first.Message, "vertical")

	res := lastResult(t, tr)
	assert.Equal(t, 0.5, *res.Distance)
}

// ------------------------------------------------------------------------
// 3. Exact traces on small inputs.
// ------------------------------------------------------------------------

func TestSolve_ThreePointsExample(t *testing.T) {
	tr := closestpair.Solve([]pt{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 0.1}})

	assert.Equal(t, []closestpair.EventKind{
		closestpair.KindCompare, closestpair.KindCompare, closestpair.KindCompare, closestpair.KindResult,
	}, kinds(tr))

	res := lastResult(t, tr)
	assert.InDelta(t, 0.1, *res.Distance, 1e-12)
	assert.Equal(t, closestpair.Pair{A: pt{X: 0, Y: 0}, B: pt{X: 0, Y: 0.1}}, *res.Pair)
	assert.Equal(t, "Found closest pair: (0,0) and (0,0.1) with distance 0.10", res.Message)

	first, _ := tr.At(0)
	assert.Equal(t, "Comparing points (0,0) and (0,0.1). Distance: 0.10", first.Message)
}

func TestSolve_FourPointsTrace(t *testing.T) {
	a, b, c, d := pt{X: 0, Y: 0}, pt{X: 1, Y: 1}, pt{X: 4, Y: 0}, pt{X: 5, Y: 1}
	tr := closestpair.Solve([]pt{d, b, c, a})

	require.Equal(t, []closestpair.EventKind{
		closestpair.KindDivide,  // split at x=4
		closestpair.KindCompare, // a-b
		closestpair.KindCompare, // c-d
		closestpair.KindDivide,  // strip around x=4
		closestpair.KindCompare, // c-d inside the strip
		closestpair.KindResult,
	}, kinds(tr))

	split, _ := tr.At(0)
	require.NotNil(t, split.Midpoint)
	assert.Equal(t, 4.0, *split.Midpoint)
	assert.Nil(t, split.Strip)
	assert.Equal(t, "Dividing points at x = 4", split.Message)
	assert.Equal(t, []pt{a, b, c, d}, split.Points, "divide carries the x-sorted subset")

	strip, _ := tr.At(3)
	require.NotNil(t, strip.Strip)
	assert.Equal(t, []pt{c, d}, strip.Strip.Points)
	assert.InDelta(t, math.Sqrt2, strip.Strip.Delta, 1e-12)
	assert.InDelta(t, 4-math.Sqrt2, strip.Strip.Left, 1e-12)
	assert.InDelta(t, 4+math.Sqrt2, strip.Strip.Right, 1e-12)
	assert.Equal(t, "Checking split pairs around x = 4 with delta = 1.41", strip.Message)

	res := lastResult(t, tr)
	assert.Equal(t, closestpair.Pair{A: a, B: b}, *res.Pair, "left half wins ties")
}

// repeatKind returns n copies of k.
func repeatKind(k closestpair.EventKind, n int) []closestpair.EventKind {
	out := make([]closestpair.EventKind, n)
	for i := range out {
		out[i] = k
	}

	return out
}

// TestSolve_TwoLevelTraces pins the full event sequence of inputs that
// recurse twice, including the strip contents of every level. The y order
// is split at x ≤ midpoint, so the point on the dividing line also belongs
// to the left half's strips.
func TestSolve_TwoLevelTraces(t *testing.T) {
	var (
		divide  = []closestpair.EventKind{closestpair.KindDivide}
		result  = []closestpair.EventKind{closestpair.KindResult}
		compare = func(n int) []closestpair.EventKind { return repeatKind(closestpair.KindCompare, n) }
	)

	type strip struct {
		midpoint float64
		delta    float64
		points   []pt
	}

	cases := []struct {
		name     string
		points   []pt
		dividing pt // px[mid] of the top level
		kinds    []closestpair.EventKind
		strips   []strip
		pair     closestpair.Pair
	}{
		{
			name:     "distinct x",
			points:   []pt{{X: 0, Y: 0}, {X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}, {X: 4, Y: 1}, {X: 5, Y: 11}, {X: 6, Y: 21}, {X: 7, Y: 31}},
			dividing: pt{X: 4, Y: 1},
			kinds: slices.Concat(
				divide, // x = 4
				divide, compare(2), divide, compare(10), // left half, split at x = 2
				divide, compare(2), divide, compare(3), // right half, split at x = 6
				divide, compare(28), // top strip
				result,
			),
			strips: []strip{
				{2, math.Sqrt(101), []pt{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 1, Y: 10}, {X: 2, Y: 20}, {X: 3, Y: 30}}},
				{6, math.Sqrt(101), []pt{{X: 5, Y: 11}, {X: 6, Y: 21}, {X: 7, Y: 31}}},
				{4, math.Sqrt(17), []pt{
					{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 1, Y: 10}, {X: 5, Y: 11},
					{X: 2, Y: 20}, {X: 6, Y: 21}, {X: 3, Y: 30}, {X: 7, Y: 31},
				}},
			},
			pair: closestpair.Pair{A: pt{X: 0, Y: 0}, B: pt{X: 4, Y: 1}},
		},
		{
			name:     "ties on the dividing x",
			points:   []pt{{X: 2, Y: 9}, {X: 0, Y: 0}, {X: 2, Y: 1}, {X: 5, Y: 2}, {X: 0, Y: 3}, {X: 9, Y: 4}, {X: 6, Y: 6}, {X: 2, Y: 5}},
			dividing: pt{X: 2, Y: 5},
			kinds: slices.Concat(
				divide, // x = 2
				divide, compare(2), divide, compare(10), // left half, split at x = 2
				divide, compare(2), divide, compare(3), // right half, split at x = 6
				divide, compare(10), // top strip
				result,
			),
			strips: []strip{
				{2, 3, []pt{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 3}, {X: 2, Y: 5}, {X: 2, Y: 9}}},
				{6, math.Sqrt(13), []pt{{X: 5, Y: 2}, {X: 9, Y: 4}, {X: 6, Y: 6}}},
				{2, math.Sqrt(5), []pt{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 3}, {X: 2, Y: 5}, {X: 2, Y: 9}}},
			},
			pair: closestpair.Pair{A: pt{X: 0, Y: 0}, B: pt{X: 2, Y: 1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := closestpair.Solve(tc.points)
			require.Equal(t, tc.kinds, kinds(tr))

			var got []closestpair.Event
			for _, e := range tr.All() {
				if e.Strip != nil {
					got = append(got, e)
				}
			}
			require.Len(t, got, len(tc.strips))
			for i, want := range tc.strips {
				assert.Equal(t, want.midpoint, *got[i].Midpoint, "strip %d", i)
				assert.InDelta(t, want.delta, got[i].Strip.Delta, 1e-12, "strip %d", i)
				assert.Equal(t, want.points, got[i].Strip.Points, "strip %d", i)
			}
			assert.Contains(t, got[0].Strip.Points, tc.dividing, "left half sees the point on the dividing line")

			res := lastResult(t, tr)
			assert.Equal(t, tc.pair, *res.Pair)
			assert.InDelta(t, tc.pair.Distance(), *res.Distance, 1e-12)
		})
	}
}

func TestSolve_EventFieldsByKind(t *testing.T) {
	tr := closestpair.Solve([]pt{
		{X: 2, Y: 3}, {X: 12, Y: 30}, {X: 40, Y: 50}, {X: 5, Y: 1},
		{X: 12, Y: 10}, {X: 3, Y: 4}, {X: 7, Y: 7}, {X: 20, Y: 2},
	})
	for i, e := range tr.All() {
		switch e.Kind {
		case closestpair.KindCompare:
			assert.NotNil(t, e.Pair, "step %d", i)
			assert.NotNil(t, e.Distance, "step %d", i)
			assert.Nil(t, e.Midpoint, "step %d", i)
		case closestpair.KindDivide:
			assert.NotNil(t, e.Midpoint, "step %d", i)
			assert.Nil(t, e.Pair, "step %d", i)
		case closestpair.KindResult:
			assert.Equal(t, tr.Len()-1, i)
		default:
			t.Fatalf("unexpected kind %s at step %d", e.Kind, i)
		}
	}
	res := lastResult(t, tr)
	assert.InDelta(t, math.Sqrt2, *res.Distance, 1e-12)
}

// ------------------------------------------------------------------------
// 4. Contracts: input untouched, hooks, determinism.
// ------------------------------------------------------------------------

func TestSolve_DoesNotMutateInput(t *testing.T) {
	in := []pt{{X: 9, Y: 1}, {X: 1, Y: 9}, {X: 5, Y: 5}, {X: 0, Y: 0}, {X: 7, Y: 3}}
	orig := append([]pt(nil), in...)

	tr := closestpair.Solve(in)
	assert.Equal(t, orig, in)

	res := lastResult(t, tr)
	assert.Equal(t, orig, res.Points, "result carries the input in caller order")
	in[0] = pt{X: -1, Y: -1}
	assert.Equal(t, orig, res.Points, "trace must not alias caller input")
}

func TestSolve_OnEventHook(t *testing.T) {
	var steps []int
	tr := closestpair.Solve(
		[]pt{{X: 1, Y: 1}, {X: 4, Y: 4}, {X: 2, Y: 7}, {X: 9, Y: 0}, {X: 3, Y: 3}},
		closestpair.WithOnEvent(func(step int, _ closestpair.Event) { steps = append(steps, step) }),
		closestpair.WithOnEvent(nil),
	)
	require.Len(t, steps, tr.Len())
	for i, s := range steps {
		assert.Equal(t, i, s)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	in := []pt{{X: 3, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 5}, {X: 6, Y: 2}, {X: 2, Y: 9}, {X: 7, Y: 4}, {X: 4, Y: 4}}
	first := closestpair.Solve(in)
	second := closestpair.Solve(in)
	assert.Equal(t, first.Events(), second.Events())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "error", closestpair.KindError.String())
	assert.Equal(t, "special-case", closestpair.KindSpecialCase.String())
	assert.Equal(t, "divide", closestpair.KindDivide.String())
	assert.Equal(t, "compare", closestpair.KindCompare.String())
	assert.Equal(t, "result", closestpair.KindResult.String())
	assert.Equal(t, "unknown", closestpair.EventKind(42).String())
}

func TestBruteForce(t *testing.T) {
	_, _, ok := closestpair.BruteForce([]pt{{X: 1, Y: 1}})
	assert.False(t, ok)

	d, pair, ok := closestpair.BruteForce([]pt{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 2}, {X: 10, Y: 2}})
	assert.True(t, ok)
	assert.Equal(t, 2.0, d)
	assert.Equal(t, closestpair.Pair{A: pt{X: 0, Y: 0}, B: pt{X: 0, Y: 2}}, pair)
}
