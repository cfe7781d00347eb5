package writers

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/dacviz/closestpair"
	"github.com/katalvlaran/dacviz/karatsuba"
	"github.com/katalvlaran/dacviz/trace"
)

// Algorithm names used in headers and on the command line.
const (
	AlgClosestPair = "closest-pair"
	AlgKaratsuba   = "karatsuba"
)

// Header is the first record of a serialized run.
type Header struct {
	Record    string `json:"record"` // always "header"
	RunID     string `json:"run_id"`
	Algorithm string `json:"algorithm"`
	Steps     int    `json:"steps"`
	Final     int    `json:"final"` // index of the terminal step, -1 if none
}

// Record is one serialized trace step.
type Record interface {
	// Line renders the step as a single line of text.
	Line() string
}

// Run is everything a writer needs for one engine run.
type Run struct {
	Header  Header
	Records []Record
}

// ////////////////////////////////////////////////////////////////////////////
// Closest pair
// ////////////////////////////////////////////////////////////////////////////

// PointRecord is a point on the wire: [x, y].
type PointRecord [2]float64

// StripRecord is closestpair.Strip on the wire.
type StripRecord struct {
	Left   float64       `json:"left"`
	Right  float64       `json:"right"`
	Delta  float64       `json:"delta"`
	Points []PointRecord `json:"points"`
}

// ClosestPairRecord is closestpair.Event on the wire.
type ClosestPairRecord struct {
	Record   string        `json:"record"` // always "event"
	Step     int           `json:"step"`
	Kind     string        `json:"kind"`
	Points   []PointRecord `json:"points,omitempty"`
	Pair     []PointRecord `json:"pair,omitempty"`
	Distance *float64      `json:"distance,omitempty"`
	Midpoint *float64      `json:"midpoint,omitempty"`
	Strip    *StripRecord  `json:"strip,omitempty"`
	Message  string        `json:"message"`
}

// Line implements Record.
func (r ClosestPairRecord) Line() string {
	return fmt.Sprintf("%4d  %-12s  %s", r.Step, r.Kind, r.Message)
}

// ClosestPairRun converts a closest-pair trace.
func ClosestPairRun(runID string, tr trace.Trace[closestpair.Event]) Run {
	recs := make([]Record, 0, tr.Len())
	for k, e := range tr.All() {
		rec := ClosestPairRecord{
			Record:   "event",
			Step:     k,
			Kind:     e.Kind.String(),
			Points:   pointRecords(e.Points),
			Distance: e.Distance,
			Midpoint: e.Midpoint,
			Message:  e.Message,
		}
		if e.Pair != nil {
			rec.Pair = pointRecords([]closestpair.Point{e.Pair.A, e.Pair.B})
		}
		if e.Strip != nil {
			rec.Strip = &StripRecord{
				Left:   e.Strip.Left,
				Right:  e.Strip.Right,
				Delta:  e.Strip.Delta,
				Points: pointRecords(e.Strip.Points),
			}
		}
		recs = append(recs, rec)
	}

	return Run{
		Header:  newHeader(runID, AlgClosestPair, tr.Len(), closestpair.ResultIndex(tr)),
		Records: recs,
	}
}

// pointRecords converts pts; JSON has no NaN or Inf, so a set containing
// one is dropped (only the non-finite error event carries such points).
func pointRecords(pts []closestpair.Point) []PointRecord {
	if len(pts) == 0 {
		return nil
	}
	out := make([]PointRecord, len(pts))
	for i, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return nil
		}
		out[i] = PointRecord{p.X, p.Y}
	}

	return out
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// ////////////////////////////////////////////////////////////////////////////
// Karatsuba
// ////////////////////////////////////////////////////////////////////////////

// SplitRecord is karatsuba.Split on the wire.
type SplitRecord struct {
	High1 int64 `json:"high1"`
	Low1  int64 `json:"low1"`
	High2 int64 `json:"high2"`
	Low2  int64 `json:"low2"`
	M     int   `json:"m"`
}

// SubRecord is karatsuba.SubProducts on the wire.
type SubRecord struct {
	Z0 int64 `json:"z0"`
	Z1 int64 `json:"z1"`
	Z2 int64 `json:"z2"`
}

// KaratsubaRecord is karatsuba.Step on the wire.
type KaratsubaRecord struct {
	Record  string       `json:"record"` // always "event"
	Step    int          `json:"step"`
	Kind    string       `json:"kind"`
	Level   int          `json:"level"`
	X       int64        `json:"x"`
	Y       int64        `json:"y"`
	Split   *SplitRecord `json:"split,omitempty"`
	Sub     *SubRecord   `json:"sub,omitempty"`
	Result  int64        `json:"result"`
	Message string       `json:"message"`
}

// Line implements Record. Nested levels are indented and multi-line
// messages are joined with "; ".
func (r KaratsubaRecord) Line() string {
	msg := strings.ReplaceAll(r.Message, "\n", "; ")

	return fmt.Sprintf("%4d  %s%-9s  %s", r.Step, strings.Repeat("  ", r.Level), r.Kind, msg)
}

// KaratsubaRun converts a Karatsuba trace.
func KaratsubaRun(runID string, tr trace.Trace[karatsuba.Step]) Run {
	recs := make([]Record, 0, tr.Len())
	for k, s := range tr.All() {
		rec := KaratsubaRecord{
			Record:  "event",
			Step:    k,
			Kind:    s.Kind.String(),
			Level:   s.Level,
			X:       s.X,
			Y:       s.Y,
			Result:  s.Result,
			Message: s.Message,
		}
		if s.Split != nil {
			rec.Split = &SplitRecord{High1: s.Split.High1, Low1: s.Split.Low1, High2: s.Split.High2, Low2: s.Split.Low2, M: s.Split.M}
		}
		if s.Sub != nil {
			rec.Sub = &SubRecord{Z0: s.Sub.Z0, Z1: s.Sub.Z1, Z2: s.Sub.Z2}
		}
		recs = append(recs, rec)
	}

	return Run{
		Header:  newHeader(runID, AlgKaratsuba, tr.Len(), tr.Index(karatsuba.IsFinal)),
		Records: recs,
	}
}

func newHeader(runID, alg string, steps, final int) Header {
	return Header{Record: "header", RunID: runID, Algorithm: alg, Steps: steps, Final: final}
}
