package closestpair

import (
	"fmt"
	"math"
)

// Messages of the validation and advisory events.
const (
	msgInsufficient = "Insufficient points: At least two points are required."
	msgDuplicates   = "Duplicate points detected."
	msgHorizontal   = "All points lie on the same horizontal line (x-axis)."
	msgVertical     = "All points lie on the same vertical line (y-axis)."
)

// validate emits the terminal error event for unusable input and reports
// whether the run may continue.
//
// Checks, in order:
//  1. every coordinate is finite;
//  2. at least two points;
//  3. no two points share both coordinates.
func (r *runner) validate(points []Point) bool {
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			r.emit(Event{
				Kind:    KindError,
				Points:  points,
				Message: fmt.Sprintf("Non-finite coordinate at index %d: %s", i, p),
			})

			return false
		}
	}

	if len(points) < 2 {
		r.emit(Event{Kind: KindError, Points: points, Message: msgInsufficient})

		return false
	}

	if hasDuplicates(points) {
		r.emit(Event{Kind: KindError, Points: points, Message: msgDuplicates})

		return false
	}

	return true
}

// adviseCollinear emits one special-case event when every point shares the
// same y (horizontal) or, failing that, the same x (vertical).
func (r *runner) adviseCollinear(points []Point) {
	sameY, sameX := true, true
	for _, p := range points[1:] {
		if p.Y != points[0].Y {
			sameY = false
		}
		if p.X != points[0].X {
			sameX = false
		}
	}

	switch {
	case sameY:
		r.emit(Event{Kind: KindSpecialCase, Points: points, Message: msgHorizontal})
	case sameX:
		r.emit(Event{Kind: KindSpecialCase, Points: points, Message: msgVertical})
	}
}

func hasDuplicates(points []Point) bool {
	seen := make(map[Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}

	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
