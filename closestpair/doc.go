// Package closestpair finds the closest pair of points in the plane with the
// classic O(n log n) divide-and-conquer algorithm, recording every decision
// as a replayable trace.
//
// 🚀 What does it record?
//
//	Solve returns a trace.Trace[Event]. Each Event is one of:
//	  • error        — invalid input (fewer than 2 points, duplicates, NaN/Inf)
//	  • special-case — advisory: all points share one x or one y
//	  • divide       — the point set is split at x = midpoint, or the strip
//	                   of width 2δ around the midpoint is about to be scanned
//	  • compare      — one pair examined, with its Euclidean distance
//	  • result       — the global minimum distance and a witnessing pair
//
// Algorithm Outline:
//  1. Sort the input twice (stable): byX ascending x, byY ascending y.
//  2. closest(px, py):
//     |px| ≤ 3 → brute force every pair i<j.
//     otherwise split px at mid = |px|/2 and py at x ≤ px[mid].x,
//     recurse on both halves,
//     δ = min(δ_left, δ_right) (left wins ties).
//  3. Strip check: points of py with |x − px[mid].x| ≤ δ, in y order;
//     each is compared with at most the next 6 strip points.
//  4. Emit the final result event.
//
// Edge policy (checked in this order, each ends the trace):
//   - any NaN/±Inf coordinate → error
//   - fewer than 2 points     → error
//   - duplicate coordinates   → error
//   - exactly 2 points        → single result event
//
// Collinear inputs emit one special-case event and then run normally.
//
// Complexity:
//
//	Time   = O(n log n) comparisons (plus O(1) events per comparison)
//	Memory = O(n log n) for the trace, O(n) working set
//
// Concurrency: Solve keeps no state between calls and never mutates its
// input, so independent calls may run on different goroutines.
package closestpair
