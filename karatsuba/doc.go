// Package karatsuba multiplies integers with Karatsuba's divide-and-conquer
// scheme and records every recursion step as a replayable trace.
//
// 🚀 What is Karatsuba multiplication?
//
//	Split both operands at m decimal digits:
//	  x = high1·10^m + low1,  y = high2·10^m + low2
//	Then three recursive products replace the schoolbook four:
//	  z0 = low1·low2
//	  z1 = (low1+high1)·(low2+high2)
//	  z2 = high1·high2
//	  x·y = z2·10^(2m) + (z1−z2−z0)·10^m + z0
//
// ✨ Trace vocabulary (Step.Kind):
//   - direct    — both operands are single digits; the whole trace is this step
//   - start     — a recursion level begins (Result holds the raw x·y reference)
//   - base-case — one operand is a single digit; product computed directly
//   - split     — operands decomposed into high/low halves at width m
//   - combine   — z0, z1, z2 combined into this level's result
//   - final     — sign reapplied to the top-level result; always last
//
// Recursion works on absolute values; the sign sign(a)·sign(b) is applied
// once at the end. Digit counts come from the decimal length of |x|.
//
// Numeric domain: native int64. Overflow is not detected, so results are
// only meaningful while every intermediate product fits in int64.
// math.MinInt64 has no int64 absolute value and is outside the domain.
//
// Extras built on the trace:
//   - Result        — signed answer of a trace
//   - BuildCallTree — recursion tree rebuilt from a trace, with Recompute
//   - DigitTree     — digit-string split tree of a single operand
//   - MultiplyPairs — runs over a list of integers two at a time
//   - ProductAll    — sign-correct product of a whole list
//
// Complexity:
//
//	Time   = O(n^log2(3)) ≈ O(n^1.585) digit operations, n = digits of the larger operand
//	Memory = O(n^1.585) trace steps, recursion depth O(log n)
package karatsuba
