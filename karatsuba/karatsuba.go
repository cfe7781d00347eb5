package karatsuba

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dacviz/trace"
)

// Multiply computes a·b with Karatsuba's algorithm and returns the trace.
//
// When both |a| and |b| are below Base the trace is one KindDirect step.
// Otherwise it is the recursion (start / base-case / split / combine steps in
// call order) followed by one KindFinal step whose Result is the signed
// product.
//
// Example:
//
//	tr := karatsuba.Multiply(1234, 5678)
//	v, _ := karatsuba.Result(tr) // 7006652
func Multiply(a, b int64, opts ...Option) trace.Trace[Step] {
	// 1) Collect options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tb := trace.NewBuilder[Step](16)
	if cfg.OnStep != nil {
		tb.OnEmit(cfg.OnStep)
	}
	r := &runner{tb: tb}

	// 2) Single digits need no recursion.
	if abs(a) < Base && abs(b) < Base {
		product := a * b
		r.emit(Step{
			Kind:    KindDirect,
			X:       a,
			Y:       b,
			Result:  product,
			Message: fmt.Sprintf("Simple multiplication for single-digit numbers: %d × %d = %d", a, b, product),
		})

		return tb.Build()
	}

	// 3) Recurse on magnitudes, then reapply the sign once.
	result := sign(a) * sign(b) * r.karatsuba(a, b, 0)
	r.emit(Step{
		Kind:    KindFinal,
		X:       a,
		Y:       b,
		Result:  result,
		Message: fmt.Sprintf("Final result after applying sign: %d", result),
	})

	return tb.Build()
}

// Result returns the signed answer carried by the terminal step of tr.
// ok is false when tr does not end with a direct or final step.
func Result(tr trace.Trace[Step]) (int64, bool) {
	last, ok := tr.Last()
	if !ok || !IsFinal(last) {
		return 0, false
	}

	return last.Result, true
}

// runner holds the mutable state of a single Multiply call.
type runner struct {
	tb *trace.Builder[Step]
}

func (r *runner) emit(s Step) { r.tb.Emit(s) }

// karatsuba multiplies |x| by |y| at the given recursion level.
func (r *runner) karatsuba(x, y int64, level int) int64 {
	r.emit(Step{
		Kind:    KindStart,
		Level:   level,
		X:       x,
		Y:       y,
		Result:  x * y,
		Message: fmt.Sprintf("Starting multiplication of %d and %d", x, y),
	})

	x, y = abs(x), abs(y)

	// 1) Per-level base case.
	if x < Base || y < Base {
		product := x * y
		r.emit(Step{
			Kind:    KindBaseCase,
			Level:   level,
			X:       x,
			Y:       y,
			Result:  product,
			Message: fmt.Sprintf("Base case: %d × %d = %d", x, y, product),
		})

		return product
	}

	// 2) Split both operands at m digits.
	n := max(digitCount(x), digitCount(y))
	m := n / 2
	p := pow10(m)
	split := Split{
		High1: x / p,
		Low1:  x % p,
		High2: y / p,
		Low2:  y % p,
		M:     m,
	}
	msg := fmt.Sprintf("Split numbers:\n%d = %d × 10^%d + %d\n%d = %d × 10^%d + %d",
		x, split.High1, m, split.Low1, y, split.High2, m, split.Low2)
	r.emit(Step{
		Kind:    KindSplit,
		Level:   level,
		X:       x,
		Y:       y,
		Split:   &split,
		Message: msg,
	})

	// 3) Three recursive products, in the order z0, z1, z2.
	sub := SubProducts{
		Z0: r.karatsuba(split.Low1, split.Low2, level+1),
	}
	sub.Z1 = r.karatsuba(split.Low1+split.High1, split.Low2+split.High2, level+1)
	sub.Z2 = r.karatsuba(split.High1, split.High2, level+1)

	// 4) Combine.
	result := Combine(sub, m)
	splitCopy := split
	r.emit(Step{
		Kind:    KindCombine,
		Level:   level,
		X:       x,
		Y:       y,
		Split:   &splitCopy,
		Sub:     &sub,
		Result:  result,
		Message: fmt.Sprintf("Combining results:\nz0 = %d\nz1 = %d\nz2 = %d\nResult = %d", sub.Z0, sub.Z1, sub.Z2, result),
	})

	return result
}

// Combine applies z2·10^(2m) + (z1−z2−z0)·10^m + z0.
func Combine(sub SubProducts, m int) int64 {
	p := pow10(m)

	return sub.Z2*p*p + (sub.Z1-sub.Z2-sub.Z0)*p + sub.Z0
}

// digitCount is the length of the decimal form of |v|.
func digitCount(v int64) int {
	return len(strconv.FormatInt(abs(v), 10))
}

func pow10(m int) int64 {
	p := int64(1)
	for i := 0; i < m; i++ {
		p *= 10
	}

	return p
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// sign returns -1, 0 or 1.
func sign(v int64) int64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
