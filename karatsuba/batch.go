package karatsuba

import "github.com/katalvlaran/dacviz/trace"

// PairRun is the trace of one operand pair taken from a list.
type PairRun struct {
	A, B  int64
	Trace trace.Trace[Step]
}

// MultiplyPairs consumes nums two at a time, (nums[0], nums[1]),
// (nums[2], nums[3]) and so on, and runs Multiply on each pair independently.
// A trailing unpaired value is ignored. opts apply to every run.
func MultiplyPairs(nums []int64, opts ...Option) []PairRun {
	runs := make([]PairRun, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		runs = append(runs, PairRun{
			A:     nums[i],
			B:     nums[i+1],
			Trace: Multiply(nums[i], nums[i+1], opts...),
		})
	}

	return runs
}

// ProductAll returns the product of every value in nums, with the sign
// computed separately from the magnitudes. The empty product is 1.
// Overflow is not detected.
func ProductAll(nums []int64) int64 {
	s, mag := int64(1), int64(1)
	for _, v := range nums {
		s *= sign(v)
		mag *= abs(v)
	}

	return s * mag
}
