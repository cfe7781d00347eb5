package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/dacviz/closestpair"
)

var (
	// ErrSyntax indicates a line that does not parse.
	ErrSyntax = errors.New("input: syntax error")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("input: non-finite coordinate")

	// ErrOutOfRange indicates an integer outside the supported range.
	// math.MinInt64 is rejected because its magnitude does not fit in int64.
	ErrOutOfRange = errors.New("input: integer out of range")
)

// ParsePoints reads one point per line: two numbers separated by
// whitespace or a comma.
//
// Errors:
//   - ErrSyntax     — wrong field count or an unparsable number.
//   - ErrNonFinite  — NaN, +Inf or -Inf.
//   - any error from r.
func ParsePoints(r io.Reader) ([]closestpair.Point, error) {
	var pts []closestpair.Point
	err := scanLines(r, func(ln int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: want 2 coordinates, got %d", ErrSyntax, ln, len(fields))
		}
		var xy [2]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: %q is not a number", ErrSyntax, ln, f)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: line %d: %q", ErrNonFinite, ln, f)
			}
			xy[i] = v
		}
		pts = append(pts, closestpair.Point{X: xy[0], Y: xy[1]})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return pts, nil
}

// ParseIntegers reads base-10 integers separated by whitespace or commas,
// any number per line.
//
// Errors:
//   - ErrSyntax     — a token that is not an integer.
//   - ErrOutOfRange — a value outside (math.MinInt64, math.MaxInt64].
//   - any error from r.
func ParseIntegers(r io.Reader) ([]int64, error) {
	var nums []int64
	err := scanLines(r, func(ln int, fields []string) error {
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if errors.Is(err, strconv.ErrRange) || (err == nil && v == math.MinInt64) {
				return fmt.Errorf("%w: line %d: %s", ErrOutOfRange, ln, f)
			}
			if err != nil {
				return fmt.Errorf("%w: line %d: %q is not an integer", ErrSyntax, ln, f)
			}
			nums = append(nums, v)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return nums, nil
}

// scanLines calls fn with the fields of every non-blank, non-comment line.
func scanLines(r io.Reader, fn func(ln int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if err := fn(ln, splitFields(line)); err != nil {
			return err
		}
	}

	return sc.Err()
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(c rune) bool {
		return c == ',' || c == ' ' || c == '\t'
	})
}
