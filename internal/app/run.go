package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/dacviz/closestpair"
	"github.com/katalvlaran/dacviz/input"
	"github.com/katalvlaran/dacviz/internal/logging"
	"github.com/katalvlaran/dacviz/internal/writers"
	"github.com/katalvlaran/dacviz/karatsuba"
	"github.com/katalvlaran/dacviz/trace"
)

// verifyTolerance bounds the difference between the engine and brute force.
const verifyTolerance = 1e-9

// execute runs one subcommand and returns the total number of trace steps.
// The output is opened only once the input has parsed, so a rejected input
// never creates or truncates the -o file.
func execute(ctx context.Context, o options, runID string, log *logging.Logger, stdin io.Reader, stdout io.Writer) (steps int, err error) {
	// 1) Input.
	in, err := openInput(o.input, stdin)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	var (
		pts  []closestpair.Point
		nums []int64
	)
	switch o.algorithm {
	case writers.AlgClosestPair:
		pts, err = input.ParsePoints(in)
		log.LogInput(ctx, o.input, len(pts), err)
	default:
		nums, err = parseOperands(in)
		log.LogInput(ctx, o.input, len(nums), err)
	}
	if err != nil {
		return 0, err
	}

	// 2) Output, optionally compressed.
	out, err := openOutput(o, stdout)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	// 3) Run.
	if o.algorithm == writers.AlgClosestPair {
		return runClosestPair(ctx, o, runID, log, pts, out)
	}

	return runKaratsuba(ctx, o, runID, log, nums, out)
}

// parseOperands reads the karatsuba operands; at least one pair is required.
func parseOperands(in io.Reader) ([]int64, error) {
	nums, err := input.ParseIntegers(in)
	if err != nil {
		return nil, err
	}
	if len(nums) < 2 {
		return nil, fmt.Errorf("karatsuba: need at least two integers, got %d", len(nums))
	}

	return nums, nil
}

func runClosestPair(ctx context.Context, o options, runID string, log *logging.Logger, pts []closestpair.Point, out io.Writer) (int, error) {
	tr := closestpair.Solve(pts)
	run := writers.ClosestPairRun(runID, tr)
	if err := emit(o, out, run, tr, closestpair.IsResult); err != nil {
		return tr.Len(), err
	}

	last, _ := tr.Last()
	if closestpair.IsError(last) {
		return tr.Len(), fmt.Errorf("closest-pair: %s", last.Message)
	}

	if o.verify {
		want, _, _ := closestpair.BruteForce(pts)
		got := *last.Distance
		ok := math.Abs(got-want) <= verifyTolerance
		log.LogVerify(ctx, got, want, ok)
		if !ok {
			return tr.Len(), fmt.Errorf("closest-pair: distance %v disagrees with brute force %v", got, want)
		}
	}

	return tr.Len(), nil
}

func runKaratsuba(ctx context.Context, o options, runID string, log *logging.Logger, nums []int64, out io.Writer) (int, error) {
	if len(nums)%2 == 1 {
		log.WarnContext(ctx, "ignoring unpaired trailing value", "value", nums[len(nums)-1])
	}

	steps := 0
	for i, pr := range karatsuba.MultiplyPairs(nums) {
		steps += pr.Trace.Len()
		if i > 0 {
			fmt.Fprintln(out)
		}
		run := writers.KaratsubaRun(runID, pr.Trace)
		if err := emit(o, out, run, pr.Trace, karatsuba.IsFinal); err != nil {
			return steps, err
		}
		if err := writeTrees(o, out, pr); err != nil {
			return steps, err
		}
	}

	if len(nums) > 2 {
		paired := nums[:len(nums)/2*2]
		log.InfoContext(ctx, "product of all paired values", "product", karatsuba.ProductAll(paired))
	}

	return steps, nil
}

// emit writes either the whole run in the chosen format or, with -step or
// -final, a single text snapshot selected with a trace.Player.
func emit[E any](o options, out io.Writer, run writers.Run, tr trace.Trace[E], isFinal func(E) bool) error {
	if o.step < 0 && !o.final {
		return writers.Write(o.format, out, run)
	}

	p := trace.NewPlayer(tr, isFinal)
	switch {
	case o.final:
		// Error traces have no final step; show where they stopped.
		if !p.JumpToFinal() {
			if err := p.Seek(p.Len() - 1); err != nil {
				return err
			}
		}
	default:
		if err := p.Seek(o.step); err != nil {
			return fmt.Errorf("%w: -step: %w", errUsage, err)
		}
	}

	return writers.WriteSnapshot(out, run, p.Step())
}

func writeTrees(o options, out io.Writer, pr karatsuba.PairRun) error {
	if o.tree {
		root, err := karatsuba.BuildCallTree(pr.Trace)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "# call tree")
		if err := writers.WriteCallTree(out, root); err != nil {
			return err
		}
	}
	if o.digits {
		for _, v := range []int64{pr.A, pr.B} {
			fmt.Fprintf(out, "# digits of %d\n", v)
			if err := writers.WriteDigitTree(out, karatsuba.DigitTree(v, -1)); err != nil {
				return err
			}
		}
	}

	return nil
}

// openInput opens name ("-" for stdin), decompressing *.zst files.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	var rc io.ReadCloser = io.NopCloser(stdin)
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		rc = f
	}
	if !strings.HasSuffix(name, ".zst") {
		return rc, nil
	}

	zr, err := writers.NewZstdReader(rc)
	if err != nil {
		rc.Close()

		return nil, err
	}

	return multiCloser{Reader: zr, closers: []io.Closer{zr, rc}}, nil
}

// openOutput returns the destination of the run. Close flushes the zstd
// stream and closes a file opened for -o; stdout itself is never closed.
func openOutput(o options, stdout io.Writer) (io.WriteCloser, error) {
	var (
		w       io.Writer = stdout
		closers []io.Closer
	)
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return nil, err
		}
		w = f
		closers = append(closers, f)
	}
	if o.zstd {
		zw, err := writers.NewZstdWriter(w, o.zstdLevel)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}

			return nil, err
		}
		w = zw
		closers = append([]io.Closer{zw}, closers...)
	}

	return multiCloser{Writer: w, closers: closers}, nil
}

// multiCloser closes its closers in order and joins their errors.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (m multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}
