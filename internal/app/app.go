// Package app implements the dacviz command line.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/dacviz/internal/config"
	"github.com/katalvlaran/dacviz/internal/logging"
	"github.com/katalvlaran/dacviz/internal/writers"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// errUsage marks errors caused by the command line rather than the input.
var errUsage = errors.New("usage")

const usageHead = `usage: dacviz <closest-pair|karatsuba> [flags] [file|-]

Runs a divide-and-conquer algorithm on the input and prints its trace.
closest-pair reads one "x y" point per line; karatsuba reads integers and
multiplies them two at a time. Files ending in .zst are decompressed.

flags:
`

// options is one parsed command line.
type options struct {
	algorithm string
	input     string
	format    string
	out       string
	zstd      bool
	zstdLevel int
	step      int
	final     bool
	tree      bool
	digits    bool
	verify    bool
	logLevel  string
	logFormat string
}

// Run executes the command line with the process's stdin.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, os.Stdin, stdout, stderr)
}

// RunContext executes the command line and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// 1) Defaults come from the environment; flags override them.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "dacviz:", err)

		return ExitUsage
	}

	opts, fs, err := parseArgs(argv, cfg)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, fs)

		return ExitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "dacviz:", err)
		printUsage(stderr, fs)

		return ExitUsage
	}

	// 2) One logger and run id per invocation.
	logger, err := logging.New(stderr, opts.logFormat, opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "dacviz:", err)

		return ExitUsage
	}
	runID := uuid.NewString()
	log := logger.WithRun(runID).WithAlgorithm(opts.algorithm)

	// 3) Run and report.
	steps, err := execute(ctx, opts, runID, log, stdin, stdout)
	log.LogRun(ctx, steps, err)
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "dacviz:", err)

		return ExitUsage
	default:
		fmt.Fprintln(stderr, "dacviz:", err)

		return ExitRuntime
	}
}

// parseArgs splits off the subcommand and parses its flags. fs is returned
// for usage output even when err is set; it is nil only without a subcommand.
func parseArgs(argv []string, cfg config.Config) (options, *flag.FlagSet, error) {
	var o options
	if len(argv) == 0 {
		return o, nil, errors.New("missing subcommand")
	}
	switch argv[0] {
	case "-h", "-help", "--help", "help":
		return o, nil, flag.ErrHelp
	case writers.AlgClosestPair, writers.AlgKaratsuba:
		o.algorithm = argv[0]
	default:
		return o, nil, fmt.Errorf("unknown subcommand %q", argv[0])
	}

	fs := flag.NewFlagSet("dacviz "+o.algorithm, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.format, "format", cfg.OutputFormat, "output format: "+strings.Join(writers.Formats(), ", "))
	fs.StringVar(&o.out, "o", "", "write output to `path` instead of stdout")
	fs.BoolVar(&o.zstd, "zstd", false, "compress output with zstd")
	fs.IntVar(&o.step, "step", -1, "print only the snapshot at step `k` (0-based)")
	fs.BoolVar(&o.final, "final", false, "print only the final snapshot")
	fs.BoolVar(&o.tree, "tree", false, "karatsuba: print the recursion tree after the trace")
	fs.BoolVar(&o.digits, "digits", false, "karatsuba: print the digit-split tree of each operand")
	fs.BoolVar(&o.verify, "verify", false, "closest-pair: check the answer against brute force")
	fs.StringVar(&o.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", cfg.LogFormat, "log format: text, json")
	o.zstdLevel = cfg.ZstdLevel

	if err := fs.Parse(argv[1:]); err != nil {
		return o, fs, err
	}

	switch fs.NArg() {
	case 0:
		o.input = "-"
	case 1:
		o.input = fs.Arg(0)
	default:
		return o, fs, fmt.Errorf("expected at most one input, got %d", fs.NArg())
	}

	if _, err := writers.Lookup(o.format); err != nil {
		return o, fs, err
	}
	if o.final && o.step >= 0 {
		return o, fs, errors.New("-step and -final are mutually exclusive")
	}
	if o.algorithm != writers.AlgKaratsuba && (o.tree || o.digits) {
		return o, fs, errors.New("-tree and -digits apply to karatsuba only")
	}
	if o.algorithm != writers.AlgClosestPair && o.verify {
		return o, fs, errors.New("-verify applies to closest-pair only")
	}

	return o, fs, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, usageHead)
	if fs == nil {
		// Both subcommands share one flag set.
		_, fs, _ = parseArgs([]string{writers.AlgKaratsuba}, config.Default())
	}
	fs.SetOutput(w)
	fs.PrintDefaults()
}
