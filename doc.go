// Package dacviz records divide-and-conquer algorithms as ordered,
// replayable traces, so every intermediate decision can be inspected,
// stepped through, exported or tested after the run.
//
// 🚀 What is dacviz?
//
//	Two instrumented engines over one shared trace model:
//		• closestpair: closest pair of points in the plane, O(n log n)
//		• karatsuba:   Karatsuba integer multiplication, base 10
//		• trace:       append-only Builder, immutable Trace, step Player
//
// ✨ Why dacviz?
//
//   - Deterministic – same input, same trace, event for event
//   - Replayable – any step can be rendered without rerunning the engine
//   - Honest – invalid input is a trace event, never a panic
//   - Checkable – traces rebuild into call trees and reference answers
//
// Layout:
//
//	closestpair/        — Solve, BruteForce, Event kinds
//	karatsuba/          — Multiply, BuildCallTree, DigitTree, MultiplyPairs
//	trace/              — Builder, Trace, Player
//	input/              — text parsers for points and integers
//	internal/writers/   — text and JSONL trace writers, zstd streams
//	internal/app/       — the dacviz command line
//	cmd/dacviz/         — main
//	examples/           — runnable scenarios
//
// Quick start:
//
//	tr := closestpair.Solve([]closestpair.Point{{0, 0}, {5, 5}, {1, 1}, {9, 0}})
//	p := trace.NewPlayer(tr, closestpair.IsResult)
//	p.JumpToFinal()
//	e, _ := p.Current()
//	fmt.Println(e.Message) // Found closest pair: (0,0) and (1,1) with distance 1.41
//
// Engines are single-threaded and side-effect free apart from the optional
// observer hooks (closestpair.WithOnEvent, karatsuba.WithOnStep), which run
// synchronously as each step is recorded.
package dacviz
