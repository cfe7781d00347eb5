// Package trace holds the shared event-sequence model that every dacviz
// engine records into and every playback layer reads from.
//
// 🚀 What is a trace?
//
//	A trace is the complete, ordered list of decisions an algorithm made
//	during one run. Event k always describes the state after exactly k
//	emitted steps, so replaying the same input yields the same sequence.
//
// ✨ Building blocks:
//   - Builder[E] — append-only recorder owned by a single engine call.
//     Build() seals it and hands the events to the caller.
//   - Trace[E]   — immutable, indexable view (At, Index, Last, All).
//   - Player[E]  — cursor over a Trace for step-by-step playback
//     (Next, Prev, Seek, JumpToFinal).
//
// ⚙️ Usage:
//
//	b := trace.NewBuilder[string](0)
//	b.Emit("divide")
//	b.Emit("result")
//	tr := b.Build()
//
//	p := trace.NewPlayer(tr, func(e string) bool { return e == "result" })
//	p.JumpToFinal()
//	e, _ := p.Current() // "result"
//
// Concurrency: a Trace is read-only after Build and safe to share between
// goroutines. Builder and Player are single-goroutine values.
package trace
