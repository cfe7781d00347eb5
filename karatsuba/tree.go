package karatsuba

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dacviz/trace"
)

// Node is one recursion level rebuilt from a trace.
//
// Leaves are base cases (or the direct shortcut) and have no children.
// Inner nodes have exactly three children, in the order the products were
// computed: Children[0] → z0 (lows), Children[1] → z1 (sums), Children[2] → z2 (highs).
type Node struct {
	Level    int
	X, Y     int64
	Split    *Split
	Sub      *SubProducts
	Result   int64
	Children []*Node
}

// Leaf reports whether n is a base case.
func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Recompute evaluates the tree bottom-up, multiplying leaves directly and
// applying Combine at inner nodes. It ignores recorded results, so comparing
// it with Result checks the trace end to end.
func (n *Node) Recompute() int64 {
	if n.Leaf() {
		return n.X * n.Y
	}
	sub := SubProducts{
		Z0: n.Children[0].Recompute(),
		Z1: n.Children[1].Recompute(),
		Z2: n.Children[2].Recompute(),
	}

	return Combine(sub, n.Split.M)
}

// Walk visits n and its descendants in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// BuildCallTree rebuilds the recursion tree recorded in tr.
//
// The root of a direct trace is a single leaf holding the signed operands.
// Otherwise the root is the level-0 call with magnitudes; the sign lives
// only in the final step (see Result).
//
// Errors:
//   - ErrMalformedTrace — tr is not a sequence Multiply produces, or a
//     combine step disagrees with the results of its children.
func BuildCallTree(tr trace.Trace[Step]) (*Node, error) {
	steps := tr.Events()
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformedTrace)
	}

	// Direct shortcut: the whole trace is one step.
	if steps[0].Kind == KindDirect {
		if len(steps) != 1 {
			return nil, fmt.Errorf("%w: direct step followed by %d steps", ErrMalformedTrace, len(steps)-1)
		}
		s := steps[0]

		return &Node{X: s.X, Y: s.Y, Result: s.Result}, nil
	}

	p := &treeParser{steps: steps}
	root, err := p.call(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(steps)-1 || steps[p.pos].Kind != KindFinal {
		return nil, fmt.Errorf("%w: expected final step at %d", ErrMalformedTrace, p.pos)
	}

	return root, nil
}

// treeParser consumes steps in pre-order:
//
//	call  := start (base-case | split call call call combine)
type treeParser struct {
	steps []Step
	pos   int
}

// next consumes one step, which must belong to level.
func (p *treeParser) next(level int) (Step, error) {
	if p.pos >= len(p.steps) {
		return Step{}, fmt.Errorf("%w: trace ended inside level %d", ErrMalformedTrace, level)
	}
	s := p.steps[p.pos]
	if s.Level != level {
		return Step{}, fmt.Errorf("%w: step %d has level %d, want %d", ErrMalformedTrace, p.pos, s.Level, level)
	}
	p.pos++

	return s, nil
}

func (p *treeParser) call(level int) (*Node, error) {
	start, err := p.next(level)
	if err != nil {
		return nil, err
	}
	if start.Kind != KindStart {
		return nil, fmt.Errorf("%w: step %d is %s, want start", ErrMalformedTrace, p.pos-1, start.Kind)
	}

	head, err := p.next(level)
	if err != nil {
		return nil, err
	}
	switch head.Kind {
	case KindBaseCase:
		return &Node{Level: level, X: head.X, Y: head.Y, Result: head.Result}, nil
	case KindSplit:
	default:
		return nil, fmt.Errorf("%w: step %d is %s, want base-case or split", ErrMalformedTrace, p.pos-1, head.Kind)
	}

	node := &Node{Level: level, X: head.X, Y: head.Y, Split: head.Split}
	for i := 0; i < 3; i++ {
		child, err := p.call(level + 1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	combine, err := p.next(level)
	if err != nil {
		return nil, err
	}
	if combine.Kind != KindCombine || combine.Sub == nil {
		return nil, fmt.Errorf("%w: step %d is %s, want combine", ErrMalformedTrace, p.pos-1, combine.Kind)
	}
	got := SubProducts{Z0: node.Children[0].Result, Z1: node.Children[1].Result, Z2: node.Children[2].Result}
	if got != *combine.Sub {
		return nil, fmt.Errorf("%w: combine at step %d records %+v, children give %+v", ErrMalformedTrace, p.pos-1, *combine.Sub, got)
	}
	node.Sub = combine.Sub
	node.Result = combine.Result

	return node, nil
}

// DigitNode is one node of a digit-split tree.
type DigitNode struct {
	Value    int64
	Children []*DigitNode // nil for leaves, else [left digits, right digits]
}

// DigitTree splits the decimal digits of |n| in half (the left half takes
// the extra digit) recursively, stopping at single digits or after maxDepth
// levels of splitting. A maxDepth < 0 means DigitTreeDepth. Leading zeros
// of a right half are dropped, so 1005 splits into 10 and 5.
func DigitTree(n int64, maxDepth int) *DigitNode {
	if maxDepth < 0 {
		maxDepth = DigitTreeDepth
	}

	return digitTree(abs(n), 0, maxDepth)
}

func digitTree(n int64, depth, maxDepth int) *DigitNode {
	node := &DigitNode{Value: n}
	if n < Base || depth >= maxDepth {
		return node
	}
	s := strconv.FormatInt(n, 10)
	mid := (len(s) + 1) / 2
	left, _ := strconv.ParseInt(s[:mid], 10, 64)
	right, _ := strconv.ParseInt(s[mid:], 10, 64)
	node.Children = []*DigitNode{
		digitTree(left, depth+1, maxDepth),
		digitTree(right, depth+1, maxDepth),
	}

	return node
}
