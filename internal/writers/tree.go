package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/dacviz/karatsuba"
)

var subLabels = [3]string{"z0", "z1", "z2"}

// WriteCallTree prints the recursion tree of a Karatsuba run, one call per
// line, children indented under their parent and labelled z0, z1, z2.
func WriteCallTree(w io.Writer, root *karatsuba.Node) error {
	bw := bufio.NewWriter(w)
	var walk func(n *karatsuba.Node, label string, depth int)
	walk = func(n *karatsuba.Node, label string, depth int) {
		fmt.Fprintf(bw, "%s%s%d × %d = %d", strings.Repeat("  ", depth), label, n.X, n.Y, n.Result)
		if n.Split != nil {
			fmt.Fprintf(bw, "  [m=%d]", n.Split.M)
		}
		fmt.Fprintln(bw)
		for i, c := range n.Children {
			walk(c, subLabels[i]+": ", depth+1)
		}
	}
	walk(root, "", 0)

	return bw.Flush()
}

// WriteDigitTree prints a digit-split tree, one value per line.
func WriteDigitTree(w io.Writer, root *karatsuba.DigitNode) error {
	bw := bufio.NewWriter(w)
	var walk func(n *karatsuba.DigitNode, depth int)
	walk = func(n *karatsuba.DigitNode, depth int) {
		fmt.Fprintf(bw, "%s%d\n", strings.Repeat("  ", depth), n.Value)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)

	return bw.Flush()
}
