package buttonfx

import (
	"fmt"
	"os"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("buttonfx debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[buttonfx] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugLogClick prints the clicked node and the tweener load to stderr.
func (s *Scene) debugLogClick(n *Node) {
	name := "<none>"
	if n != nil {
		name = n.Name
	}
	_, _ = fmt.Fprintf(os.Stderr, "[buttonfx] click: %q | tweens active: %d paused: %d\n",
		name, s.tweens.Active(), s.tweens.Paused())
}
