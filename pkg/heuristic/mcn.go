package heuristic

import (
	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/sift"
)

// RunMCN runs the maximum-crossings-node driver. Each pass clears every
// node's Fixed flag, then repeatedly picks the unfixed node bearing the
// most crossings ([crossing.Counter.MaxCrossingsUnfixedNode]), total-
// sifts it, and fixes it; the pass ends once every node is fixed.
func RunMCN(e *Engine) Result {
	pass := 0
	for {
		pass++
		for i := 0; i < e.Graph.NumNodes(); i++ {
			e.Graph.Node(i).Fixed = false
		}

		passImproved := false
		for {
			node, ok := e.Cross.MaxCrossingsUnfixedNode()
			if !ok {
				break
			}
			sift.Total(e.Graph, e.Cross, node)
			e.Graph.Node(node).Fixed = true

			improved, reason := e.Step()
			if improved {
				passImproved = true
			}
			if reason != engineerr.TerminationNone {
				return e.result(reason)
			}
		}

		stop, reason := e.EndPass(pass, passImproved)
		if stop {
			return e.result(reason)
		}
	}
}
