package heuristic

import (
	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/sift"
)

// MCEMode selects how a mce pass treats the endpoints of the pivot edge
// it just picked.
type MCEMode int

const (
	// MCENodes edge-sifts each endpoint that is not yet fixed, then fixes
	// whichever endpoints it sifted.
	MCENodes MCEMode = iota
	// MCEEdges edge-sifts both endpoints regardless of their Fixed flag,
	// and leaves both unfixed — only the pivot edge itself is fixed.
	MCEEdges
	// MCEEarly behaves like MCENodes, except the pass stops immediately,
	// without sifting, once the chosen pivot edge's two endpoints are
	// both already fixed.
	MCEEarly
	// MCEOneNode sifts only the endpoint with the larger
	// up_crossings+down_crossings, then fixes it.
	MCEOneNode
)

// edgeSifter moves node, an endpoint of edge, to its bottleneck-
// minimizing position on its own layer, and reports the position chosen.
type edgeSifter func(g *layered.Graph, cc *crossing.Counter, edge, node int) int

// RunMCE runs the maximum-crossings-edge driver: each pass clears every
// node's and edge's Fixed flag, then repeatedly picks the unfixed edge
// bearing the most crossings ([crossing.Counter.MaxCrossingsUnfixedEdge])
// and sifts one or both endpoints with [sift.Edge] (bottleneck-
// minimizing, total-crossings tiebreak), per mode.
func RunMCE(e *Engine, mode MCEMode) Result {
	return runMCE(e, mode, sift.Edge)
}

// RunMCES runs the mce-s driver: identical to [RunMCE] in MCENodes mode,
// except each endpoint is sifted with [sift.Total] (total-crossing
// minimizing) in place of the bottleneck-aware sifter.
func RunMCES(e *Engine) Result {
	totalAdapter := func(g *layered.Graph, cc *crossing.Counter, edge, node int) int {
		return sift.Total(g, cc, node)
	}
	return runMCE(e, MCENodes, totalAdapter)
}

func runMCE(e *Engine, mode MCEMode, sifter edgeSifter) Result {
	pass := 0
	for {
		pass++
		for i := 0; i < e.Graph.NumNodes(); i++ {
			e.Graph.Node(i).Fixed = false
		}
		for i := 0; i < e.Graph.NumEdges(); i++ {
			e.Graph.Edge(i).Fixed = false
		}

		passImproved := false
		for {
			edge, ok := e.Cross.MaxCrossingsUnfixedEdge()
			if !ok {
				break
			}
			ed := e.Graph.Edge(edge)
			down, up := e.Graph.Node(ed.Down), e.Graph.Node(ed.Up)

			if mode == MCEEarly && down.Fixed && up.Fixed {
				break
			}

			var reason engineerr.TerminationReason
			switch mode {
			case MCEEdges:
				passImproved, reason = e.siftAndMark(sifter, edge, ed.Down, passImproved, false)
				if reason == engineerr.TerminationNone {
					passImproved, reason = e.siftAndMark(sifter, edge, ed.Up, passImproved, false)
				}
			case MCEOneNode:
				node := ed.Down
				if incidentCrossings(e.Graph, ed.Up) > incidentCrossings(e.Graph, ed.Down) {
					node = ed.Up
				}
				passImproved, reason = e.siftAndMark(sifter, edge, node, passImproved, true)
			default: // MCENodes, MCEEarly
				if !down.Fixed {
					passImproved, reason = e.siftAndMark(sifter, edge, ed.Down, passImproved, true)
				}
				if reason == engineerr.TerminationNone && !up.Fixed {
					passImproved, reason = e.siftAndMark(sifter, edge, ed.Up, passImproved, true)
				}
			}
			if reason != engineerr.TerminationNone {
				return e.result(reason)
			}

			ed.Fixed = true
		}

		stop, reason := e.EndPass(pass, passImproved)
		if stop {
			return e.result(reason)
		}
	}
}

// siftAndMark sifts node via sifter, steps the engine, optionally fixes
// node, and folds the step's improvement into passImproved.
func (e *Engine) siftAndMark(sifter edgeSifter, edge, node int, passImproved, fix bool) (bool, engineerr.TerminationReason) {
	sifter(e.Graph, e.Cross, edge, node)
	if fix {
		e.Graph.Node(node).Fixed = true
	}
	improved, reason := e.Step()
	return passImproved || improved, reason
}

// incidentCrossings sums the current crossing count of every edge
// incident on node, in either direction.
func incidentCrossings(g *layered.Graph, nodeID int) int {
	n := g.Node(nodeID)
	total := 0
	for _, e := range n.UpEdges {
		total += g.Edge(e).Crossings
	}
	for _, e := range n.DownEdges {
		total += g.Edge(e).Crossings
	}
	return total
}
