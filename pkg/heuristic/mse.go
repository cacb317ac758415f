package heuristic

import (
	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/sift"
)

// RunMSE runs the maximum-stretch-edge driver: analogous to
// [RunMCE]/MCENodes, but each pass's pivot is the unfixed edge with the
// greatest stretch ([stretch.Counter.MaxStretchUnfixedEdge]), and
// endpoints are sifted to minimize total stretch ([sift.Stretch]).
func RunMSE(e *Engine) Result {
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
			edge, ok := e.Stretch.MaxStretchUnfixedEdge()
			if !ok {
				break
			}
			ed := e.Graph.Edge(edge)
			down, up := e.Graph.Node(ed.Down), e.Graph.Node(ed.Up)

			if !down.Fixed {
				sift.Stretch(e.Graph, e.Stretch, ed.Down)
				down.Fixed = true
				improved, reason := e.Step()
				if improved {
					passImproved = true
				}
				if reason != engineerr.TerminationNone {
					return e.result(reason)
				}
			}
			if !up.Fixed {
				sift.Stretch(e.Graph, e.Stretch, ed.Up)
				up.Fixed = true
				improved, reason := e.Step()
				if improved {
					passImproved = true
				}
				if reason != engineerr.TerminationNone {
					return e.result(reason)
				}
			}

			ed.Fixed = true
		}

		stop, reason := e.EndPass(pass, passImproved)
		if stop {
			return e.result(reason)
		}
	}
}
