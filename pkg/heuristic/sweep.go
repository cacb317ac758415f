package heuristic

import (
	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/order"
)

// sweepAssigner assigns Weight to every node on layer l using the
// neighbors selected by o, per one of the two weight primitives.
type sweepAssigner func(g *layered.Graph, l int, o order.Orientation, isolated order.IsolatedPolicy)

// runSweep drives the shared median/barycenter pass structure: an
// upward sweep sorts layers 1..NumLayers-1 using each layer's
// already-settled neighbors below, then a downward sweep sorts layers
// NumLayers-2..0 using neighbors above. A full upward+downward pass that
// improves no objective ends the run under standard termination.
func runSweep(e *Engine, assign sweepAssigner, isolated order.IsolatedPolicy) Result {
	pass := 0
	for {
		pass++
		passImproved := false

		for l := 1; l < e.Graph.NumLayers(); l++ {
			if e.Graph.LayerFixed(l) {
				continue
			}
			assign(e.Graph, l, order.Downward, isolated)
			e.refreshLayer(l)
			improved, reason := e.Step()
			if improved {
				passImproved = true
			}
			if reason != engineerr.TerminationNone {
				return e.result(reason)
			}
		}

		for l := e.Graph.NumLayers() - 2; l >= 0; l-- {
			if e.Graph.LayerFixed(l) {
				continue
			}
			assign(e.Graph, l, order.Upward, isolated)
			e.refreshLayer(l)
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

// RunBarycenter runs the barycenter driver: alternating upward/downward
// sweeps assigning each layer's weight as the mean-of-means barycenter
// of its settled neighbors (see [order.AssignBarycenter]).
func RunBarycenter(e *Engine, isolated order.IsolatedPolicy) Result {
	assign := func(g *layered.Graph, l int, o order.Orientation, isolated order.IsolatedPolicy) {
		order.AssignBarycenter(g, l, o, true, isolated)
	}
	return runSweep(e, assign, isolated)
}

// RunMedian runs the median driver: alternating upward/downward sweeps
// assigning each layer's weight as the median position of its settled
// neighbors (see [order.AssignMedian]).
func RunMedian(e *Engine, isolated order.IsolatedPolicy) Result {
	return runSweep(e, order.AssignMedian, isolated)
}

// RunModifiedBarycenter runs the modified-barycenter driver. Each pass
// clears every layer's Fixed flag, then repeatedly: finds the unfixed
// layer bearing the most crossings on its incident channel(s), fixes it,
// sorts it using both neighbor directions at once, then does one
// upward sweep of the (unfixed) layers above it and one downward sweep
// of the (unfixed) layers below it to let their order settle against
// the newly-fixed layer. The pass ends once every layer is fixed.
func RunModifiedBarycenter(e *Engine, isolated order.IsolatedPolicy) Result {
	pass := 0
	for {
		pass++
		for l := 0; l < e.Graph.NumLayers(); l++ {
			e.Graph.SetLayerFixed(l, false)
		}

		passImproved := false
		for {
			anchor, ok := e.maxCrossingsUnfixedLayer()
			if !ok {
				break
			}
			e.Graph.SetLayerFixed(anchor, true)
			order.AssignBarycenter(e.Graph, anchor, order.Both, true, isolated)
			e.refreshLayer(anchor)
			improved, reason := e.Step()
			if improved {
				passImproved = true
			}
			if reason != engineerr.TerminationNone {
				return e.result(reason)
			}

			for l := anchor + 1; l < e.Graph.NumLayers(); l++ {
				if e.Graph.LayerFixed(l) {
					continue
				}
				order.AssignBarycenter(e.Graph, l, order.Downward, true, isolated)
				e.refreshLayer(l)
				improved, reason := e.Step()
				if improved {
					passImproved = true
				}
				if reason != engineerr.TerminationNone {
					return e.result(reason)
				}
			}
			for l := anchor - 1; l >= 0; l-- {
				if e.Graph.LayerFixed(l) {
					continue
				}
				order.AssignBarycenter(e.Graph, l, order.Upward, true, isolated)
				e.refreshLayer(l)
				improved, reason := e.Step()
				if improved {
					passImproved = true
				}
				if reason != engineerr.TerminationNone {
					return e.result(reason)
				}
			}
		}

		stop, reason := e.EndPass(pass, passImproved)
		if stop {
			return e.result(reason)
		}
	}
}

// maxCrossingsUnfixedLayer returns the unfixed layer with the highest
// crossing count summed over its incident channel(s), breaking ties
// toward the lowest index. ok is false if every layer is fixed.
func (e *Engine) maxCrossingsUnfixedLayer() (layer int, ok bool) {
	best, bestCrossings := -1, -1
	for l := 0; l < e.Graph.NumLayers(); l++ {
		if e.Graph.LayerFixed(l) {
			continue
		}
		cnt := 0
		if l-1 >= 0 {
			cnt += e.Cross.ChannelCrossings(l - 1)
		}
		if l < e.Graph.NumLayers()-1 {
			cnt += e.Cross.ChannelCrossings(l)
		}
		if cnt > bestCrossings {
			best, bestCrossings = l, cnt
		}
	}
	return best, best >= 0
}
