package heuristic

import "github.com/ordbench/layerheur/pkg/engineerr"

// RunPostProcess performs repeated even/odd adjacent-swap passes: an
// even pass considers every even layer L and, within it, every even
// position i, testing whether swapping nodes[L][i] and nodes[L][i+1]
// strictly reduces the crossings on L's incident channel(s); an odd
// pass considers odd layers and odd positions the same way. A pair is
// swapped when [crossing.Counter.CrossingsIfSwapped] confirms a strict
// reduction. Because this driver can follow any other heuristic, every
// swap refreshes both the crossing and the stretch trackers (not total
// crossings alone) so the objective tracker's other four objectives
// stay accurate afterward. Passes alternate until a full even+odd round
// makes no swap.
func RunPostProcess(e *Engine) Result {
	pass := 0
	for {
		pass++
		passImproved := false
		swapped := false

		for _, parity := range [2]int{0, 1} {
			for l := parity; l < e.Graph.NumLayers(); l += 2 {
				size := e.Graph.LayerSize(l)
				for pos := parity; pos+1 < size; pos += 2 {
					a := e.Graph.NodeAt(l, pos)
					b := e.Graph.NodeAt(l, pos+1)

					current := e.Cross.TotalCrossings()
					if e.Cross.CrossingsIfSwapped(a, b) >= current {
						continue
					}

					e.Graph.SwapPositions(l, pos, pos+1)
					e.refreshLayer(l)
					swapped = true

					improved, reason := e.Step()
					if improved {
						passImproved = true
					}
					if reason != engineerr.TerminationNone {
						return e.result(reason)
					}
				}
			}
		}

		stop, reason := e.EndPass(pass, passImproved || swapped)
		if stop {
			return e.result(reason)
		}
		if !swapped {
			return e.result(engineerr.TerminationNoImprovement)
		}
	}
}
