package heuristic

import (
	"sort"

	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/sift"
)

// degreeOrder returns every node id ordered by total degree
// (UpDegree+DownDegree), descending if decreasing is true and ascending
// otherwise; ties break toward the lower id for determinism.
func (e *Engine) degreeOrder(decreasing bool) []int {
	ids := e.Graph.AllNodeIDs()
	sort.SliceStable(ids, func(i, j int) bool {
		ni, nj := e.Graph.Node(ids[i]), e.Graph.Node(ids[j])
		di, dj := ni.UpDegree()+ni.DownDegree(), nj.UpDegree()+nj.DownDegree()
		if di != dj {
			if decreasing {
				return di > dj
			}
			return di < dj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// RunSifting runs the sifting driver: nodes are visited in decreasing
// order of total degree, and each is moved to its crossing-minimizing
// position on its own layer via [sift.Total]. A pass that improves
// nothing is retried once with the nodes in increasing-degree order
// before standard termination is allowed to fire — a different
// visitation order can still surface an improving move the first one
// missed, since an earlier sift changes the positions later sifts see.
func RunSifting(e *Engine) Result {
	decreasing := true
	pass := 0
	for {
		pass++
		passImproved := false
		for _, node := range e.degreeOrder(decreasing) {
			sift.Total(e.Graph, e.Cross, node)
			improved, reason := e.Step()
			if improved {
				passImproved = true
			}
			if reason != engineerr.TerminationNone {
				return e.result(reason)
			}
		}

		if passImproved {
			decreasing = true
			if stop, reason := e.EndPass(pass, true); stop {
				return e.result(reason)
			}
			continue
		}

		if decreasing {
			decreasing = false
			continue
		}

		decreasing = true
		stop, reason := e.EndPass(pass, false)
		if stop {
			return e.result(reason)
		}
	}
}
