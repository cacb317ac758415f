package order

import (
	"sort"

	"github.com/ordbench/layerheur/pkg/layered"
)

// LayerSort stably sorts layer l by ascending Weight and reassigns
// positions to match. Stability keeps nodes of equal weight in their
// relative order, which downstream heuristics rely on for reproducible
// tie-breaking.
func LayerSort(g *layered.Graph, l int) {
	size := g.LayerSize(l)
	order := make([]int, size)
	for pos := 0; pos < size; pos++ {
		order[pos] = g.NodeAt(l, pos)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return g.Node(order[i]).Weight < g.Node(order[j]).Weight
	})
	for pos, nodeID := range order {
		g.RepositionNode(nodeID, pos)
	}
}
