package sift

import (
	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/stretch"
)

// Total sifts node on its own layer to minimize total crossings, using
// [crossing.Counter.CrossingsAround] over every position on the layer. On
// a tie it keeps the node's current position. It refreshes the crossing
// counter for exactly the channels touched (the node's own up and down
// channels) before returning. Returns the node's final position.
func Total(g *layered.Graph, cc *crossing.Counter, node int) int {
	n := g.Node(node)
	layer := n.Layer
	size := g.LayerSize(layer)
	current := n.Position

	values := cc.CrossingsAround(node, 0, size-1)
	best := argminKeepingTie(values, current)
	if best != current {
		g.RepositionNode(node, best)
		refreshChannels(g, cc, layer)
	}
	return best
}

// Edge sifts node on its own layer to minimize the maximum crossing
// count borne by any edge incident on node, using total crossings as a
// deterministic tie-breaker, and the node's current position as the
// final tie-breaker. edge identifies the pivot edge that selected node
// for sifting (per the mce/mce-s drivers); see
// [crossing.Counter.EdgeCrossingsAround].
func Edge(g *layered.Graph, cc *crossing.Counter, edge, node int) int {
	n := g.Node(node)
	layer := n.Layer
	size := g.LayerSize(layer)
	current := n.Position

	bottleneck, total := cc.EdgeCrossingsAround(edge, node, 0, size-1)
	best := current
	bestBottleneck, bestTotal := bottleneck[current], total[current]
	for x := 0; x < size; x++ {
		if bottleneck[x] < bestBottleneck ||
			(bottleneck[x] == bestBottleneck && total[x] < bestTotal) {
			best, bestBottleneck, bestTotal = x, bottleneck[x], total[x]
		}
	}
	if best != current {
		g.RepositionNode(node, best)
		refreshChannels(g, cc, layer)
	}
	return best
}

// Stretch sifts node on its own layer to minimize total stretch, using
// [stretch.Counter.TotalStretchAround]. On a tie it keeps the node's
// current position.
func Stretch(g *layered.Graph, sc *stretch.Counter, node int) int {
	n := g.Node(node)
	layer := n.Layer
	size := g.LayerSize(layer)
	current := n.Position

	values := sc.TotalStretchAround(node, 0, size-1)
	best := current
	bestVal := values[current]
	for x := 0; x < size; x++ {
		if values[x] < bestVal {
			best, bestVal = x, values[x]
		}
	}
	if best != current {
		g.RepositionNode(node, best)
		for pos := min(current, best); pos <= max(current, best); pos++ {
			m := g.Node(g.NodeAt(layer, pos))
			for _, e := range m.UpEdges {
				sc.RecountEdge(e)
			}
			for _, e := range m.DownEdges {
				sc.RecountEdge(e)
			}
		}
	}
	return best
}

func argminKeepingTie(values []int, current int) int {
	best := current
	bestVal := values[current]
	for x, v := range values {
		if v < bestVal {
			best, bestVal = x, v
		}
	}
	return best
}

func refreshChannels(g *layered.Graph, cc *crossing.Counter, layer int) {
	if layer-1 >= 0 {
		cc.RecountChannel(layer - 1)
	}
	if layer < g.NumLayers()-1 {
		cc.RecountChannel(layer)
	}
}
