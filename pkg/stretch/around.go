package stretch

import "github.com/ordbench/layerheur/pkg/layered"

// TotalStretchAround returns, for each candidate position x in
// [left,right] on node's own layer, the graph's total stretch if node
// were moved to x (every node between its current position and x
// shifting one place to keep position-identity). Unlike crossings, an
// edge's stretch depends only on its own two endpoints' positions, never
// on any other edge, so only the edges of node and of the shifted nodes
// contribute to the delta — no channel-wide sweep is needed.
func (c *Counter) TotalStretchAround(node, left, right int) []float64 {
	g := c.g
	n := g.Node(node)
	layerSize := g.LayerSize(n.Layer)

	current := 0.0
	for _, e := range allIncident(n) {
		current += c.stretches[e]
	}

	result := make([]float64, right-left+1)
	for x := left; x <= right; x++ {
		if x < 0 || x >= layerSize {
			panic("stretch: TotalStretchAround candidate position out of range")
		}
		atX := 0.0
		for _, e := range n.UpEdges {
			atX += stretchAt(g, g.Edge(e), x, true)
		}
		for _, e := range n.DownEdges {
			atX += stretchAt(g, g.Edge(e), x, false)
		}
		lo, hi, shift := x, n.Position-1, 1
		if x > n.Position {
			lo, hi, shift = n.Position+1, x, -1
		}
		for p := lo; p <= hi; p++ {
			o := g.Node(g.NodeAt(n.Layer, p))
			for _, e := range o.UpEdges {
				atX += stretchAt(g, g.Edge(e), p+shift, true) - c.stretches[e]
			}
			for _, e := range o.DownEdges {
				atX += stretchAt(g, g.Edge(e), p+shift, false) - c.stretches[e]
			}
		}
		result[x-left] = c.total + (atX - current)
	}
	return result
}

func allIncident(n *layered.Node) []int {
	edges := make([]int, 0, len(n.UpEdges)+len(n.DownEdges))
	edges = append(edges, n.UpEdges...)
	edges = append(edges, n.DownEdges...)
	return edges
}

// stretchAt computes an edge's stretch as if its moving endpoint sat at
// candidatePos instead of its current position. nodeIsDown tells whether
// the moving node is the edge's Down or Up endpoint.
func stretchAt(g *layered.Graph, e *layered.Edge, candidatePos int, nodeIsDown bool) float64 {
	down, up := g.Node(e.Down), g.Node(e.Up)
	downSize, upSize := g.LayerSize(down.Layer), g.LayerSize(up.Layer)
	if downSize < 2 || upSize < 2 {
		return 0
	}
	downPos, upPos := down.Position, up.Position
	if nodeIsDown {
		downPos = candidatePos
	} else {
		upPos = candidatePos
	}
	d := float64(downPos)/float64(downSize-1) - float64(upPos)/float64(upSize-1)
	if d < 0 {
		d = -d
	}
	return d
}
