package stretch

import "github.com/ordbench/layerheur/pkg/layered"

// Counter caches per-edge stretch values for a [layered.Graph] and their
// total. Like [crossing.Counter], it must be explicitly told to recompute
// after the graph's ordering changes; it does not observe mutations.
type Counter struct {
	g         *layered.Graph
	stretches []float64
	total     float64
}

// NewCounter creates a Counter for g and performs an initial FullRecount.
func NewCounter(g *layered.Graph) *Counter {
	c := &Counter{g: g, stretches: make([]float64, g.NumEdges())}
	c.FullRecount()
	return c
}

// FullRecount recomputes every edge's stretch and the total from the
// graph's current ordering.
func (c *Counter) FullRecount() {
	total := 0.0
	for i := 0; i < c.g.NumEdges(); i++ {
		e := c.g.Edge(i)
		s := edgeStretch(c.g, e)
		c.stretches[i] = s
		total += s
	}
	c.total = total
}

// RecountEdge recomputes a single edge's stretch and adjusts the cached
// total by the delta. Cheaper than FullRecount when only one edge's
// endpoint moved (e.g. after a sift that only touches one node).
func (c *Counter) RecountEdge(edgeID int) {
	e := c.g.Edge(edgeID)
	newVal := edgeStretch(c.g, e)
	c.total += newVal - c.stretches[edgeID]
	c.stretches[edgeID] = newVal
}

// EdgeStretch returns the cached stretch of the given edge.
func (c *Counter) EdgeStretch(edgeID int) float64 { return c.stretches[edgeID] }

// TotalStretch returns the cached sum of every edge's stretch.
func (c *Counter) TotalStretch() float64 { return c.total }

// BottleneckStretch returns the cached maximum stretch over every edge,
// and 0 if the graph has no edges.
func (c *Counter) BottleneckStretch() float64 {
	_, v := c.maxStretchEdge()
	return v
}

// MaxStretchEdge returns the id of the edge with the highest stretch,
// breaking ties by the smallest edge id. Panics if the graph has no edges.
func (c *Counter) MaxStretchEdge() int {
	id, _ := c.maxStretchEdge()
	if id < 0 {
		panic("stretch: MaxStretchEdge called on a graph with no edges")
	}
	return id
}

// MaxStretchUnfixedEdge is [Counter.MaxStretchEdge] restricted to edges
// whose Fixed flag is false, for the mse driver. ok is false if every
// edge is fixed.
func (c *Counter) MaxStretchUnfixedEdge() (edge int, ok bool) {
	best, bestVal := -1, 0.0
	for i, v := range c.stretches {
		if c.g.Edge(i).Fixed {
			continue
		}
		if best < 0 || v > bestVal {
			best, bestVal = i, v
		}
	}
	return best, best >= 0
}

func (c *Counter) maxStretchEdge() (int, float64) {
	best, bestVal := -1, 0.0
	for i, v := range c.stretches {
		if best < 0 || v > bestVal {
			best, bestVal = i, v
		}
	}
	return best, bestVal
}

func edgeStretch(g *layered.Graph, e *layered.Edge) float64 {
	down, up := g.Node(e.Down), g.Node(e.Up)
	downSize, upSize := g.LayerSize(down.Layer), g.LayerSize(up.Layer)
	if downSize < 2 || upSize < 2 {
		return 0
	}
	downNorm := float64(down.Position) / float64(downSize-1)
	upNorm := float64(up.Position) / float64(upSize-1)
	d := downNorm - upNorm
	if d < 0 {
		d = -d
	}
	return d
}
