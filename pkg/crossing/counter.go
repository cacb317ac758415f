package crossing

import (
	"sort"

	"github.com/ordbench/layerheur/pkg/layered"
)

// Counter tracks crossing counts for a [layered.Graph]: a per-edge count
// (mirrored onto layered.Edge.Crossings) and a per-channel total. It
// caches the per-channel totals, so [Counter.TotalCrossings] is a sum
// over channels rather than a recount; the caches change only when
// [Counter.FullRecount] or [Counter.RecountChannel] is called, which the
// heuristic drivers do after reordering a layer, not once per candidate
// position.
type Counter struct {
	g                *layered.Graph
	channelCrossings []int // channelCrossings[l] = crossings in the channel between layer l and l+1
}

// NewCounter creates a Counter for g and performs an initial FullRecount.
// g must already satisfy [layered.Graph.Validate].
func NewCounter(g *layered.Graph) *Counter {
	c := &Counter{g: g, channelCrossings: make([]int, max0(g.NumLayers()-1))}
	c.FullRecount()
	return c
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// TotalCrossings returns the graph's current total crossing count, the
// sum of the cached per-channel totals.
func (c *Counter) TotalCrossings() int {
	total := 0
	for _, ch := range c.channelCrossings {
		total += ch
	}
	return total
}

// ChannelCrossings returns the cached crossing count for the channel
// between layer l and l+1.
func (c *Counter) ChannelCrossings(l int) int { return c.channelCrossings[l] }

// FullRecount recomputes every edge's crossing count and every channel's
// total from the graph's current ordering. The Counter does not observe
// [layered.Graph.SwapPositions] or [layered.Graph.RepositionNode]; call
// this after any reordering whose channels were not refreshed with
// [Counter.RecountChannel] (e.g. a restored snapshot).
func (c *Counter) FullRecount() {
	for l := 0; l < c.g.NumLayers()-1; l++ {
		c.RecountChannel(l)
	}
}

// RecountChannel recomputes crossing counts for every edge in the channel
// between layer l and l+1, and the channel's total, in O(E log E) where E
// is the number of edges spanning that channel.
func (c *Counter) RecountChannel(l int) {
	downSize := c.g.LayerSize(l)
	upSize := c.g.LayerSize(l + 1)

	var edgeIDs []int
	for pos := 0; pos < downSize; pos++ {
		start := len(edgeIDs)
		edgeIDs = append(edgeIDs, c.g.Node(c.g.NodeAt(l, pos)).UpEdges...)
		own := edgeIDs[start:]
		sort.SliceStable(own, func(i, j int) bool {
			return c.g.Node(c.g.Edge(own[i]).Up).Position < c.g.Node(c.g.Edge(own[j]).Up).Position
		})
	}
	// edgeIDs is sorted by down-position (the down layer is walked in
	// position order) and, within one down node, by up-position, so two
	// edges sharing a down node are never counted as crossing.

	n := len(edgeIDs)
	upPos := make([]int, n)
	for i, e := range edgeIDs {
		upPos[i] = c.g.Node(c.g.Edge(e).Up).Position
	}

	leftCross := make([]int, n)
	fwd := newFenwick(upSize)
	for i := 0; i < n; i++ {
		inserted := i
		leftCross[i] = inserted - fwd.queryLE(upPos[i]) // # already-inserted with up-pos > this one
		fwd.add(upPos[i], 1)
	}

	rightCross := make([]int, n)
	bwd := newFenwick(upSize)
	for i := n - 1; i >= 0; i-- {
		rightCross[i] = bwd.queryLE(upPos[i] - 1) // # already-inserted (to the right) with up-pos < this one
		bwd.add(upPos[i], 1)
	}

	total := 0
	for i, e := range edgeIDs {
		cnt := leftCross[i] + rightCross[i]
		c.g.Edge(e).Crossings = cnt
		total += cnt
	}
	c.channelCrossings[l] = total / 2
}

// CrossingsIfSwapped returns the graph's total crossing count if n1 and n2
// — two adjacent nodes on the same layer — were exchanged, without
// mutating the graph. Only edges incident on n1 or n2 are examined, per
// the specification: an adjacent swap cannot change the relative order of
// any other pair of nodes.
func (c *Counter) CrossingsIfSwapped(n1, n2 int) int {
	a, b := c.g.Node(n1), c.g.Node(n2)
	if a.Layer != b.Layer {
		panic("crossing: CrossingsIfSwapped requires nodes on the same layer")
	}
	if diff := a.Position - b.Position; diff != 1 && diff != -1 {
		panic("crossing: CrossingsIfSwapped requires adjacent nodes")
	}

	delta := c.swapDelta(a.UpEdges, b.UpEdges, func(e int) int {
		return c.g.Node(c.g.Edge(e).Up).Position
	})
	delta += c.swapDelta(a.DownEdges, b.DownEdges, func(e int) int {
		return c.g.Node(c.g.Edge(e).Down).Position
	})
	return c.TotalCrossings() + delta
}

// swapDelta computes, for two node's edge sets sharing a channel, the
// change in crossing count between them if the nodes' positions on the
// swapped layer were exchanged. otherPos reads the position on the
// channel's unaffected side (the endpoint that is not the swapped layer).
func (c *Counter) swapDelta(edgesA, edgesB []int, otherPos func(e int) int) int {
	delta := 0
	for _, ea := range edgesA {
		pa := otherPos(ea)
		for _, eb := range edgesB {
			pb := otherPos(eb)
			switch {
			case pa < pb:
				delta++
			case pa > pb:
				delta--
			}
		}
	}
	return delta
}
