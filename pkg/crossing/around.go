package crossing

// CrossingsAround returns, for each candidate position x in [left,right]
// on node's own layer, the graph's total crossing count if node were
// moved to x (every other node shifting to keep position-identity). The
// slice is indexed from 0, so result[0] corresponds to position left.
//
// Computing this naively would cost O(window * layerSize) per call,
// re-evaluating every pair from scratch; CrossingsAround instead builds a
// pair of channel sweeps in O(layerSize log layerSize) and answers every
// candidate in the window in O(degree log layerSize), which is what lets
// the sifting primitive evaluate an entire layer's worth of candidate
// positions for one node in one call.
func (c *Counter) CrossingsAround(node, left, right int) []int {
	n := c.g.Node(node)
	layerSize := c.g.LayerSize(n.Layer)

	var upContribution, downContribution []int
	if n.Layer+1 < c.g.NumLayers() {
		upContribution = c.channelContribution(n.Layer, node, n.UpEdges, true)
	}
	if n.Layer-1 >= 0 {
		downContribution = c.channelContribution(n.Layer-1, node, n.DownEdges, false)
	}

	baseline := c.TotalCrossings()
	atCurrent := valueAt(upContribution, n.Position) + valueAt(downContribution, n.Position)

	result := make([]int, right-left+1)
	for x := left; x <= right; x++ {
		if x < 0 || x >= layerSize {
			panic("crossing: CrossingsAround candidate position out of range")
		}
		atX := valueAt(upContribution, x) + valueAt(downContribution, x)
		result[x-left] = baseline + (atX - atCurrent)
	}
	return result
}

// EdgeCrossingsAround returns, for each candidate position x in
// [left,right], the maximum crossing count borne by any single edge
// incident on node if node were moved to x. edge identifies the pivot
// edge that triggered the query (the mce/mce-s drivers always call this
// with the edge currently realizing the layer's bottleneck) but the
// bottleneck is evaluated over every edge incident on node, per the
// specification. The second return value is the total crossing count at
// each candidate, usable as the deterministic tie-breaker between
// positions with an equal bottleneck.
func (c *Counter) EdgeCrossingsAround(edge, node, left, right int) (bottleneck, total []int) {
	n := c.g.Node(node)
	if e := c.g.Edge(edge); e.Down != node && e.Up != node {
		panic("crossing: EdgeCrossingsAround edge is not incident on node")
	}

	var upPerEdge, downPerEdge map[int][]int
	if n.Layer+1 < c.g.NumLayers() {
		upPerEdge = c.perEdgeChannelContribution(n.Layer, node, n.UpEdges, true)
	}
	if n.Layer-1 >= 0 {
		downPerEdge = c.perEdgeChannelContribution(n.Layer-1, node, n.DownEdges, false)
	}

	total = c.CrossingsAround(node, left, right)
	bottleneck = make([]int, right-left+1)
	for i, x := 0, left; x <= right; i, x = i+1, x+1 {
		best := 0
		for _, arr := range upPerEdge {
			if v := arr[x]; v > best {
				best = v
			}
		}
		for _, arr := range downPerEdge {
			if v := arr[x]; v > best {
				best = v
			}
		}
		bottleneck[i] = best
	}
	return bottleneck, total
}

func valueAt(arr []int, idx int) int {
	if arr == nil {
		return 0
	}
	return arr[idx]
}

// channelContribution returns, for every candidate absolute position x on
// node's layer (0..layerSize-1), the total crossing count between node's
// edges in the channel identified by (channelLayer, upSide) and every
// other node's edges in the same channel, as if node sat at position x.
func (c *Counter) channelContribution(channelLayer, node int, nodeEdges []int, upSide bool) []int {
	per := c.perEdgeChannelContribution(channelLayer, node, nodeEdges, upSide)
	n := c.g.LayerSize(c.g.Node(node).Layer)
	result := make([]int, n)
	for _, arr := range per {
		for x := 0; x < n; x++ {
			result[x] += arr[x]
		}
	}
	return result
}

// perEdgeChannelContribution is the shared sweep behind both
// CrossingsAround and EdgeCrossingsAround. For every one of node's edges
// e in the given channel, it returns an array indexed by candidate
// absolute position x (0..layerSize-1 on node's layer) giving e's own
// crossing count against every OTHER edge in the channel, if node sat at
// position x. upSide selects which endpoint of the channel's edges is
// node's layer: true when node's layer is the channel's down side (so
// node's edges are UpEdges and the "fixed" endpoint is the Up node),
// false when node's layer is the up side (DownEdges, fixed endpoint is
// the Down node).
func (c *Counter) perEdgeChannelContribution(channelLayer, node int, nodeEdges []int, upSide bool) map[int][]int {
	g := c.g
	nodeLayer := g.Node(node).Layer
	layerSize := g.LayerSize(nodeLayer)

	var fixedPos func(e int) int
	var otherLayer int
	if upSide {
		fixedPos = func(e int) int { return g.Node(g.Edge(e).Up).Position }
		otherLayer = channelLayer + 1
	} else {
		fixedPos = func(e int) int { return g.Node(g.Edge(e).Down).Position }
		otherLayer = channelLayer - 1
	}
	domainSize := 0
	if otherLayer >= 0 && otherLayer < g.NumLayers() {
		domainSize = g.LayerSize(otherLayer)
	}

	// Bucket every OTHER node's channel edges by rank: rank is the
	// other node's position on nodeLayer, adjusted as if node were
	// removed (positions after node's current slot shift down by one).
	nodePosition := g.Node(node).Position
	buckets := make([][]int, max0(layerSize-1))
	for pos := 0; pos < layerSize; pos++ {
		if pos == nodePosition {
			continue
		}
		other := g.NodeAt(nodeLayer, pos)
		var otherEdges []int
		if upSide {
			otherEdges = g.Node(other).UpEdges
		} else {
			otherEdges = g.Node(other).DownEdges
		}
		rank := pos
		if pos > nodePosition {
			rank--
		}
		for _, e := range otherEdges {
			buckets[rank] = append(buckets[rank], fixedPos(e))
		}
	}

	totalLessOrEqual := make([]int, domainSize+1)
	if domainSize > 0 {
		counts := make([]int, domainSize)
		for _, bucket := range buckets {
			for _, v := range bucket {
				counts[v]++
			}
		}
		for i := 0; i < domainSize; i++ {
			totalLessOrEqual[i+1] = totalLessOrEqual[i] + counts[i]
		}
	}

	result := make(map[int][]int, len(nodeEdges))
	for _, e := range nodeEdges {
		result[e] = make([]int, layerSize)
	}
	if domainSize == 0 || len(nodeEdges) == 0 {
		return result
	}

	bit := newFenwick(domainSize)
	inserted := 0
	for x := 0; x < layerSize; x++ {
		if x > 0 {
			for _, v := range buckets[x-1] {
				bit.add(v, 1)
				inserted++
			}
		}
		for _, e := range nodeEdges {
			v := fixedPos(e)
			insertedLE := bit.queryLE(v)
			countGreaterInserted := inserted - insertedLE
			insertedLT := bit.queryLE(v - 1)
			totalLessAll := totalLessOrEqual[v]
			countLessRemaining := totalLessAll - insertedLT
			result[e][x] = countGreaterInserted + countLessRemaining
		}
	}
	return result
}
