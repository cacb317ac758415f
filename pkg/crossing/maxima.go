package crossing

// MaxCrossingsEdge returns the id of the edge with the highest crossing
// count, breaking ties by the smallest edge id. Panics if the graph has
// no edges.
func (c *Counter) MaxCrossingsEdge() int {
	best, bestCrossings := -1, -1
	for i := 0; i < c.g.NumEdges(); i++ {
		cnt := c.g.Edge(i).Crossings
		if cnt > bestCrossings {
			best, bestCrossings = i, cnt
		}
	}
	if best < 0 {
		panic("crossing: MaxCrossingsEdge called on a graph with no edges")
	}
	return best
}

// MaxCrossingsNode returns the id of the node whose incident edges carry
// the highest total crossing count (UpCrossings + DownCrossings, kept in
// sync by [Counter.syncNodeCrossings]), breaking ties by smallest node id.
func (c *Counter) MaxCrossingsNode() int {
	c.syncNodeCrossings()
	best, bestCrossings := -1, -1
	for i := 0; i < c.g.NumNodes(); i++ {
		n := c.g.Node(i)
		cnt := n.UpCrossings + n.DownCrossings
		if cnt > bestCrossings {
			best, bestCrossings = i, cnt
		}
	}
	if best < 0 {
		panic("crossing: MaxCrossingsNode called on a graph with no nodes")
	}
	return best
}

// MaxCrossingsUnfixedNode is [Counter.MaxCrossingsNode] restricted to
// nodes whose Fixed flag is false, for the mcn driver, which retires a
// node once it has been sifted. ok is false if every node is
// fixed.
func (c *Counter) MaxCrossingsUnfixedNode() (node int, ok bool) {
	c.syncNodeCrossings()
	best, bestCrossings := -1, -1
	for i := 0; i < c.g.NumNodes(); i++ {
		n := c.g.Node(i)
		if n.Fixed {
			continue
		}
		cnt := n.UpCrossings + n.DownCrossings
		if cnt > bestCrossings {
			best, bestCrossings = i, cnt
		}
	}
	return best, best >= 0
}

// MaxCrossingsUnfixedEdge is [Counter.MaxCrossingsEdge] restricted to
// edges whose Fixed flag is false. ok is false if every edge is fixed.
func (c *Counter) MaxCrossingsUnfixedEdge() (edge int, ok bool) {
	best, bestCrossings := -1, -1
	for i := 0; i < c.g.NumEdges(); i++ {
		ed := c.g.Edge(i)
		if ed.Fixed {
			continue
		}
		if ed.Crossings > bestCrossings {
			best, bestCrossings = i, ed.Crossings
		}
	}
	return best, best >= 0
}

// MaxCrossingsLayer returns the index l of the channel (between layer l
// and l+1) with the highest crossing count, breaking ties by smallest l.
func (c *Counter) MaxCrossingsLayer() int {
	best, bestCrossings := -1, -1
	for l, cnt := range c.channelCrossings {
		if cnt > bestCrossings {
			best, bestCrossings = l, cnt
		}
	}
	if best < 0 {
		panic("crossing: MaxCrossingsLayer called on a graph with fewer than two layers")
	}
	return best
}

// syncNodeCrossings recomputes every node's UpCrossings and DownCrossings
// from the current per-edge counts. It is cheap relative to a full
// recount (linear scan, no sorting) and is called lazily by
// MaxCrossingsNode rather than on every FullRecount, since most
// heuristics never query it.
func (c *Counter) syncNodeCrossings() {
	for i := 0; i < c.g.NumNodes(); i++ {
		n := c.g.Node(i)
		n.UpCrossings, n.DownCrossings = 0, 0
	}
	for i := 0; i < c.g.NumEdges(); i++ {
		e := c.g.Edge(i)
		c.g.Node(e.Down).UpCrossings += e.Crossings
		c.g.Node(e.Up).DownCrossings += e.Crossings
	}
}
