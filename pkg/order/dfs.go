package order

import "github.com/ordbench/layerheur/pkg/layered"

// AssignDFSPreorder assigns PreorderNumber and Weight (cast from the
// preorder number) to every node in the graph, via a depth-first
// traversal rooted at layer-0 nodes visited in position order, and
// following each node's UpEdges in adjacency order. Nodes unreachable
// from any layer-0 root (a graph need not be connected) are visited
// afterward, again in ascending id order, so every node receives a
// number and the assignment is total and deterministic.
func AssignDFSPreorder(g *layered.Graph) {
	visited := make([]bool, g.NumNodes())
	next := 0

	var visit func(nodeID int)
	visit = func(nodeID int) {
		if visited[nodeID] {
			return
		}
		visited[nodeID] = true
		n := g.Node(nodeID)
		n.PreorderNumber = next
		n.Weight = float64(next)
		next++
		for _, e := range n.UpEdges {
			visit(g.Edge(e).Up)
		}
	}

	if g.NumLayers() > 0 {
		for pos := 0; pos < g.LayerSize(0); pos++ {
			visit(g.NodeAt(0, pos))
		}
	}
	for id := 0; id < g.NumNodes(); id++ {
		visit(id)
	}
}
