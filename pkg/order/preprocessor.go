package order

import (
	"sort"

	"github.com/ordbench/layerheur/pkg/layered"
)

// Preprocessor selects an initial-order assigner applied once, before
// the chosen heuristic driver starts. The specification's command
// surface names the choice ({none, bfs, dfs, mds}) without defining its
// semantics; this package supplies them, reusing the weight-assignment
// machinery already built for component E.
type Preprocessor int

const (
	// PreprocessorNone leaves the graph's input order untouched.
	PreprocessorNone Preprocessor = iota
	// PreprocessorBFS orders every layer by breadth-first visitation
	// number, rooted at layer-0 nodes in position order; nodes not reached
	// from layer 0 start further traversals in ascending id order.
	PreprocessorBFS
	// PreprocessorDFS orders every layer by depth-first preorder number
	// (see [AssignDFSPreorder]).
	PreprocessorDFS
	// PreprocessorMDS ("max-degree sort") orders every layer by
	// descending total degree (up_degree + down_degree), ties broken by
	// ascending node id.
	PreprocessorMDS
)

// Apply runs the selected preprocessor over every layer of g.
func Apply(g *layered.Graph, p Preprocessor) {
	switch p {
	case PreprocessorNone:
		return
	case PreprocessorBFS:
		assignBFS(g)
		sortAllLayersByWeight(g)
	case PreprocessorDFS:
		AssignDFSPreorder(g)
		sortAllLayersByWeight(g)
	case PreprocessorMDS:
		sortAllLayersByDegree(g)
	}
}

func sortAllLayersByWeight(g *layered.Graph) {
	for l := 0; l < g.NumLayers(); l++ {
		LayerSort(g, l)
	}
}

func assignBFS(g *layered.Graph) {
	visited := make([]bool, g.NumNodes())
	next := 0
	var queue []int

	enqueue := func(nodeID int) {
		if visited[nodeID] {
			return
		}
		visited[nodeID] = true
		queue = append(queue, nodeID)
	}

	if g.NumLayers() > 0 {
		for pos := 0; pos < g.LayerSize(0); pos++ {
			enqueue(g.NodeAt(0, pos))
		}
	}
	nextRoot := 0
	for {
		if len(queue) == 0 {
			for nextRoot < g.NumNodes() && visited[nextRoot] {
				nextRoot++
			}
			if nextRoot == g.NumNodes() {
				break
			}
			enqueue(nextRoot)
		}
		nodeID := queue[0]
		queue = queue[1:]
		n := g.Node(nodeID)
		n.PreorderNumber = next
		n.Weight = float64(next)
		next++
		for _, e := range n.UpEdges {
			target := g.Edge(e).Up
			if !visited[target] {
				visited[target] = true
				queue = append(queue, target)
			}
		}
	}
}

func sortAllLayersByDegree(g *layered.Graph) {
	for l := 0; l < g.NumLayers(); l++ {
		size := g.LayerSize(l)
		order := make([]int, size)
		for pos := 0; pos < size; pos++ {
			order[pos] = g.NodeAt(l, pos)
		}
		sort.SliceStable(order, func(i, j int) bool {
			a, b := g.Node(order[i]), g.Node(order[j])
			degA, degB := a.UpDegree()+a.DownDegree(), b.UpDegree()+b.DownDegree()
			if degA != degB {
				return degA > degB
			}
			return order[i] < order[j]
		})
		for pos, nodeID := range order {
			g.RepositionNode(nodeID, pos)
		}
	}
}
