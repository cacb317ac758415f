package order

import (
	"sort"

	"github.com/ordbench/layerheur/pkg/layered"
)

// Orientation selects which adjacency list a weight assigner reads.
type Orientation int

const (
	// Upward reads a node's up_edges: its neighbors on the layer above.
	Upward Orientation = iota
	// Downward reads a node's down_edges: its neighbors on the layer below.
	Downward
	// Both combines neighbors in both directions.
	Both
)

// IsolatedPolicy chooses how a node with no neighbors in the chosen
// orientation is assigned a weight once the sort order is otherwise
// fixed. The policy must be total (every isolated node gets a weight)
// and deterministic.
type IsolatedPolicy int

const (
	// IsolatedLeft carries the weight of the node's left neighbor in the
	// post-sort order. This is the default.
	IsolatedLeft IsolatedPolicy = iota
	// IsolatedAvg averages the weights of the node's left and right
	// post-sort neighbors (falling back to whichever side exists at a
	// layer boundary).
	IsolatedAvg
	// IsolatedNone leaves isolated nodes at their pre-sort weight (their
	// original position), the simplest and historically original policy.
	IsolatedNone
)

func neighborPositions(g *layered.Graph, nodeID int, o Orientation) []int {
	n := g.Node(nodeID)
	var positions []int
	if o == Upward || o == Both {
		for _, e := range n.UpEdges {
			positions = append(positions, g.Node(g.Edge(e).Up).Position)
		}
	}
	if o == Downward || o == Both {
		for _, e := range n.DownEdges {
			positions = append(positions, g.Node(g.Edge(e).Down).Position)
		}
	}
	return positions
}

// AssignBarycenter assigns Weight to every node on layer l, using the
// mean position of its Orientation-selected neighbors. When o is Both
// and balanced is true, the weight is the mean of the two single-
// direction barycenters rather than the mean of the combined position
// list (the "mean of the means" variant named in the specification).
func AssignBarycenter(g *layered.Graph, l int, o Orientation, balanced bool, isolated IsolatedPolicy) {
	assignWeights(g, l, isolated, func(nodeID int) (float64, bool) {
		if o == Both && balanced {
			return balancedBarycenter(g, nodeID)
		}
		positions := neighborPositions(g, nodeID, o)
		if len(positions) == 0 {
			return 0, false
		}
		return meanInt(positions), true
	})
}

func balancedBarycenter(g *layered.Graph, nodeID int) (float64, bool) {
	up := neighborPositions(g, nodeID, Upward)
	down := neighborPositions(g, nodeID, Downward)
	switch {
	case len(up) == 0 && len(down) == 0:
		return 0, false
	case len(up) == 0:
		return meanInt(down), true
	case len(down) == 0:
		return meanInt(up), true
	default:
		return (meanInt(up) + meanInt(down)) / 2, true
	}
}

func meanInt(xs []int) float64 {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

// AssignMedian assigns Weight to every node on layer l, using the median
// position of its Orientation-selected neighbors. When the neighbor
// count is even, the two central candidates are both considered and the
// one closer to the node's current position is chosen, breaking a
// further tie toward the lower candidate.
func AssignMedian(g *layered.Graph, l int, o Orientation, isolated IsolatedPolicy) {
	assignWeights(g, l, isolated, func(nodeID int) (float64, bool) {
		positions := neighborPositions(g, nodeID, o)
		if len(positions) == 0 {
			return 0, false
		}
		sort.Ints(positions)
		m := len(positions)
		if m%2 == 1 {
			return float64(positions[m/2]), true
		}
		lower, upper := positions[m/2-1], positions[m/2]
		current := g.Node(nodeID).Position
		dLower, dUpper := abs(current-lower), abs(current-upper)
		if dLower <= dUpper {
			return float64(lower), true
		}
		return float64(upper), true
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// assignWeights is the shared machinery behind AssignBarycenter and
// AssignMedian: it computes a weight for every node that has at least
// one relevant neighbor via compute, provisionally places isolated nodes
// (compute's ok == false) at their current position so a stable sort
// does not reorder them relative to the rest, sorts the layer, then
// assigns isolated nodes their final weight per the IsolatedPolicy.
func assignWeights(g *layered.Graph, l int, isolated IsolatedPolicy, compute func(nodeID int) (float64, bool)) {
	size := g.LayerSize(l)
	isolatedNodes := make(map[int]bool)
	for pos := 0; pos < size; pos++ {
		nodeID := g.NodeAt(l, pos)
		w, ok := compute(nodeID)
		n := g.Node(nodeID)
		if ok {
			n.Weight = w
		} else {
			n.Weight = float64(pos)
			isolatedNodes[nodeID] = true
		}
	}

	LayerSort(g, l)

	if isolated == IsolatedNone {
		return
	}
	for pos := 0; pos < size; pos++ {
		nodeID := g.NodeAt(l, pos)
		if !isolatedNodes[nodeID] {
			continue
		}
		n := g.Node(nodeID)
		switch isolated {
		case IsolatedLeft:
			if pos > 0 {
				n.Weight = g.Node(g.NodeAt(l, pos-1)).Weight
			}
		case IsolatedAvg:
			switch {
			case pos > 0 && pos < size-1:
				n.Weight = (g.Node(g.NodeAt(l, pos-1)).Weight + g.Node(g.NodeAt(l, pos+1)).Weight) / 2
			case pos > 0:
				n.Weight = g.Node(g.NodeAt(l, pos-1)).Weight
			case pos < size-1:
				n.Weight = g.Node(g.NodeAt(l, pos+1)).Weight
			}
		}
	}
}
