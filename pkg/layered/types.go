package layered

// Node is a vertex in a layered graph. Its identity (ID, Name) is
// immutable once created; Layer and Position are mutated by [Graph]'s
// swap and reposition primitives. The remaining fields are scratch space
// individual heuristics use (weight assignment, sifting bookkeeping).
type Node struct {
	ID       int    // index into Graph.nodes; stable for the node's lifetime
	Name     string // optional textual name from the input parser; may be empty
	Layer    int    // 0-based layer index
	Position int    // 0-based position within Layer; always == index in that layer's order

	UpEdges   []int // indices into Graph.edges, edges where this node is the Down endpoint
	DownEdges []int // indices into Graph.edges, edges where this node is the Up endpoint

	// Scratch fields used by individual heuristics. The engine never reads
	// these across heuristic runs without first resetting them.
	Weight         float64
	Fixed          bool
	Marked         bool
	PreorderNumber int
	UpCrossings    int
	DownCrossings  int
}

// UpDegree returns len(n.UpEdges) — the number of edges to the layer above.
func (n *Node) UpDegree() int { return len(n.UpEdges) }

// DownDegree returns len(n.DownEdges) — the number of edges to the layer below.
func (n *Node) DownDegree() int { return len(n.DownEdges) }

// Edge is a directed connection between a node on layer L (Down) and a
// node on layer L+1 (Up). This is a hard invariant enforced at
// construction time: see [Builder.AddEdge].
type Edge struct {
	ID   int // index into Graph.edges
	Down int // node index on the lower layer
	Up   int // node index on the upper layer

	Crossings int  // number of other edges this edge crosses, under the current ordering
	Fixed     bool // used by heuristics that fix edges within a pass (mce, mce-s)
}

// layer holds one layer's node order and its fixed flag. order[i] is the
// index (into Graph.nodes) of the node at position i; it is always kept
// in sync with every node's Position field.
type layer struct {
	order []int
	fixed bool
}

// Graph is the layered-graph store: the triple of layers, nodes, and
// edges described in the specification's data model, plus a name and a
// free-form comment buffer propagated unchanged to output writers.
//
// Graph is not safe for concurrent use. The heuristic engine owns a
// Graph exclusively for the duration of a run (see package heuristic).
type Graph struct {
	name    string
	comment string

	nodes  []Node
	edges  []Edge
	layers []layer
}

// Name returns the graph's name, typically taken from the input file.
func (g *Graph) Name() string { return g.name }

// Comment returns the free-form comment buffer, propagated unchanged
// from input to output.
func (g *Graph) Comment() string { return g.comment }

// SetComment replaces the comment buffer.
func (g *Graph) SetComment(c string) { g.comment = c }

// AppendComment appends a line to the comment buffer.
func (g *Graph) AppendComment(line string) {
	if g.comment == "" {
		g.comment = line
		return
	}
	g.comment += "\n" + line
}

// NumLayers returns the number of layers in the graph.
func (g *Graph) NumLayers() int { return len(g.layers) }

// LayerSize returns the number of nodes on layer l. Panics if l is out of range.
func (g *Graph) LayerSize(l int) int { return len(g.layers[l].order) }

// LayerFixed reports whether layer l is currently marked fixed.
func (g *Graph) LayerFixed(l int) bool { return g.layers[l].fixed }

// SetLayerFixed sets layer l's fixed flag.
func (g *Graph) SetLayerFixed(l int, fixed bool) { g.layers[l].fixed = fixed }

// NodeAt returns the node index at position pos on layer l.
func (g *Graph) NodeAt(l, pos int) int { return g.layers[l].order[pos] }

// Node returns a pointer to the node with the given index. The pointer
// is valid until the next call to a method that grows Graph.nodes
// (construction only happens via [Builder]; after [Builder.Build]
// returns, the slice never grows again, so pointers remain valid for the
// Graph's entire lifetime).
func (g *Graph) Node(id int) *Node { return &g.nodes[id] }

// NumNodes returns the total number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Edge returns a pointer to the edge with the given index. Valid for the
// same reason as [Graph.Node].
func (g *Graph) Edge(id int) *Edge { return &g.edges[id] }

// NumEdges returns the total number of edges in the graph.
func (g *Graph) NumEdges() int { return len(g.edges) }

// AllNodeIDs returns a new slice holding every node index, in ascending order.
func (g *Graph) AllNodeIDs() []int {
	ids := make([]int, len(g.nodes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}
