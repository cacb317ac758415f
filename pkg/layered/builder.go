package layered

import "fmt"

// Builder constructs a [Graph] from parser input. It exists because the
// external parsers (packages ioformat/dotord and ioformat/sgf) populate
// nodes and edges incrementally and must be able to report a located
// fatal error (§7 of the specification) before any Graph is exposed to
// the heuristic engine — "the engine never runs on a partially-built
// graph."
//
// A Builder is single-use: call [Builder.AddNode] and [Builder.AddEdge]
// in any order (edges may reference nodes added earlier or not yet
// added, as long as every referenced node exists by the time [Builder.Build]
// is called), then call Build exactly once.
type Builder struct {
	name    string
	comment string

	nodes     []Node
	byName    map[string]int
	layerSize map[int]int         // layer -> highest position + 1 seen so far
	occupied  map[[2]int]int      // (layer, position) -> node index, for duplicate detection
	edges     []edgeSpec
}

type edgeSpec struct {
	down, up int
	line     int // 1-based source line, for error messages; 0 if unknown
}

// NewBuilder creates an empty Builder for a graph with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		byName:    make(map[string]int),
		layerSize: make(map[int]int),
		occupied:  make(map[[2]int]int),
	}
}

// SetComment sets the free-form comment buffer that will be propagated
// to the built Graph unchanged.
func (b *Builder) SetComment(c string) { b.comment = c }

// AddNode registers a node at the given layer and position. name may be
// empty (SGF has no names); if non-empty it must be unique across the
// whole graph, mirroring the DOT+ORD requirement that "a node appears in
// one file but not the other" be detected by name. Returns the node's
// stable index, used to reference it from [Builder.AddEdge].
//
// Returns [ErrDuplicateName] or [ErrDuplicatePosition] if the respective
// uniqueness constraint is violated.
func (b *Builder) AddNode(name string, layerIdx, position int) (int, error) {
	if name != "" {
		if _, exists := b.byName[name]; exists {
			return -1, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	key := [2]int{layerIdx, position}
	if existing, exists := b.occupied[key]; exists {
		return -1, fmt.Errorf("%w: layer %d position %d (already node %d)", ErrDuplicatePosition, layerIdx, position, existing)
	}

	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Name: name, Layer: layerIdx, Position: position})
	if name != "" {
		b.byName[name] = id
	}
	b.occupied[key] = id
	if position+1 > b.layerSize[layerIdx] {
		b.layerSize[layerIdx] = position + 1
	}
	return id, nil
}

// NodeByName returns the node index registered under name, and whether
// it was found. Parsers use this to resolve textual references (e.g. an
// edge naming two nodes by name) without maintaining their own table.
func (b *Builder) NodeByName(name string) (int, bool) {
	id, ok := b.byName[name]
	return id, ok
}

// AddEdge registers an edge between two previously-added node indices.
// The adjacency check (Up.Layer == Down.Layer+1) happens in [Builder.Build],
// once every node is known, so that an edge may be added before both of
// its endpoints if a parser discovers them out of order.
func (b *Builder) AddEdge(down, up int) error {
	b.edges = append(b.edges, edgeSpec{down: down, up: up})
	return nil
}

// Build validates every accumulated layer and edge and returns the
// finished, immutable-shape Graph. It never returns a partially valid
// graph: on error, the returned Graph is nil.
func (b *Builder) Build() (*Graph, error) {
	numLayers := 0
	for l := range b.layerSize {
		if l+1 > numLayers {
			numLayers = l + 1
		}
	}

	layers := make([]layer, numLayers)
	for l := 0; l < numLayers; l++ {
		size := b.layerSize[l]
		layers[l].order = make([]int, size)
		for pos := 0; pos < size; pos++ {
			nodeID, ok := b.occupied[[2]int{l, pos}]
			if !ok {
				return nil, fmt.Errorf("%w: layer %d position %d is unfilled", ErrGapInLayer, l, pos)
			}
			layers[l].order[pos] = nodeID
		}
	}

	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)

	edges := make([]Edge, len(b.edges))
	for i, spec := range b.edges {
		if spec.down < 0 || spec.down >= len(nodes) {
			return nil, fmt.Errorf("%w: down endpoint %d", ErrUnknownNode, spec.down)
		}
		if spec.up < 0 || spec.up >= len(nodes) {
			return nil, fmt.Errorf("%w: up endpoint %d", ErrUnknownNode, spec.up)
		}
		downNode, upNode := &nodes[spec.down], &nodes[spec.up]
		if upNode.Layer != downNode.Layer+1 {
			return nil, fmt.Errorf("%w: edge %d->%d spans layer %d to %d", ErrNonAdjacentLayers, spec.down, spec.up, downNode.Layer, upNode.Layer)
		}
		edges[i] = Edge{ID: i, Down: spec.down, Up: spec.up}
		downNode.UpEdges = append(downNode.UpEdges, i)
		upNode.DownEdges = append(upNode.DownEdges, i)
	}

	return &Graph{
		name:    b.name,
		comment: b.comment,
		nodes:   nodes,
		edges:   edges,
		layers:  layers,
	}, nil
}
