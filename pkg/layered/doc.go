// Package layered provides the graph store for layered-graph ordering
// heuristics: nodes partitioned into numbered layers, edges connecting
// only adjacent layers, and the mutation primitives (swap, reposition,
// save/restore) the heuristic engine builds on.
//
// # Overview
//
// A [Graph] holds nodes and edges in two flat slices and refers to them
// only by integer index — never by pointer. This sidesteps the
// reallocation-invalidates-pointer hazard a pointer/adjacency-list graph
// runs into once edges are appended after node creation: slices grow by
// reallocating, and a stored *Node would go stale. Adjacency lists are
// themselves index slices for the same reason.
//
// # Layers and positions
//
// Every node belongs to exactly one layer. Within a layer, nodes are
// kept sorted by [Node.Position] with no gaps: nodes[i].Position == i
// always holds (invariant 1 in the specification this package
// implements). [Graph.SwapPositions] and [Graph.RepositionNode] are the
// only ways to change a node's position once the graph is built; both
// maintain the invariant atomically or not at all.
//
// # Edges span exactly one layer
//
// [Builder.Build] enforces that an edge's Up endpoint lies on the layer
// directly above its Down endpoint, Up.Layer == Down.Layer+1 (invariant 2). This is
// checked once at construction time; nothing in this package ever
// creates an edge that violates it, so downstream packages (crossing and
// stretch counters) can assume it without re-checking.
//
// # Saved orderings
//
// [Graph.SaveOrder] captures every layer's node sequence (by node ID) as
// an opaque [Snapshot]; [Graph.RestoreOrder] replays one, restoring every
// position and layer sequence exactly. Snapshots are the unit the
// objective tracker (package objective) captures and the unit the output
// writers replay.
package layered
