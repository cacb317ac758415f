// Package visualize renders a layered graph's current ordering as an
// SVG node-link diagram, for inspecting a heuristic run's output by eye.
// It is a debug aid over an already-computed order snapshot, not a
// layout engine: the engine decides node positions, this package only
// asks Graphviz to draw them.
//
// Adapted from the teacher's pkg/render/nodelink/dot.go: build a DOT
// string, then graphviz.ParseBytes + gv.Render(..., graphviz.SVG, ...).
// Unlike the teacher, rendering here groups each layer into its own
// Graphviz rank, since the drawing's whole point is to show the
// layered structure a heuristic produced.
package visualize
