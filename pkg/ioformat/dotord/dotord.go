// Package dotord reads and writes the paired DOT + ORD input format: a
// DOT file supplying node and edge identities by name, alongside an ORD
// file supplying each layer's node names in left-to-right position
// order. Each file is scanned once into memory; neither is read a second
// time. Every node's layer and position is fixed from the ORD contents
// before any node is created, and the DOT edges are then resolved
// against that complete name table, so that a dangling or mismatched
// name is caught before the graph is ever exposed.
package dotord

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/layered"
)

// Warnf receives a non-fatal warning. A nil Warnf passed to [Read]
// discards warnings silently.
type Warnf func(format string, args ...any)

var (
	edgeRE = regexp.MustCompile(`^"?([^"\s]+)"?\s*->\s*"?([^"\s;]+)"?`)
	declRE = regexp.MustCompile(`^"?([^"\s\[\]]+)"?\s*\[`)
)

// dotFacts is what the sizing pass over the DOT file establishes: the
// set of names it declares (by a node statement or as an edge endpoint)
// and the edge list, still expressed as name pairs.
type dotFacts struct {
	names map[string]bool
	edges []namedEdge
}

type namedEdge struct {
	src, dst string
	line     int
}

// parseDOT extracts every node name and every edge from a DOT digraph.
// Attributes, graph-level statements (rankdir, bgcolor, ...), and
// formatting are ignored; the only things this format is asked to carry
// are node identity and edge endpoints.
func parseDOT(r io.Reader) (dotFacts, error) {
	facts := dotFacts{names: make(map[string]bool)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.HasPrefix(text, "digraph") || strings.HasPrefix(text, "graph") || text == "{" || text == "}" {
			continue
		}

		if m := edgeRE.FindStringSubmatch(text); m != nil {
			facts.names[m[1]] = true
			facts.names[m[2]] = true
			facts.edges = append(facts.edges, namedEdge{src: m[1], dst: m[2], line: lineNo})
			continue
		}
		if m := declRE.FindStringSubmatch(text); m != nil {
			switch m[1] {
			case "node", "edge", "graph":
				// attribute defaults, not a node declaration
			default:
				facts.names[m[1]] = true
			}
			continue
		}
		// Graph-level attribute lines ("rankdir=TB;", "bgcolor=...;") carry
		// no node or edge identity and are silently ignored.
	}
	if err := scanner.Err(); err != nil {
		return dotFacts{}, fmt.Errorf("dot: %w", err)
	}
	return facts, nil
}

// ordFacts is what the sizing pass over the ORD file establishes: every
// name's (layer, position), in the order the ORD file assigns them.
type ordFacts struct {
	layers [][]string // layers[l][pos] = name
}

// parseORD reads the per-layer ordered name lists. Each non-blank,
// non-comment line is "<layer> <name> <name> ...", giving that layer's
// nodes in left-to-right position order; layers may appear in any line
// order but each must appear at most once.
func parseORD(r io.Reader) (ordFacts, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	byLayer := make(map[int][]string)
	seen := make(map[int]bool)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 1 {
			continue
		}
		layerIdx, err := strconv.Atoi(strings.TrimSuffix(fields[0], ":"))
		if err != nil {
			return ordFacts{}, engineerr.AtLine(engineerr.CodeMalformedHeader, lineNo, "ord: non-numeric layer index %q", fields[0])
		}
		if seen[layerIdx] {
			return ordFacts{}, engineerr.AtLine(engineerr.CodeMalformedHeader, lineNo, "ord: layer %d repeated", layerIdx)
		}
		seen[layerIdx] = true
		byLayer[layerIdx] = append([]string{}, fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return ordFacts{}, fmt.Errorf("ord: %w", err)
	}

	numLayers := 0
	for l := range byLayer {
		if l+1 > numLayers {
			numLayers = l + 1
		}
	}
	layers := make([][]string, numLayers)
	for l, names := range byLayer {
		layers[l] = names
	}
	return ordFacts{layers: layers}, nil
}

// Read parses the paired DOT and ORD files into a Graph. A fatal error
// is reported if a name appears in one file but not the other, if an
// edge's endpoints resolve to the same layer or to non-adjacent layers,
// or if the ORD file assigns two names the same position on one layer.
func Read(dotR, ordR io.Reader, graphName string, warn Warnf) (*layered.Graph, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	dot, err := parseDOT(dotR)
	if err != nil {
		return nil, err
	}
	ord, err := parseORD(ordR)
	if err != nil {
		return nil, err
	}

	b := layered.NewBuilder(graphName)
	byName := make(map[string]int)
	placed := make(map[string]bool)

	for l, names := range ord.layers {
		for pos, name := range names {
			if placed[name] {
				return nil, engineerr.New(engineerr.CodeDuplicatePosition, "ord: node %q placed more than once", name)
			}
			idx, err := b.AddNode(name, l, pos)
			if err != nil {
				return nil, engineerr.Wrap(engineerr.CodeDuplicatePosition, err, "ord: layer %d position %d", l, pos)
			}
			byName[name] = idx
			placed[name] = true
		}
	}

	for name := range dot.names {
		if !placed[name] {
			return nil, engineerr.New(engineerr.CodeNameMismatch, "dot: node %q has no position in the ord file", name)
		}
	}
	for name := range placed {
		if !dot.names[name] {
			return nil, engineerr.New(engineerr.CodeNameMismatch, "ord: node %q is not declared in the dot file", name)
		}
	}

	for _, e := range dot.edges {
		down, ok := byName[e.src]
		if !ok {
			return nil, engineerr.AtLine(engineerr.CodeDanglingEndpoint, e.line, "dot: edge names unknown node %q", e.src)
		}
		up, ok := byName[e.dst]
		if !ok {
			return nil, engineerr.AtLine(engineerr.CodeDanglingEndpoint, e.line, "dot: edge names unknown node %q", e.dst)
		}
		if err := b.AddEdge(down, up); err != nil {
			return nil, engineerr.AtLine(engineerr.CodeNonAdjacentLayers, e.line, "%v", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, engineerr.Wrap(engineerr.CodeNonAdjacentLayers, err, "building graph from dot+ord")
	}
	return g, nil
}

// WriteDOT emits a DOT digraph naming every node and edge, in the
// rendering-friendly style also used by [package visualize]: quoted
// names, one statement per line.
func WriteDOT(w io.Writer, g *layered.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "digraph %s {\n", dotIdent(g.Name())); err != nil {
		return err
	}
	for i := 0; i < g.NumNodes(); i++ {
		n := g.Node(i)
		if _, err := fmt.Fprintf(bw, "  %q;\n", Label(n)); err != nil {
			return err
		}
	}
	for i := 0; i < g.NumEdges(); i++ {
		e := g.Edge(i)
		if _, err := fmt.Fprintf(bw, "  %q -> %q;\n", Label(g.Node(e.Down)), Label(g.Node(e.Up))); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteORD emits one line per layer, "<layer> <name> <name> ...", in
// position order, reading g's current ordering — not the ordering it
// was originally parsed from — so that a caller can round-trip any
// reordering the engine produced.
func WriteORD(w io.Writer, g *layered.Graph) error {
	bw := bufio.NewWriter(w)
	for l := 0; l < g.NumLayers(); l++ {
		names := make([]string, g.LayerSize(l))
		for pos := range names {
			names[pos] = Label(g.Node(g.NodeAt(l, pos)))
		}
		if _, err := fmt.Fprintf(bw, "%d %s\n", l, strings.Join(names, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Label returns a node's textual identity for DOT/ORD output, falling
// back to a synthetic "n<id>" name for graphs built without names (e.g.
// round-tripped from SGF). Exported so [package visualize] names nodes
// the same way when rendering.
func Label(n *layered.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("n%d", n.ID)
}

// dotIdent sanitizes a graph name for use as a bare DOT graph ID.
func dotIdent(name string) string {
	if name == "" {
		return "G"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
