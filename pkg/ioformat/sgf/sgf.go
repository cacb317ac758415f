// Package sgf reads and writes the single-file SGF graph format: a
// header line advertising approximate node/edge/layer counts, followed
// by the node and edge records (blank and "c "-prefixed
// comment lines interleaved freely). Unlike the source this format was
// distilled from — which drove the parse through a stateful sequence of
// calls sharing a file-scope buffer — Read is a one-shot function: it
// either returns a fully populated graph or an error, and the engine
// never sees a partially-built one.
package sgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/layered"
)

// Warnf receives a non-fatal warning, e.g. a header/record count
// mismatch. A nil Warnf passed to [Read] discards warnings silently.
type Warnf func(format string, args ...any)

// header holds a parsed "t" line's advisory counts.
type header struct {
	name   string
	nodes  int
	edges  int
	layers int
}

// Read parses one SGF file from r into a Graph. The header's node,
// edge, and layer counts are advisory only: if the actual record counts
// disagree, warn is called and parsing continues (dynamically sized to
// whatever was actually read) rather than failing. Positions duplicated
// within a layer, edges naming an undefined node, and edges spanning
// non-adjacent layers are all fatal, located at the offending line.
//
// Records are dispatched by their leading token in a single forward
// scan — there is no count-bounded "read n node lines" loop — so the
// line that closes the node section and opens the edge section is never
// at risk of being discarded while detecting the transition.
func Read(r io.Reader, warn Warnf) (*layered.Graph, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var hdr header
	haveHeader := false
	var b *layered.Builder
	byID := make(map[string]int)
	layerOf := make(map[int]int) // node index -> layer
	maxLayer := -1
	nodeLines, edgeLines := 0, 0

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text == "c" || strings.HasPrefix(text, "c ") {
			continue
		}

		fields := strings.Fields(text)
		switch fields[0] {
		case "t":
			if haveHeader {
				return nil, engineerr.AtLine(engineerr.CodeMalformedHeader, lineNo, "duplicate header line")
			}
			h, err := parseHeader(fields, lineNo)
			if err != nil {
				return nil, err
			}
			hdr = h
			haveHeader = true
			b = layered.NewBuilder(hdr.name)

		case "n":
			if b == nil {
				return nil, engineerr.AtLine(engineerr.CodeMalformedHeader, lineNo, "node record precedes header")
			}
			id, layerIdx, pos, err := parseNode(fields, lineNo)
			if err != nil {
				return nil, err
			}
			idx, err := b.AddNode("", layerIdx, pos)
			if err != nil {
				return nil, engineerr.AtLine(engineerr.CodeDuplicatePosition, lineNo, "%v", err)
			}
			byID[id] = idx
			layerOf[idx] = layerIdx
			nodeLines++
			if layerIdx > maxLayer {
				maxLayer = layerIdx
			}

		case "e":
			if b == nil {
				return nil, engineerr.AtLine(engineerr.CodeMalformedHeader, lineNo, "edge record precedes header")
			}
			srcID, dstID, err := parseEdge(fields, lineNo)
			if err != nil {
				return nil, err
			}
			down, ok := byID[srcID]
			if !ok {
				return nil, engineerr.AtLine(engineerr.CodeDanglingEndpoint, lineNo, "edge names undefined node %q", srcID)
			}
			up, ok := byID[dstID]
			if !ok {
				return nil, engineerr.AtLine(engineerr.CodeDanglingEndpoint, lineNo, "edge names undefined node %q", dstID)
			}
			if layerOf[up] != layerOf[down]+1 {
				return nil, engineerr.AtLine(engineerr.CodeNonAdjacentLayers, lineNo,
					"edge %s -> %s spans layer %d to %d", srcID, dstID, layerOf[down], layerOf[up])
			}
			if err := b.AddEdge(down, up); err != nil {
				return nil, engineerr.AtLine(engineerr.CodeNonAdjacentLayers, lineNo, "%v", err)
			}
			edgeLines++

		default:
			return nil, engineerr.AtLine(engineerr.CodeMalformedHeader, lineNo, "unrecognized record %q", text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sgf: %w", err)
	}
	if !haveHeader {
		return nil, engineerr.New(engineerr.CodeMalformedHeader, "missing header line")
	}

	g, err := b.Build()
	if err != nil {
		return nil, engineerr.Wrap(engineerr.CodeNonAdjacentLayers, err, "building graph from sgf")
	}

	if nodeLines != hdr.nodes {
		warn("sgf: header declared %d node records, found %d", hdr.nodes, nodeLines)
	}
	if edgeLines != hdr.edges {
		warn("sgf: header declared %d edge records, found %d", hdr.edges, edgeLines)
	}
	if actualLayers := maxLayer + 1; actualLayers != hdr.layers {
		warn("sgf: header declared %d layers, found %d", hdr.layers, actualLayers)
	}

	return g, nil
}

func parseHeader(fields []string, line int) (header, error) {
	if len(fields) != 5 {
		return header{}, engineerr.AtLine(engineerr.CodeMalformedHeader, line,
			"expected 't name nodes edges layers', got %q", strings.Join(fields, " "))
	}
	nodes, e1 := strconv.Atoi(fields[2])
	edges, e2 := strconv.Atoi(fields[3])
	layers, e3 := strconv.Atoi(fields[4])
	if e1 != nil || e2 != nil || e3 != nil {
		return header{}, engineerr.AtLine(engineerr.CodeMalformedHeader, line, "non-numeric count in header")
	}
	return header{name: fields[1], nodes: nodes, edges: edges, layers: layers}, nil
}

func parseNode(fields []string, line int) (id string, layerIdx, pos int, err error) {
	if len(fields) != 4 {
		return "", 0, 0, engineerr.AtLine(engineerr.CodeTruncatedRecord, line,
			"expected 'n id layer position', got %q", strings.Join(fields, " "))
	}
	layerIdx, e1 := strconv.Atoi(fields[2])
	pos, e2 := strconv.Atoi(fields[3])
	if e1 != nil || e2 != nil {
		return "", 0, 0, engineerr.AtLine(engineerr.CodeTruncatedRecord, line, "non-numeric layer/position in node record")
	}
	return fields[1], layerIdx, pos, nil
}

func parseEdge(fields []string, line int) (src, dst string, err error) {
	if len(fields) != 3 {
		return "", "", engineerr.AtLine(engineerr.CodeTruncatedRecord, line,
			"expected 'e source target', got %q", strings.Join(fields, " "))
	}
	return fields[1], fields[2], nil
}

// Write serializes g in SGF format. The comment buffer, if any, is
// emitted as "c " lines before the header. The header's counts always
// match the graph's actual nodes, edges, and layers, so reading this
// output back never warns — the round-trip the specification requires.
func Write(w io.Writer, g *layered.Graph) error {
	bw := bufio.NewWriter(w)

	if c := g.Comment(); c != "" {
		for _, l := range strings.Split(c, "\n") {
			if _, err := fmt.Fprintf(bw, "c %s\n", l); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(bw, "t %s %d %d %d\n", g.Name(), g.NumNodes(), g.NumEdges(), g.NumLayers()); err != nil {
		return err
	}

	for l := 0; l < g.NumLayers(); l++ {
		for pos := 0; pos < g.LayerSize(l); pos++ {
			if _, err := fmt.Fprintf(bw, "n %d %d %d\n", g.NodeAt(l, pos), l, pos); err != nil {
				return err
			}
		}
	}

	for i := 0; i < g.NumEdges(); i++ {
		e := g.Edge(i)
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.Down, e.Up); err != nil {
			return err
		}
	}

	return bw.Flush()
}
