package visualize

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/ordbench/layerheur/pkg/ioformat/dotord"
	"github.com/ordbench/layerheur/pkg/layered"
)

// Options configures node-link rendering.
type Options struct {
	// ShowCrossings labels each edge with its current crossing count,
	// for spotting which edges a heuristic run left unresolved.
	ShowCrossings bool
}

// ToDOT converts g's current ordering to a Graphviz DOT digraph: one
// rank per layer (so Graphviz draws the drawing top-to-bottom in the
// engine's own layer order rather than guessing a layout), styled the
// way the teacher's node-link renderer styles its diagrams.
func ToDOT(g *layered.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n\n")

	for l := 0; l < g.NumLayers(); l++ {
		labels := make([]string, g.LayerSize(l))
		for pos := range labels {
			labels[pos] = fmt.Sprintf("%q", dotord.Label(g.Node(g.NodeAt(l, pos))))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s }\n", strings.Join(labels, " "))
	}
	buf.WriteString("\n")

	for i := 0; i < g.NumEdges(); i++ {
		e := g.Edge(i)
		attrs := ""
		if opts.ShowCrossings {
			attrs = fmt.Sprintf(" [label=%q, fontsize=10]", fmt.Sprintf("%d", e.Crossings))
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", dotord.Label(g.Node(e.Down)), dotord.Label(g.Node(e.Up)), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders g's current ordering to SVG bytes via Graphviz.
func RenderSVG(ctx context.Context, g *layered.Graph, opts Options) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("visualize: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(ToDOT(g, opts)))
	if err != nil {
		return nil, fmt.Errorf("visualize: parse dot: %w", err)
	}
	defer parsed.Close()

	var svg bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &svg); err != nil {
		return nil, fmt.Errorf("visualize: render: %w", err)
	}
	return svg.Bytes(), nil
}
