package sgf_test

import (
	"strings"
	"testing"

	"github.com/ordbench/layerheur/pkg/ioformat/sgf"
)

func TestReadBasicGraph(t *testing.T) {
	in := strings.Join([]string{
		"c a tiny path",
		"t demo 3 2 3",
		"n 0 0 0",
		"n 1 1 0",
		"n 2 2 0",
		"e 0 1",
		"e 1 2",
		"",
	}, "\n")

	g, err := sgf.Read(strings.NewReader(in), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.NumNodes() != 3 || g.NumEdges() != 2 || g.NumLayers() != 3 {
		t.Fatalf("got nodes=%d edges=%d layers=%d", g.NumNodes(), g.NumEdges(), g.NumLayers())
	}
}

// TestReadSingleEdgeGraph guards against the early-read ambiguity the
// design notes call out: a sequential scan must not lose the one edge
// line while recognizing that the node section has ended.
func TestReadSingleEdgeGraph(t *testing.T) {
	in := strings.Join([]string{
		"t demo 2 1 2",
		"n 0 0 0",
		"n 1 1 0",
		"e 0 1",
	}, "\n")

	g, err := sgf.Read(strings.NewReader(in), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.NumEdges() != 1 {
		t.Fatalf("expected exactly 1 edge, got %d", g.NumEdges())
	}
	e := g.Edge(0)
	if g.Node(e.Down).Layer != 0 || g.Node(e.Up).Layer != 1 {
		t.Fatalf("edge endpoints landed on the wrong layers: down=%d up=%d", g.Node(e.Down).Layer, g.Node(e.Up).Layer)
	}
}

func TestReadWarnsOnHeaderMismatchButSucceeds(t *testing.T) {
	in := strings.Join([]string{
		"t demo 99 99 99",
		"n 0 0 0",
		"n 1 1 0",
		"e 0 1",
	}, "\n")

	var warnings []string
	g, err := sgf.Read(strings.NewReader(in), func(format string, args ...any) {
		warnings = append(warnings, format)
	})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.NumNodes() != 2 || g.NumEdges() != 1 {
		t.Fatalf("expected dynamic resize to actual counts, got nodes=%d edges=%d", g.NumNodes(), g.NumEdges())
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings (nodes, edges, layers), got %d: %v", len(warnings), warnings)
	}
}

func TestReadFatalOnDuplicatePosition(t *testing.T) {
	in := strings.Join([]string{
		"t demo 2 0 1",
		"n 0 0 0",
		"n 1 0 0",
	}, "\n")

	if _, err := sgf.Read(strings.NewReader(in), nil); err == nil {
		t.Fatal("expected an error for duplicate position, got nil")
	}
}

func TestReadFatalOnDanglingEndpoint(t *testing.T) {
	in := strings.Join([]string{
		"t demo 1 1 1",
		"n 0 0 0",
		"e 0 99",
	}, "\n")

	if _, err := sgf.Read(strings.NewReader(in), nil); err == nil {
		t.Fatal("expected an error for a dangling endpoint, got nil")
	}
}

func TestReadFatalOnNonAdjacentLayers(t *testing.T) {
	in := strings.Join([]string{
		"t demo 2 1 3",
		"n 0 0 0",
		"n 1 2 0",
		"e 0 1",
	}, "\n")

	if _, err := sgf.Read(strings.NewReader(in), nil); err == nil {
		t.Fatal("expected an error for a non-adjacent-layer edge, got nil")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	in := strings.Join([]string{
		"c some free-form comment",
		"t demo 4 3 3",
		"n 0 0 0",
		"n 1 1 0",
		"n 2 1 1",
		"n 3 2 0",
		"e 0 1",
		"e 0 2",
		"e 1 3",
	}, "\n")

	g1, err := sgf.Read(strings.NewReader(in), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var buf strings.Builder
	if err := sgf.Write(&buf, g1); err != nil {
		t.Fatalf("Write: %v", err)
	}

	g2, err := sgf.Read(strings.NewReader(buf.String()), func(string, ...any) {
		t.Fatal("round-tripped output should never warn")
	})
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}

	if g2.NumNodes() != g1.NumNodes() || g2.NumEdges() != g1.NumEdges() || g2.NumLayers() != g1.NumLayers() {
		t.Fatalf("round-trip mismatch: got nodes=%d edges=%d layers=%d, want nodes=%d edges=%d layers=%d",
			g2.NumNodes(), g2.NumEdges(), g2.NumLayers(), g1.NumNodes(), g1.NumEdges(), g1.NumLayers())
	}
	for l := 0; l < g1.NumLayers(); l++ {
		if g1.LayerSize(l) != g2.LayerSize(l) {
			t.Fatalf("layer %d size mismatch: got %d want %d", l, g2.LayerSize(l), g1.LayerSize(l))
		}
	}
}
