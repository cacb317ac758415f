package dotord_test

import (
	"strings"
	"testing"

	"github.com/ordbench/layerheur/pkg/ioformat/dotord"
)

func TestReadBasicPair(t *testing.T) {
	dot := strings.Join([]string{
		`digraph G {`,
		`  "a" [label="a"];`,
		`  "b" [label="b"];`,
		`  "c" [label="c"];`,
		`  "a" -> "b";`,
		`  "b" -> "c";`,
		`}`,
	}, "\n")
	ord := strings.Join([]string{
		"0 a",
		"1 b",
		"2 c",
	}, "\n")

	g, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.NumNodes() != 3 || g.NumEdges() != 2 || g.NumLayers() != 3 {
		t.Fatalf("got nodes=%d edges=%d layers=%d", g.NumNodes(), g.NumEdges(), g.NumLayers())
	}
}

// TestReadSingleEdgePair guards the same early-read hazard the sgf
// package tests, here for the DOT side of the pair.
func TestReadSingleEdgePair(t *testing.T) {
	dot := strings.Join([]string{
		`digraph G {`,
		`  "a" -> "b";`,
		`}`,
	}, "\n")
	ord := "0 a\n1 b\n"

	g, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.NumEdges() != 1 {
		t.Fatalf("expected exactly 1 edge, got %d", g.NumEdges())
	}
}

func TestReadFatalOnNameInDotNotInOrd(t *testing.T) {
	dot := `digraph G { "a" -> "b"; "b" -> "c"; }`
	ord := "0 a\n1 b\n"

	if _, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil); err == nil {
		t.Fatal("expected a name-mismatch error, got nil")
	}
}

func TestReadFatalOnNameInOrdNotInDot(t *testing.T) {
	dot := `digraph G { "a" -> "b"; }`
	ord := "0 a\n1 b\n2 c\n"

	if _, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil); err == nil {
		t.Fatal("expected a name-mismatch error, got nil")
	}
}

func TestReadFatalOnDuplicatePosition(t *testing.T) {
	dot := `digraph G { "a" -> "c"; "b" -> "c"; }`
	ord := "0 a\n0 b\n1 c\n"

	if _, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil); err == nil {
		t.Fatal("expected a duplicate-layer error, got nil")
	}
}

func TestReadFatalOnNonAdjacentLayers(t *testing.T) {
	dot := `digraph G { "a" -> "c"; }`
	ord := "0 a\n1 b\n2 c\n"

	if _, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil); err == nil {
		t.Fatal("expected a non-adjacent-layers error, got nil")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dot := strings.Join([]string{
		`digraph G {`,
		`  "a" [label="a"];`,
		`  "b" [label="b"];`,
		`  "c" [label="c"];`,
		`  "d" [label="d"];`,
		`  "a" -> "c";`,
		`  "a" -> "d";`,
		`  "b" -> "d";`,
		`}`,
	}, "\n")
	ord := strings.Join([]string{
		"0 a b",
		"1 c d",
	}, "\n")

	g1, err := dotord.Read(strings.NewReader(dot), strings.NewReader(ord), "demo", nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var dotOut, ordOut strings.Builder
	if err := dotord.WriteDOT(&dotOut, g1); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	if err := dotord.WriteORD(&ordOut, g1); err != nil {
		t.Fatalf("WriteORD: %v", err)
	}

	g2, err := dotord.Read(strings.NewReader(dotOut.String()), strings.NewReader(ordOut.String()), "demo", func(string, ...any) {
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
