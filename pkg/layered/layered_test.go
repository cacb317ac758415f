package layered_test

import (
	"errors"
	"testing"

	"github.com/ordbench/layerheur/pkg/layered"
)

func buildK33(t *testing.T) *layered.Graph {
	t.Helper()
	b := layered.NewBuilder("k33")
	var bottom, top [3]int
	for i := 0; i < 3; i++ {
		id, err := b.AddNode("", 0, i)
		if err != nil {
			t.Fatalf("AddNode(bottom %d): %v", i, err)
		}
		bottom[i] = id
	}
	for i := 0; i < 3; i++ {
		id, err := b.AddNode("", 1, i)
		if err != nil {
			t.Fatalf("AddNode(top %d): %v", i, err)
		}
		top[i] = id
	}
	for _, d := range bottom {
		for _, u := range top {
			if err := b.AddEdge(d, u); err != nil {
				t.Fatalf("AddEdge(%d,%d): %v", d, u, err)
			}
		}
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestBuilderDuplicateName(t *testing.T) {
	b := layered.NewBuilder("g")
	if _, err := b.AddNode("a", 0, 0); err != nil {
		t.Fatalf("first AddNode: %v", err)
	}
	if _, err := b.AddNode("a", 0, 1); !errors.Is(err, layered.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestBuilderDuplicatePosition(t *testing.T) {
	b := layered.NewBuilder("g")
	if _, err := b.AddNode("a", 0, 0); err != nil {
		t.Fatalf("first AddNode: %v", err)
	}
	if _, err := b.AddNode("b", 0, 0); !errors.Is(err, layered.ErrDuplicatePosition) {
		t.Fatalf("expected ErrDuplicatePosition, got %v", err)
	}
}

func TestBuilderGapInLayer(t *testing.T) {
	b := layered.NewBuilder("g")
	if _, err := b.AddNode("a", 0, 1); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, layered.ErrGapInLayer) {
		t.Fatalf("expected ErrGapInLayer, got %v", err)
	}
}

func TestBuilderNonAdjacentLayers(t *testing.T) {
	b := layered.NewBuilder("g")
	a, _ := b.AddNode("a", 0, 0)
	c, _ := b.AddNode("c", 2, 0)
	if err := b.AddEdge(a, c); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, layered.ErrNonAdjacentLayers) {
		t.Fatalf("expected ErrNonAdjacentLayers, got %v", err)
	}
}

func TestBuilderUnknownNode(t *testing.T) {
	b := layered.NewBuilder("g")
	a, _ := b.AddNode("a", 0, 0)
	if err := b.AddEdge(a, 99); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, layered.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestSwapPositionsUpdatesBothNodes(t *testing.T) {
	g := buildK33(t)
	n0, n1 := g.NodeAt(0, 0), g.NodeAt(0, 1)
	g.SwapPositions(0, 0, 1)
	if g.NodeAt(0, 0) != n1 || g.NodeAt(0, 1) != n0 {
		t.Fatalf("layer order not swapped")
	}
	if g.Node(n0).Position != 1 || g.Node(n1).Position != 0 {
		t.Fatalf("node Position fields not updated after swap")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate after swap: %v", err)
	}
}

func TestRepositionNodePreservesInvariant(t *testing.T) {
	g := buildK33(t)
	moved := g.NodeAt(0, 0)
	g.RepositionNode(moved, 2)
	if g.Node(moved).Position != 2 {
		t.Fatalf("moved node Position = %d, want 2", g.Node(moved).Position)
	}
	for pos := 0; pos < g.LayerSize(0); pos++ {
		if g.Node(g.NodeAt(0, pos)).Position != pos {
			t.Fatalf("position identity broken at pos %d", pos)
		}
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate after reposition: %v", err)
	}
}

func TestRepositionNodeOutOfRangePanics(t *testing.T) {
	g := buildK33(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range RepositionNode")
		}
	}()
	g.RepositionNode(g.NodeAt(0, 0), 99)
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := buildK33(t)
	snap := g.SaveOrder()
	g.SwapPositions(0, 0, 1)
	g.SwapPositions(1, 1, 2)
	g.RestoreOrder(snap)
	for l := 0; l < g.NumLayers(); l++ {
		for pos := 0; pos < g.LayerSize(l); pos++ {
			if g.Node(g.NodeAt(l, pos)).Position != pos {
				t.Fatalf("restored order broke position identity at layer %d pos %d", l, pos)
			}
		}
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate after restore: %v", err)
	}
}

func TestValidateDetectsCorruptedPosition(t *testing.T) {
	g := buildK33(t)
	g.Node(g.NodeAt(0, 0)).Position = 42
	if err := g.Validate(); err == nil {
		t.Fatalf("expected Validate to detect corrupted Position field")
	}
}

func ExampleBuilder() {
	b := layered.NewBuilder("path")
	a, _ := b.AddNode("a", 0, 0)
	c, _ := b.AddNode("c", 1, 0)
	_ = b.AddEdge(a, c)
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	_ = g
	// Output:
}
