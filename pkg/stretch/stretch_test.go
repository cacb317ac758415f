package stretch_test

import (
	"math"
	"testing"

	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/stretch"
)

func buildPath(t *testing.T) *layered.Graph {
	t.Helper()
	b := layered.NewBuilder("path")
	prev := -1
	for l := 0; l < 3; l++ {
		id, err := b.AddNode("", l, 0)
		if err != nil {
			t.Fatalf("AddNode: %v", err)
		}
		if prev >= 0 {
			if err := b.AddEdge(prev, id); err != nil {
				t.Fatalf("AddEdge: %v", err)
			}
		}
		prev = id
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestSingleNodeLayersHaveZeroStretch(t *testing.T) {
	g := buildPath(t)
	c := stretch.NewCounter(g)
	if got := c.TotalStretch(); got != 0 {
		t.Fatalf("TotalStretch = %v, want 0 (every layer has one node)", got)
	}
}

func TestStretchFormula(t *testing.T) {
	b := layered.NewBuilder("g")
	d0, _ := b.AddNode("", 0, 0)
	d1, _ := b.AddNode("", 0, 1)
	u0, _ := b.AddNode("", 1, 0)
	u1, _ := b.AddNode("", 1, 1)
	_ = b.AddEdge(d0, u1)
	_ = b.AddEdge(d1, u0)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	c := stretch.NewCounter(g)
	// Both edges connect position 0 to position 1 (normalized 0 to 1): stretch 1 each.
	if got := c.TotalStretch(); math.Abs(got-2) > 1e-9 {
		t.Fatalf("TotalStretch = %v, want 2", got)
	}
	if got := c.BottleneckStretch(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("BottleneckStretch = %v, want 1", got)
	}
}

func TestRecountEdgeMatchesFullRecount(t *testing.T) {
	g := buildPath(t)
	c := stretch.NewCounter(g)
	g.SwapPositions(0, 0, 0) // no-op, single-node layer
	c.RecountEdge(0)
	full := stretch.NewCounter(g)
	if math.Abs(c.TotalStretch()-full.TotalStretch()) > 1e-9 {
		t.Fatalf("RecountEdge total %v diverged from FullRecount total %v", c.TotalStretch(), full.TotalStretch())
	}
}
