package heuristic_test

import (
	"context"
	"testing"
	"time"

	"github.com/ordbench/layerheur/pkg/clock"
	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/heuristic"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/objective"
	"github.com/ordbench/layerheur/pkg/order"
	"github.com/ordbench/layerheur/pkg/randsrc"
	"github.com/ordbench/layerheur/pkg/stretch"
)

func newEngine(g *layered.Graph) *heuristic.Engine {
	cc := crossing.NewCounter(g)
	sc := stretch.NewCounter(g)
	tr := objective.NewTracker(g, cc, sc)
	rng := randsrc.New(1)
	clk := clock.NewFake(time.Unix(0, 0))
	cfg := heuristic.Config{MaxIterations: 10000, Standard: true}
	return heuristic.NewEngine(context.Background(), g, cc, sc, tr, rng, clk, cfg)
}

func buildK33(t *testing.T) *layered.Graph {
	t.Helper()
	b := layered.NewBuilder("k33")
	var down, up [3]int
	for i := 0; i < 3; i++ {
		down[i], _ = b.AddNode("", 0, i)
	}
	for i := 0; i < 3; i++ {
		up[i], _ = b.AddNode("", 1, i)
	}
	for _, d := range down {
		for _, u := range up {
			_ = b.AddEdge(d, u)
		}
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

// buildShuffledPaths builds three vertex-disjoint paths spanning five
// layers, with each layer's positions permuted so the initial order has
// crossings even though the graph (a disjoint union of paths) always
// admits a zero-crossing order.
func buildShuffledPaths(t *testing.T) *layered.Graph {
	t.Helper()
	b := layered.NewBuilder("paths")
	perms := [5][3]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}, {0, 1, 2}}
	var ids [5][3]int
	for l := 0; l < 5; l++ {
		for idx := 0; idx < 3; idx++ {
			id, _ := b.AddNode("", l, perms[l][idx])
			ids[l][idx] = id
		}
	}
	for l := 0; l < 4; l++ {
		for idx := 0; idx < 3; idx++ {
			_ = b.AddEdge(ids[l][idx], ids[l+1][idx])
		}
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestBarycenterLeavesSymmetricK33Unchanged(t *testing.T) {
	g := buildK33(t)
	e := newEngine(g)
	res := heuristic.RunBarycenter(e, order.IsolatedLeft)
	if got := e.Cross.TotalCrossings(); got != 9 {
		t.Fatalf("TotalCrossings after barycenter on K3,3 = %d, want 9 (fully symmetric, no order can help)", got)
	}
	if res.Reason != engineerr.TerminationNoImprovement {
		t.Fatalf("Reason = %v, want no-improvement", res.Reason)
	}
}

func TestMedianConvergesDisjointPathsToZero(t *testing.T) {
	g := buildShuffledPaths(t)
	e := newEngine(g)
	heuristic.RunMedian(e, order.IsolatedLeft)
	if got := e.Cross.TotalCrossings(); got != 0 {
		t.Fatalf("TotalCrossings after median on disjoint paths = %d, want 0", got)
	}
}

func TestBarycenterConvergesDisjointPathsToZero(t *testing.T) {
	g := buildShuffledPaths(t)
	e := newEngine(g)
	heuristic.RunBarycenter(e, order.IsolatedLeft)
	if got := e.Cross.TotalCrossings(); got != 0 {
		t.Fatalf("TotalCrossings after barycenter on disjoint paths = %d, want 0", got)
	}
}

func TestSiftingNeverIncreasesTotalCrossings(t *testing.T) {
	g := buildShuffledPaths(t)
	e := newEngine(g)
	before := e.Cross.TotalCrossings()
	heuristic.RunSifting(e)
	after := e.Cross.TotalCrossings()
	if after > before {
		t.Fatalf("TotalCrossings grew from %d to %d after sifting", before, after)
	}
}

func TestModifiedBarycenterNeverIncreasesTotalCrossings(t *testing.T) {
	g := buildK33(t)
	e := newEngine(g)
	before := e.Cross.TotalCrossings()
	heuristic.RunModifiedBarycenter(e, order.IsolatedLeft)
	after := e.Cross.TotalCrossings()
	if after > before {
		t.Fatalf("TotalCrossings grew from %d to %d after modified barycenter", before, after)
	}
}

func TestMCEPlusPostProcessDoesNotExceedMCEAlone(t *testing.T) {
	g1 := buildShuffledPaths(t)
	e1 := newEngine(g1)
	heuristic.RunMCE(e1, heuristic.MCENodes)
	mceOnly := e1.Cross.TotalCrossings()

	g2 := buildShuffledPaths(t)
	e2 := newEngine(g2)
	heuristic.RunMCE(e2, heuristic.MCENodes)
	heuristic.RunPostProcess(e2)
	mcePlusPost := e2.Cross.TotalCrossings()

	if mcePlusPost > mceOnly {
		t.Fatalf("mce+postprocess crossings = %d, exceeds mce-alone crossings %d", mcePlusPost, mceOnly)
	}
}

func TestMCNNeverIncreasesTotalCrossings(t *testing.T) {
	g := buildShuffledPaths(t)
	e := newEngine(g)
	before := e.Cross.TotalCrossings()
	heuristic.RunMCN(e)
	after := e.Cross.TotalCrossings()
	if after > before {
		t.Fatalf("TotalCrossings grew from %d to %d after mcn", before, after)
	}
}

func TestMSENeverIncreasesTotalStretch(t *testing.T) {
	g := buildShuffledPaths(t)
	e := newEngine(g)
	before := e.Stretch.TotalStretch()
	heuristic.RunMSE(e)
	after := e.Stretch.TotalStretch()
	if after > before {
		t.Fatalf("TotalStretch grew from %v to %v after mse", before, after)
	}
}
