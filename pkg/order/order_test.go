package order_test

import (
	"testing"

	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/order"
)

func TestLayerSortIsStable(t *testing.T) {
	b := layered.NewBuilder("g")
	a, _ := b.AddNode("a", 0, 0)
	c, _ := b.AddNode("c", 0, 1)
	d, _ := b.AddNode("d", 0, 2)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g.Node(a).Weight, g.Node(c).Weight, g.Node(d).Weight = 1, 1, 0
	order.LayerSort(g, 0)
	if g.NodeAt(0, 0) != d || g.NodeAt(0, 1) != a || g.NodeAt(0, 2) != c {
		t.Fatalf("expected [d,a,c] (stable among equal weights), got [%d,%d,%d]",
			g.NodeAt(0, 0), g.NodeAt(0, 1), g.NodeAt(0, 2))
	}
}

func TestBarycenterOneFullSweepOnK33(t *testing.T) {
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
	cc := crossing.NewCounter(g)
	if got := cc.TotalCrossings(); got != 9 {
		t.Fatalf("initial TotalCrossings = %d, want 9", got)
	}

	order.AssignBarycenter(g, 1, order.Downward, false, order.IsolatedLeft)
	cc.FullRecount()
	if got := cc.TotalCrossings(); got != 9 {
		t.Fatalf("TotalCrossings after a no-op barycenter sort = %d, want 9 (every node has equal weight, fully symmetric)", got)
	}
}

func TestBarycenterResolvesShuffleGraph(t *testing.T) {
	// Two layers of 4 positioned 1..4 / 5..8 with edges (1,8)(2,7)(3,6)(4,5);
	// 0-indexed that is down[i]=i paired with up[3-i].
	b := layered.NewBuilder("shuffle")
	var down, up [4]int
	for i := 0; i < 4; i++ {
		down[i], _ = b.AddNode("", 0, i)
	}
	for i := 0; i < 4; i++ {
		up[i], _ = b.AddNode("", 1, i)
	}
	for i := 0; i < 4; i++ {
		_ = b.AddEdge(down[i], up[3-i])
	}
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cc := crossing.NewCounter(g)

	for pass := 0; pass < 4; pass++ {
		order.AssignBarycenter(g, 1, order.Downward, false, order.IsolatedLeft)
		cc.FullRecount()
		order.AssignBarycenter(g, 0, order.Upward, false, order.IsolatedLeft)
		cc.FullRecount()
	}
	if got := cc.TotalCrossings(); got != 0 {
		t.Fatalf("TotalCrossings after barycenter convergence = %d, want 0", got)
	}
}

func TestAssignDFSPreorderIsTotalAndDeterministic(t *testing.T) {
	b := layered.NewBuilder("g")
	a, _ := b.AddNode("a", 0, 0)
	c, _ := b.AddNode("c", 1, 0)
	_ = b.AddEdge(a, c)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	order.AssignDFSPreorder(g)
	if g.Node(a).PreorderNumber != 0 || g.Node(c).PreorderNumber != 1 {
		t.Fatalf("unexpected preorder numbers: a=%d c=%d", g.Node(a).PreorderNumber, g.Node(c).PreorderNumber)
	}
}

func TestIsolatedNodeGetsLeftCarriedWeight(t *testing.T) {
	b := layered.NewBuilder("g")
	a, _ := b.AddNode("a", 0, 0)
	iso, _ := b.AddNode("iso", 0, 1)
	u, _ := b.AddNode("u", 1, 0)
	_ = b.AddEdge(a, u)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	order.AssignBarycenter(g, 0, order.Upward, false, order.IsolatedLeft)
	if g.Node(iso).Weight != g.Node(a).Weight {
		t.Fatalf("isolated node weight = %v, want left neighbor's weight %v", g.Node(iso).Weight, g.Node(a).Weight)
	}
}
