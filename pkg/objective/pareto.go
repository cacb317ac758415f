package objective

import "github.com/ordbench/layerheur/pkg/layered"

// Point is one vertex of a Pareto frontier: a pair of objective values
// and the order snapshot that realized them.
type Point struct {
	X, Y     float64
	Snapshot layered.Snapshot
}

// Frontier maintains a non-dominated set of (x, y) points for a pair of
// minimization objectives, kept sorted ascending by X — which, for a
// proper non-dominated set, makes Y strictly decreasing along the same
// order. Inserting a point that is dominated by an existing point is a
// no-op; inserting a non-dominated point removes every point it
// dominates.
type Frontier struct {
	XKind, YKind Kind
	points       []Point
}

// EnablePareto installs a Pareto frontier tracking xKind against yKind.
// Only one frontier is tracked at a time; a second call replaces it.
func (t *Tracker) EnablePareto(xKind, yKind Kind) {
	t.frontier = &Frontier{XKind: xKind, YKind: yKind}
}

// Frontier returns the installed Pareto frontier, or nil if
// [Tracker.EnablePareto] was never called.
func (t *Tracker) Frontier() *Frontier { return t.frontier }

// ParetoUpdate inserts the current (x, y) reading — taken from the
// tracker's own records for the frontier's two objectives — into the
// frontier, if Pareto tracking is enabled. It is a no-op otherwise.
func (t *Tracker) ParetoUpdate() {
	if t.frontier == nil {
		return
	}
	x := t.records[t.frontier.XKind].Current
	y := t.records[t.frontier.YKind].Current
	t.frontier.insert(Point{X: x, Y: y, Snapshot: t.g.SaveOrder()})
}

func (f *Frontier) insert(p Point) {
	for _, existing := range f.points {
		if dominates(existing, p) {
			return
		}
	}
	kept := f.points[:0:0]
	for _, existing := range f.points {
		if !dominates(p, existing) {
			kept = append(kept, existing)
		}
	}
	f.points = kept

	i := 0
	for i < len(f.points) && f.points[i].X < p.X {
		i++
	}
	f.points = append(f.points, Point{})
	copy(f.points[i+1:], f.points[i:])
	f.points[i] = p
}

// dominates reports whether a is at least as good as b in both
// objectives and strictly better in at least one (minimization sense).
func dominates(a, b Point) bool {
	return a.X <= b.X && a.Y <= b.Y && (a.X < b.X || a.Y < b.Y)
}

// Points returns the frontier's current points, ascending by X.
func (f *Frontier) Points() []Point { return f.points }
