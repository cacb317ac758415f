package objective

import (
	"math"

	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/stretch"
)

// Kind identifies one of the five tracked objectives.
type Kind int

const (
	TotalCrossings Kind = iota
	BottleneckCrossings
	TotalStretch
	BottleneckStretch
	FavoredCrossings
	numKinds
)

// String returns the short tag used on the command surface ({t, b, s, bs})
// for the objectives that have one, and a descriptive name otherwise.
func (k Kind) String() string {
	switch k {
	case TotalCrossings:
		return "t"
	case BottleneckCrossings:
		return "b"
	case TotalStretch:
		return "s"
	case BottleneckStretch:
		return "bs"
	case FavoredCrossings:
		return "favored"
	default:
		return "unknown"
	}
}

// Record is one objective's bookkeeping: the value as of the last
// UpdateAll, the best value ever observed, the iteration it was achieved
// at, and the order snapshot captured at that moment.
type Record struct {
	Current       float64
	Best          float64
	BestIteration int
	Snapshot      layered.Snapshot
	hasSnapshot   bool
	improvedLast  bool
}

// HasSnapshot reports whether a best-so-far snapshot has been captured.
func (r *Record) HasSnapshot() bool { return r.hasSnapshot }

// Tracker is the objective tracker for one graph. It does not itself
// recompute crossings or stretch — it trusts that the caller has already
// refreshed the supplied counters (UpdateAll's contract, per the
// specification: "recomputes current values, trusts that B and C are
// fresh").
type Tracker struct {
	g  *layered.Graph
	cc *crossing.Counter
	sc *stretch.Counter

	favoredChannel int
	records        [numKinds]Record
	frontier       *Frontier
}

// NewTracker creates a Tracker over g, backed by the given crossing and
// stretch counters. Every record starts at +Inf best with no snapshot, so
// the very first UpdateAll always counts as an improvement.
func NewTracker(g *layered.Graph, cc *crossing.Counter, sc *stretch.Counter) *Tracker {
	t := &Tracker{g: g, cc: cc, sc: sc}
	for k := range t.records {
		t.records[k].Best = math.Inf(1)
		t.records[k].BestIteration = -1
	}
	return t
}

// SetFavoredChannel designates which channel (between layer l and l+1)
// [FavoredCrossings] reports on.
func (t *Tracker) SetFavoredChannel(l int) { t.favoredChannel = l }

// Record returns the current bookkeeping for the given objective.
func (t *Tracker) Record(k Kind) *Record { return &t.records[k] }

// UpdateAll recomputes every objective's current value from the crossing
// and stretch counters, and for each one that strictly improved on its
// best, updates best, the iteration of best, and re-saves the snapshot.
// The first iteration to reach a given best value wins; a later call
// that merely ties the existing best does not overwrite it (determinism,
// per the specification).
func (t *Tracker) UpdateAll(iteration int) {
	values := [numKinds]float64{
		TotalCrossings:      float64(t.cc.TotalCrossings()),
		BottleneckCrossings: float64(t.bottleneckCrossings()),
		TotalStretch:        t.sc.TotalStretch(),
		BottleneckStretch:   t.sc.BottleneckStretch(),
		FavoredCrossings:    float64(t.favoredCrossings()),
	}
	for k := Kind(0); k < numKinds; k++ {
		r := &t.records[k]
		r.Current = values[k]
		r.improvedLast = false
		if r.Current < r.Best {
			r.Best = r.Current
			r.BestIteration = iteration
			r.Snapshot = t.g.SaveOrder()
			r.hasSnapshot = true
			r.improvedLast = true
		}
	}
}

func (t *Tracker) favoredCrossings() int {
	if t.favoredChannel < 0 || t.favoredChannel >= t.g.NumLayers()-1 {
		return 0
	}
	return t.cc.ChannelCrossings(t.favoredChannel)
}

// bottleneckCrossings returns the maximum per-edge crossing count, or 0
// for an edgeless graph (MaxCrossingsEdge panics in that case).
func (t *Tracker) bottleneckCrossings() (v int) {
	if t.g.NumEdges() == 0 {
		return 0
	}
	return t.g.Edge(t.cc.MaxCrossingsEdge()).Crossings
}

// HasImproved reports whether the most recent UpdateAll call improved the
// given objective.
func (t *Tracker) HasImproved(k Kind) bool { return t.records[k].improvedLast }

// AnyImproved reports whether the most recent UpdateAll call improved
// any tracked objective. Drivers use this to decide whether a pass was
// productive, for standard (no-improvement) termination.
func (t *Tracker) AnyImproved() bool {
	for k := range t.records {
		if t.records[k].improvedLast {
			return true
		}
	}
	return false
}
