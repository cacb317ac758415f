package heuristic

import (
	"context"
	"time"

	"github.com/ordbench/layerheur/pkg/clock"
	"github.com/ordbench/layerheur/pkg/crossing"
	"github.com/ordbench/layerheur/pkg/engineerr"
	"github.com/ordbench/layerheur/pkg/layered"
	"github.com/ordbench/layerheur/pkg/objective"
	"github.com/ordbench/layerheur/pkg/randsrc"
	"github.com/ordbench/layerheur/pkg/stretch"
	"github.com/ordbench/layerheur/pkg/telemetry"
)

// CaptureWriter is the injected output collaborator: given the graph in
// its current order and the iteration that triggered the capture, it
// writes that ordering out-of-band (to a file, in the caller's chosen
// format) and reports any error. The engine performs no I/O itself.
type CaptureWriter func(g *layered.Graph, iteration int) error

// Config bounds and configures a single driver run.
type Config struct {
	// MaxIterations is the iteration-budget termination bound. 0 means unbounded.
	MaxIterations int
	// MaxRuntime is the wall-clock termination bound. 0 means unbounded.
	MaxRuntime time.Duration
	// Standard enables no-improvement termination: a driver stops at
	// the end of any pass that improved no tracked objective.
	Standard bool
	// CaptureIterations, if non-nil, names the iterations at which
	// Writer should be invoked.
	CaptureIterations map[int]bool
	// Writer is called when the current iteration is in
	// CaptureIterations. May be nil if no capture was requested.
	Writer CaptureWriter
}

// Engine bundles the graph and every collaborator a driver needs,
// replacing the process-wide globals the original tool used.
type Engine struct {
	Graph   *layered.Graph
	Cross   *crossing.Counter
	Stretch *stretch.Counter
	Track   *objective.Tracker
	Rand    *randsrc.Source
	Clock   clock.Clock
	Config  Config

	ctx               context.Context
	iteration         int
	startTime         time.Time
	standardAnnounced bool
}

// NewEngine creates an Engine. The crossing and stretch counters, and
// the objective tracker, must already be constructed over graph (they
// are passed in rather than built here so a caller can pre-populate a
// favored channel or a Pareto pair before the run starts).
func NewEngine(ctx context.Context, g *layered.Graph, cc *crossing.Counter, sc *stretch.Counter, tr *objective.Tracker, rng *randsrc.Source, clk clock.Clock, cfg Config) *Engine {
	return &Engine{
		Graph: g, Cross: cc, Stretch: sc, Track: tr, Rand: rng, Clock: clk, Config: cfg,
		ctx: ctx,
	}
}

// Iteration returns the number of local-work units performed so far.
func (e *Engine) Iteration() int { return e.iteration }

// Step records one unit of local work: it increments the iteration
// counter, refreshes the objective tracker and Pareto frontier (trusting
// that the caller already refreshed the crossing/stretch counters for
// whatever it just mutated), fires a capture if this iteration was
// requested, and reports whether any objective improved and whether an
// iteration- or runtime-budget termination has now been reached.
//
// Step is a termination safe point: the specification requires that no
// iteration straddle the termination predicate, so drivers must call
// Step after every complete local move (one sift, one layer sort) and
// check its returned reason before starting the next one.
func (e *Engine) Step() (improved bool, reason engineerr.TerminationReason) {
	if e.startTime.IsZero() {
		e.startTime = e.Clock.Now()
	}
	e.iteration++
	e.Track.UpdateAll(e.iteration)
	e.Track.ParetoUpdate()
	improved = e.Track.AnyImproved()

	telemetry.Get().OnIteration(e.ctx, e.iteration, e.Cross.TotalCrossings(), improved)

	if e.Config.CaptureIterations[e.iteration] && e.Config.Writer != nil {
		err := e.Config.Writer(e.Graph, e.iteration)
		telemetry.Get().OnCapture(e.ctx, e.iteration, "", err)
	}

	if e.Config.MaxIterations > 0 && e.iteration >= e.Config.MaxIterations {
		return improved, engineerr.TerminationIterationBudget
	}
	if e.Config.MaxRuntime > 0 && clock.Elapsed(e.Clock, e.startTime) >= e.Config.MaxRuntime {
		return improved, engineerr.TerminationRuntimeBudget
	}
	return improved, engineerr.TerminationNone
}

// EndPass is called by a driver once per completed pass, with whether
// any Step within that pass reported an improvement. It announces
// standard termination (once, ever, per the specification's "prints a
// banner the first time standard termination would have fired"
// requirement) and reports whether the run should actually stop here.
func (e *Engine) EndPass(pass int, passImproved bool) (stop bool, reason engineerr.TerminationReason) {
	telemetry.Get().OnPassComplete(e.ctx, pass, passImproved)
	if passImproved {
		return false, engineerr.TerminationNone
	}
	if !e.standardAnnounced {
		e.standardAnnounced = true
		telemetry.Get().OnStandardTerminationReached(e.ctx, e.iteration)
	}
	if e.Config.Standard {
		return true, engineerr.TerminationNoImprovement
	}
	return false, engineerr.TerminationNone
}

// refreshLayer recounts every counter touched by a reorder of layer l:
// the crossing channels bordering l, and the stretch of every edge
// incident on one of l's nodes (stretch has no incremental channel
// concept since it depends only on an edge's own two endpoints). Every
// driver that reorders a layer wholesale (the sweep-based heuristics,
// post-processing) calls this before Step so the objective tracker sees
// every objective correctly, not just total crossings.
func (e *Engine) refreshLayer(l int) {
	if l-1 >= 0 {
		e.Cross.RecountChannel(l - 1)
	}
	if l < e.Graph.NumLayers()-1 {
		e.Cross.RecountChannel(l)
	}
	for pos := 0; pos < e.Graph.LayerSize(l); pos++ {
		n := e.Graph.Node(e.Graph.NodeAt(l, pos))
		for _, edge := range n.UpEdges {
			e.Stretch.RecountEdge(edge)
		}
		for _, edge := range n.DownEdges {
			e.Stretch.RecountEdge(edge)
		}
	}
}

// Elapsed returns the wall-clock duration since the first Step call.
func (e *Engine) Elapsed() time.Duration {
	if e.startTime.IsZero() {
		return 0
	}
	return clock.Elapsed(e.Clock, e.startTime)
}
