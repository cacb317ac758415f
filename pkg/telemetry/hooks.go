// Package telemetry provides hooks for observing a heuristic run without
// coupling the engine to any specific logging or metrics backend. It is
// the generalization of the hooks-registration pattern used elsewhere in
// this codebase: a consumer (the CLI, the status server) registers an
// implementation at startup; the engine calls it by value and never
// imports a concrete backend.
package telemetry

import (
	"context"
	"time"
)

// RunHooks receives events from one heuristic-engine run.
type RunHooks interface {
	// OnRunStart fires once, before the first pass of the selected
	// heuristic.
	OnRunStart(ctx context.Context, heuristic string, maxIterations int, maxRuntime time.Duration)

	// OnIteration fires once per unit of local work (one layer sort, or
	// one node sift), after the objective tracker has been refreshed.
	OnIteration(ctx context.Context, iteration int, totalCrossings int, improved bool)

	// OnPassComplete fires at the end of each driver pass.
	OnPassComplete(ctx context.Context, pass int, improvedThisPass bool)

	// OnStandardTerminationReached fires the first time standard
	// termination would have fired, regardless of whether the run
	// actually stops there (per the specification's "prints a banner"
	// requirement) — exactly once per run.
	OnStandardTerminationReached(ctx context.Context, iteration int)

	// OnRunComplete fires once, when the driver returns.
	OnRunComplete(ctx context.Context, reason string, bestTotalCrossings int, elapsed time.Duration)

	// OnCapture fires when an ordering is written to a capture file.
	OnCapture(ctx context.Context, iteration int, path string, err error)
}

// NoopRunHooks is a RunHooks implementation that does nothing, the
// default when no hooks are registered.
type NoopRunHooks struct{}

func (NoopRunHooks) OnRunStart(context.Context, string, int, time.Duration)   {}
func (NoopRunHooks) OnIteration(context.Context, int, int, bool)              {}
func (NoopRunHooks) OnPassComplete(context.Context, int, bool)                {}
func (NoopRunHooks) OnStandardTerminationReached(context.Context, int)        {}
func (NoopRunHooks) OnRunComplete(context.Context, string, int, time.Duration) {}
func (NoopRunHooks) OnCapture(context.Context, int, string, error)            {}

var hooks RunHooks = NoopRunHooks{}

// Set registers the hooks implementation every subsequent run will call.
// This should be called once at application startup.
func Set(h RunHooks) {
	if h != nil {
		hooks = h
	}
}

// Get returns the currently registered hooks.
func Get() RunHooks { return hooks }

// Reset restores the no-op default. Primarily useful for tests.
func Reset() { hooks = NoopRunHooks{} }
