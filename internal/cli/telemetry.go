package cli

import (
	"context"
	"time"

	"github.com/ordbench/layerheur/pkg/telemetry"
)

// fanoutHooks dispatches every telemetry.RunHooks event to each of its
// delegates in order, so a run command can register a logger, a status
// server recorder, and a progress-TUI recorder simultaneously — each a
// plain observer, none required, exactly the "optional persistence /
// observation the core never depends on" shape SPEC_FULL.md describes
// for the rest of the domain stack.
type fanoutHooks []telemetry.RunHooks

func (f fanoutHooks) OnRunStart(ctx context.Context, heuristic string, maxIterations int, maxRuntime time.Duration) {
	for _, h := range f {
		h.OnRunStart(ctx, heuristic, maxIterations, maxRuntime)
	}
}

func (f fanoutHooks) OnIteration(ctx context.Context, iteration int, totalCrossings int, improved bool) {
	for _, h := range f {
		h.OnIteration(ctx, iteration, totalCrossings, improved)
	}
}

func (f fanoutHooks) OnPassComplete(ctx context.Context, pass int, improvedThisPass bool) {
	for _, h := range f {
		h.OnPassComplete(ctx, pass, improvedThisPass)
	}
}

func (f fanoutHooks) OnStandardTerminationReached(ctx context.Context, iteration int) {
	for _, h := range f {
		h.OnStandardTerminationReached(ctx, iteration)
	}
}

func (f fanoutHooks) OnRunComplete(ctx context.Context, reason string, bestTotalCrossings int, elapsed time.Duration) {
	for _, h := range f {
		h.OnRunComplete(ctx, reason, bestTotalCrossings, elapsed)
	}
}

func (f fanoutHooks) OnCapture(ctx context.Context, iteration int, path string, err error) {
	for _, h := range f {
		h.OnCapture(ctx, iteration, path, err)
	}
}

var _ telemetry.RunHooks = fanoutHooks(nil)

// loggingHooks implements telemetry.RunHooks by writing progress lines
// through the CLI's charmbracelet/log logger, throttled to every
// traceEvery'th iteration so a 10,000-iteration run doesn't flood the
// terminal — the --trace-frequency flag spec §6.3 names.
type loggingHooks struct {
	logger     interface {
		Infof(format string, args ...any)
		Debugf(format string, args ...any)
	}
	traceEvery int
}

func (l loggingHooks) OnRunStart(_ context.Context, heuristic string, maxIterations int, maxRuntime time.Duration) {
	l.logger.Infof("starting %s (max_iterations=%d max_runtime=%s)", heuristic, maxIterations, maxRuntime)
}

func (l loggingHooks) OnIteration(_ context.Context, iteration int, totalCrossings int, improved bool) {
	if l.traceEvery <= 0 || iteration%l.traceEvery != 0 {
		return
	}
	l.logger.Debugf("iteration %d: total_crossings=%d improved=%v", iteration, totalCrossings, improved)
}

func (l loggingHooks) OnPassComplete(_ context.Context, pass int, improvedThisPass bool) {
	l.logger.Debugf("pass %d complete: improved=%v", pass, improvedThisPass)
}

func (l loggingHooks) OnStandardTerminationReached(_ context.Context, iteration int) {
	l.logger.Infof("standard termination reached at iteration %d", iteration)
}

func (l loggingHooks) OnRunComplete(_ context.Context, reason string, bestTotalCrossings int, elapsed time.Duration) {
	l.logger.Infof("run complete: %s, best_total_crossings=%d, elapsed=%s", reason, bestTotalCrossings, elapsed)
}

func (l loggingHooks) OnCapture(_ context.Context, iteration int, path string, err error) {
	if err != nil {
		l.logger.Infof("capture at iteration %d failed: %v", iteration, err)
		return
	}
	l.logger.Infof("captured iteration %d -> %s", iteration, path)
}

var _ telemetry.RunHooks = loggingHooks{}
