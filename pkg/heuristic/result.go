package heuristic

import (
	"time"

	"github.com/ordbench/layerheur/pkg/engineerr"
)

// Result summarizes a driver run: why it stopped, how long it ran, and
// the final iteration count. The caller reads the best-so-far orderings
// from the Engine's Track field directly.
type Result struct {
	Reason     engineerr.TerminationReason
	Iterations int
	Elapsed    time.Duration
}

func (e *Engine) result(reason engineerr.TerminationReason) Result {
	return Result{Reason: reason, Iterations: e.iteration, Elapsed: e.Elapsed()}
}
