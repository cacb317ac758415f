package engineerr

import "github.com/ordbench/layerheur/pkg/layered"

// TerminationReason explains why a heuristic driver stopped. These are
// not errors — the specification classifies "budget reached" and
// "no-improvement" as recoverable, normal-return conditions — but
// callers that report exit status need to distinguish a clean stop from
// one forced by an iteration or runtime cap.
type TerminationReason int

const (
	// TerminationNone means the driver is still running (only used as
	// a zero value before a driver's first termination check).
	TerminationNone TerminationReason = iota
	// TerminationIterationBudget: iteration >= max_iterations.
	TerminationIterationBudget
	// TerminationRuntimeBudget: elapsed wall-clock >= max_runtime.
	TerminationRuntimeBudget
	// TerminationNoImprovement: standard mode, and a full pass produced
	// no improvement on any tracked objective.
	TerminationNoImprovement
)

func (r TerminationReason) String() string {
	switch r {
	case TerminationIterationBudget:
		return "iteration budget reached"
	case TerminationRuntimeBudget:
		return "runtime budget reached"
	case TerminationNoImprovement:
		return "no improvement"
	default:
		return "running"
	}
}

// Recover converts a recovered panic into an *Error with
// [CodeInvariant], if and only if the recovered value is a
// *layered.InvariantViolation. Any other recovered value is re-panicked
// — this package only absorbs invariant violations, which are the sole
// panic-worthy condition the specification defines.
func Recover(recovered any) error {
	if iv, ok := recovered.(*layered.InvariantViolation); ok {
		return Wrap(CodeInvariant, iv, "engine invariant violated")
	}
	panic(recovered)
}
