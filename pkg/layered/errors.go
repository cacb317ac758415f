package layered

import "errors"

var (
	// ErrDuplicateName is returned by [Builder.AddNode] when a node with
	// the same non-empty name has already been added.
	ErrDuplicateName = errors.New("duplicate node name")

	// ErrDuplicatePosition is returned by [Builder.AddNode] when two
	// nodes are assigned the same position on the same layer.
	ErrDuplicatePosition = errors.New("duplicate position on layer")

	// ErrUnknownNode is returned by [Builder.Build] when an endpoint index
	// given to [Builder.AddEdge] does not refer to a node added via
	// [Builder.AddNode].
	ErrUnknownNode = errors.New("unknown node")

	// ErrNonAdjacentLayers is returned by [Builder.Build] when an
	// edge's endpoints are not on adjacent layers (Up.Layer != Down.Layer+1).
	ErrNonAdjacentLayers = errors.New("edge endpoints are not on adjacent layers")

	// ErrGapInLayer is returned by [Builder.Build] when a layer's
	// positions do not form a contiguous 0..n-1 sequence. This can only
	// happen if a layer received fewer AddNode calls than its declared
	// size implied; callers that always assign positions 0..n-1
	// themselves will never see it.
	ErrGapInLayer = errors.New("layer has a gap in its position sequence")
)

// InvariantViolation is panicked (never returned as an error) when a
// mutation would break a hard structural invariant. Per the
// specification's error-handling design, invariant violations are
// programming errors, not recoverable conditions — see package
// engineerr for how the CLI layer classifies a recovered panic of this
// type.
type InvariantViolation struct {
	Invariant string // short name, e.g. "position-identity"
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation (" + e.Invariant + "): " + e.Detail
}

func panicInvariant(invariant, detail string) {
	panic(&InvariantViolation{Invariant: invariant, Detail: detail})
}
