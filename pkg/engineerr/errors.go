// Package engineerr provides structured error types for the heuristic
// engine, adapted from the error-kind taxonomy in the specification's
// error-handling design: input-format errors are fatal at parse time,
// invariant violations are programming errors, and "budget reached" /
// "no-improvement" are recoverable conditions signaled through
// [TerminationReason] rather than an error at all.
package engineerr

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// CodeMalformedHeader: an SGF header line failed to parse.
	CodeMalformedHeader Code = "MALFORMED_HEADER"
	// CodeTruncatedRecord: fewer node/edge lines than the file promised
	// to deliver before EOF.
	CodeTruncatedRecord Code = "TRUNCATED_RECORD"
	// CodeDanglingEndpoint: an edge names a node that was never defined.
	CodeDanglingEndpoint Code = "DANGLING_ENDPOINT"
	// CodeNonAdjacentLayers: an edge's endpoints are not on adjacent layers.
	CodeNonAdjacentLayers Code = "NON_ADJACENT_LAYERS"
	// CodeDuplicatePosition: two nodes claim the same position on one layer.
	CodeDuplicatePosition Code = "DUPLICATE_POSITION"
	// CodeNameMismatch: a node named in one of the paired DOT/ORD files
	// is absent from the other.
	CodeNameMismatch Code = "NAME_MISMATCH"
	// CodeInvariant: a structural invariant was violated during a
	// mutation. Always wraps a *layered.InvariantViolation.
	CodeInvariant Code = "INVARIANT_VIOLATION"
)

// Error is a structured, located error: a code, a human-readable
// message, the 1-based source line it was detected at (0 if not
// file-based), and an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Line    int
	Cause   error
}

func (e *Error) Error() string {
	loc := ""
	if e.Line > 0 {
		loc = fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s: %v", e.Code, loc, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", e.Code, loc, e.Message)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with no source location.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AtLine creates an Error locating the problem at the given 1-based
// source line.
func AtLine(code Code, line int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Line: line}
}

// Wrap creates an Error wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
