// Package crossing implements the crossing counter (component B of the
// heuristic engine): per-edge and per-channel crossing bookkeeping, and
// the incremental queries ([Counter.CrossingsIfSwapped],
// [Counter.CrossingsAround], [Counter.EdgeCrossingsAround]) the sifting
// primitive and post-processing swap pass need to stay sub-quadratic.
//
// A "channel" is the set of edges between two adjacent layers l and
// l+1; a "crossing" is an unordered pair of edges in the same channel
// whose endpoint orderings invert. [Counter] caches, for a [layered.Graph],
// every edge's crossing count and every channel's total, following
// invariant 5: the sum of edge crossings divided by two equals the
// sum of channel totals equals the graph's total crossing count.
//
// Every routine here assumes the graph's structural invariants hold
// (see [layered.Graph.Validate]); a violation is a programming error and
// panics rather than returning an error, matching the specification's
// failure semantics for this component.
package crossing
