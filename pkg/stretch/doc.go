// Package stretch implements the stretch counter (component C): the
// per-edge "stretch" of a layered graph drawing, and the total and
// bottleneck aggregates the objective tracker and the total-stretch
// sifter consume.
//
// The stretch of edge (u, v), with u on layer L and v on layer L+1, is
// the absolute difference between their normalized positions:
//
//	stretch(u, v) = | pos(u)/(|L|-1) - pos(v)/(|L+1|-1) |
//
// defined as 0 when either layer has fewer than two nodes (normalized
// position is undefined). Unlike crossings, stretch is not stored on
// [layered.Edge] — it belongs to this component, which keeps its own
// per-edge cache.
package stretch
