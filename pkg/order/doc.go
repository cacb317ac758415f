// Package order implements the sort/weight primitives (component E):
// weight assignment (barycenter, median, DFS preorder) for a layer given
// a neighbor orientation, and the stable layer_sort that turns assigned
// weights into a new position order.
//
// Package order also implements the initial-order preprocessors (none,
// bfs, dfs, mds) that a run may apply once before the chosen heuristic
// driver starts, resolving the command surface's otherwise-undefined
// preprocessor choice by reusing this package's own DFS preorder
// assigner and two new traversal-based assigners.
package order
