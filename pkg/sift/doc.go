// Package sift implements the sifting primitive (component F): for a
// single node, evaluate every insertion position on its layer under a
// chosen local objective and move the node to the minimizer, keeping the
// current position on a tie.
//
// Three variants share one skeleton, differing only in which counter
// they query for candidate deltas: [Total] (total crossings), [Edge]
// (bottleneck crossings among edges incident on the sifted node, total
// crossings as tie-breaker), and [Stretch] (total stretch).
package sift
