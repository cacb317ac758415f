// Package objective implements the objective tracker (component D): for
// each tracked objective it keeps the current value, the best value seen
// across a run, the iteration at which best was achieved, and a saved
// vertex-order snapshot captured when best last improved.
//
// Five objectives are tracked: total crossings, bottleneck crossings
// (maximum per-edge crossing count), total stretch, bottleneck stretch,
// and favored crossings — the crossing count of a single designated
// channel, set with [Tracker.SetFavoredChannel], letting a caller watch
// one channel's crossing count independently of the graph-wide totals.
// All five are minimization objectives: "improved" means strictly lower.
package objective
