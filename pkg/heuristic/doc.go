// Package heuristic implements the heuristic drivers (component G): the
// named algorithms — median, barycenter, modified barycenter, sifting,
// maximum-crossings-node, maximum-crossings-edge (and its sifting
// variant), maximum-stretch-edge — plus the shared iteration/termination
// machinery and the post-processing swap optimizer they all share.
//
// Per the specification's design note on ambient state, every driver
// operates on an [Engine] value rather than process-wide globals: the
// graph, both counters, the objective tracker, the injected random
// source and clock, and the run's configuration are all bundled so a
// driver can be constructed, run, and torn down without touching shared
// state, making both tests and (eventually) parallel runs possible.
package heuristic
