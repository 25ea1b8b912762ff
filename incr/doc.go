// Package incr implements the engine's non-linear incremental
// operators: Distinct, the incremental replacement for zset.Distinct,
// and GroupSum, the incremental form of a GROUP BY SUM aggregate view.
// Both maintain hidden per-element or per-group state internally and
// emit only the output delta a given input delta causes, rather than
// recomputing their result over the fully integrated input on every
// step.
package incr
