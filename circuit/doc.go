// Package circuit implements a dataflow runtime: an immutable DAG of
// stateless and stateful operator nodes, scheduled in topological order
// once per step, with input handles feeding named delta Z-sets in and
// output sinks receiving each subscribed node's result.
//
// Construction uses a Builder (Input/Op/StatefulOp/Output); circuit-wide
// configuration (the Logger, via WithLogger) is supplied through the
// functional-options pattern. RunGroup steps independent circuits
// concurrently.
package circuit
