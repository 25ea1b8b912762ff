// Package stream implements the value-over-time sequence abstraction
// and the three causal linear operators derived from it: delay (z⁻¹),
// integrate (I), and differentiate (D), plus pointwise lifting of
// scalar functions onto streams.
//
// Every type here is parameterized over a Group[T] capability bundle
// rather than requiring T to satisfy some numeric interface, so the same
// delay/integrate/differentiate machinery works identically for integer
// streams and for streams of *zset.ZSet deltas.
package stream
