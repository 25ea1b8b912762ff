// Package window provides the per-partition state a windowed-aggregate
// operator needs: ordered-partition lookups for LAG/LEAD, rank
// assignment for RANK/DENSE_RANK, bucket assignment for NTILE, an
// invertible running accumulator for SUM/COUNT/AVG over a sliding
// frame, and a monotonic deque for MIN/MAX over a sliding frame.
package window
