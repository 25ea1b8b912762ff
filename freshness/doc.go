// Package freshness implements a bounded, ring-buffered queue with
// monotonically increasing sequence numbers, optional max-age eviction,
// and cooperative timeout-based blocking on dequeue. When full, enqueue
// silently drops the oldest entry; when draining, an entry older than
// the configured max age is dropped instead of returned. Both drop
// counts are tracked separately and exposed via Stats.
package freshness
