// Package izset implements the indexed Z-set: a zset.ZSet augmented with
// a secondary hash index on a join key, giving the join family
// O(1 + matches) lookups instead of a full rescan per probe.
//
// The package also pins down the null-join-key convention every join
// variant in package join relies on: NullKey never matches any bucket,
// including itself, matching SQL's NULL semantics.
package izset
