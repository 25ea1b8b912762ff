// Package zset implements Z-sets: weighted multisets over a generic
// element type T, forming the abelian group (ZSet[T], +, 0) that every
// stream and circuit edge in lvldbsp carries.
//
// A Z-set never stores an entry with weight zero. Element identity is
// determined by a user-supplied KeyFunc rather than Go equality, so two
// distinct values that hash to the same key are treated as one element
// and their weights combine.
//
// Every transform in this package is documented as linear, bilinear, or
// non-linear (distinct); that classification is load-bearing for the
// incrementalization transform implemented in package stream.
package zset
