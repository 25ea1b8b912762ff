// Package join implements the incremental equi-join family: every
// variant computes the delta of A ⋈ B for input deltas Δa, Δb given
// maintained state for the integrated inputs A and B, via the bilinear
// delta formula
//
//	Δ(A ⋈ B) = (Δa ⋈ Δb) + (A_prev ⋈ Δb) + (Δa ⋈ B_prev)
//
// where A_prev, B_prev are the integrated state before the step; state
// is updated only after the join is computed.
package join
