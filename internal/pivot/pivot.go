// Package pivot tracks the bookkeeping partial pivoting needs during LU
// decomposition: the permutation vector and the parity of the row swaps
// that produced it. It has no dependency on the scalar type
// being factorized, so both the LU engine and any future caller that
// needs the same bookkeeping (e.g. a rank-one update) can share it.
package pivot

// Permutation records, for an N×N elimination, which original row now
// occupies each working-matrix position, and the sign flips accumulated
// from row swaps.
type Permutation struct {
	// Index[i] is the original row index now at position i.
	Index []int
	// Sign is +1 or −1, mirroring Solver.detSign.
	Sign int
}

// New returns the identity permutation of size n with positive sign.
func New(n int) *Permutation {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return &Permutation{Index: idx, Sign: 1}
}

// Swap records that rows i and j (working-matrix positions) traded
// places, flipping Sign.
func (p *Permutation) Swap(i, j int) {
	if i == j {
		return
	}
	p.Index[i], p.Index[j] = p.Index[j], p.Index[i]
	p.Sign = -p.Sign
}

// Apply returns a fresh slice containing src reordered by the
// permutation: result[i] = src[p.Index[i]].
func Apply[T any](p *Permutation, src []T) []T {
	out := make([]T, len(p.Index))
	for i, orig := range p.Index {
		out[i] = src[orig]
	}
	return out
}

// IsPermutation reports whether Index is a permutation of 0..len(Index),
// the invariant Solver.pivot must maintain.
func (p *Permutation) IsPermutation() bool {
	seen := make([]bool, len(p.Index))
	for _, v := range p.Index {
		if v < 0 || v >= len(p.Index) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
