// Package fingerprint maps an ordered vector of non-negative integers to a
// 64-bit key suitable for visited-set membership during state-space search.
//
// The mixer follows wyhash by Wang Yi (public domain,
// https://github.com/wangyi-fudan/wyhash): the seed starts at the vector
// length, each element is folded in with a 64×64→128 multiply whose halves
// are XOR-ed together, and a final mix avalanches the result.
//
// Guarantees
//
//   - Deterministic across runs and platforms.
//   - Order-sensitive: permuting the vector changes the key.
//   - Length-sensitive: [0] and [0 0] differ.
//
// Collisions are possible in principle. Search code treats equal keys as
// equal states; the probability is negligible for the state spaces involved
// and no exact-equality fallback exists.
package fingerprint

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

const (
	secret0 uint64 = 0xa0761d6478bd642f
	secret1 uint64 = 0xe7037ed1a0b428db
	secret2 uint64 = 0x8ebc6af09c88c6e3
)

// Of returns the fingerprint of levels. Negative elements are not expected.
//
// Complexity: O(len(levels)), no allocations.
func Of[T constraints.Integer](levels []T) uint64 {
	seed := uint64(len(levels))
	for _, v := range levels {
		seed = mum(seed^secret0, uint64(v)^secret1)
	}

	return mum(seed^secret0, seed^secret2)
}

// mum folds the full 128-bit product of a and b into 64 bits.
func mum(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return hi ^ lo
}
