package pbloom

import (
	"github.com/zeebo/pbloom/internal/uint96"
	"github.com/zeebo/xxh3"
)

// HashFunc computes the k partition positions for item under a filter
// sized with k partitions of 2^b bits each. Every returned position must
// lie in [0, 1<<b).
//
// The spec describes default engines in terms of a step function that
// threads an accumulator across k calls; here each default engine is
// specialized into a straight-line routine that produces every position
// at once, which is observationally equivalent and avoids allocating a
// closure per Put.
type HashFunc func(item []byte, k int, b uint) []uint64

const (
	hashID201 uint8 = 201
	hashID202 uint8 = 202
	hashID203 uint8 = 203
)

// domain seeds tag the three "shapes" the reference hash family feeds an
// item through (bare, single-element list, one-tuple) so that engines
// needing more than one base hash get independent-looking values out of
// the same underlying hash function instead of out of three different
// ones.
const (
	seedBare  uint64 = 0
	seedList  uint64 = 1
	seedTuple uint64 = 2
)

// h32 returns a hash of item in [0, rangeN), rangeN <= 1<<32, using
// Lemire's multiply-shift reduction on the low 32 bits of a seeded xxh3
// hash instead of a modulo.
func h32(seed uint64, item []byte, rangeN uint64) uint32 {
	h := xxh3.HashSeed(item, seed)
	return uint32((uint64(uint32(h)) * rangeN) >> 32)
}

// engine201 covers b <= 16: a single 32-bit hash supplies both h1 and h2
// as adjacent b-bit windows, since 2*b <= 32.
func engine201(item []byte, k int, b uint) []uint64 {
	m := uint64(1) << b
	h := h32(seedBare, item, 1<<32)

	h1 := uint64(h>>(32-b)) % m
	h2 := uint64((h>>(32-2*b))&uint32(m-1)) % m

	return doubleHash(h1, h2, k, m)
}

// engine202 covers 16 < b <= 32: one 32-bit hash isn't enough entropy for
// two independent b-bit windows, so h1 and h2 come from two differently
// seeded hashes, each already reduced to [0, m).
func engine202(item []byte, k int, b uint) []uint64 {
	m := uint64(1) << b
	h1 := uint64(h32(seedBare, item, m))
	h2 := uint64(h32(seedList, item, m))

	return doubleHash(h1, h2, k, m)
}

// engine203 covers 32 < b <= 48: even two 32-bit hashes can't supply two
// non-overlapping b-bit windows (2*b can reach 96), so three differently
// seeded 32-bit hashes are concatenated into one 96-bit bitstring and h1,
// h2 are sliced out of that.
func engine203(item []byte, k int, b uint) []uint64 {
	m := uint64(1) << b

	first := h32(seedBare, item, 1<<32)
	second := h32(seedList, item, 1<<32)
	third := h32(seedTuple, item, 1<<32)

	bits96 := uint96.FromWords(first, second, third)
	h1 := bits96.Window(0, b) % m
	h2 := bits96.Window(b, b) % m

	return doubleHash(h1, h2, k, m)
}

// doubleHash derives k positions from two base hashes via the standard
// (h1 + i*h2) mod m double-hashing scheme; step 0 is h1 itself.
func doubleHash(h1, h2 uint64, k int, m uint64) []uint64 {
	positions := make([]uint64, k)
	positions[0] = h1
	for i := 1; i < k; i++ {
		positions[i] = (h1 + uint64(i)*h2) % m
	}
	return positions
}

func builtinHashFunc(id uint8) (HashFunc, bool) {
	switch id {
	case hashID201:
		return engine201, true
	case hashID202:
		return engine202, true
	case hashID203:
		return engine203, true
	default:
		return nil, false
	}
}
