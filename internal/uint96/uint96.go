// Package uint96 holds a fixed 96-bit bitstring and extracts arbitrary
// sub-windows from it, big-endian, bit 0 being the most significant. It
// exists to back the widest default hash engine (b up to 48), which needs
// to slice two adjacent b-bit windows out of three concatenated 32-bit
// hashes without ever materializing more than 96 bits.
package uint96

// T is a 96-bit value: H holds the high 64 bits, L the low 32.
type T struct {
	H uint64
	L uint32
}

// FromWords builds a 96-bit value from three big-endian 32-bit words.
func FromWords(first, second, third uint32) T {
	return T{
		H: uint64(first)<<32 | uint64(second),
		L: third,
	}
}

// Window extracts the `width` bits starting at bit `start` (0 = most
// significant bit of H), right-aligned in the returned uint64. Requires
// start+width <= 96 and width <= 64.
func (t T) Window(start, width uint) uint64 {
	// Embed the 96-bit value in a 128-bit (hi, lo) pair with 32 bits of
	// leading zero padding: hi holds the top 32 bits, lo the bottom 64.
	hi := t.H >> 32
	lo := t.H<<32 | uint64(t.L)

	_, lo = shiftRight128(hi, lo, 96-start-width)
	if width == 64 {
		return lo
	}
	return lo & (1<<width - 1)
}

// shiftRight128 shifts the 128-bit value (hi, lo) right by n bits.
func shiftRight128(hi, lo uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return hi, lo
	case n < 64:
		lo = lo>>n | hi<<(64-n)
		hi = hi >> n
	default:
		lo = hi >> (n - 64)
		hi = 0
	}
	return hi, lo
}
