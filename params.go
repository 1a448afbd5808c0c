package pbloom

import "math"

// sizeParams derives the partition count k and the bits-per-partition
// exponent b from a target capacity and false-positive probability, using
// the scalable-Bloom-filter partition-sizing relation.
func sizeParams(capacity uint64, fpp float64) (k int, b uint, err error) {
	if capacity == 0 {
		return 0, 0, ErrInvalidParameters.New("capacity must be > 0")
	}
	if !(fpp > 0 && fpp < 1) {
		return 0, 0, ErrInvalidParameters.New("fpp must be in (0, 1)")
	}

	k = int(math.Ceil(-math.Log2(fpp)))
	if k < 1 {
		k = 1
	}
	if k > 255 {
		return 0, 0, ErrUnsupportedCapacity.New("derived k=%d exceeds 255", k)
	}

	pPrime := math.Pow(fpp, 1/float64(k))
	m := 1 / (1 - math.Pow(1-pPrime, 1/float64(capacity)))

	b = 6
	if lg := math.Ceil(math.Log2(m)); lg > 6 {
		b = uint(lg)
	}

	return k, b, nil
}

// defaultHashID picks the builtin hash engine sized for b, or fails if b
// exceeds every builtin engine's range.
func defaultHashID(b uint) (uint8, error) {
	switch {
	case b <= 16:
		return hashID201, nil
	case b <= 32:
		return hashID202, nil
	case b <= 48:
		return hashID203, nil
	default:
		return 0, ErrUnsupportedCapacity.New("b=%d exceeds the widest builtin engine (48)", b)
	}
}
