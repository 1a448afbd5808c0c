package pbloom

import (
	"math"
	"math/bits"
)

// EstimateSize estimates the number of distinct items Put into the filter
// or blob r represents. It scans only the last partition: in a
// partitioned filter each partition is an independent m-bit Bloom filter
// with a single hash, so one partition's fill level is enough to estimate
// the whole filter's cardinality at 1/k of the cost of a full scan.
func EstimateSize(r Reader) uint64 {
	m := uint64(1) << r.B()
	wordsPerPartition := int(m / 64)

	from := (r.K() - 1) * wordsPerPartition
	to := r.K() * wordsPerPartition

	x := 0
	for i := from; i < to; i++ {
		x += bits.OnesCount64(r.WordAt(i))
	}

	mf := float64(m)
	if uint64(x) == m {
		return uint64(math.Round(-mf * math.Log(1/mf)))
	}
	return uint64(math.Round(-mf * math.Log(1-float64(x)/mf)))
}

// EstimateCapacity estimates the capacity the filter or blob r was
// effectively sized for, independent of how many items were actually Put.
func EstimateCapacity(r Reader) uint64 {
	m := float64(uint64(1) << r.B())
	return uint64(math.Round(math.Log(0.5) / math.Log(1-1/m)))
}
