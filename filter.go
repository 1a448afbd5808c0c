// Package pbloom implements a fixed-capacity partitioned Bloom filter over
// a shared array of atomic words, plus a canonical binary encoding that
// supports every read operation directly against the encoded bytes.
package pbloom

import (
	"fmt"

	"github.com/zeebo/pbloom/internal/words"
)

// Filter is the live, mutable representation of a partitioned Bloom
// filter. The zero value is not usable; construct one with New, Decode or
// Merge. A *Filter is safe for concurrent Put and Member calls from any
// number of goroutines, and safe to read (Encode, estimators) concurrently
// with writers.
type Filter struct {
	hashID uint8
	k      int
	b      uint
	words  words.T
	fn     HashFunc
}

// New allocates a filter sized for capacity items at false-positive
// probability fpp. An optional hashID selects a previously Register-ed
// custom hash engine in [0,200]; ids above 200, including the builtin
// 201-203, are rejected with ErrInvalidParameters. Without one, New picks
// the narrowest builtin engine that covers the derived partition size.
func New(capacity uint64, fpp float64, hashID ...uint8) (*Filter, error) {
	if len(hashID) > 1 {
		return nil, ErrInvalidParameters.New("New accepts at most one hash id")
	}

	k, b, err := sizeParams(capacity, fpp)
	if err != nil {
		return nil, err
	}

	var id uint8
	if len(hashID) == 1 {
		id = hashID[0]
		if id > 200 {
			return nil, ErrInvalidParameters.New("hash id %d must be in [0, 200]", id)
		}
	} else {
		id, err = defaultHashID(b)
		if err != nil {
			return nil, err
		}
	}

	fn, err := resolveHash(id)
	if err != nil {
		return nil, err
	}

	return newFilter(id, k, b, fn), nil
}

func newFilter(id uint8, k int, b uint, fn HashFunc) *Filter {
	return &Filter{
		hashID: id,
		k:      k,
		b:      b,
		words:  words.Make(wordCount(k, b)),
		fn:     fn,
	}
}

// wordCount returns the number of 64-bit words a filter with k partitions
// of 2^b bits each occupies. b >= 6 guarantees 2^b is a multiple of 64, so
// this is always exact.
func wordCount(k int, b uint) int {
	return k * (1 << b) / 64
}

// Put sets the k bits derived from item, one per partition.
func (f *Filter) Put(item []byte) {
	m := uint64(1) << f.b
	for j, pos := range f.fn(item, f.k, f.b) {
		f.setAbsolute(uint64(j)*m + pos)
	}
}

// Member reports whether item may have been Put into f. False negatives
// are impossible; false positives occur at the rate f was sized for.
func (f *Filter) Member(item []byte) bool {
	m := uint64(1) << f.b
	for j, pos := range f.fn(item, f.k, f.b) {
		if !f.hasAbsolute(uint64(j)*m + pos) {
			return false
		}
	}
	return true
}

func (f *Filter) setAbsolute(bit uint64) {
	f.words.Set(int(bit/64), uint(bit%64))
}

func (f *Filter) hasAbsolute(bit uint64) bool {
	return f.words.Has(int(bit/64), uint(bit%64))
}

// HashID returns the id of the hash engine f was built with.
func (f *Filter) HashID() uint8 { return f.hashID }

// K returns the number of partitions.
func (f *Filter) K() int { return f.k }

// B returns the bits-per-partition exponent; partitions are 1<<B bits.
func (f *Filter) B() uint { return f.b }

// M returns the number of bits per partition, 1<<B.
func (f *Filter) M() uint64 { return 1 << f.b }

// WordCount returns the number of live words backing f.
func (f *Filter) WordCount() int { return len(f.words) }

// WordAt atomically loads live word i, satisfying Reader.
func (f *Filter) WordAt(i int) uint64 { return f.words.Load(i) }

// EstimateMemory returns the byte cost of the live word array.
func (f *Filter) EstimateMemory() uint64 { return uint64(f.words.Bytes()) }

// EstimateSize estimates the number of items Put into f.
func (f *Filter) EstimateSize() uint64 { return EstimateSize(f) }

// EstimateCapacity estimates the capacity f was effectively sized for.
func (f *Filter) EstimateCapacity() uint64 { return EstimateCapacity(f) }

// Stats snapshots every estimator plus f's static parameters.
func (f *Filter) Stats() Stats {
	return Stats{
		HashID:   f.hashID,
		K:        f.k,
		B:        f.b,
		M:        f.M(),
		Size:     f.EstimateSize(),
		Capacity: f.EstimateCapacity(),
		Memory:   f.EstimateMemory(),
	}
}

func (f *Filter) String() string {
	return fmt.Sprintf("Filter(hashID=%d, k=%d, b=%d)", f.hashID, f.k, f.b)
}
