package pbloom

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/pbloom/internal/buffer"
)

const headerLen = 3

// Binary is the immutable, byte-addressable encoded representation of a
// filter: a 3-byte header followed by the word array in reverse order.
// Every read operation (Member, the estimators, further merges) works
// directly against these bytes — no intermediate Filter is ever
// allocated to answer a query.
type Binary struct {
	raw  []byte
	id   uint8
	k    int
	b    uint
	size int // word count
}

// NewBinary validates raw as a wire-format blob and wraps it. It does not
// copy raw; callers must not mutate it afterwards.
func NewBinary(raw []byte) (Binary, error) {
	if len(raw) < headerLen {
		return Binary{}, ErrMalformedBinary.New("blob too short: %d bytes", len(raw))
	}

	id, k, b := raw[0], int(raw[1]), uint(raw[2])
	if k < 1 {
		return Binary{}, ErrMalformedBinary.New("k must be >= 1, got %d", k)
	}
	if b < 6 || b > 48 {
		return Binary{}, ErrMalformedBinary.New("b must be in [6, 48], got %d", b)
	}

	size := wordCount(k, b)
	want := headerLen + 8*size
	if len(raw) != want {
		return Binary{}, ErrMalformedBinary.New("expected %d bytes for k=%d b=%d, got %d", want, k, b, len(raw))
	}

	return Binary{raw: raw, id: id, k: k, b: b, size: size}, nil
}

// HashID, K, B, WordCount and WordAt satisfy Reader.
func (bin Binary) HashID() uint8    { return bin.id }
func (bin Binary) K() int           { return bin.k }
func (bin Binary) B() uint          { return bin.b }
func (bin Binary) WordCount() int   { return bin.size }
func (bin Binary) M() uint64        { return 1 << bin.b }
func (bin Binary) EstimateMemory() uint64 { return uint64(len(bin.raw)) }

// WordAt returns live word i (0 = first partition's first word), reading
// out of the blob's reverse-order tail: live word size-1 is stored right
// after the header, live word 0 is stored in the blob's last 8 bytes.
func (bin Binary) WordAt(i int) uint64 {
	off := headerLen + (bin.size-1-i)*8
	return binary.BigEndian.Uint64(bin.raw[off : off+8])
}

// Member reports whether item may have been Put into the filter bin was
// encoded from.
func (bin Binary) Member(item []byte) (bool, error) {
	fn, err := resolveHash(bin.id)
	if err != nil {
		return false, err
	}

	m := uint64(1) << bin.b
	for j, pos := range fn(item, bin.k, bin.b) {
		bit := uint64(j)*m + pos
		word := bin.WordAt(int(bit / 64))
		if word&(1<<(bit%64)) == 0 {
			return false, nil
		}
	}
	return true, nil
}

// EstimateSize estimates the number of items Put before bin was encoded.
func (bin Binary) EstimateSize() uint64 { return EstimateSize(bin) }

// EstimateCapacity estimates the capacity bin's filter was sized for.
func (bin Binary) EstimateCapacity() uint64 { return EstimateCapacity(bin) }

// Stats snapshots every estimator plus bin's static parameters.
func (bin Binary) Stats() Stats {
	return Stats{
		HashID:   bin.id,
		K:        bin.k,
		B:        bin.b,
		M:        bin.M(),
		Size:     bin.EstimateSize(),
		Capacity: bin.EstimateCapacity(),
		Memory:   bin.EstimateMemory(),
	}
}

// Bytes returns the raw encoded bytes.
func (bin Binary) Bytes() []byte { return bin.raw }

func (bin Binary) String() string {
	return fmt.Sprintf("Binary(hashID=%d, k=%d, b=%d, %d bytes)", bin.id, bin.k, bin.b, len(bin.raw))
}

// Encode serializes f into its canonical binary form: header, then the
// word array written W_size, W_{size-1}, ..., W_1 (reverse order), each
// word big-endian.
func (f *Filter) Encode() Binary {
	size := f.WordCount()
	raw := make([]byte, headerLen+8*size)

	buf := buffer.Of(raw)
	*buf.Front() = f.hashID
	buf = buf.Advance(1)
	*buf.Front() = byte(f.k)
	buf = buf.Advance(1)
	*buf.Front() = byte(f.b)
	buf = buf.Advance(1)

	for i := size - 1; i >= 0; i-- {
		binary.BigEndian.PutUint64(buf.Front8()[:], f.words.Load(i))
		buf = buf.Advance(8)
	}

	return Binary{raw: raw, id: f.hashID, k: f.k, b: f.b, size: size}
}

// Decode parses raw and materializes a live filter bitwise equivalent to
// whatever was Encode-d into it.
func Decode(raw []byte) (*Filter, error) {
	bin, err := NewBinary(raw)
	if err != nil {
		return nil, err
	}

	fn, err := resolveHash(bin.id)
	if err != nil {
		return nil, err
	}

	f := newFilter(bin.id, bin.k, bin.b, fn)
	for i := 0; i < bin.size; i++ {
		f.words.OrInto(i, bin.WordAt(i))
	}
	return f, nil
}
