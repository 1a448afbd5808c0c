package pbloom

import (
	"encoding/binary"

	"github.com/zeebo/pbloom/internal/buffer"
)

// checkCompatible validates that every reader in list shares identical
// (hashID, k, b), the precondition every merge operation shares.
func checkCompatible(list []Reader) error {
	if len(list) == 0 {
		return ErrInvalidParameters.New("merge requires at least one input")
	}
	first := list[0]
	for _, r := range list[1:] {
		if !sameParams(first, r) {
			return ErrIncompatibleFilters.New(
				"(hashID=%d,k=%d,b=%d) vs (hashID=%d,k=%d,b=%d)",
				first.HashID(), first.K(), first.B(),
				r.HashID(), r.K(), r.B(),
			)
		}
	}
	return nil
}

func orWord(list []Reader, i int) uint64 {
	var w uint64
	for _, r := range list {
		w |= r.WordAt(i)
	}
	return w
}

// Merge returns a new live filter whose every word is the bitwise OR of
// the corresponding word across list. Inputs may mix live filters and
// encoded blobs, but all must share identical (hashID, k, b).
func Merge(list ...Reader) (*Filter, error) {
	if err := checkCompatible(list); err != nil {
		return nil, err
	}

	first := list[0]
	fn, err := resolveHash(first.HashID())
	if err != nil {
		return nil, err
	}

	dest := newFilter(first.HashID(), first.K(), first.B(), fn)
	for i := 0; i < dest.WordCount(); i++ {
		dest.words.OrInto(i, orWord(list, i))
	}
	return dest, nil
}

// MergeInto ORs every word across list into dest in place, using the same
// per-word compare-and-swap protocol Put uses, so MergeInto commutes with
// concurrent Put and Member calls against dest.
func MergeInto(dest *Filter, list ...Reader) error {
	all := make([]Reader, 0, len(list)+1)
	all = append(all, dest)
	all = append(all, list...)

	if err := checkCompatible(all); err != nil {
		return err
	}

	for i := 0; i < dest.WordCount(); i++ {
		dest.words.OrInto(i, orWord(list, i))
	}
	return nil
}

// MergeEncode is equivalent to Encode(Merge(list)) but streams the result
// directly into the encoded form without allocating an intermediate live
// filter.
func MergeEncode(list ...Reader) (Binary, error) {
	if err := checkCompatible(list); err != nil {
		return Binary{}, err
	}

	first := list[0]
	size := wordCount(first.K(), first.B())
	raw := make([]byte, headerLen+8*size)

	buf := buffer.Of(raw)
	*buf.Front() = first.HashID()
	buf = buf.Advance(1)
	*buf.Front() = byte(first.K())
	buf = buf.Advance(1)
	*buf.Front() = byte(first.B())
	buf = buf.Advance(1)

	for i := size - 1; i >= 0; i-- {
		binary.BigEndian.PutUint64(buf.Front8()[:], orWord(list, i))
		buf = buf.Advance(8)
	}

	return Binary{raw: raw, id: first.HashID(), k: first.K(), b: first.B(), size: size}, nil
}
