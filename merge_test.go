package pbloom

import (
	"testing"

	"github.com/zeebo/assert"
)

func makeFilled(t *testing.T, items ...string) *Filter {
	f, err := New(1000, 0.02)
	assert.NoError(t, err)
	for _, s := range items {
		f.Put([]byte(s))
	}
	return f
}

func TestMergeIncompatible(t *testing.T) {
	a, err := New(1000, 0.01)
	assert.NoError(t, err)
	b, err := New(1000, 0.5)
	assert.NoError(t, err)

	_, err = Merge(a, b)
	assert.That(t, err != nil)
	assert.That(t, ErrIncompatibleFilters.Has(err))
}

func TestEncodeMergeEqualsMergeEncode(t *testing.T) {
	a := makeFilled(t, "a1", "a2")
	b := makeFilled(t, "b1", "b2")

	merged, err := Merge(a, b)
	assert.NoError(t, err)

	encodedMerge := merged.Encode().Bytes()

	streamed, err := MergeEncode(a, b)
	assert.NoError(t, err)

	assert.DeepEqual(t, encodedMerge, streamed.Bytes())
}

func TestMergeMixedLiveAndEncoded(t *testing.T) {
	a := makeFilled(t, "x")
	b := makeFilled(t, "y")

	bin := b.Encode()

	merged, err := Merge(a, bin)
	assert.NoError(t, err)

	assert.That(t, merged.Member([]byte("x")))
	assert.That(t, merged.Member([]byte("y")))
}

func TestMergeIntoMatchesMergeWithEmptyDest(t *testing.T) {
	a := makeFilled(t, "p", "q")
	b := makeFilled(t, "r")

	dest, err := New(1000, 0.02)
	assert.NoError(t, err)

	err = MergeInto(dest, a, b)
	assert.NoError(t, err)

	viaMergeInto := dest.Encode().Bytes()

	fresh, err := New(1000, 0.02)
	assert.NoError(t, err)
	viaMerge, err := Merge(fresh, a, b)
	assert.NoError(t, err)

	assert.DeepEqual(t, viaMergeInto, viaMerge.Encode().Bytes())
}

func TestMergeIntoCommutesWithPut(t *testing.T) {
	dest, err := New(1000, 0.02)
	assert.NoError(t, err)
	dest.Put([]byte("already-there"))

	other := makeFilled(t, "incoming")

	err = MergeInto(dest, other)
	assert.NoError(t, err)

	assert.That(t, dest.Member([]byte("already-there")))
	assert.That(t, dest.Member([]byte("incoming")))
}
