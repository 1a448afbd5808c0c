package pbloom

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestEstimateMemoryLiveVsEncoded(t *testing.T) {
	f, err := New(1000, 0.01)
	assert.NoError(t, err)

	liveMem := f.EstimateMemory()
	assert.Equal(t, liveMem, uint64(f.WordCount()*8))

	bin := f.Encode()
	assert.Equal(t, bin.EstimateMemory(), liveMem+3)
}

func TestEstimateSizeAgreesLiveAndEncoded(t *testing.T) {
	f, err := New(2000, 0.01)
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		f.Put(itemBytes(uint32(i)))
	}

	bin := f.Encode()
	assert.Equal(t, f.EstimateSize(), bin.EstimateSize())
}

func TestStatsBundlesEstimators(t *testing.T) {
	f, err := New(1000, 0.01)
	assert.NoError(t, err)
	f.Put([]byte("one"))

	s := f.Stats()
	assert.Equal(t, s.HashID, f.HashID())
	assert.Equal(t, s.K, f.K())
	assert.Equal(t, s.B, f.B())
	assert.Equal(t, s.M, f.M())
	assert.Equal(t, s.Memory, f.EstimateMemory())
}
