package words

import (
	"sync"
	"testing"

	"github.com/zeebo/assert"
)

func TestSetHas(t *testing.T) {
	w := Make(2)

	assert.That(t, !w.Has(0, 5))
	w.Set(0, 5)
	assert.That(t, w.Has(0, 5))
	assert.Equal(t, w.Load(0), uint64(1)<<5)

	// idempotent: setting an already-set bit is a no-op.
	w.Set(0, 5)
	assert.Equal(t, w.Load(0), uint64(1)<<5)

	assert.That(t, !w.Has(1, 3))
	w.Set(1, 3)
	assert.That(t, w.Has(1, 3))
}

func TestSetConcurrent(t *testing.T) {
	w := Make(1)

	var wg sync.WaitGroup
	for i := uint(0); i < 64; i++ {
		wg.Add(1)
		go func(i uint) {
			defer wg.Done()
			w.Set(0, i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, w.Load(0), ^uint64(0))
}

func TestOrInto(t *testing.T) {
	dst := Make(1)
	dst.Set(0, 1)

	dst.OrInto(0, 1<<2|1<<3)
	assert.Equal(t, dst.Load(0), uint64(1<<1|1<<2|1<<3))

	// ORing in zero is a no-op.
	dst.OrInto(0, 0)
	assert.Equal(t, dst.Load(0), uint64(1<<1|1<<2|1<<3))
}

func TestPopcount(t *testing.T) {
	w := Make(3)
	w.Set(0, 0)
	w.Set(1, 1)
	w.Set(1, 2)
	w.Set(2, 3)

	assert.Equal(t, w.Popcount(0, 3), 4)
	assert.Equal(t, w.Popcount(1, 2), 2)
}
