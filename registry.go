package pbloom

import (
	"sync/atomic"
	"unsafe"
)

// registry holds the process-wide, rarely-written mapping from custom hash
// id to HashFunc. It is read far more often than written (every New with a
// custom id, every decode of a blob carrying one), so reads never take a
// lock: Register copies the current snapshot, adds the new entry, and
// atomically swaps in the new map, the same read-copy-update shape as the
// atomic pointer swaps in the teacher's histogram bucket storage.
var registryPtr unsafe.Pointer // *map[uint8]HashFunc

func loadRegistry() map[uint8]HashFunc {
	p := (*map[uint8]HashFunc)(atomic.LoadPointer(&registryPtr))
	if p == nil {
		return nil
	}
	return *p
}

// Register installs fn as the hash engine for id, overwriting any previous
// registration. id must be in [0, 200]; ids 201-255 are reserved for the
// frozen builtin engines and beyond.
func Register(id uint8, fn HashFunc) error {
	if id > 200 {
		return ErrInvalidParameters.New("custom hash id %d must be in [0, 200]", id)
	}
	if fn == nil {
		return ErrInvalidParameters.New("hash function must not be nil")
	}

	for {
		oldPtr := atomic.LoadPointer(&registryPtr)
		var old map[uint8]HashFunc
		if oldPtr != nil {
			old = *(*map[uint8]HashFunc)(oldPtr)
		}
		next := make(map[uint8]HashFunc, len(old)+1)
		for k, v := range old {
			next[k] = v
		}
		next[id] = fn

		if atomic.CompareAndSwapPointer(&registryPtr, oldPtr, unsafe.Pointer(&next)) {
			return nil
		}
	}
}

// Registered reports whether id has a hash engine available, either
// custom-registered or builtin.
func Registered(id uint8) bool {
	_, err := resolveHash(id)
	return err == nil
}

// resolveHash returns the hash engine for id: a builtin for 201-203, or
// whatever was last registered for 0-200. Anything else, or an id in
// [0,200] with nothing registered, fails with ErrUnknownHashID.
func resolveHash(id uint8) (HashFunc, error) {
	if fn, ok := builtinHashFunc(id); ok {
		return fn, nil
	}
	if id > 200 {
		return nil, ErrUnknownHashID.New("hash id %d is reserved and has no engine", id)
	}
	if fn, ok := loadRegistry()[id]; ok {
		return fn, nil
	}
	return nil, ErrUnknownHashID.New("no hash function registered for id %d", id)
}
