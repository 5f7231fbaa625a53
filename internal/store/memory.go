// internal/store/memory.go
//
// In-memory cache of computed opening guesses.
//
// The first guess of every session over the same word list and strategy is the
// same, and it is by far the most expensive one to compute. Benchmarks run many
// sessions concurrently, so the cache is shared across them.
//
// Characteristics:
//   - Values keyed by an opaque string (word list fingerprint + strategy).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Concurrent misses for one key run the computation once (singleflight).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store defines the opener cache interface.
type Store interface {
	// Get returns the cached value for key, calling compute on a miss.
	// Failed computations are not cached.
	Get(ctx context.Context, key string, compute func(context.Context) (string, error)) (string, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex      // guards values map
	values map[string]string // keyed by caller-chosen key
	group  singleflight.Group
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{values: make(map[string]string)}
}

func (m *memory) Get(ctx context.Context, key string, compute func(context.Context) (string, error)) (string, error) {
	m.mu.RLock()
	v, ok := m.values[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		v, err := compute(ctx)
		if err != nil {
			return "", err
		}
		m.mu.Lock()
		m.values[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}
