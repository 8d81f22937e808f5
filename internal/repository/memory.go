package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	"furniture-booking/internal/bookingerrors"
)

// MemoryRepo is a concurrency-safe in-memory implementation of CollectionStore.
// Collections are kept as encoded JSON so callers never share slices with the store.
type MemoryRepo struct {
	mu          sync.RWMutex
	collections map[string][]byte // key: collection name -> value: encoded JSON array
	locks       collectionLocks
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		collections: make(map[string][]byte),
	}
}

// Load decodes a stored collection. Unknown names fail like a missing file.
func (r *MemoryRepo) Load(name string, dst any) error {
	lock := r.locks.get(name)
	lock.RLock()
	defer lock.RUnlock()

	return r.load(name, dst)
}

// Save replaces a collection
func (r *MemoryRepo) Save(name string, src any) error {
	lock := r.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	return r.save(name, src)
}

// Update runs a load-mutate-save cycle under the collection's write lock
func (r *MemoryRepo) Update(name string, dst any, mutate func() (bool, error)) error {
	lock := r.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	if err := r.load(name, dst); err != nil {
		return err
	}
	changed, err := mutate()
	if err != nil || !changed {
		return err
	}
	return r.save(name, dst)
}

// Seed stores records under name. This method is intended for tests and benchmarks.
func (r *MemoryRepo) Seed(name string, records any) error {
	return r.Save(name, records)
}

func (r *MemoryRepo) load(name string, dst any) error {
	r.mu.RLock()
	data, ok := r.collections[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("load collection %s: %w: no such collection", name, bookingerrors.ErrStorage)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	return nil
}

func (r *MemoryRepo) save(name string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections[name] = data
	return nil
}
