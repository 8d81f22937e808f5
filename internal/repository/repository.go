package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"furniture-booking/internal/bookingerrors"
	"furniture-booking/internal/metrics"
	"furniture-booking/utils"
)

// Collection names. Each maps to <name>.json in the data directory.
const (
	Furniture = "furniture"
	Users     = "users"
	Bookings  = "bookings"
	Payments  = "payments"
)

// CollectionStore defines the storage interface for named JSON collections
type CollectionStore interface {
	// Load decodes the whole collection into dst, which must be a pointer to a slice.
	Load(name string, dst any) error
	// Save replaces the whole collection with src.
	Save(name string, src any) error
	// Update loads the collection into dst and calls mutate while holding the
	// collection's write lock. dst is saved back only if mutate reports a change.
	Update(name string, dst any, mutate func() (bool, error)) error
}

// collectionLocks hands out one RWMutex per collection name
type collectionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func (l *collectionLocks) get(name string) *sync.RWMutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]*sync.RWMutex)
	}
	lock, ok := l.locks[name]
	if !ok {
		lock = &sync.RWMutex{}
		l.locks[name] = lock
	}
	return lock
}

// FileStore keeps each collection in its own JSON file. Writes to one
// collection are serialized; reads run concurrently with each other.
type FileStore struct {
	dir   string
	locks collectionLocks
}

// NewFileStore creates a store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the full collection file
func (s *FileStore) Load(name string, dst any) error {
	lock := s.locks.get(name)
	lock.RLock()
	defer lock.RUnlock()

	return s.load(name, dst)
}

// Save overwrites the collection file with src
func (s *FileStore) Save(name string, src any) error {
	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	return s.save(name, src)
}

// Update runs a load-mutate-save cycle under the collection's write lock
func (s *FileStore) Update(name string, dst any, mutate func() (bool, error)) error {
	lock := s.locks.get(name)
	lock.Lock()
	defer lock.Unlock()

	if err := s.load(name, dst); err != nil {
		return err
	}
	changed, err := mutate()
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.save(name, dst)
}

// EnsureCollections creates an empty collection file for every missing name
func (s *FileStore) EnsureCollections(names ...string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("ensure data dir %s: %w: %w", s.dir, bookingerrors.ErrStorage, err)
	}

	for _, name := range names {
		lock := s.locks.get(name)
		lock.Lock()
		_, err := os.Stat(s.path(name))
		if errors.Is(err, fs.ErrNotExist) {
			err = s.save(name, []any{})
			if err == nil {
				utils.Info("created empty collection", map[string]any{"collection": name, "path": s.path(name)})
			}
		}
		lock.Unlock()
		if err != nil {
			return fmt.Errorf("ensure collection %s: %w", name, err)
		}
	}
	return nil
}

func (s *FileStore) load(name string, dst any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("load collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	return nil
}

func (s *FileStore) save(name string, src any) (err error) {
	defer func() { metrics.RecordCollectionWrite(name, err) }()

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("save collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("save collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	if err = os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("save collection %s: %w: %w", name, bookingerrors.ErrStorage, err)
	}
	return nil
}
