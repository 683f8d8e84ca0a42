package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Collection names one entity type persisted as a single JSON file.
type Collection string

const (
	CollectionUsers    Collection = "users"
	CollectionSounds   Collection = "sounds"
	CollectionComments Collection = "comments"
	CollectionReports  Collection = "reports"
)

var collections = []Collection{
	CollectionUsers,
	CollectionSounds,
	CollectionComments,
	CollectionReports,
}

// ErrNotFound reports a record id that does not resolve in its collection.
// Any other error from this package is a storage failure.
var ErrNotFound = errors.New("record not found")

// Store reads and writes whole-collection JSON documents from a directory.
// Every read loads the full file; every mutation rewrites it. A per-collection
// mutex serializes read-modify-write cycles in-process, so concurrent appends
// to the same collection no longer drop records. Writes are not atomic: a
// crash mid-write can still truncate a file.
type Store struct {
	dir string
	mu  map[Collection]*sync.Mutex
}

func New(dir string) *Store {
	mu := make(map[Collection]*sync.Mutex, len(collections))
	for _, c := range collections {
		mu[c] = &sync.Mutex{}
	}
	return &Store{dir: dir, mu: mu}
}

// Init creates the data directory and seeds each missing collection with an
// empty sequence. Existing files are left untouched.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, c := range collections {
		p := s.path(c)
		if _, err := os.Stat(p); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat collection %s: %w", c, err)
		}
		if err := os.WriteFile(p, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("seed collection %s: %w", c, err)
		}
	}
	return nil
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

func (s *Store) lock(c Collection) *sync.Mutex {
	return s.mu[c]
}

// Read returns the full collection in insertion order.
func Read[T any](s *Store, c Collection) ([]T, error) {
	mu := s.lock(c)
	mu.Lock()
	defer mu.Unlock()
	return read[T](s, c)
}

// Update applies fn to the current collection contents and persists the
// result, holding the collection lock across the whole cycle. When fn returns
// an error nothing is written.
func Update[T any](s *Store, c Collection, fn func([]T) ([]T, error)) error {
	mu := s.lock(c)
	mu.Lock()
	defer mu.Unlock()

	recs, err := read[T](s, c)
	if err != nil {
		return err
	}
	next, err := fn(recs)
	if err != nil {
		return err
	}
	return write(s, c, next)
}

func read[T any](s *Store, c Collection) ([]T, error) {
	b, err := os.ReadFile(s.path(c))
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", c, err)
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", c, err)
	}
	return out, nil
}

func write[T any](s *Store, c Collection, recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c, err)
	}
	if err := os.WriteFile(s.path(c), b, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", c, err)
	}
	return nil
}
