package triekv

import (
	"fmt"
	"sync"
)

// StoreConfig sets optional store parameters.
type StoreConfig struct {
	// LookupCache caches resolved lookups across versions.  Nil
	// disables caching.
	LookupCache LookupCache
}

// Store is a thread-safe sequence of Tree snapshots.  Version numbers
// index into the sequence, starting from an empty tree at version 0.
// The sequence only grows: a version number, once returned by Put or
// Remove, resolves to the same Tree for the store's lifetime.
//
// Any number of Get/GetAt/Version calls may run concurrently with
// each other and with a single in-flight Put or Remove.
type Store struct {
	// writeMu serializes mutations; at most one Put or Remove runs
	// at a time, and concurrent mutations are linearized into the
	// snapshot sequence.
	writeMu sync.Mutex
	// snapMu guards only the sequence's length.  Tree contents are
	// immutable and need no lock once a reference is copied out.
	snapMu    sync.RWMutex
	snapshots []Tree
	cache     LookupCache
}

// NewStore creates a store seeded with one empty snapshot at version
// 0.  config may be nil.
func NewStore(config *StoreConfig) *Store {
	s := &Store{snapshots: []Tree{{}}}
	if config != nil {
		s.cache = config.LookupCache
	}
	return s
}

// Get returns a handle to the value stored under key in the latest
// version.
func Get[T any](s *Store, key string) (ValueHandle[T], bool) {
	return GetAt[T](s, key, s.Version())
}

// GetAt returns a handle to the value stored under key in the given
// version.  An out-of-range version, a missing key, or a stored value
// that is not a T all yield ok=false.  The snapshot lock is released
// before the tree walk, so lookups never block a writer's append and
// proceed fully in parallel with each other.
func GetAt[T any](s *Store, key string, version uint64) (ValueHandle[T], bool) {
	s.snapMu.RLock()
	if version >= uint64(len(s.snapshots)) {
		s.snapMu.RUnlock()
		return ValueHandle[T]{}, false
	}
	tree := s.snapshots[version]
	s.snapMu.RUnlock()
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey{version, key}); ok {
			if value, ok := cached.(*T); ok {
				return ValueHandle[T]{tree: tree, value: value}, true
			}
			return ValueHandle[T]{}, false
		}
	}
	value, ok := Lookup[T](tree, key)
	if !ok {
		return ValueHandle[T]{}, false
	}
	if s.cache != nil {
		s.cache.Add(cacheKey{version, key}, value)
	}
	return ValueHandle[T]{tree: tree, value: value}, true
}

// Put stores value under key and returns the new version number.
// The new version is not visible to readers until Put has fully
// committed it.
func Put[T any](s *Store, key string, value T) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	// The writer is the only appender, so the latest snapshot is
	// stable without the shape lock while writeMu is held.
	latest := s.snapshots[len(s.snapshots)-1]
	next := Insert(latest, key, value)
	return s.commit(next)
}

// Remove deletes key and returns the resulting version number.  If
// the key was absent the store is left as-is and the current latest
// version number is returned, without growing the sequence.
func (s *Store) Remove(key string) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	latest := s.snapshots[len(s.snapshots)-1]
	next := latest.Delete(key)
	if next.Same(latest) {
		return uint64(len(s.snapshots) - 1)
	}
	return s.commit(next)
}

// commit publishes a new snapshot.  Callers must hold writeMu.
func (s *Store) commit(next Tree) uint64 {
	s.snapMu.Lock()
	s.snapshots = append(s.snapshots, next)
	version := uint64(len(s.snapshots) - 1)
	s.snapMu.Unlock()
	return version
}

// Version returns the latest version number.
func (s *Store) Version() uint64 {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	if len(s.snapshots) == 0 {
		return 0
	}
	return uint64(len(s.snapshots) - 1)
}

// Snapshot returns the immutable Tree at the given version, for
// direct use with Lookup, Iter or Diff.  ok=false if the version is
// out of range.
func (s *Store) Snapshot(version uint64) (Tree, bool) {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	if version >= uint64(len(s.snapshots)) {
		return Tree{}, false
	}
	return s.snapshots[version], true
}

// Diff invokes f for every entry that differs between two committed
// versions.
func (s *Store) Diff(oldVersion, newVersion uint64, f DiffFunc) error {
	old, ok := s.Snapshot(oldVersion)
	if !ok {
		return fmt.Errorf("no such version %d", oldVersion)
	}
	new, ok := s.Snapshot(newVersion)
	if !ok {
		return fmt.Errorf("no such version %d", newVersion)
	}
	return new.Diff(old, f)
}

// Fingerprint returns the content fingerprint of a committed version.
func (s *Store) Fingerprint(version uint64) (string, error) {
	tree, ok := s.Snapshot(version)
	if !ok {
		return "", fmt.Errorf("no such version %d", version)
	}
	return tree.Fingerprint()
}
