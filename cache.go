package triekv

import lru "github.com/hashicorp/golang-lru"

// LookupCache caches values resolved by store lookups, keyed by
// (version, key).  A committed version's contents never change, so
// entries never need invalidation.  One cache may be shared by any
// number of stores.
type LookupCache interface {
	// Add records the value resolved for a (version, key) pair.
	Add(key, value interface{})
	// Get retrieves a previously resolved value, if cached.
	Get(key interface{}) (value interface{}, ok bool)
}

// cacheKey identifies one lookup result.
type cacheKey struct {
	version uint64
	key     string
}

// NewLookupCache creates a new LRU-based lookup cache of the given
// size.
func NewLookupCache(size int) LookupCache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}
