// Package cache contains data structures that are useful to build caches.
//
// The types provided by the package are generic building blocks implementing
// caching algorithms on top of the intrusive list package: cache entries
// embed a list hook, so tracking recency never allocates wrapper nodes.
// Synchronization in caching strategies is often very specific to the
// application and harder to generalize, so the types provided by this
// package do not make opinionated choices on how synchronization should be
// handled, which makes them unsafe to use concurrently from multiple
// goroutines.
package cache

// Interface is the interface implemented by caches.
type Interface[K comparable, V any] interface {
	// Returns the number of items in the cache.
	Len() int

	// Inserts an item in the cache, returning the previous value associated
	// with the cache key.
	Insert(key K, value V) (previous V, replaced bool)

	// Returns the value associated with the given key in the cache.
	Lookup(key K) (value V, found bool)

	// Deletes an item from the cache.
	Delete(key K) (value V, deleted bool)

	// Evicts an item from the cache.
	Evict() (key K, value V, evicted bool)

	// Calls f for each entry in the cache. The order in which entries are
	// presented is unspecified. If f returns false, iteration stops.
	Range(f func(K, V) bool)
}
