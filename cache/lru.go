package cache

import "github.com/segmentio/intrusive/list"

// LRU is an Interface implementation which caches elements and tracks least
// recently used items as candidates for eviction.
//
// The recency queue is an intrusive list threaded through the cache entries
// themselves: touching an entry unlinks it and relinks it at the front, and
// eviction pops the back, none of which allocates.
type LRU[K comparable, V any] struct {
	index map[K]*entry[K, V]
	queue list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	list.Hook
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return len(lru.index)
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if lru.index == nil {
		lru.index = make(map[K]*entry[K, V])
	}
	if e, ok := lru.index[key]; ok {
		previous, replaced = e.value, true
		e.value = value
		lru.touch(e)
		return previous, replaced
	}
	e := &entry[K, V]{key: key, value: value}
	lru.index[key] = e
	lru.queue.PushFront(e)
	return previous, replaced
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	if e, ok := lru.index[key]; ok {
		lru.touch(e)
		value, found = e.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	if e, ok := lru.index[key]; ok {
		delete(lru.index, key)
		list.Remove(&e.Hook)
		value, deleted = e.value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if e := lru.queue.TryPopBack(); e != nil {
		delete(lru.index, e.key)
		key, value, evicted = e.key, e.value, true
	}
	return key, value, evicted
}

func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	for _, e := range lru.index {
		if !f(e.key, e.value) {
			break
		}
	}
}

func (lru *LRU[K, V]) touch(e *entry[K, V]) {
	e.Unlink()
	lru.queue.PushFront(e)
}
