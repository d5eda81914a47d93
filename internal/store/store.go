// Package store provides the copy-on-write, generic mapping that every
// component store in internal/state is built on. It is the idiomatic-Go
// stand-in for the persistent maps (pyrsistent.PMap) the original Python
// implementation uses: Set and Remove never mutate the receiver, they return
// a new Store holding its own copy of the entries. No third-party persistent-map
// library appears anywhere in the retrieved example pack, so this is
// implemented on the standard library map type (see DESIGN.md).
package store

import "sort"

// Store is an immutable, copy-on-write mapping from K to V.
type Store[K comparable, V any] struct {
	m map[K]V
}

// New returns an empty Store.
func New[K comparable, V any]() Store[K, V] {
	return Store[K, V]{m: make(map[K]V)}
}

// Of builds a Store from the given entries.
func Of[K comparable, V any](entries map[K]V) Store[K, V] {
	clone := make(map[K]V, len(entries))
	for k, v := range entries {
		clone[k] = v
	}
	return Store[K, V]{m: clone}
}

// Get returns the value for key and whether it was present.
func (s Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

// Has reports whether key is present in the store.
func (s Store[K, V]) Has(key K) bool {
	_, ok := s.m[key]
	return ok
}

// Len returns the number of entries in the store.
func (s Store[K, V]) Len() int {
	return len(s.m)
}

// Set returns a new Store with key bound to value; the receiver is
// unchanged.
func (s Store[K, V]) Set(key K, value V) Store[K, V] {
	clone := make(map[K]V, len(s.m)+1)
	for k, v := range s.m {
		clone[k] = v
	}
	clone[key] = value
	return Store[K, V]{m: clone}
}

// Remove returns a new Store without key; the receiver is unchanged. If key
// is absent the receiver's backing map is reused (no-op clone).
func (s Store[K, V]) Remove(key K) Store[K, V] {
	if _, ok := s.m[key]; !ok {
		return s
	}
	clone := make(map[K]V, len(s.m))
	for k, v := range s.m {
		if k == key {
			continue
		}
		clone[k] = v
	}
	return Store[K, V]{m: clone}
}

// Range calls fn for every entry in an unspecified order. fn must not
// mutate the store (it can't: Store is immutable). Use Keys for a
// deterministic iteration order.
func (s Store[K, V]) Range(fn func(key K, value V) bool) {
	for k, v := range s.m {
		if !fn(k, v) {
			return
		}
	}
}

// Keys returns every key in the store, ordered deterministically.
func (s Store[K, V]) Keys(less func(a, b K) bool) []K {
	keys := make([]K, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}
