package chainmap

import (
	"errors"
)

const (
	// DefaultCapacity is the bucket count a Map starts with unless the
	// caller asks for a specific capacity.
	DefaultCapacity = 16

	// loadFactor is the size/capacity ratio that triggers a resize.
	loadFactor = 0.75
)

// ErrNegativeCapacity is returned by NewWithCapacity when the requested
// capacity is negative.
var ErrNegativeCapacity = errors.New("chainmap: capacity can't be negative")

// entry is a single key/value association in a bucket chain. The value is
// replaced in place when its key is re-inserted; the key never changes once
// the entry is linked.
type entry[K comparable, V comparable] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Map is a hash table mapping keys to values, using separate chaining for
// collision resolution. The zero value is an empty map ready to use; it
// allocates its bucket array on first insert.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V comparable] struct {
	buckets []*entry[K, V]
	size    int
}

// New creates an empty Map with the default capacity.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{buckets: make([]*entry[K, V], DefaultCapacity)}
}

// NewWithCapacity creates an empty Map with the given initial bucket count.
// It fails with ErrNegativeCapacity if capacity is negative. A capacity of
// zero is accepted; the table grows on first insert.
func NewWithCapacity[K comparable, V comparable](capacity int) (*Map[K, V], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Map[K, V]{buckets: make([]*entry[K, V], capacity)}, nil
}

// NewFromMap creates a Map with the default capacity and inserts every pair
// from src.
func NewFromMap[K comparable, V comparable](src map[K]V) *Map[K, V] {
	m := New[K, V]()
	m.PutAll(src)
	return m
}

// Size returns the number of key/value pairs in the map.
func (m *Map[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Capacity returns the current bucket count. Capacity only ever grows:
// removals and Clear leave it untouched.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, found := m.Get(key)
	return found
}

// ContainsValue reports whether any key maps to value. This is a full-table
// scan: every bucket and every chain entry is visited.
func (m *Map[K, V]) ContainsValue(value V) bool {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if e.value == value {
				return true
			}
		}
	}
	return false
}

// Get returns the value stored under key, and whether the key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if len(m.buckets) > 0 {
		idx := bucketIndex(key, len(m.buckets))
		for e := m.buckets[idx]; e != nil; e = e.next {
			if e.key == key {
				return e.value, true
			}
		}
	}
	var zero V
	return zero, false
}

// Put stores value under key and returns the value previously stored there,
// if any. Re-inserting an existing key replaces the value in place without
// changing the map's size.
//
// The load factor is checked before the entry is placed, on every call; a
// call that only replaces a value can therefore still trigger a resize.
func (m *Map[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if m.needsGrow() {
		m.resize()
	}
	idx := bucketIndex(key, len(m.buckets))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			prev = e.value
			e.value = value
			return prev, true
		}
	}
	m.buckets[idx] = &entry[K, V]{key: key, value: value, next: m.buckets[idx]}
	m.size++
	return prev, false
}

// Remove deletes key's entry and returns the value it held, if any. Capacity
// never shrinks.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	if len(m.buckets) > 0 {
		idx := bucketIndex(key, len(m.buckets))
		var before *entry[K, V]
		for e := m.buckets[idx]; e != nil; e = e.next {
			if e.key == key {
				if before == nil {
					m.buckets[idx] = e.next
				} else {
					before.next = e.next
				}
				e.next = nil
				m.size--
				return e.value, true
			}
			before = e
		}
	}
	var zero V
	return zero, false
}

// PutAll inserts every pair from src, in src's iteration order. An empty or
// nil src is a no-op.
func (m *Map[K, V]) PutAll(src map[K]V) {
	if len(src) == 0 {
		return
	}
	for key, value := range src {
		m.Put(key, value)
	}
}

// Clear drops every chain and resets the size to zero. The bucket array keeps
// its current capacity.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// needsGrow reports whether an insert must resize first. A table with no
// buckets always grows, so the zero Map and zero-capacity tables work.
func (m *Map[K, V]) needsGrow() bool {
	if len(m.buckets) == 0 {
		return true
	}
	return float64(m.size)/float64(len(m.buckets)) >= loadFactor
}

// resize doubles the bucket array and relinks every entry into its new
// bucket. Entries are moved, not reallocated: only the next pointers change.
// Migration prepends entries as chains are walked in old-bucket order, so the
// relative order within a chain can reverse. The new array is installed only
// after every entry has been relinked.
func (m *Map[K, V]) resize() {
	capacity := len(m.buckets) * 2
	if capacity == 0 {
		capacity = 1
	}
	buckets := make([]*entry[K, V], capacity)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			idx := bucketIndex(e.key, capacity)
			e.next = buckets[idx]
			buckets[idx] = e
			e = next
		}
	}
	m.buckets = buckets
}
