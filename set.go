package chainmap

import (
	"fmt"
	"strings"
)

// Set holds unique elements, backed by the same chained hash table that
// serves Map. Like Map, a Set is not safe for concurrent use.
type Set[T comparable] struct {
	items *Map[T, struct{}]
}

var itemExists = struct{}{}

// NewSet creates an empty set and adds the passed values, if any.
func NewSet[T comparable](values ...T) *Set[T] {
	set := &Set[T]{items: New[T, struct{}]()}
	if len(values) > 0 {
		set.Add(values...)
	}
	return set
}

// Add adds the items (one or more) to the set.
func (set *Set[T]) Add(items ...T) {
	for _, item := range items {
		set.items.Put(item, itemExists)
	}
}

// Remove removes the items (one or more) from the set.
func (set *Set[T]) Remove(items ...T) {
	for _, item := range items {
		set.items.Remove(item)
	}
}

// Contains checks if items (one or more) are present in the set. All items
// have to be present for it to return true; with no arguments it returns
// true, since every set is a superset of the empty set.
func (set *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !set.items.ContainsKey(item) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the set holds no elements.
func (set *Set[T]) IsEmpty() bool {
	return set.items.IsEmpty()
}

// Size returns the number of elements within the set.
func (set *Set[T]) Size() int {
	return set.items.Size()
}

// Clear removes all elements from the set.
func (set *Set[T]) Clear() {
	set.items.Clear()
}

// Values returns all items in the set, unordered.
func (set *Set[T]) Values() []T {
	values := make([]T, 0, set.Size())
	set.items.Each(func(item T, _ struct{}) {
		values = append(values, item)
	})
	return values
}

// String returns a string representation of the set.
func (set *Set[T]) String() string {
	str := "ChainSet\n"
	items := make([]string, 0, set.Size())
	set.items.Each(func(item T, _ struct{}) {
		items = append(items, fmt.Sprintf("%v", item))
	})
	str += strings.Join(items, ", ")
	return str
}

// Intersection returns a new set with the elements present in both set and
// another. The smaller set drives the scan.
func (set *Set[T]) Intersection(another *Set[T]) *Set[T] {
	result := NewSet[T]()
	small, large := set, another
	if large.Size() < small.Size() {
		small, large = large, small
	}
	small.items.Each(func(item T, _ struct{}) {
		if large.items.ContainsKey(item) {
			result.Add(item)
		}
	})
	return result
}

// Union returns a new set with the elements present in set, another, or both.
func (set *Set[T]) Union(another *Set[T]) *Set[T] {
	result := NewSet[T]()
	set.items.Each(func(item T, _ struct{}) {
		result.Add(item)
	})
	another.items.Each(func(item T, _ struct{}) {
		result.Add(item)
	})
	return result
}

// Difference returns a new set with the elements present in set but not in
// another.
func (set *Set[T]) Difference(another *Set[T]) *Set[T] {
	result := NewSet[T]()
	set.items.Each(func(item T, _ struct{}) {
		if !another.items.ContainsKey(item) {
			result.Add(item)
		}
	})
	return result
}
