package chainmap

// Iterator walks the entries that were live when it was created. A single
// pass visits each captured entry once; there is no way to rewind, so a
// fresh Iterator is needed for every traversal.
//
// The iterator holds its own copy of the entries. Structural changes to the
// map made while iterating affect neither the sequence nor its length; the
// iterator simply does not see them.
type Iterator[K comparable, V comparable] struct {
	entries []Entry[K, V]
	index   int
}

// Iterator returns an iterator over the map's entries, in the same logical
// sequence EntrySet produces.
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{entries: m.entries(), index: -1}
}

// Next advances to the next entry and reports whether one exists. It must be
// called before the first Key/Value/Entry access.
func (it *Iterator[K, V]) Next() bool {
	if it.index+1 >= len(it.entries) {
		return false
	}
	it.index++
	return true
}

// Key returns the current entry's key.
func (it *Iterator[K, V]) Key() K {
	return it.entries[it.index].Key
}

// Value returns the current entry's value.
func (it *Iterator[K, V]) Value() V {
	return it.entries[it.index].Value
}

// Entry returns the current entry.
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	return it.entries[it.index]
}
