package chainmap

// Entry is a key/value pair as seen through the map's views. Entries are
// plain values: two entries are equal exactly when both their keys and their
// values are equal, so equal pairs collapse to a single member inside an
// entry set regardless of where they came from.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// entries collects every live pair in bucket order, chain order within a
// bucket. Callers own the returned slice.
func (m *Map[K, V]) entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.size)
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			out = append(out, Entry[K, V]{Key: e.key, Value: e.value})
		}
	}
	return out
}
