package chainmap

import (
	"fmt"
	"strings"
)

// KeySet returns a set of the keys live at call time. The set is a snapshot;
// later changes to the map do not show through.
func (m *Map[K, V]) KeySet() *Set[K] {
	keys := NewSet[K]()
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			keys.Add(e.key)
		}
	}
	return keys
}

// Values returns the values live at call time, in the same scan order the
// other views use. Values repeated under different keys appear once per key.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			out = append(out, e.value)
		}
	}
	return out
}

// EntrySet returns a set of the key/value pairs live in m at call time. Set
// membership follows Entry equality, so pairs with equal key and equal value
// occupy one member.
//
// EntrySet is a package function, not a method: a method returning
// *Set[Entry[K, V]] would put Map[Entry[K, V], struct{}] in every Map's
// method set, and each level mints a new Entry type, so the instantiations
// never terminate.
func EntrySet[K comparable, V comparable](m *Map[K, V]) *Set[Entry[K, V]] {
	set := NewSet[Entry[K, V]]()
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			set.Add(Entry[K, V]{Key: e.key, Value: e.value})
		}
	}
	return set
}

// Each calls fn once for every live pair.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.key, e.value)
		}
	}
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	str := "ChainMap\n"
	items := make([]string, 0, m.size)
	m.Each(func(key K, value V) {
		items = append(items, fmt.Sprintf("%v:%v", key, value))
	})
	str += strings.Join(items, ", ")
	return str
}
