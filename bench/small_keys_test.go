// This file contains micro-benchmarks for the individual map operations,
// with the built-in map measured alongside as a baseline.
package chainmap_test

import (
	"fmt"
	"testing"

	"github.com/theflywheel/chainmap"
)

const benchKeySpace = 1 << 16

func benchKeys() []string {
	keys := make([]string, benchKeySpace)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	return keys
}

func BenchmarkPut(b *testing.B) {
	keys := benchKeys()
	m := chainmap.New[string, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[i%benchKeySpace], i)
	}
}

func BenchmarkPutBuiltin(b *testing.B) {
	keys := benchKeys()
	m := make(map[string]int)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m[keys[i%benchKeySpace]] = i
	}
}

func BenchmarkGet(b *testing.B) {
	keys := benchKeys()
	m := chainmap.New[string, int]()
	for i, key := range keys {
		m.Put(key, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := m.Get(keys[i%benchKeySpace]); !found {
			b.Fatal("key missing")
		}
	}
}

func BenchmarkGetBuiltin(b *testing.B) {
	keys := benchKeys()
	m := make(map[string]int)
	for i, key := range keys {
		m[key] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := m[keys[i%benchKeySpace]]; !found {
			b.Fatal("key missing")
		}
	}
}

func BenchmarkGetMiss(b *testing.B) {
	keys := benchKeys()
	m := chainmap.New[string, int]()
	for i, key := range keys {
		m.Put(key, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := m.Get("absent"); found {
			b.Fatal("phantom key")
		}
	}
}

func BenchmarkPutRemove(b *testing.B) {
	keys := benchKeys()
	m := chainmap.New[string, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%benchKeySpace]
		m.Put(key, i)
		m.Remove(key)
	}
}

func BenchmarkIterator(b *testing.B) {
	m := chainmap.New[int, int]()
	for i := 0; i < 1024; i++ {
		m.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Iterator()
		for it.Next() {
			_ = it.Value()
		}
	}
}
