package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chainmap"
)

func main() {
	m := chainmap.New[string, int]()

	fmt.Println("Map created successfully")

	// Insert some data
	for i := 0; i < 10; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i*100)
	}

	fmt.Println("Inserted 10 key-value pairs")

	// Retrieve a value
	value, found := m.Get("key-3")
	if !found {
		log.Fatal("key-3 not found")
	}
	fmt.Println("key-3 =", value)

	// Replace a value in place; the previous one comes back
	prev, _ := m.Put("key-3", 42)
	fmt.Printf("key-3 replaced: previous=%d, current=42\n", prev)

	// Remove a key
	removed, _ := m.Remove("key-9")
	fmt.Printf("Removed key-9 (held %d), size is now %d\n", removed, m.Size())

	// Keys with equal hashes share a bucket and still resolve correctly
	m.Put("FB", 1)
	m.Put("Ea", 2)
	fb, _ := m.Get("FB")
	ea, _ := m.Get("Ea")
	fmt.Printf("Colliding keys: FB=%d, Ea=%d\n", fb, ea)

	// Views
	fmt.Println("Keys:", m.KeySet().Size())
	fmt.Println("Values:", len(m.Values()))
	fmt.Println("Entries:", chainmap.EntrySet(m).Size())

	// Iterate over a snapshot of the entries
	total := 0
	it := m.Iterator()
	for it.Next() {
		total += it.Value()
	}
	fmt.Println("Sum of all values:", total)

	// JSON round trip
	data, err := m.ToJSON()
	if err != nil {
		log.Fatalf("Failed to serialize: %v", err)
	}
	restored := chainmap.New[string, int]()
	if err := restored.FromJSON(data); err != nil {
		log.Fatalf("Failed to deserialize: %v", err)
	}
	fmt.Printf("Restored %d pairs from %d bytes of JSON\n", restored.Size(), len(data))
}
