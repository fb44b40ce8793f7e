/*
Package chainmap provides a generic associative container built on open hashing
with separate chaining.

Map is implemented from first principles: it manages its own bucket array and
collision chains rather than wrapping Go's built-in map. Buckets hold singly
linked chains of entries, lookups hash the key to a bucket and walk the chain,
and the bucket array doubles whenever the load factor reaches 0.75.

Basic usage:

	import "github.com/theflywheel/chainmap"

	m := chainmap.New[string, int]()

	// Insert data
	m.Put("alpha", 1)
	m.Put("beta", 2)

	// Retrieve data
	value, ok := m.Get("alpha")
	if ok {
		fmt.Println("Value:", value)
	}

	// Replace in place; the previous value comes back
	prev, _ := m.Put("alpha", 10)
	fmt.Println("Previous:", prev)

Features:

  - Generic keys and values (both must be comparable)
  - Separate chaining for collision resolution
  - Automatic capacity doubling when the load factor reaches 0.75
  - Set views over keys and entries served by the same engine
  - Snapshot iterator over the live entries
  - JSON serialization via ToJSON/FromJSON

Implementation Details:

Each bucket owns the head of its chain and each entry owns the reference to its
successor, so reachability forms a tree rooted at the table. Keys hash through
a deterministic 32-bit function: strings use a polynomial rolling hash,
integers hash to their low 32 bits, and any other comparable type is hashed
with xxhash over its printed form. The bucket index mixes that hash with a
fixed seed and takes the absolute value before the modulo, so it is always
non-negative even when 32-bit arithmetic overflows.

Resizing rehashes every entry against the doubled capacity and relinks it into
the new array; entries are moved, never copied, and the new array replaces the
old one only after every chain has been migrated.

Map is not safe for concurrent use. Callers that share a Map across goroutines
must provide their own synchronization.
*/
package chainmap
