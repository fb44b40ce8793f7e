package chainmap_test

import (
	"fmt"
	"testing"

	"github.com/theflywheel/chainmap"
)

// TestMillionKeys drives the table through its intended production scale:
// a million distinct integer keys inserted, verified, and removed again.
func TestMillionKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping million-key scale test in short mode")
	}

	const numKeys = 1_000_000

	m := chainmap.New[int, string]()
	for i := 1; i <= numKeys; i++ {
		m.Put(i, fmt.Sprintf("value%d", i))
	}

	if m.Size() != numKeys {
		t.Fatalf("Size after insertion is %d, want %d", m.Size(), numKeys)
	}

	for i := 1; i <= numKeys; i++ {
		value, found := m.Get(i)
		if !found {
			t.Fatalf("Key %d not found", i)
		}
		if want := fmt.Sprintf("value%d", i); value != want {
			t.Fatalf("Value mismatch for key %d: expected %q, got %q", i, want, value)
		}
	}

	for i := 1; i <= numKeys; i++ {
		if _, removed := m.Remove(i); !removed {
			t.Fatalf("Remove(%d) found nothing", i)
		}
	}

	if m.Size() != 0 || !m.IsEmpty() {
		t.Fatalf("After removing every key: size=%d empty=%v, want 0/true", m.Size(), m.IsEmpty())
	}
	for i := 1; i <= numKeys; i += 10_000 {
		if _, found := m.Get(i); found {
			t.Fatalf("Key %d retrievable after removal", i)
		}
	}
}
