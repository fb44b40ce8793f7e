package chainmap

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	hashSeed       = 31
	hashMultiplier = 17
)

// bucketIndex maps key to a slot in a bucket array of the given capacity.
// The key's hash is mixed with a fixed seed and forced non-negative before
// the modulo, so the index stays valid even when the 32-bit mix overflows.
// Two keys with equal hashes land in the same bucket; the chains resolve it.
func bucketIndex[K comparable](key K, capacity int) int {
	h := int32(hashSeed)*hashMultiplier + keyHash(key)
	if h < 0 {
		h = -h
	}
	// -MinInt32 is still negative; the mask covers that one value.
	return int(h&math.MaxInt32) % capacity
}

// keyHash returns a deterministic 32-bit hash of key. Strings use a
// polynomial rolling hash, integer kinds hash to their low 32 bits, and any
// other comparable type is hashed with xxhash over its printed form.
//
// Equal keys always hash equally. Distinct keys may collide, both across
// types and within one: for example the strings "FB" and "Ea" share a hash
// under the polynomial function.
func keyHash[K comparable](key K) int32 {
	switch k := any(key).(type) {
	case string:
		return stringHash(k)
	case int:
		return int32(k)
	case int8:
		return int32(k)
	case int16:
		return int32(k)
	case int32:
		return k
	case int64:
		return int32(k)
	case uint:
		return int32(k)
	case uint8:
		return int32(k)
	case uint16:
		return int32(k)
	case uint32:
		return int32(k)
	case uint64:
		return int32(k)
	case uintptr:
		return int32(k)
	case bool:
		if k {
			return 1
		}
		return 0
	default:
		return int32(xxhash.Sum64String(fmt.Sprintf("%v", k)))
	}
}

// stringHash is the classic multiply-by-31 rolling hash, computed in 32-bit
// arithmetic so long strings wrap instead of growing without bound.
func stringHash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = 31*h + int32(s[i])
	}
	return h
}
