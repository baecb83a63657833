package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/gostonefire/memhashmap/internal/utils"
)

// XXHashAlgorithm - KeyAlgorithm implementation backed by xxHash64. A good choice when keys are long
// and hashing cost dominates over chain scanning.
type XXHashAlgorithm struct{}

// Sum64 - Given key it generates a 64 bit hash value
func (X XXHashAlgorithm) Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Equal - Returns true if a and b are equal in contents
func (X XXHashAlgorithm) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// XXH3Algorithm - KeyAlgorithm implementation backed by XXH3, the successor to xxHash64 with better
// performance on short keys.
type XXH3Algorithm struct{}

// Sum64 - Given key it generates a 64 bit hash value
func (X XXH3Algorithm) Sum64(key []byte) uint64 {
	return xxh3.Hash(key)
}

// Equal - Returns true if a and b are equal in contents
func (X XXH3Algorithm) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// Murmur3Algorithm - KeyAlgorithm implementation backed by MurmurHash3
type Murmur3Algorithm struct{}

// Sum64 - Given key it generates a 64 bit hash value
func (M Murmur3Algorithm) Sum64(key []byte) uint64 {
	return murmur3.Sum64(key)
}

// Equal - Returns true if a and b are equal in contents
func (M Murmur3Algorithm) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}
