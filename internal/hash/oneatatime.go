package hash

import "github.com/gostonefire/memhashmap/internal/utils"

// OneAtATimeAlgorithm - The internally used key algorithm. Bucket selection hashing is implemented
// using Jenkins' one-at-a-time hash over the raw key bytes, widened to 64 bits, and equality is a
// plain byte-wise comparison. The hash is deterministic and unseeded, identical key bytes always
// hash identically across runs and across hash map instances.
type OneAtATimeAlgorithm struct{}

// NewOneAtATimeAlgorithm - Returns a new OneAtATimeAlgorithm instance
func NewOneAtATimeAlgorithm() OneAtATimeAlgorithm {
	return OneAtATimeAlgorithm{}
}

// Sum64 - Given key it generates a 64 bit hash value
func (O OneAtATimeAlgorithm) Sum64(key []byte) uint64 {
	var h uint64
	for _, b := range key {
		h += uint64(b)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15

	return h
}

// Equal - Returns true if a and b are equal in contents
func (O OneAtATimeAlgorithm) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}
