package hashfunc

// KeyAlgorithm - Interface that permits an implementation using the MemHashMap to supply custom hash and
// equality functions suited for its particular distribution of keys.
type KeyAlgorithm interface {
	// Sum64 - Given key it generates a 64 bit hash value that is reduced modulo the current number of
	// buckets to select a bucket. The same key bytes must always produce the same hash value, across
	// hash map instances and across runs.
	Sum64(key []byte) uint64

	// Equal - Reports whether two keys hold the same bytes.
	// It is only ever called with keys whose recorded lengths already match, the length check is done
	// by the hash map before invoking it.
	Equal(a, b []byte) bool
}
