package scmem

import (
	"fmt"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
)

// getBucketNo - Returns which bucket number that the given key results in, by reducing the hash
// value modulo the current number of buckets
func (S *SCMem) getBucketNo(key []byte) (bucketNo int64) {
	return int64(S.keyAlgorithm.Sum64(key) % uint64(S.numberOfBuckets))
}

// findRecord - Scans the chain of the given bucket for a record matching key.
// Key lengths are compared before the equality function is invoked, so implementations of
// hashfunc.KeyAlgorithm never see keys of differing lengths.
func (S *SCMem) findRecord(bucketNo int64, key []byte) (index int, found bool) {
	for i, record := range S.buckets[bucketNo] {
		if len(record.Key) == len(key) && S.keyAlgorithm.Equal(record.Key, key) {
			index = i
			found = true
			return
		}
	}

	return
}

// resize - Replaces the bucket array with a new one of newNumberOfBuckets slots and relocates every
// record to the bucket its key hashes to under the new size. Records are relinked, not copied, the
// key and value slices move as they are. Relative order of records that chain to the same bucket is
// not preserved.
func (S *SCMem) resize(newNumberOfBuckets int64) (err error) {
	if newNumberOfBuckets < 1 {
		err = fmt.Errorf("new number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if S.maxNumberOfBuckets > 0 && newNumberOfBuckets > S.maxNumberOfBuckets {
		err = crt.MapFull{}
		return
	}

	newBuckets := make([][]model.Record, newNumberOfBuckets)
	for _, chain := range S.buckets {
		for _, record := range chain {
			bucketNo := int64(S.keyAlgorithm.Sum64(record.Key) % uint64(newNumberOfBuckets))
			newBuckets[bucketNo] = append(newBuckets[bucketNo], record)
		}
	}

	S.buckets = newBuckets
	S.numberOfBuckets = newNumberOfBuckets

	return
}
