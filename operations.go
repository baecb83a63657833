package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record, at least one byte long
//
// It returns:
//   - value is a fresh copy of the value of the matching record, the caller owns it and later
//     mutation of it never affects the stored value. If no record matches, an error of type
//     NoRecordFound is returned, which is a negative lookup rather than an operational failure.
//   - err is either of type NoRecordFound, InvalidKey, MapClosed or a standard error
func (M *MemHashMap) Get(key []byte) (value []byte, err error) {
	if err = M.checkOperation(key); err != nil {
		return
	}

	record, err := M.bucketManagement.Get(key)
	if err != nil {
		return
	}

	value = utils.CopyBytes(record.Value)

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
// The hash map stores its own copies of both key and value, the caller's slices are never retained.
// Setting an existing key replaces only its value and leaves the record count unchanged.
//   - key is the identifier of a record, at least one byte long
//   - value is the bytes to store along with the key, may be empty
//
// It returns:
//   - err is either of type InvalidKey, MapClosed or a standard error, if something went wrong
func (M *MemHashMap) Set(key []byte, value []byte) (err error) {
	if err = M.checkOperation(key); err != nil {
		return
	}

	M.bucketManagement.Set(model.Record{Key: key, Value: value})

	return
}

// Delete - Removes the record that corresponds to the given key.
// The number of buckets never shrinks on delete.
//   - key is the identifier of a record, at least one byte long
//
// It returns:
//   - removed is true if a record was found and removed, false if the key was absent. An absent
//     key is not an error.
//   - err is either of type InvalidKey, MapClosed or a standard error, if something went wrong
func (M *MemHashMap) Delete(key []byte) (removed bool, err error) {
	if err = M.checkOperation(key); err != nil {
		return
	}

	removed = M.bucketManagement.Delete(key)

	return
}

// Pop - Returns the value corresponding to key and removes the record from the hash map.
//   - key is the identifier of a record, at least one byte long
//
// It returns:
//   - value is a fresh copy of the value of the matching record, if not found an error of type
//     NoRecordFound is also returned.
//   - err is either of type NoRecordFound, InvalidKey, MapClosed or a standard error
func (M *MemHashMap) Pop(key []byte) (value []byte, err error) {
	if err = M.checkOperation(key); err != nil {
		return
	}

	record, err := M.bucketManagement.Get(key)
	if err != nil {
		return
	}

	value = utils.CopyBytes(record.Value)
	M.bucketManagement.Delete(key)

	return
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
// For a very big hash map the HashMapStat.BucketDistribution slice can be memory heavy (there will
// be one entry per bucket).
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (M *MemHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	if M.closed {
		err = MapClosed{}
		return
	}

	sp := M.bucketManagement.GetStorageParameters()

	var bucket model.Bucket
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	}

	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err = M.bucketManagement.GetBucket(i)
		if err != nil {
			return
		}

		chainLength := int64(len(bucket.Records))
		hms.Records += chainLength
		if chainLength > hms.LongestChain {
			hms.LongestChain = chainLength
		}
		if includeDistribution {
			hms.BucketDistribution[i] = chainLength
		}
	}

	hashMapStat = &hms
	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record, at least one byte long
func (M *MemHashMap) GetBucketNo(key []byte) (bucketNo int64, err error) {
	if err = M.checkOperation(key); err != nil {
		return
	}

	bucketNo = M.bucketManagement.GetBucketNo(key)

	return
}

// Close - Releases every record in every bucket and then the bucket array itself.
// It is idempotent, closing an already closed hash map is a no-op. After close the instance can not
// be used for further operations, create a new instance with NewMemHashMap instead.
func (M *MemHashMap) Close() {
	if M.closed {
		return
	}

	M.bucketManagement.ReleaseAll()
	M.closed = true
}

// checkOperation - Common validation of an incoming operation, the hash map must not be closed and
// the key must be at least one byte long
func (M *MemHashMap) checkOperation(key []byte) (err error) {
	if M.closed {
		err = MapClosed{}
		return
	}
	if len(key) == 0 {
		err = InvalidKey{}
		return
	}

	return
}
