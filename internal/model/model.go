package model

// Record - Represents one key/value pair stored in a bucket chain.
// Both slices are owned by the hash map, they are copies of whatever the caller passed in.
type Record struct {
	Key   []byte
	Value []byte
}

// Bucket - Represents one bucket with all records whose keys hash to it
type Bucket struct {
	BucketNo int64
	Records  []Record
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	NumberOfBuckets    int64
	MaxNumberOfBuckets int64
	LoadFactor         float64
	Records            int64
	InternalAlgorithm  bool
}
