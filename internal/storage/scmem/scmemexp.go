package scmem

import (
	"fmt"
	"log/slog"

	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// SCMemConf - Is a struct to be passed in the call to NewSCMem and contains configuration that
// affects bucket handling.
//   - InitialBuckets is the number of buckets to start out with, zero or negative selects the default
//   - MaxNumberOfBuckets caps growth, zero or negative means unbounded
//   - LoadFactor is the records to buckets ratio that triggers growth, zero or negative selects the default
//   - KeyAlgorithm is the hash/equality functions to use, nil selects the internal algorithm
//   - Logger receives warning diagnostics, nil discards them
type SCMemConf struct {
	InitialBuckets     int64
	MaxNumberOfBuckets int64
	LoadFactor         float64
	KeyAlgorithm       hashfunc.KeyAlgorithm
	Logger             *slog.Logger
}

// SCMem - Represents an in-memory implementation of the Separate Chaining Collision Resolution
// Technique. It holds one chain of records per bucket, where each record owns its copies of key and
// value bytes. Chains are plain slices, a record is reached by a linear scan of the chain its key
// hashes to.
type SCMem struct {
	buckets            [][]model.Record
	numberOfBuckets    int64
	maxNumberOfBuckets int64
	records            int64
	loadFactor         float64
	keyAlgorithm       hashfunc.KeyAlgorithm
	internalAlgorithm  bool
	logger             *slog.Logger
}

// NewSCMem - Returns a pointer to a new instance of the Separate Chaining in-memory implementation.
//   - scMemConf is a SCMemConf struct providing configuration parameters affecting bucket handling
//
// It returns:
//   - scMem which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCMem(scMemConf SCMemConf) (scMem *SCMem, err error) {
	// If no KeyAlgorithm was given then use the default internal
	var internalAlg bool
	if scMemConf.KeyAlgorithm == nil {
		scMemConf.KeyAlgorithm = hash.NewOneAtATimeAlgorithm()
		internalAlg = true
	}

	if scMemConf.InitialBuckets <= 0 {
		scMemConf.InitialBuckets = defaultNumberOfBuckets
	}
	if scMemConf.LoadFactor <= 0 {
		scMemConf.LoadFactor = defaultLoadFactor
	}
	if scMemConf.Logger == nil {
		scMemConf.Logger = slog.New(slog.DiscardHandler)
	}

	if scMemConf.MaxNumberOfBuckets > 0 && scMemConf.MaxNumberOfBuckets < scMemConf.InitialBuckets {
		err = fmt.Errorf("max number of buckets %d is less than initial number of buckets %d",
			scMemConf.MaxNumberOfBuckets, scMemConf.InitialBuckets)
		return
	}

	scMem = &SCMem{
		buckets:            make([][]model.Record, scMemConf.InitialBuckets),
		numberOfBuckets:    scMemConf.InitialBuckets,
		maxNumberOfBuckets: scMemConf.MaxNumberOfBuckets,
		loadFactor:         scMemConf.LoadFactor,
		keyAlgorithm:       scMemConf.KeyAlgorithm,
		internalAlgorithm:  internalAlg,
		logger:             scMemConf.Logger,
	}

	return
}

// Get - Gets the record that corresponds to the given key. The returned record holds the internally
// stored slices, it is up to higher level functions to hand out copies.
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCMem) Get(key []byte) (record model.Record, err error) {
	bucketNo := S.getBucketNo(key)

	if i, found := S.findRecord(bucketNo, key); found {
		record = S.buckets[bucketNo][i]
		return
	}

	err = crt.NoRecordFound{}

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
// The load factor is checked before any mutation and a growth of the bucket array is attempted when
// exceeded. A denied growth is not fatal, the record is stored at current capacity with degraded
// chain lengths and a warning is emitted through the logger.
//   - record is the record to set, it needs only to contain Key and Value
func (S *SCMem) Set(record model.Record) {
	if float64(S.records)/float64(S.numberOfBuckets) >= S.loadFactor {
		if err := S.resize(S.numberOfBuckets * growthFactor); err != nil {
			S.logger.Warn("hash map resize failed, continuing at current capacity",
				"buckets", S.numberOfBuckets, "records", S.records, "error", err)
		}
	}

	bucketNo := S.getBucketNo(record.Key)

	// An update replaces only the value, the copy is taken before the old value is let go of
	if i, found := S.findRecord(bucketNo, record.Key); found {
		S.buckets[bucketNo][i].Value = utils.CopyBytes(record.Value)
		return
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Record{
		Key:   utils.CopyBytes(record.Key),
		Value: utils.CopyBytes(record.Value),
	})
	S.records++
}

// Delete - Removes the record that corresponds to the given key, releasing its key and value copies.
// The bucket array never shrinks on delete.
//   - key is the identifier of a record
//
// It returns:
//   - removed is true if a record was found and removed, false if the key was absent
func (S *SCMem) Delete(key []byte) (removed bool) {
	bucketNo := S.getBucketNo(key)

	if i, found := S.findRecord(bucketNo, key); found {
		chain := S.buckets[bucketNo]
		chain[i] = model.Record{}
		S.buckets[bucketNo] = append(chain[:i], chain[i+1:]...)
		S.records--
		removed = true
	}

	return
}

// GetBucket - Returns a bucket with a copy of its chain of records given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by a call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing all records currently chained to the bucket
//   - err is a standard error if the bucket number is out of range
func (S *SCMem) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range", bucketNo)
		return
	}

	bucket = model.Bucket{
		BucketNo: bucketNo,
		Records:  append([]model.Record(nil), S.buckets[bucketNo]...),
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (S *SCMem) GetBucketNo(key []byte) (bucketNo int64) {
	return S.getBucketNo(key)
}

// GetStorageParameters - Returns a struct with storage parameters from SCMem
func (S *SCMem) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:    S.numberOfBuckets,
		MaxNumberOfBuckets: S.maxNumberOfBuckets,
		LoadFactor:         S.loadFactor,
		Records:            S.records,
		InternalAlgorithm:  S.internalAlgorithm,
	}

	return
}

// ReleaseAll - Drops every chain and the bucket array itself, leaving the instance empty.
// Safe to call more than once.
func (S *SCMem) ReleaseAll() {
	S.buckets = nil
	S.records = 0
}
