package memhashmap

import (
	"log/slog"

	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/scmem"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// BucketManagement - Interface for any bucket storage implementation
type BucketManagement interface {
	Get(key []byte) (record model.Record, err error)
	Set(record model.Record)
	Delete(key []byte) (removed bool)
	GetBucket(bucketNo int64) (bucket model.Bucket, err error)
	GetBucketNo(key []byte) (bucketNo int64)
	GetStorageParameters() (params model.StorageParameters)
	ReleaseAll()
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the current number of buckets records distribute over
//   - MaxNumberOfBuckets is the configured growth limit, zero means unbounded
//   - LoadFactor is the records to buckets ratio that triggers growth
//   - InternalAlgorithm tells whether the internal key algorithm is in use
type HashMapInfo struct {
	NumberOfBuckets    int64
	MaxNumberOfBuckets int64
	LoadFactor         float64
	InternalAlgorithm  bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - LongestChain is the length of the longest bucket chain
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	LongestChain       int64
	BucketDistribution []int64
}

// MemHashMap - The main implementation struct.
// It maps keys of arbitrary (per key) length to values, where both are raw byte slices. The map
// stores its own copies of all keys and values, and hands out copies on retrieval, so no caller
// memory is ever borrowed past a call boundary.
//
// A MemHashMap is not safe for concurrent use by multiple goroutines, serializing access is the
// responsibility of the caller.
type MemHashMap struct {
	bucketManagement   BucketManagement
	maxNumberOfBuckets int64
	logger             *slog.Logger
	closed             bool
}

// Option - Configures optional behavior of a MemHashMap
type Option func(*options)

type options struct {
	maxNumberOfBuckets int64
	logger             *slog.Logger
}

// WithMaxNumberOfBuckets - Caps growth of the bucket array. When a growth attempt would exceed the
// limit the attempt is denied, the triggering Set proceeds at current capacity and a warning is
// emitted through the logger. Lookups keep working, only chain lengths degrade.
func WithMaxNumberOfBuckets(n int64) Option {
	return func(o *options) {
		o.maxNumberOfBuckets = n
	}
}

// WithLogger - Supplies a logger for warning diagnostics, such as denied growth attempts.
// When no logger is given all diagnostics are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewMemHashMap - Returns a new in-memory hash map prepared to store key/value pairs of raw bytes.
//   - initialBuckets is the number of buckets to start out with, zero or negative selects the default of 16
//   - loadFactor is the records to buckets ratio that triggers growth, zero or negative selects the default of 0.75
//   - keyAlgorithm is an optional custom hash/equality implementation following the hashfunc.KeyAlgorithm interface, nil selects the internal one-at-a-time algorithm
//
// It returns:
//   - memHashMap is a pointer to a MemHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created
//   - err is a normal Go error which should be nil if everything went ok
func NewMemHashMap(
	initialBuckets int64,
	loadFactor float64,
	keyAlgorithm hashfunc.KeyAlgorithm,
	opts ...Option,
) (
	memHashMap *MemHashMap,
	hashMapInfo HashMapInfo,
	err error,
) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	var bm BucketManagement
	bm, err = scmem.NewSCMem(scmem.SCMemConf{
		InitialBuckets:     initialBuckets,
		MaxNumberOfBuckets: o.maxNumberOfBuckets,
		LoadFactor:         loadFactor,
		KeyAlgorithm:       keyAlgorithm,
		Logger:             o.logger,
	})
	if err != nil {
		return
	}

	memHashMap = &MemHashMap{
		bucketManagement:   bm,
		maxNumberOfBuckets: o.maxNumberOfBuckets,
		logger:             o.logger,
	}

	hashMapInfo = infoFromParameters(bm.GetStorageParameters())

	return
}

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the new bucket structure.
//   - NumberOfBuckets is the new number of buckets to distribute records over
//   - KeyExtension is number of zero bytes to extend every key with
//   - PrependKeyExtension whether to prepend the extra space or append it
//   - ValueExtension is number of zero bytes to extend every value with
//   - PrependValueExtension whether to prepend the extra space or append it
//   - NewKeyAlgorithm is the key algorithm to use after the reorganization
type ReorgConf struct {
	NumberOfBuckets       int64
	KeyExtension          int64
	PrependKeyExtension   bool
	ValueExtension        int64
	PrependValueExtension bool
	NewKeyAlgorithm       hashfunc.KeyAlgorithm
}

// Reorg - Is used when an existing hash map needs to reflect new conditions as compared to when it
// was first created. For instance if the first estimate of buckets was way off and growth got denied
// by a bucket limit, or we need to store more data in each record, or perhaps a better key algorithm
// has been found for the particular set of keys we are processing.
//
// The reorganization will happen only if there are detectable changes coming from the ReorgConf
// struct. If the hash map was created with the internal key algorithm and an empty (fields are Go
// zero values) ReorgConf struct is supplied, the function returns with no processing. A non nil
// NewKeyAlgorithm will always result in processing, even if the hash map happens to be created with
// the exact same. Also, a nil NewKeyAlgorithm together with a custom algorithm in use counts as a
// change, back to the internal algorithm.
//
// To force a reorganization even if there are no changes to apply through the ReorgConf struct, use
// the force flag. This can be handy after lots of deletes, since the bucket array never shrinks on
// its own.
//   - reorgConf is an instance of the ReorgConf struct
//   - force set to true forces a reorganization regardless of what is changed from the ReorgConf struct
//
// It returns:
//   - fromHashMapInfo and toHashMapInfo describing the hash map before and after the reorganization
//   - err is a normal Go error which should be nil if everything went ok
func (M *MemHashMap) Reorg(reorgConf ReorgConf, force bool) (fromHashMapInfo, toHashMapInfo HashMapInfo, err error) {
	if M.closed {
		err = MapClosed{}
		return
	}

	sp := M.bucketManagement.GetStorageParameters()
	fromHashMapInfo = infoFromParameters(sp)

	// Sort out new settings and also make sure there are any changes at all (unless force flag has
	// already overridden that)
	hasChanges := force
	var numberOfBuckets int64
	var keyAlgorithm hashfunc.KeyAlgorithm
	if reorgConf.NumberOfBuckets > 0 && reorgConf.NumberOfBuckets != sp.NumberOfBuckets {
		numberOfBuckets = reorgConf.NumberOfBuckets
		hasChanges = true
	} else {
		numberOfBuckets = sp.NumberOfBuckets
	}
	if reorgConf.KeyExtension > 0 || reorgConf.ValueExtension > 0 {
		hasChanges = true
	}
	if reorgConf.NewKeyAlgorithm != nil || (reorgConf.NewKeyAlgorithm == nil && !sp.InternalAlgorithm) {
		keyAlgorithm = reorgConf.NewKeyAlgorithm
		hasChanges = true
	}
	if !hasChanges {
		toHashMapInfo = fromHashMapInfo
		return
	}

	var to BucketManagement
	to, err = scmem.NewSCMem(scmem.SCMemConf{
		InitialBuckets:     numberOfBuckets,
		MaxNumberOfBuckets: M.maxNumberOfBuckets,
		LoadFactor:         sp.LoadFactor,
		KeyAlgorithm:       keyAlgorithm,
		Logger:             M.logger,
	})
	if err != nil {
		return
	}

	err = reorgRecords(M.bucketManagement, to, reorgConf, sp.NumberOfBuckets)
	if err != nil {
		return
	}

	M.bucketManagement = to
	toHashMapInfo = infoFromParameters(to.GetStorageParameters())

	return
}

// reorgRecords - Reads bucket by bucket, record by record, transforms, and sets into the new bucket structure
func reorgRecords(from, to BucketManagement, reorgConf ReorgConf, fromNBuckets int64) (err error) {
	var bucket model.Bucket
	var key, value []byte
	for i := int64(0); i < fromNBuckets; i++ {
		bucket, err = from.GetBucket(i)
		if err != nil {
			return
		}

		for _, record := range bucket.Records {
			key = utils.ExtendByteSlice(record.Key, reorgConf.KeyExtension, reorgConf.PrependKeyExtension)
			value = utils.ExtendByteSlice(record.Value, reorgConf.ValueExtension, reorgConf.PrependValueExtension)
			to.Set(model.Record{Key: key, Value: value})
		}
	}

	return
}

// infoFromParameters - Maps storage parameters onto the public HashMapInfo struct
func infoFromParameters(sp model.StorageParameters) (hashMapInfo HashMapInfo) {
	hashMapInfo = HashMapInfo{
		NumberOfBuckets:    sp.NumberOfBuckets,
		MaxNumberOfBuckets: sp.MaxNumberOfBuckets,
		LoadFactor:         sp.LoadFactor,
		InternalAlgorithm:  sp.InternalAlgorithm,
	}

	return
}
