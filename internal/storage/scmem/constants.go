package scmem

// defaultNumberOfBuckets - Number of buckets to allocate when none was requested
const defaultNumberOfBuckets int64 = 16

// defaultLoadFactor - Ratio of stored records to buckets that triggers growth when none was requested
const defaultLoadFactor float64 = 0.75

// growthFactor - Multiplier applied to the number of buckets on each resize
const growthFactor int64 = 2
