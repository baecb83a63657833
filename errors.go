package memhashmap

import "github.com/gostonefire/memhashmap/crt"

// NoRecordFound - Returned from Get and Pop when no record matches the given key.
// It is an alias to save implementations an extra import when checking errors with errors.Is.
type NoRecordFound = crt.NoRecordFound

// InvalidKey - Returned from any operation given a nil or zero length key
type InvalidKey = crt.InvalidKey

// MapClosed - Returned from any operation on a hash map that has been closed
type MapClosed = crt.MapClosed
