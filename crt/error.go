package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidKey - Custom error to inform that a key is nil or of zero length
type InvalidKey struct {
	msg string
}

// Error - Used to notify that the key is invalid
func (E InvalidKey) Error() string {
	if E.msg == "" {
		return "key must be at least one byte long"
	}
	return E.msg
}

// MapClosed - Custom error to inform that the hash map has been closed and has released its storage
type MapClosed struct {
	msg string
}

// Error - Used to notify that the hash map is closed
func (E MapClosed) Error() string {
	if E.msg == "" {
		return "hash map is closed"
	}
	return E.msg
}

// MapFull - Custom error to inform that the bucket array has reached its configured limit
// and can't grow further
type MapFull struct {
	msg string
}

// Error - Used to notify that the map can't grow further
func (E MapFull) Error() string {
	if E.msg == "" {
		return "map full, bucket limit reached"
	}
	return E.msg
}
