package storage

import "errors"

// ErrBucketNotFound is returned when an operation targets a bucket that was never created.
var ErrBucketNotFound = errors.New("bucket not found")

// Backend is a bucketed key-value store. Values are raw bytes; Store layers JSON on top.
type Backend interface {
	CreateBucket(name []byte) error

	Put(bucket, key, value []byte) error
	// Get returns nil, nil for a missing key.
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	Close() error
}
