package storage

import "errors"

// Common client storage errors
var (
	// ErrSeedNotFound indicates that no device seed has been stored yet
	ErrSeedNotFound = errors.New("device seed not found")

	// ErrBucketNotFound indicates that a required bucket is missing
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
