package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveDeviceSeed stores the random seed the device identifier is derived from
	SaveDeviceSeed(ctx context.Context, seed string) error

	// GetDeviceSeed retrieves the stored device seed
	// Returns ErrSeedNotFound if no seed has been generated yet
	GetDeviceSeed(ctx context.Context) (string, error)
}
