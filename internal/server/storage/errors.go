package storage

import "errors"

// Common storage errors
var (
	// ErrInvalidDeviceID indicates that the device identifier is empty or malformed
	ErrInvalidDeviceID = errors.New("invalid device id")

	// ErrInvalidMessage indicates that a chat message has no identifier or text
	ErrInvalidMessage = errors.New("invalid chat message")
)
