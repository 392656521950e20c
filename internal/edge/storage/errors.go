package storage

import "errors"

// Common local storage errors
var (
	// ErrEdgeSettingsNotFound indicates that no edge settings record exists
	ErrEdgeSettingsNotFound = errors.New("edge settings not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
