package storage

import (
	"context"

	"github.com/nmatveev/edgesync/internal/models"
)

//go:generate moq -out settings_mock.go . SettingsStore

// SettingsStore defines interface for the persisted edge settings record.
type SettingsStore interface {
	// FindEdgeSettings retrieves the current settings record.
	// Returns ErrEdgeSettingsNotFound if no handshake happened yet.
	FindEdgeSettings(ctx context.Context) (*models.EdgeSettings, error)

	// SaveEdgeSettings stores the settings record, replacing the previous one.
	SaveEdgeSettings(ctx context.Context, settings *models.EdgeSettings) error
}
