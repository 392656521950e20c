package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
)

const keyEdgeSettings = "current"

// FindEdgeSettings retrieves the current settings record.
// Returns ErrEdgeSettingsNotFound if no handshake happened yet.
func (s *Storage) FindEdgeSettings(ctx context.Context) (*models.EdgeSettings, error) {
	var settings *models.EdgeSettings

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEdgeSettings)
		if bucket == nil {
			return fmt.Errorf("edge settings bucket not found")
		}

		data := bucket.Get([]byte(keyEdgeSettings))
		if data == nil {
			return storage.ErrEdgeSettingsNotFound
		}

		settings = &models.EdgeSettings{}
		if err := json.Unmarshal(data, settings); err != nil {
			return fmt.Errorf("failed to decode edge settings: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return settings, nil
}

// SaveEdgeSettings stores the settings record, replacing the previous one.
func (s *Storage) SaveEdgeSettings(ctx context.Context, settings *models.EdgeSettings) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEdgeSettings)
		if bucket == nil {
			return fmt.Errorf("edge settings bucket not found")
		}

		data, err := json.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to encode edge settings: %w", err)
		}

		if err := bucket.Put([]byte(keyEdgeSettings), data); err != nil {
			return fmt.Errorf("failed to save edge settings: %w", err)
		}

		return nil
	})
}
