package storage

import (
	"context"

	"github.com/nmatveev/edgesync/internal/models"
)

//go:generate moq -out attributes_mock.go . AttributeStore

// AttributeStore defines interface for the local attribute store.
// Attributes are addressed by (scope, key); the entity is implicit — one
// store instance serves one tenant entity.
type AttributeStore interface {
	// Find retrieves a single attribute.
	// The second result is false if the attribute doesn't exist.
	Find(ctx context.Context, scope, key string) (models.Attribute, bool, error)

	// FindLong retrieves an attribute coerced to int64.
	// Returns (0, false, nil) if the attribute is missing or not numeric.
	FindLong(ctx context.Context, scope, key string) (int64, bool, error)

	// Save stores the given attributes, overwriting existing values.
	Save(ctx context.Context, scope string, attrs []models.Attribute) error
}
