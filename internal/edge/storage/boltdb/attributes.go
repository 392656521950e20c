package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/nmatveev/edgesync/internal/models"
)

// attrRecord — формат хранения одного атрибута в bucket'е.
type attrRecord struct {
	Value        any   `json:"value"`
	LastUpdateTs int64 `json:"last_update_ts"`
}

// attrKey builds the bucket key for a (scope, key) pair.
func attrKey(scope, key string) []byte {
	return []byte(scope + "/" + key)
}

// Find retrieves a single attribute.
// The second result is false if the attribute doesn't exist.
func (s *Storage) Find(ctx context.Context, scope, key string) (models.Attribute, bool, error) {
	var attr models.Attribute
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAttributes)
		if bucket == nil {
			return fmt.Errorf("attributes bucket not found")
		}

		data := bucket.Get(attrKey(scope, key))
		if data == nil {
			return nil
		}

		var rec attrRecord
		// UseNumber, чтобы числовые значения не теряли точность int64
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("failed to decode attribute record: %w", err)
		}

		attr = models.Attribute{Key: key, Value: rec.Value, LastUpdateTs: rec.LastUpdateTs}
		found = true
		return nil
	})

	if err != nil {
		return models.Attribute{}, false, fmt.Errorf("failed to find attribute: %w", err)
	}

	return attr, found, nil
}

// FindLong retrieves an attribute coerced to int64.
// Returns (0, false, nil) if the attribute is missing or not numeric.
func (s *Storage) FindLong(ctx context.Context, scope, key string) (int64, bool, error) {
	attr, found, err := s.Find(ctx, scope, key)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}

	value, ok := attr.LongValue()
	if !ok {
		return 0, false, nil
	}
	return value, true, nil
}

// Save stores the given attributes, overwriting existing values.
// All attributes are written in a single transaction.
func (s *Storage) Save(ctx context.Context, scope string, attrs []models.Attribute) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAttributes)
		if bucket == nil {
			return fmt.Errorf("attributes bucket not found")
		}

		for _, attr := range attrs {
			data, err := json.Marshal(attrRecord{Value: attr.Value, LastUpdateTs: attr.LastUpdateTs})
			if err != nil {
				return fmt.Errorf("failed to encode attribute %q: %w", attr.Key, err)
			}

			if err := bucket.Put(attrKey(scope, attr.Key), data); err != nil {
				return fmt.Errorf("failed to save attribute %q: %w", attr.Key, err)
			}
		}

		return nil
	})
}
