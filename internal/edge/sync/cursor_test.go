package sync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestCursorLoad_MissingKeysDefaultToZero(t *testing.T) {
	mockAttrs := &storage.AttributeStoreMock{
		FindLongFunc: func(ctx context.Context, scope, key string) (int64, bool, error) {
			return 0, false, nil
		},
	}

	cursor := NewCursorStore(mockAttrs, newTestLogger())

	startTs, seqIDOffset, err := cursor.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), startTs)
	assert.Equal(t, int64(0), seqIDOffset)
	assert.Len(t, mockAttrs.FindLongCalls(), 2)
}

func TestCursorLoad_ReturnsPersistedValues(t *testing.T) {
	values := map[string]int64{
		"queueStartTs":     12345,
		"queueSeqIdOffset": 99,
	}
	mockAttrs := &storage.AttributeStoreMock{
		FindLongFunc: func(ctx context.Context, scope, key string) (int64, bool, error) {
			v, ok := values[key]
			return v, ok, nil
		},
	}

	cursor := NewCursorStore(mockAttrs, newTestLogger())

	startTs, seqIDOffset, err := cursor.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12345), startTs)
	assert.Equal(t, int64(99), seqIDOffset)
}

func TestCursorLoad_StoreError(t *testing.T) {
	mockAttrs := &storage.AttributeStoreMock{
		FindLongFunc: func(ctx context.Context, scope, key string) (int64, bool, error) {
			return 0, false, errors.New("disk error")
		},
	}

	cursor := NewCursorStore(mockAttrs, newTestLogger())

	_, _, err := cursor.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "queueStartTs")
}

func TestCursorStore_WritesBothKeys(t *testing.T) {
	var saved []models.Attribute
	mockAttrs := &storage.AttributeStoreMock{
		SaveFunc: func(ctx context.Context, scope string, attrs []models.Attribute) error {
			saved = attrs
			return nil
		},
	}

	cursor := NewCursorStore(mockAttrs, newTestLogger())

	cursor.Store(context.Background(), 500, 42)

	require.Len(t, mockAttrs.SaveCalls(), 1)
	assert.Equal(t, models.ServerScope, mockAttrs.SaveCalls()[0].Scope)
	require.Len(t, saved, 2)
	assert.Equal(t, "queueStartTs", saved[0].Key)
	assert.Equal(t, int64(500), saved[0].Value)
	assert.Equal(t, "queueSeqIdOffset", saved[1].Key)
	assert.Equal(t, int64(42), saved[1].Value)
}

func TestCursorStore_FailureIsLoggedNotPropagated(t *testing.T) {
	mockAttrs := &storage.AttributeStoreMock{
		SaveFunc: func(ctx context.Context, scope string, attrs []models.Attribute) error {
			return errors.New("disk full")
		},
	}

	cursor := NewCursorStore(mockAttrs, newTestLogger())

	// Не должно паниковать и не возвращает ошибку
	cursor.Store(context.Background(), 500, 42)

	assert.Len(t, mockAttrs.SaveCalls(), 1)
}
