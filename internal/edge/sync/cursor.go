package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
)

// Well-known attribute keys of the durable cursor.
const (
	attrKeyQueueStartTs     = "queueStartTs"
	attrKeyQueueSeqIDOffset = "queueSeqIdOffset"
)

// CursorStore persists the (startTs, seqIdOffset) pair identifying the next
// event to ship.
type CursorStore struct {
	attrs  storage.AttributeStore
	logger *slog.Logger
	now    func() time.Time
}

// NewCursorStore creates a cursor store over the attribute store.
func NewCursorStore(attrs storage.AttributeStore, logger *slog.Logger) *CursorStore {
	return &CursorStore{
		attrs:  attrs,
		logger: logger,
		now:    time.Now,
	}
}

// Load returns the persisted cursor. A missing key defaults to 0.
func (c *CursorStore) Load(ctx context.Context) (startTs, seqIDOffset int64, err error) {
	startTs, _, err = c.attrs.FindLong(ctx, models.ServerScope, attrKeyQueueStartTs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load %s: %w", attrKeyQueueStartTs, err)
	}

	seqIDOffset, _, err = c.attrs.FindLong(ctx, models.ServerScope, attrKeyQueueSeqIDOffset)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load %s: %w", attrKeyQueueSeqIDOffset, err)
	}

	return startTs, seqIDOffset, nil
}

// Store writes both cursor keys as of the current wall clock. The write is
// best-effort: a failure is logged and the next loop iteration re-reads the
// old cursor, which only causes re-delivery.
func (c *CursorStore) Store(ctx context.Context, startTs, seqIDOffset int64) {
	ts := c.now().UnixMilli()
	attrs := []models.Attribute{
		{Key: attrKeyQueueStartTs, Value: startTs, LastUpdateTs: ts},
		{Key: attrKeyQueueSeqIDOffset, Value: seqIDOffset, LastUpdateTs: ts},
	}

	if err := c.attrs.Save(ctx, models.ServerScope, attrs); err != nil {
		c.logger.Warn("Failed to update queue offset",
			"start_ts", startTs, "seq_id_offset", seqIDOffset, "error", err)
		return
	}

	c.logger.Debug("Queue offset was updated",
		"start_ts", startTs, "seq_id_offset", seqIDOffset)
}
