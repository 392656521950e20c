package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
)

// EventReader pages the local event log forward from the cursor and detects
// log-cycle wraparound.
type EventReader struct {
	events         storage.EventStore
	maxReadRecords int
	logger         *slog.Logger
}

// NewEventReader creates a reader over the event store.
func NewEventReader(events storage.EventStore, maxReadRecords int, logger *slog.Logger) *EventReader {
	return &EventReader{
		events:         events,
		maxReadRecords: maxReadRecords,
		logger:         logger,
	}
}

// HasNewEvents reports whether there is unshipped work. The scan ignores the
// seq id offset on purpose: an entry with SeqID == 1 means the log numbering
// restarted and the cursor offset is stale.
func (r *EventReader) HasNewEvents(ctx context.Context, seqIDOffset int64, link models.TimePageLink) (bool, error) {
	page, err := r.events.FindEvents(ctx, 0, 0, link)
	if err != nil {
		return false, fmt.Errorf("failed to check for new events: %w", err)
	}

	for _, event := range page.Data {
		if event.SeqID > seqIDOffset || event.SeqID == 1 {
			return true, nil
		}
	}
	return false, nil
}

// ReadPage returns the next page of events past the cursor offset. An empty
// page while HasNewEvents reported work means the log started a new cycle;
// the read is re-issued from the beginning of the new cycle.
func (r *EventReader) ReadPage(ctx context.Context, seqIDOffset int64, link models.TimePageLink) (*models.PageData, error) {
	page, err := r.events.FindEvents(ctx, seqIDOffset, 0, link)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	if len(page.Data) == 0 {
		r.logger.Info("Seq id of the event log started new cycle")
		page, err = r.events.FindEvents(ctx, 0, int64(r.maxReadRecords), link)
		if err != nil {
			return nil, fmt.Errorf("failed to read events after wrap: %w", err)
		}
	}

	return page, nil
}
