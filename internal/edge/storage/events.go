package storage

import (
	"context"

	"github.com/nmatveev/edgesync/internal/models"
)

//go:generate moq -out events_mock.go . EventStore

// EventStore defines interface for the local event log.
type EventStore interface {
	// Append adds an event to the log and assigns its SeqID.
	// The assigned SeqID is written back into the event.
	Append(ctx context.Context, event *models.CloudEvent) error

	// FindEvents returns one page of events with SeqID strictly greater than
	// seqIDOffset, within the link's time window, ordered ascending by SeqID.
	// seqIDEnd > 0 additionally bounds the scan to SeqID <= seqIDEnd.
	FindEvents(ctx context.Context, seqIDOffset, seqIDEnd int64, link models.TimePageLink) (*models.PageData, error)

	// Clear removes all events and restarts SeqID numbering from 1.
	// Used when the edge is reassigned and the local log must be dropped.
	Clear(ctx context.Context) error
}
