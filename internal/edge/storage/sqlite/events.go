package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/models"
)

// Append adds an event to the log and assigns its SeqID.
// The assigned SeqID is written back into the event.
func (s *Storage) Append(ctx context.Context, event *models.CloudEvent) error {
	query := `
		INSERT INTO cloud_event (
			id, tenant_id, entity_type, action, entity_id, payload, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		event.ID.String(),
		event.TenantID.String(),
		string(event.Type),
		string(event.Action),
		event.EntityID.String(),
		[]byte(event.Payload),
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	seqID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get assigned seq id: %w", err)
	}
	event.SeqID = seqID

	return nil
}

// FindEvents returns one page of events with SeqID strictly greater than
// seqIDOffset, within the link's time window, ordered ascending by SeqID.
// seqIDEnd > 0 additionally bounds the scan to SeqID <= seqIDEnd.
func (s *Storage) FindEvents(ctx context.Context, seqIDOffset, seqIDEnd int64, link models.TimePageLink) (*models.PageData, error) {
	query := `
		SELECT seq_id, id, tenant_id, entity_type, action, entity_id, payload, created_at
		FROM cloud_event
		WHERE seq_id > ? AND (? = 0 OR seq_id <= ?)
		  AND created_at >= ? AND created_at <= ?
		ORDER BY seq_id ASC
		LIMIT ? OFFSET ?
	`

	// Читаем limit+1 строк, чтобы определить наличие следующей страницы
	rows, err := s.db.QueryContext(ctx, query,
		seqIDOffset,
		seqIDEnd, seqIDEnd,
		link.StartTs, link.EndTs,
		link.Limit+1, link.Page*link.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	page := &models.PageData{}
	for rows.Next() {
		var (
			event              models.CloudEvent
			id, tenant, entity string
			entityType, action string
		)

		err := rows.Scan(
			&event.SeqID,
			&id,
			&tenant,
			&entityType,
			&action,
			&entity,
			&event.Payload,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if event.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("failed to parse event id: %w", err)
		}
		if event.TenantID, err = uuid.Parse(tenant); err != nil {
			return nil, fmt.Errorf("failed to parse tenant id: %w", err)
		}
		if event.EntityID, err = uuid.Parse(entity); err != nil {
			return nil, fmt.Errorf("failed to parse entity id: %w", err)
		}
		event.Type = models.EventType(entityType)
		event.Action = models.ActionType(action)

		page.Data = append(page.Data, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	if len(page.Data) > link.Limit {
		page.Data = page.Data[:link.Limit]
		page.HasNext = true
	}

	return page, nil
}

// Clear removes all events and restarts SeqID numbering from 1.
func (s *Storage) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cloud_event`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	// Сбрасываем AUTOINCREMENT, чтобы нумерация seq_id началась заново с 1
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'cloud_event'`); err != nil {
		return fmt.Errorf("failed to reset seq id sequence: %w", err)
	}

	return nil
}
