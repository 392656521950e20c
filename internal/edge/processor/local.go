package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

// attrKeyEdgeCustomerID remembers the customer assignment across restarts.
const attrKeyEdgeCustomerID = "edgeCustomerId"

// Local implements the processor contracts against the local stores.
// Deployments embedding the manager into a bigger platform replace it with
// their own processors.
type Local struct {
	attrs  storage.AttributeStore
	events storage.EventStore
	logger *slog.Logger
	now    func() time.Time
}

// NewLocal creates processors backed by the local attribute store and
// event log.
func NewLocal(attrs storage.AttributeStore, events storage.EventStore, logger *slog.Logger) *Local {
	return &Local{
		attrs:  attrs,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// ProcessDownlinkMsg applies telemetry payloads to the local attribute store.
// Entity payloads carry full platform records and are only logged here.
func (p *Local) ProcessDownlinkMsg(ctx context.Context, tenantID, customerID uuid.UUID, msg *api.DownlinkMsg, settings *models.EdgeSettings, queueStartTs int64) error {
	for _, update := range msg.TelemetryUpdates {
		attrs, err := telemetryToAttributes(update, p.now().UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to decode telemetry update for %s: %w", update.EntityID, err)
		}
		if len(attrs) == 0 {
			continue
		}
		if err := p.attrs.Save(ctx, models.SharedScope, attrs); err != nil {
			return fmt.Errorf("failed to apply telemetry update for %s: %w", update.EntityID, err)
		}
	}

	for _, update := range msg.EntityUpdates {
		p.logger.Debug("Received entity update",
			"entity_type", update.EntityType, "entity_id", update.EntityID,
			"action", update.Action)
	}

	return nil
}

// telemetryToAttributes unpacks a telemetry payload of the form
// {"key": value, ...} into attribute records.
func telemetryToAttributes(update api.TelemetryUpdate, ts int64) ([]models.Attribute, error) {
	if len(update.Data) == 0 {
		return nil, nil
	}

	var kv map[string]any
	if err := jsonUnmarshal(update.Data, &kv); err != nil {
		return nil, err
	}

	attrs := make([]models.Attribute, 0, len(kv))
	for key, value := range kv {
		attrs = append(attrs, models.Attribute{
			Key:          update.EntityID.String() + "/" + key,
			Value:        value,
			LastUpdateTs: ts,
		})
	}
	return attrs, nil
}

// jsonUnmarshal декодирует с UseNumber, чтобы не терять точность int64
func jsonUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// CleanUp drops the local event log. Called when the edge identity changed
// and the queued events belong to the previous assignment.
func (p *Local) CleanUp(ctx context.Context) error {
	p.logger.Info("Cleaning up local state")
	if err := p.events.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear event log: %w", err)
	}
	return nil
}

// CreateTenantIfNotExists ensures the local tenant record exists.
// The edge keeps no tenant table; the assignment lives in the settings
// record, so there is nothing to create here.
func (p *Local) CreateTenantIfNotExists(ctx context.Context, tenantID uuid.UUID, queueStartTs int64) error {
	p.logger.Debug("Ensuring tenant", "tenant_id", tenantID, "queue_start_ts", queueStartTs)
	return nil
}

// CreateCustomerIfNotExists ensures the local customer record exists.
func (p *Local) CreateCustomerIfNotExists(ctx context.Context, tenantID uuid.UUID, configuration *api.EdgeConfiguration) error {
	p.logger.Debug("Ensuring customer",
		"tenant_id", tenantID, "customer_id", configuration.CustomerID)
	return nil
}

// ProcessEdgeConfiguration records the customer assignment so it survives
// restarts.
func (p *Local) ProcessEdgeConfiguration(ctx context.Context, tenantID uuid.UUID, configuration *api.EdgeConfiguration) error {
	attr := models.Attribute{
		Key:          attrKeyEdgeCustomerID,
		Value:        configuration.CustomerID.String(),
		LastUpdateTs: p.now().UnixMilli(),
	}
	if err := p.attrs.Save(ctx, models.ServerScope, []models.Attribute{attr}); err != nil {
		return fmt.Errorf("failed to save edge customer id: %w", err)
	}
	return nil
}

// FindEdgeCustomerID returns the customer id recorded by the last
// ProcessEdgeConfiguration call.
func (p *Local) FindEdgeCustomerID(ctx context.Context, tenantID, edgeID uuid.UUID) (uuid.UUID, bool, error) {
	attr, found, err := p.attrs.Find(ctx, models.ServerScope, attrKeyEdgeCustomerID)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to find edge customer id: %w", err)
	}
	if !found {
		return uuid.Nil, false, nil
	}

	s, ok := attr.StringValue()
	if !ok {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to parse edge customer id: %w", err)
	}
	if id == uuid.Nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}
