package translator

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

// EntityTranslator converts entity lifecycle events (ADDED, UPDATED, DELETED,
// customer assignment, credentials, alarm lifecycle) into uplink messages.
// Dispatch is keyed by the event's entity type.
type EntityTranslator interface {
	TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error)
}

// ActionTranslator converts telemetry and request events into uplink
// messages. Dispatch is keyed by the event's action.
type ActionTranslator interface {
	TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error)
}

// MsgIDSeq issues batch-unique uplink message ids.
type MsgIDSeq struct {
	counter atomic.Int32
}

// Next returns the next positive message id.
func (s *MsgIDSeq) Next() int32 {
	for {
		id := s.counter.Add(1)
		if id > 0 {
			return id
		}
		// int32 переполнился — начинаем нумерацию заново
		s.counter.CompareAndSwap(id, 0)
	}
}

// Registry dispatches each event to the right translator.
type Registry struct {
	entity map[models.EventType]EntityTranslator
	action map[models.ActionType]ActionTranslator
	logger *slog.Logger
}

// entityActions are the lifecycle actions routed by entity type.
var entityActions = map[models.ActionType]struct{}{
	models.ActionAdded:                  {},
	models.ActionUpdated:                {},
	models.ActionDeleted:                {},
	models.ActionAlarmAck:               {},
	models.ActionAlarmClear:             {},
	models.ActionCredentialsUpdated:     {},
	models.ActionRelationAddOrUpdate:    {},
	models.ActionRelationDeleted:        {},
	models.ActionAssignedToCustomer:     {},
	models.ActionUnassignedFromCustomer: {},
}

// NewRegistry creates a registry with the default translator set.
func NewRegistry(logger *slog.Logger) *Registry {
	ids := &MsgIDSeq{}

	device := &deviceTranslator{ids: ids}
	relation := &relationTranslator{ids: ids}
	telemetry := &telemetryTranslator{ids: ids}
	entityView := &entityViewTranslator{ids: ids}

	return &Registry{
		logger: logger,
		entity: map[models.EventType]EntityTranslator{
			models.EventTypeDevice:     device,
			models.EventTypeAsset:      &assetTranslator{ids: ids},
			models.EventTypeDashboard:  &dashboardTranslator{ids: ids},
			models.EventTypeEntityView: entityView,
			models.EventTypeRelation:   relation,
			models.EventTypeAlarm:      &alarmTranslator{ids: ids},
		},
		action: map[models.ActionType]ActionTranslator{
			models.ActionAttributesUpdated:    telemetry,
			models.ActionPostAttributes:       telemetry,
			models.ActionAttributesDeleted:    telemetry,
			models.ActionTimeseriesUpdated:    telemetry,
			models.ActionAttributesRequest:    telemetry,
			models.ActionRelationRequest:      relation,
			models.ActionRuleChainMetadataReq: &ruleChainTranslator{ids: ids},
			models.ActionCredentialsRequest:   &entityTranslator{ids: ids},
			models.ActionRPCCall:              device,
			models.ActionWidgetBundleTypesReq: &widgetBundleTranslator{ids: ids},
			models.ActionEntityViewRequest:    entityView,
		},
	}
}

// TranslateAll converts a page of events into uplink messages. A translator
// failure drops only the failing event; an unsupported combination is logged
// and skipped.
func (r *Registry) TranslateAll(ctx context.Context, tenantID uuid.UUID, events []*models.CloudEvent) []*api.UplinkMsg {
	result := make([]*api.UplinkMsg, 0, len(events))

	for _, event := range events {
		r.logger.Debug("Converting event",
			"seq_id", event.SeqID, "type", event.Type, "action", event.Action)

		msg, err := r.translate(ctx, tenantID, event)
		if err != nil {
			r.logger.Error("Failed to convert event, skipping it",
				"seq_id", event.SeqID, "type", event.Type, "action", event.Action,
				"error", err)
			continue
		}
		if msg != nil {
			result = append(result, msg)
		}
	}

	return result
}

func (r *Registry) translate(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	if _, ok := entityActions[event.Action]; ok {
		t, ok := r.entity[event.Type]
		if !ok {
			r.logger.Warn("Unsupported event type", "type", event.Type, "action", event.Action)
			return nil, nil
		}
		return t.TranslateEntityEvent(ctx, tenantID, event)
	}

	t, ok := r.action[event.Action]
	if !ok {
		r.logger.Warn("Unsupported event action", "type", event.Type, "action", event.Action)
		return nil, nil
	}
	return t.TranslateActionEvent(ctx, event)
}
