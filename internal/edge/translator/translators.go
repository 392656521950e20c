package translator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

// Translators ниже оборачивают payload события в типизированный uplink.
// Payload создаётся подсистемой, записавшей событие, и здесь не
// интерпретируется, кроме полей, нужных самому сообщению.

type deviceTranslator struct {
	ids *MsgIDSeq
}

func (t *deviceTranslator) TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return entityUpdateMsg(t.ids, event), nil
}

func (t *deviceTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	// RPC_CALL
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		RPCCalls: []api.RPCCallMsg{{
			DeviceID: event.EntityID,
			Payload:  event.Payload,
		}},
	}, nil
}

type assetTranslator struct {
	ids *MsgIDSeq
}

func (t *assetTranslator) TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return entityUpdateMsg(t.ids, event), nil
}

type dashboardTranslator struct {
	ids *MsgIDSeq
}

func (t *dashboardTranslator) TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return entityUpdateMsg(t.ids, event), nil
}

type alarmTranslator struct {
	ids *MsgIDSeq
}

func (t *alarmTranslator) TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		AlarmUpdates: []api.AlarmUpdate{{
			Action: string(event.Action),
			Alarm:  event.Payload,
		}},
	}, nil
}

type relationTranslator struct {
	ids *MsgIDSeq
}

func (t *relationTranslator) TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		RelationUpdates: []api.RelationUpdate{{
			Action:   string(event.Action),
			Relation: event.Payload,
		}},
	}, nil
}

func (t *relationTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	// RELATION_REQUEST
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		RelationRequests: []api.RelationRequest{{
			EntityType: string(event.Type),
			EntityID:   event.EntityID,
		}},
	}, nil
}

type entityViewTranslator struct {
	ids *MsgIDSeq
}

func (t *entityViewTranslator) TranslateEntityEvent(ctx context.Context, tenantID uuid.UUID, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return entityUpdateMsg(t.ids, event), nil
}

func (t *entityViewTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	// ENTITY_VIEW_REQUEST
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		EntityViewsRequests: []api.EntityViewsRequest{{
			EntityType: string(event.Type),
			EntityID:   event.EntityID,
		}},
	}, nil
}

type telemetryTranslator struct {
	ids *MsgIDSeq
}

// attributesRequestPayload — необязательные поля payload'а ATTRIBUTES_REQUEST.
type attributesRequestPayload struct {
	Scope string `json:"scope"`
}

func (t *telemetryTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	if event.Action == models.ActionAttributesRequest {
		payload := attributesRequestPayload{Scope: models.ServerScope}
		if len(event.Payload) > 0 {
			if err := json.Unmarshal(event.Payload, &payload); err != nil {
				return nil, fmt.Errorf("failed to parse attributes request payload: %w", err)
			}
		}
		return &api.UplinkMsg{
			UplinkMsgID: t.ids.Next(),
			AttributesRequests: []api.AttributesRequest{{
				EntityType: string(event.Type),
				EntityID:   event.EntityID,
				Scope:      payload.Scope,
			}},
		}, nil
	}

	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		TelemetryUpdates: []api.TelemetryUpdate{{
			EntityType: string(event.Type),
			EntityID:   event.EntityID,
			Action:     string(event.Action),
			Data:       event.Payload,
		}},
	}, nil
}

type ruleChainTranslator struct {
	ids *MsgIDSeq
}

func (t *ruleChainTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		RuleChainMetadataRequests: []api.RuleChainMetadataRequest{{
			RuleChainID: event.EntityID,
		}},
	}, nil
}

type entityTranslator struct {
	ids *MsgIDSeq
}

func (t *entityTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	// CREDENTIALS_REQUEST
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		EntityCredentialsRequests: []api.EntityCredentialsRequest{{
			EntityType: string(event.Type),
			EntityID:   event.EntityID,
		}},
	}, nil
}

type widgetBundleTranslator struct {
	ids *MsgIDSeq
}

func (t *widgetBundleTranslator) TranslateActionEvent(ctx context.Context, event *models.CloudEvent) (*api.UplinkMsg, error) {
	return &api.UplinkMsg{
		UplinkMsgID: t.ids.Next(),
		WidgetBundleTypesRequests: []api.WidgetBundleTypesRequest{{
			WidgetBundleID: event.EntityID,
		}},
	}, nil
}

// entityUpdateMsg builds the common entity lifecycle uplink.
func entityUpdateMsg(ids *MsgIDSeq, event *models.CloudEvent) *api.UplinkMsg {
	return &api.UplinkMsg{
		UplinkMsgID: ids.Next(),
		EntityUpdates: []api.EntityUpdate{{
			EntityType: string(event.Type),
			EntityID:   event.EntityID,
			Action:     string(event.Action),
			Entity:     event.Payload,
		}},
	}
}
