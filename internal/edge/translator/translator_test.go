package translator

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/edgesync/internal/models"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func event(eventType models.EventType, action models.ActionType, payload string) *models.CloudEvent {
	return &models.CloudEvent{
		ID:       uuid.Must(uuid.NewV7()),
		SeqID:    1,
		Type:     eventType,
		Action:   action,
		EntityID: uuid.New(),
		Payload:  []byte(payload),
	}
}

func TestTranslateAll_DeviceLifecycle(t *testing.T) {
	registry := newTestRegistry()

	e := event(models.EventTypeDevice, models.ActionUpdated, `{"name":"sensor"}`)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].EntityUpdates, 1)
	update := msgs[0].EntityUpdates[0]
	assert.Equal(t, "DEVICE", update.EntityType)
	assert.Equal(t, "UPDATED", update.Action)
	assert.Equal(t, e.EntityID, update.EntityID)
	assert.JSONEq(t, `{"name":"sensor"}`, string(update.Entity))
}

func TestTranslateAll_AlarmLifecycle(t *testing.T) {
	registry := newTestRegistry()

	e := event(models.EventTypeAlarm, models.ActionAlarmAck, `{"severity":"CRITICAL"}`)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].AlarmUpdates, 1)
	assert.Equal(t, "ALARM_ACK", msgs[0].AlarmUpdates[0].Action)
}

func TestTranslateAll_RPCCallRoutesByAction(t *testing.T) {
	registry := newTestRegistry()

	e := event(models.EventTypeDevice, models.ActionRPCCall, `{"method":"reboot"}`)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].RPCCalls, 1)
	assert.Equal(t, e.EntityID, msgs[0].RPCCalls[0].DeviceID)
}

func TestTranslateAll_TelemetryActions(t *testing.T) {
	registry := newTestRegistry()

	actions := []models.ActionType{
		models.ActionAttributesUpdated,
		models.ActionPostAttributes,
		models.ActionAttributesDeleted,
		models.ActionTimeseriesUpdated,
	}

	for _, action := range actions {
		e := event(models.EventTypeDevice, action, `{"temperature":21.5}`)
		msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

		require.Len(t, msgs, 1, "action %s", action)
		require.Len(t, msgs[0].TelemetryUpdates, 1, "action %s", action)
		assert.Equal(t, string(action), msgs[0].TelemetryUpdates[0].Action)
	}
}

func TestTranslateAll_AttributesRequestScope(t *testing.T) {
	registry := newTestRegistry()

	e := event(models.EventTypeEdge, models.ActionAttributesRequest, `{"scope":"SHARED_SCOPE"}`)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].AttributesRequests, 1)
	assert.Equal(t, "SHARED_SCOPE", msgs[0].AttributesRequests[0].Scope)
}

func TestTranslateAll_AttributesRequestDefaultScope(t *testing.T) {
	registry := newTestRegistry()

	e := event(models.EventTypeEdge, models.ActionAttributesRequest, ``)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

	require.Len(t, msgs, 1)
	require.Len(t, msgs[0].AttributesRequests, 1)
	assert.Equal(t, models.ServerScope, msgs[0].AttributesRequests[0].Scope)
}

func TestTranslateAll_RequestActions(t *testing.T) {
	registry := newTestRegistry()

	e := event(models.EventTypeRelation, models.ActionRelationRequest, ``)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})
	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].RelationRequests, 1)

	e = event(models.EventTypeRuleChain, models.ActionRuleChainMetadataReq, ``)
	msgs = registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})
	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].RuleChainMetadataRequests, 1)

	e = event(models.EventTypeDevice, models.ActionCredentialsRequest, ``)
	msgs = registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})
	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].EntityCredentialsRequests, 1)

	e = event(models.EventTypeWidgetBundle, models.ActionWidgetBundleTypesReq, ``)
	msgs = registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})
	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].WidgetBundleTypesRequests, 1)

	e = event(models.EventTypeEntityView, models.ActionEntityViewRequest, ``)
	msgs = registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})
	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].EntityViewsRequests, 1)
}

func TestTranslateAll_UnsupportedTypeIsSkipped(t *testing.T) {
	registry := newTestRegistry()

	// RULE_CHAIN не участвует в lifecycle-маршрутизации
	e := event(models.EventTypeRuleChain, models.ActionAdded, `{}`)
	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{e})

	assert.Empty(t, msgs)
}

func TestTranslateAll_TranslatorFailureDropsOnlyThatEvent(t *testing.T) {
	registry := newTestRegistry()

	bad := event(models.EventTypeEdge, models.ActionAttributesRequest, `{broken json`)
	good := event(models.EventTypeDevice, models.ActionAdded, `{}`)

	msgs := registry.TranslateAll(context.Background(), uuid.New(), []*models.CloudEvent{bad, good})

	require.Len(t, msgs, 1)
	assert.Len(t, msgs[0].EntityUpdates, 1)
}

func TestTranslateAll_MsgIDsAreBatchUnique(t *testing.T) {
	registry := newTestRegistry()

	events := []*models.CloudEvent{
		event(models.EventTypeDevice, models.ActionAdded, `{}`),
		event(models.EventTypeAsset, models.ActionUpdated, `{}`),
		event(models.EventTypeDashboard, models.ActionDeleted, `{}`),
	}

	msgs := registry.TranslateAll(context.Background(), uuid.New(), events)

	require.Len(t, msgs, 3)
	seen := make(map[int32]bool)
	for _, msg := range msgs {
		assert.Positive(t, msg.UplinkMsgID)
		assert.False(t, seen[msg.UplinkMsgID])
		seen[msg.UplinkMsgID] = true
	}
}
