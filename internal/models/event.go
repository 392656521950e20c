package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// EventType определяет тип сущности, к которой относится событие.
type EventType string

const (
	EventTypeDevice       EventType = "DEVICE"
	EventTypeAsset        EventType = "ASSET"
	EventTypeDashboard    EventType = "DASHBOARD"
	EventTypeEntityView   EventType = "ENTITY_VIEW"
	EventTypeRelation     EventType = "RELATION"
	EventTypeAlarm        EventType = "ALARM"
	EventTypeRuleChain    EventType = "RULE_CHAIN"
	EventTypeWidgetBundle EventType = "WIDGET_BUNDLE"
	EventTypeEdge         EventType = "EDGE"
)

// ActionType определяет действие, породившее событие.
type ActionType string

const (
	ActionAdded                  ActionType = "ADDED"
	ActionUpdated                ActionType = "UPDATED"
	ActionDeleted                ActionType = "DELETED"
	ActionAlarmAck               ActionType = "ALARM_ACK"
	ActionAlarmClear             ActionType = "ALARM_CLEAR"
	ActionCredentialsUpdated     ActionType = "CREDENTIALS_UPDATED"
	ActionRelationAddOrUpdate    ActionType = "RELATION_ADD_OR_UPDATE"
	ActionRelationDeleted        ActionType = "RELATION_DELETED"
	ActionAssignedToCustomer     ActionType = "ASSIGNED_TO_CUSTOMER"
	ActionUnassignedFromCustomer ActionType = "UNASSIGNED_FROM_CUSTOMER"
	ActionAttributesUpdated      ActionType = "ATTRIBUTES_UPDATED"
	ActionPostAttributes         ActionType = "POST_ATTRIBUTES"
	ActionAttributesDeleted      ActionType = "ATTRIBUTES_DELETED"
	ActionTimeseriesUpdated      ActionType = "TIMESERIES_UPDATED"
	ActionAttributesRequest      ActionType = "ATTRIBUTES_REQUEST"
	ActionRelationRequest        ActionType = "RELATION_REQUEST"
	ActionRuleChainMetadataReq   ActionType = "RULE_CHAIN_METADATA_REQUEST"
	ActionCredentialsRequest     ActionType = "CREDENTIALS_REQUEST"
	ActionRPCCall                ActionType = "RPC_CALL"
	ActionWidgetBundleTypesReq   ActionType = "WIDGET_BUNDLE_TYPES_REQUEST"
	ActionEntityViewRequest      ActionType = "ENTITY_VIEW_REQUEST"
)

// CloudEvent is one immutable record of the local event log. SeqID is
// assigned by the log on append, grows monotonically and restarts at 1 when
// the log starts a new cycle. ID is a time-ordered UUID (v7).
type CloudEvent struct {
	ID        uuid.UUID       `json:"id"`
	SeqID     int64           `json:"seq_id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Type      EventType       `json:"type"`
	Action    ActionType      `json:"action"`
	EntityID  uuid.UUID       `json:"entity_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt int64           `json:"created_at"` // unix ms
}

// UnixTimestampMs извлекает unix-время в миллисекундах из time-ordered UUID
// события. Это значение становится новым queueStartTs после отправки.
func (e *CloudEvent) UnixTimestampMs() int64 {
	return UUIDTimestampMs(e.ID)
}

// UUIDTimestampMs extracts the unix ms timestamp of a time-ordered UUID.
func UUIDTimestampMs(id uuid.UUID) int64 {
	sec, nsec := id.Time().UnixTime()
	return sec*1000 + nsec/1_000_000
}
