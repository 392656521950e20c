package api

import (
	"encoding/json"

	"github.com/google/uuid"
)

// EdgeConfiguration описывает идентичность edge-узла, назначенную облаком.
// Передаётся в ответе на подключение и при переназначении edge.
type EdgeConfiguration struct {
	EdgeID     uuid.UUID `json:"edge_id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	CustomerID uuid.UUID `json:"customer_id,omitempty"` // uuid.Nil если edge не назначен customer'у
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	RoutingKey string    `json:"routing_key"`
	CloudType  string    `json:"cloud_type"`
}

// EntityUpdate carries a full entity snapshot for a lifecycle action.
type EntityUpdate struct {
	EntityType string          `json:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id"`
	Action     string          `json:"action"`
	Entity     json.RawMessage `json:"entity,omitempty"`
}

// AlarmUpdate carries an alarm lifecycle change.
type AlarmUpdate struct {
	Action string          `json:"action"`
	Alarm  json.RawMessage `json:"alarm,omitempty"`
}

// RelationUpdate carries a relation add/update/delete.
type RelationUpdate struct {
	Action   string          `json:"action"`
	Relation json.RawMessage `json:"relation,omitempty"`
}

// TelemetryUpdate carries timeseries or attribute data for an entity.
type TelemetryUpdate struct {
	EntityType string          `json:"entity_type"`
	EntityID   uuid.UUID       `json:"entity_id"`
	Action     string          `json:"action"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// AttributesRequest asks the cloud to resend attributes of an entity.
type AttributesRequest struct {
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	Scope      string    `json:"scope"`
}

// RelationRequest asks the cloud to resend relations of an entity.
type RelationRequest struct {
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
}

// RuleChainMetadataRequest asks the cloud to resend rule chain metadata.
type RuleChainMetadataRequest struct {
	RuleChainID uuid.UUID `json:"rule_chain_id"`
}

// EntityCredentialsRequest asks the cloud to resend entity credentials.
type EntityCredentialsRequest struct {
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
}

// RPCCallMsg carries a device RPC request or response.
type RPCCallMsg struct {
	DeviceID uuid.UUID       `json:"device_id"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// WidgetBundleTypesRequest asks the cloud to resend widget types of a bundle.
type WidgetBundleTypesRequest struct {
	WidgetBundleID uuid.UUID `json:"widget_bundle_id"`
}

// EntityViewsRequest asks the cloud to resend entity views of an entity.
type EntityViewsRequest struct {
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
}

// UplinkMsg is a single edge-to-cloud message. UplinkMsgID is unique within
// one batch and is the correlation key for UplinkResponseMsg.
type UplinkMsg struct {
	UplinkMsgID               int32                      `json:"uplink_msg_id"`
	EntityUpdates             []EntityUpdate             `json:"entity_updates,omitempty"`
	AlarmUpdates              []AlarmUpdate              `json:"alarm_updates,omitempty"`
	RelationUpdates           []RelationUpdate           `json:"relation_updates,omitempty"`
	TelemetryUpdates          []TelemetryUpdate          `json:"telemetry_updates,omitempty"`
	AttributesRequests        []AttributesRequest        `json:"attributes_requests,omitempty"`
	RelationRequests          []RelationRequest          `json:"relation_requests,omitempty"`
	RuleChainMetadataRequests []RuleChainMetadataRequest `json:"rule_chain_metadata_requests,omitempty"`
	EntityCredentialsRequests []EntityCredentialsRequest `json:"entity_credentials_requests,omitempty"`
	RPCCalls                  []RPCCallMsg               `json:"rpc_calls,omitempty"`
	WidgetBundleTypesRequests []WidgetBundleTypesRequest `json:"widget_bundle_types_requests,omitempty"`
	EntityViewsRequests       []EntityViewsRequest       `json:"entity_views_requests,omitempty"`
}

// SerializedSize возвращает размер сообщения на проводе в байтах.
// Используется для фильтрации сообщений, превышающих лимит сервера.
func (m *UplinkMsg) SerializedSize() int {
	b, err := json.Marshal(m)
	if err != nil {
		return 0
	}
	return len(b)
}

// UplinkResponseMsg acknowledges a single UplinkMsg.
type UplinkResponseMsg struct {
	UplinkMsgID int32  `json:"uplink_msg_id"`
	Success     bool   `json:"success"`
	ErrorMsg    string `json:"error_msg,omitempty"`
}

// DownlinkMsg is a single cloud-to-edge message.
type DownlinkMsg struct {
	DownlinkMsgID     int32              `json:"downlink_msg_id"`
	EdgeConfiguration *EdgeConfiguration `json:"edge_configuration,omitempty"`
	SyncCompleted     bool               `json:"sync_completed,omitempty"`
	EntityUpdates     []EntityUpdate     `json:"entity_updates,omitempty"`
	TelemetryUpdates  []TelemetryUpdate  `json:"telemetry_updates,omitempty"`
}

// DownlinkResponseMsg acknowledges a single DownlinkMsg.
type DownlinkResponseMsg struct {
	DownlinkMsgID int32  `json:"downlink_msg_id"`
	Success       bool   `json:"success"`
	ErrorMsg      string `json:"error_msg,omitempty"`
}

// SyncRequestMsg asks the cloud to resend state the edge should mirror.
type SyncRequestMsg struct {
	FullSync  bool `json:"full_sync"`
	ResetSync bool `json:"reset_sync"`
}
