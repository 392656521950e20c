package api

// ConnectRequestMsg is the first frame the edge sends after the websocket is
// established. The cloud authenticates the edge by routing key and secret.
type ConnectRequestMsg struct {
	RoutingKey string `json:"routing_key"`
	Secret     string `json:"secret"`
}

// ConnectResponseMsg is the cloud's answer to ConnectRequestMsg.
// MaxInboundMessageSize is the largest uplink frame the cloud accepts;
// 0 means unlimited.
type ConnectResponseMsg struct {
	Accepted              bool               `json:"accepted"`
	ErrorMsg              string             `json:"error_msg,omitempty"`
	Configuration         *EdgeConfiguration `json:"configuration,omitempty"`
	MaxInboundMessageSize int                `json:"max_inbound_message_size,omitempty"`
}

// Frame is the envelope for every message on the stream. Exactly one field
// is set per frame.
type Frame struct {
	ConnectRequest    *ConnectRequestMsg   `json:"connect_request,omitempty"`
	ConnectResponse   *ConnectResponseMsg  `json:"connect_response,omitempty"`
	Uplink            *UplinkMsg           `json:"uplink,omitempty"`
	UplinkResponse    *UplinkResponseMsg   `json:"uplink_response,omitempty"`
	Downlink          *DownlinkMsg         `json:"downlink,omitempty"`
	DownlinkResponse  *DownlinkResponseMsg `json:"downlink_response,omitempty"`
	SyncRequest       *SyncRequestMsg      `json:"sync_request,omitempty"`
	EdgeConfiguration *EdgeConfiguration   `json:"edge_configuration,omitempty"`
}
