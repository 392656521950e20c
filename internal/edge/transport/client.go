package transport

import (
	"errors"

	"github.com/nmatveev/edgesync/pkg/api"
)

//go:generate moq -out client_mock.go . RPCClient

// ErrNotConnected is returned by send methods while no session is open.
var ErrNotConnected = errors.New("rpc client is not connected")

// Callbacks delivers inbound session events. All callbacks are invoked on the
// client's reader goroutine and must not block.
type Callbacks struct {
	// OnUplinkResponse is invoked for every uplink acknowledgement.
	OnUplinkResponse func(msg *api.UplinkResponseMsg)

	// OnEdgeUpdate is invoked when the cloud delivers an edge configuration.
	OnEdgeUpdate func(configuration *api.EdgeConfiguration)

	// OnDownlink is invoked for every inbound downlink message.
	OnDownlink func(msg *api.DownlinkMsg)

	// OnError is invoked when the session fails.
	OnError func(err error)
}

// RPCClient is the persistent bidirectional stream to the cloud.
type RPCClient interface {
	// Connect opens a session and authenticates with the routing credentials.
	// Callbacks stay registered until the next Connect.
	Connect(routingKey, secret string, cb Callbacks) error

	// Disconnect closes the session. A graceful disconnect notifies the peer.
	Disconnect(graceful bool) error

	// SendUplinkMsg ships one uplink message.
	SendUplinkMsg(msg *api.UplinkMsg) error

	// SendDownlinkResponseMsg acknowledges a downlink message.
	SendDownlinkResponseMsg(msg *api.DownlinkResponseMsg) error

	// SendSyncRequestMsg asks the cloud to resend mirrored state.
	SendSyncRequestMsg(fullSync, resetSync bool) error

	// ServerMaxInboundMessageSize reports the largest uplink message the
	// cloud accepts, 0 if unlimited or not negotiated yet.
	ServerMaxInboundMessageSize() int
}
