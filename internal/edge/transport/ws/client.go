package ws

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/pkg/api"
)

const (
	handshakeTimeout = 10 * time.Second
	writeTimeout     = 10 * time.Second
	closeTimeout     = time.Second
)

// Client is a websocket implementation of transport.RPCClient.
// Frames are JSON-encoded api.Frame envelopes. The first frame after the
// websocket upgrade is the authentication exchange.
type Client struct {
	url    string
	logger *slog.Logger

	mu   sync.Mutex // guards conn and writes
	conn *websocket.Conn

	maxInbound atomic.Int64
	closing    atomic.Bool
}

// New creates a new websocket RPC client for the given url.
func New(url string, logger *slog.Logger) *Client {
	return &Client{
		url:    url,
		logger: logger,
	}
}

// Connect opens the websocket, authenticates with the routing credentials and
// starts the reader goroutine. Callbacks stay registered until the next
// Connect.
func (c *Client) Connect(routingKey, secret string, cb transport.Callbacks) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.Dial(c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", c.url, err)
	}

	// Аутентификация: первый фрейм всегда connect_request / connect_response
	hello := api.Frame{ConnectRequest: &api.ConnectRequestMsg{
		RoutingKey: routingKey,
		Secret:     secret,
	}}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(&hello); err != nil {
		conn.Close()
		return fmt.Errorf("failed to send connect request: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	var frame api.Frame
	if err := conn.ReadJSON(&frame); err != nil {
		conn.Close()
		return fmt.Errorf("failed to read connect response: %w", err)
	}
	resp := frame.ConnectResponse
	if resp == nil {
		conn.Close()
		return fmt.Errorf("unexpected first frame, want connect response")
	}
	if !resp.Accepted {
		conn.Close()
		return fmt.Errorf("connect rejected by cloud: %s", resp.ErrorMsg)
	}

	// Снимаем дедлайн: дальше соединение живёт, пока его не закроют
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.maxInbound.Store(int64(resp.MaxInboundMessageSize))
	c.closing.Store(false)

	c.logger.Info("Connected to cloud", "url", c.url,
		"max_inbound_message_size", resp.MaxInboundMessageSize)

	go c.readLoop(conn, cb, resp.Configuration)

	return nil
}

// readLoop reads frames until the connection dies and dispatches them to the
// registered callbacks.
func (c *Client) readLoop(conn *websocket.Conn, cb transport.Callbacks, helloCfg *api.EdgeConfiguration) {
	// Конфигурация из hello-ответа доставляется как обычный edge update
	if helloCfg != nil && cb.OnEdgeUpdate != nil {
		cb.OnEdgeUpdate(helloCfg)
	}

	for {
		var frame api.Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if !c.closing.Load() && cb.OnError != nil {
				cb.OnError(fmt.Errorf("read failed: %w", err))
			}
			return
		}

		switch {
		case frame.UplinkResponse != nil:
			if cb.OnUplinkResponse != nil {
				cb.OnUplinkResponse(frame.UplinkResponse)
			}
		case frame.EdgeConfiguration != nil:
			if cb.OnEdgeUpdate != nil {
				cb.OnEdgeUpdate(frame.EdgeConfiguration)
			}
		case frame.Downlink != nil:
			if cb.OnDownlink != nil {
				cb.OnDownlink(frame.Downlink)
			}
		default:
			c.logger.Warn("Dropping frame with no known payload")
		}
	}
}

// Disconnect closes the session. A graceful disconnect notifies the peer
// with a close control message first.
func (c *Client) Disconnect(graceful bool) error {
	c.closing.Store(true)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	if graceful {
		deadline := time.Now().Add(closeTimeout)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		if err := c.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
			c.logger.Debug("Failed to send close message", "error", err)
		}
	}

	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// SendUplinkMsg ships one uplink message.
func (c *Client) SendUplinkMsg(msg *api.UplinkMsg) error {
	return c.send(&api.Frame{Uplink: msg})
}

// SendDownlinkResponseMsg acknowledges a downlink message.
func (c *Client) SendDownlinkResponseMsg(msg *api.DownlinkResponseMsg) error {
	return c.send(&api.Frame{DownlinkResponse: msg})
}

// SendSyncRequestMsg asks the cloud to resend mirrored state.
func (c *Client) SendSyncRequestMsg(fullSync, resetSync bool) error {
	return c.send(&api.Frame{SyncRequest: &api.SyncRequestMsg{
		FullSync:  fullSync,
		ResetSync: resetSync,
	}})
}

// ServerMaxInboundMessageSize reports the limit negotiated at connect.
func (c *Client) ServerMaxInboundMessageSize() int {
	return int(c.maxInbound.Load())
}

func (c *Client) send(frame *api.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return transport.ErrNotConnected
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := c.conn.WriteJSON(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}
