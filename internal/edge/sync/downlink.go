package sync

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nmatveev/edgesync/internal/edge/processor"
	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/internal/metrics"
	"github.com/nmatveev/edgesync/pkg/api"
)

// DownlinkHandler processes inbound downlink messages and emits
// acknowledgements back to the cloud.
type DownlinkHandler struct {
	client    transport.RPCClient
	processor processor.DownlinkProcessor
	st        *state
	session   *SessionController
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewDownlinkHandler creates a handler over the downlink processor.
func NewDownlinkHandler(client transport.RPCClient, proc processor.DownlinkProcessor, st *state, session *SessionController, logger *slog.Logger, m *metrics.Metrics) *DownlinkHandler {
	return &DownlinkHandler{
		client:    client,
		processor: proc,
		st:        st,
		session:   session,
		logger:    logger,
		metrics:   m,
	}
}

// OnDownlink is the transport callback. Processing happens on a separate
// goroutine so the reader goroutine is never blocked.
func (h *DownlinkHandler) OnDownlink(msg *api.DownlinkMsg) {
	go h.process(context.Background(), msg)
}

func (h *DownlinkHandler) process(ctx context.Context, msg *api.DownlinkMsg) {
	customerIDUpdated := false
	if msg.EdgeConfiguration != nil {
		customerIDUpdated = h.session.setOrUpdateCustomerID(ctx, msg.EdgeConfiguration)
	}

	if h.st.syncInProgress.Load() && msg.SyncCompleted {
		h.logger.Info("Full sync completed")
		h.st.syncInProgress.Store(false)
	}

	err := h.processor.ProcessDownlinkMsg(ctx, h.st.TenantID(), h.st.CustomerID(), msg, h.st.Settings(), h.st.QueueStartTs())
	if err != nil {
		h.logger.Error("Failed to process downlink msg",
			"downlink_msg_id", msg.DownlinkMsgID, "error", err)
		if h.metrics != nil {
			h.metrics.DownlinkMsgsFailed.Inc()
		}

		response := &api.DownlinkResponseMsg{
			DownlinkMsgID: msg.DownlinkMsgID,
			Success:       false,
			ErrorMsg:      rootCause(err).Error(),
		}
		if err := h.client.SendDownlinkResponseMsg(response); err != nil {
			h.logger.Warn("Failed to send downlink response", "error", err)
		}
		return
	}

	h.logger.Debug("Downlink msg has been processed successfully",
		"downlink_msg_id", msg.DownlinkMsgID)
	if h.metrics != nil {
		h.metrics.DownlinkMsgsProcessed.Inc()
	}

	response := &api.DownlinkResponseMsg{
		DownlinkMsgID: msg.DownlinkMsgID,
		Success:       true,
	}
	if err := h.client.SendDownlinkResponseMsg(response); err != nil {
		h.logger.Warn("Failed to send downlink response", "error", err)
	}

	// Переназначение customer'а требует повторной полной синхронизации,
	// но не раньше, чем завершится уже идущая
	if msg.EdgeConfiguration != nil && customerIDUpdated && !h.st.syncInProgress.Load() {
		h.logger.Info("Edge customer id has been updated, sending sync request")
		if err := h.client.SendSyncRequestMsg(true, false); err != nil {
			h.logger.Warn("Failed to send sync request", "error", err)
			return
		}
		h.st.syncInProgress.Store(true)
	}
}

// rootCause unwraps the error chain down to the innermost error.
func rootCause(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
