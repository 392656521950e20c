package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
)

// Connectivity attribute keys, server scope of the tenant entity.
const (
	attrKeyActive             = "active"
	attrKeyLastConnectTime    = "lastConnectTime"
	attrKeyLastDisconnectTime = "lastDisconnectTime"
)

// ConnectivityReporter publishes liveness timestamps to the attribute store.
type ConnectivityReporter struct {
	attrs  storage.AttributeStore
	st     *state
	logger *slog.Logger
	now    func() time.Time
}

// NewConnectivityReporter creates a reporter over the attribute store.
func NewConnectivityReporter(attrs storage.AttributeStore, st *state, logger *slog.Logger) *ConnectivityReporter {
	return &ConnectivityReporter{
		attrs:  attrs,
		st:     st,
		logger: logger,
		now:    time.Now,
	}
}

// Update publishes the connectivity state. No-op while the tenant is not yet
// known. The write is best-effort and never gates the session flow.
func (r *ConnectivityReporter) Update(ctx context.Context, active bool) {
	if r.st.TenantID() == uuid.Nil {
		return
	}

	ts := r.now().UnixMilli()
	attrs := []models.Attribute{
		{Key: attrKeyActive, Value: active, LastUpdateTs: ts},
	}
	if active {
		attrs = append(attrs, models.Attribute{Key: attrKeyLastConnectTime, Value: ts, LastUpdateTs: ts})
	} else {
		attrs = append(attrs, models.Attribute{Key: attrKeyLastDisconnectTime, Value: ts, LastUpdateTs: ts})
	}

	if err := r.attrs.Save(ctx, models.ServerScope, attrs); err != nil {
		r.logger.Warn("Failed to update connectivity attributes",
			"active", active, "error", err)
		return
	}

	r.logger.Debug("Updated connectivity attributes", "active", active)
}
