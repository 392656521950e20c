package processor

import (
	"context"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

//go:generate moq -out processor_mock.go . DownlinkProcessor TenantProcessor CustomerProcessor EdgeProcessor

// DownlinkProcessor applies the payloads of one downlink message to the
// local platform state.
type DownlinkProcessor interface {
	// ProcessDownlinkMsg applies every payload of the message.
	// An error fails the whole message; the caller sends a negative ack.
	ProcessDownlinkMsg(ctx context.Context, tenantID, customerID uuid.UUID, msg *api.DownlinkMsg, settings *models.EdgeSettings, queueStartTs int64) error
}

// TenantProcessor manages the local tenant record.
type TenantProcessor interface {
	// CleanUp drops local state when the edge is reassigned to another edge id.
	CleanUp(ctx context.Context) error

	// CreateTenantIfNotExists ensures the local tenant record exists.
	CreateTenantIfNotExists(ctx context.Context, tenantID uuid.UUID, queueStartTs int64) error
}

// CustomerProcessor manages the local customer record.
type CustomerProcessor interface {
	// CreateCustomerIfNotExists ensures the local customer record exists.
	CreateCustomerIfNotExists(ctx context.Context, tenantID uuid.UUID, configuration *api.EdgeConfiguration) error
}

// EdgeProcessor applies the edge configuration delivered by the cloud.
type EdgeProcessor interface {
	// ProcessEdgeConfiguration applies the handshake configuration locally.
	ProcessEdgeConfiguration(ctx context.Context, tenantID uuid.UUID, configuration *api.EdgeConfiguration) error

	// FindEdgeCustomerID returns the customer id the edge was last known to
	// be assigned to. The second result is false if none is recorded.
	FindEdgeCustomerID(ctx context.Context, tenantID, edgeID uuid.UUID) (uuid.UUID, bool, error)
}
