package processor

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

type localFixture struct {
	local  *Local
	attrs  map[string]models.Attribute
	events *storage.EventStoreMock
}

func newLocalFixture(t *testing.T) *localFixture {
	t.Helper()

	f := &localFixture{attrs: make(map[string]models.Attribute)}

	attrs := &storage.AttributeStoreMock{
		FindFunc: func(ctx context.Context, scope, key string) (models.Attribute, bool, error) {
			attr, ok := f.attrs[scope+"/"+key]
			return attr, ok, nil
		},
		SaveFunc: func(ctx context.Context, scope string, attrList []models.Attribute) error {
			for _, attr := range attrList {
				f.attrs[scope+"/"+attr.Key] = attr
			}
			return nil
		},
	}

	f.events = &storage.EventStoreMock{
		ClearFunc: func(ctx context.Context) error { return nil },
	}

	f.local = NewLocal(attrs, f.events, slog.New(slog.NewTextHandler(os.Stdout, nil)))

	return f
}

func TestFindEdgeCustomerID_RoundTrip(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	tenantID := uuid.New()
	edgeID := uuid.New()
	customerID := uuid.New()

	// До первого применения конфигурации ничего не записано
	_, found, err := f.local.FindEdgeCustomerID(ctx, tenantID, edgeID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, f.local.ProcessEdgeConfiguration(ctx, tenantID, &api.EdgeConfiguration{
		EdgeID:     edgeID,
		TenantID:   tenantID,
		CustomerID: customerID,
	}))

	id, found, err := f.local.FindEdgeCustomerID(ctx, tenantID, edgeID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, customerID, id)
}

func TestFindEdgeCustomerID_NilCustomerReadsAsAbsent(t *testing.T) {
	f := newLocalFixture(t)
	ctx := context.Background()

	require.NoError(t, f.local.ProcessEdgeConfiguration(ctx, uuid.New(), &api.EdgeConfiguration{
		EdgeID:   uuid.New(),
		TenantID: uuid.New(),
	}))

	_, found, err := f.local.FindEdgeCustomerID(ctx, uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCleanUp_ClearsEventLog(t *testing.T) {
	f := newLocalFixture(t)

	require.NoError(t, f.local.CleanUp(context.Background()))

	assert.Len(t, f.events.ClearCalls(), 1)
}

func TestProcessDownlinkMsg_AppliesTelemetry(t *testing.T) {
	f := newLocalFixture(t)

	entityID := uuid.New()
	msg := &api.DownlinkMsg{
		DownlinkMsgID: 1,
		TelemetryUpdates: []api.TelemetryUpdate{{
			EntityType: "DEVICE",
			EntityID:   entityID,
			Action:     "ATTRIBUTES_UPDATED",
			Data:       []byte(`{"firmware":"1.2.3","interval":60}`),
		}},
	}

	err := f.local.ProcessDownlinkMsg(context.Background(), uuid.New(), uuid.Nil, msg, nil, 0)

	require.NoError(t, err)

	attr, ok := f.attrs[models.SharedScope+"/"+entityID.String()+"/firmware"]
	require.True(t, ok)
	value, _ := attr.StringValue()
	assert.Equal(t, "1.2.3", value)
}

func TestProcessDownlinkMsg_BadPayloadFails(t *testing.T) {
	f := newLocalFixture(t)

	msg := &api.DownlinkMsg{
		TelemetryUpdates: []api.TelemetryUpdate{{
			EntityID: uuid.New(),
			Data:     []byte(`{broken`),
		}},
	}

	err := f.local.ProcessDownlinkMsg(context.Background(), uuid.New(), uuid.Nil, msg, nil, 0)

	require.Error(t, err)
}
