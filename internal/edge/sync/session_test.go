package sync

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/edgesync/internal/edge/processor"
	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

type sessionFixture struct {
	session   *SessionController
	st        *state
	client    *transport.RPCClientMock
	attrs     *storage.AttributeStoreMock
	settings  *storage.SettingsStoreMock
	events    *storage.EventStoreMock
	tenants   *processor.TenantProcessorMock
	customers *processor.CustomerProcessorMock
	edges     *processor.EdgeProcessorMock

	savedAttrs    map[string]models.Attribute
	savedSettings *models.EdgeSettings
	appended      []*models.CloudEvent
	exitCode      *int
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	f := &sessionFixture{
		savedAttrs: make(map[string]models.Attribute),
	}

	f.client = &transport.RPCClientMock{
		ConnectFunc: func(routingKey, secret string, cb transport.Callbacks) error {
			return nil
		},
		DisconnectFunc: func(graceful bool) error {
			return nil
		},
		SendSyncRequestMsgFunc: func(fullSync, resetSync bool) error {
			return nil
		},
		SendDownlinkResponseMsgFunc: func(msg *api.DownlinkResponseMsg) error {
			return nil
		},
	}

	f.attrs = &storage.AttributeStoreMock{
		FindLongFunc: func(ctx context.Context, scope, key string) (int64, bool, error) {
			attr, ok := f.savedAttrs[key]
			if !ok {
				return 0, false, nil
			}
			v, ok := attr.LongValue()
			return v, ok, nil
		},
		SaveFunc: func(ctx context.Context, scope string, attrs []models.Attribute) error {
			for _, attr := range attrs {
				f.savedAttrs[attr.Key] = attr
			}
			return nil
		},
	}

	f.settings = &storage.SettingsStoreMock{
		FindEdgeSettingsFunc: func(ctx context.Context) (*models.EdgeSettings, error) {
			if f.savedSettings == nil {
				return nil, storage.ErrEdgeSettingsNotFound
			}
			return f.savedSettings, nil
		},
		SaveEdgeSettingsFunc: func(ctx context.Context, settings *models.EdgeSettings) error {
			f.savedSettings = settings
			return nil
		},
	}

	f.events = &storage.EventStoreMock{
		AppendFunc: func(ctx context.Context, event *models.CloudEvent) error {
			f.appended = append(f.appended, event)
			return nil
		},
	}

	f.tenants = &processor.TenantProcessorMock{
		CleanUpFunc: func(ctx context.Context) error { return nil },
		CreateTenantIfNotExistsFunc: func(ctx context.Context, tenantID uuid.UUID, queueStartTs int64) error {
			return nil
		},
	}
	f.customers = &processor.CustomerProcessorMock{
		CreateCustomerIfNotExistsFunc: func(ctx context.Context, tenantID uuid.UUID, configuration *api.EdgeConfiguration) error {
			return nil
		},
	}
	f.edges = &processor.EdgeProcessorMock{
		ProcessEdgeConfigurationFunc: func(ctx context.Context, tenantID uuid.UUID, configuration *api.EdgeConfiguration) error {
			return nil
		},
		FindEdgeCustomerIDFunc: func(ctx context.Context, tenantID, edgeID uuid.UUID) (uuid.UUID, bool, error) {
			return uuid.Nil, false, nil
		},
	}

	f.st = &state{}
	logger := newTestLogger()
	cursor := NewCursorStore(f.attrs, logger)
	connectivity := NewConnectivityReporter(f.attrs, f.st, logger)

	f.session = NewSessionController(SessionDeps{
		Client:           f.client,
		RoutingKey:       "routing-key",
		Secret:           "secret",
		ReconnectTimeout: 10 * time.Millisecond,
		State:            f.st,
		Cursor:           cursor,
		Settings:         f.settings,
		Events:           f.events,
		Tenants:          f.tenants,
		Customers:        f.customers,
		Edges:            f.edges,
		Connectivity:     connectivity,
		Logger:           logger,
	})
	f.session.exit = func(code int) {
		f.exitCode = &code
	}

	return f
}

func ceConfiguration(edgeID, tenantID uuid.UUID) *api.EdgeConfiguration {
	return &api.EdgeConfiguration{
		EdgeID:     edgeID,
		TenantID:   tenantID,
		Name:       "test-edge",
		Type:       "default",
		RoutingKey: "routing-key",
		CloudType:  "CE",
	}
}

func TestHandshake_NonCECloudTypeTerminates(t *testing.T) {
	f := newSessionFixture(t)

	cfg := ceConfiguration(uuid.New(), uuid.New())
	cfg.CloudType = "PE"

	f.session.handleEdgeUpdate(context.Background(), cfg)

	require.NotNil(t, f.exitCode)
	assert.Equal(t, -1, *f.exitCode)
	assert.False(t, f.st.initialized.Load())
	assert.Empty(t, f.client.SendSyncRequestMsgCalls())
}

func TestHandshake_FreshSettings(t *testing.T) {
	f := newSessionFixture(t)

	edgeID := uuid.New()
	tenantID := uuid.New()

	f.session.handleEdgeUpdate(context.Background(), ceConfiguration(edgeID, tenantID))

	assert.Nil(t, f.exitCode)
	assert.True(t, f.st.initialized.Load())
	assert.True(t, f.st.syncInProgress.Load())
	assert.Equal(t, tenantID, f.st.TenantID())

	// Первый handshake: локальное состояние очищено, полная синхронизация
	assert.Len(t, f.tenants.CleanUpCalls(), 1)
	require.Len(t, f.client.SendSyncRequestMsgCalls(), 1)
	assert.True(t, f.client.SendSyncRequestMsgCalls()[0].FullSync)
	assert.True(t, f.client.SendSyncRequestMsgCalls()[0].ResetSync)

	require.NotNil(t, f.savedSettings)
	assert.Equal(t, edgeID.String(), f.savedSettings.EdgeID)
	assert.True(t, f.savedSettings.FullSyncRequired)

	// Два bootstrap-события на сам edge уходят через обычный uplink-путь
	require.Len(t, f.appended, 2)
	assert.Equal(t, models.ActionAttributesRequest, f.appended[0].Action)
	assert.Equal(t, models.ActionRelationRequest, f.appended[1].Action)
	for _, event := range f.appended {
		assert.Equal(t, models.EventTypeEdge, event.Type)
		assert.Equal(t, edgeID, event.EntityID)
	}

	// Подключение опубликовано
	active, ok := f.savedAttrs["active"]
	require.True(t, ok)
	assert.Equal(t, true, active.Value)
	_, ok = f.savedAttrs["lastConnectTime"]
	assert.True(t, ok)

	assert.Len(t, f.tenants.CreateTenantIfNotExistsCalls(), 1)
	assert.Len(t, f.edges.ProcessEdgeConfigurationCalls(), 1)
}

func TestHandshake_SameEdgeIDKeepsSettings(t *testing.T) {
	f := newSessionFixture(t)

	edgeID := uuid.New()
	tenantID := uuid.New()
	f.savedSettings = &models.EdgeSettings{
		EdgeID:           edgeID.String(),
		TenantID:         tenantID.String(),
		FullSyncRequired: false,
	}

	f.session.handleEdgeUpdate(context.Background(), ceConfiguration(edgeID, tenantID))

	assert.Empty(t, f.tenants.CleanUpCalls())
	require.Len(t, f.client.SendSyncRequestMsgCalls(), 1)
	assert.False(t, f.client.SendSyncRequestMsgCalls()[0].FullSync)
	assert.True(t, f.st.initialized.Load())
}

func TestHandshake_EdgeIDChangeTriggersCleanup(t *testing.T) {
	f := newSessionFixture(t)

	tenantID := uuid.New()
	f.savedSettings = &models.EdgeSettings{
		EdgeID:           uuid.NewString(),
		TenantID:         tenantID.String(),
		FullSyncRequired: false,
	}

	f.session.handleEdgeUpdate(context.Background(), ceConfiguration(uuid.New(), tenantID))

	assert.Len(t, f.tenants.CleanUpCalls(), 1)
	// Настройки пересозданы: полная синхронизация снова обязательна
	require.Len(t, f.client.SendSyncRequestMsgCalls(), 1)
	assert.True(t, f.client.SendSyncRequestMsgCalls()[0].FullSync)
}

func TestHandshake_CustomerUpdateForcesFullSync(t *testing.T) {
	f := newSessionFixture(t)

	edgeID := uuid.New()
	tenantID := uuid.New()
	customerID := uuid.New()
	f.savedSettings = &models.EdgeSettings{
		EdgeID:           edgeID.String(),
		TenantID:         tenantID.String(),
		FullSyncRequired: false,
	}

	cfg := ceConfiguration(edgeID, tenantID)
	cfg.CustomerID = customerID

	f.session.handleEdgeUpdate(context.Background(), cfg)

	assert.Equal(t, customerID, f.st.CustomerID())
	assert.Len(t, f.customers.CreateCustomerIfNotExistsCalls(), 1)
	require.Len(t, f.client.SendSyncRequestMsgCalls(), 1)
	assert.True(t, f.client.SendSyncRequestMsgCalls()[0].FullSync)
}

func TestHandshake_KnownCustomerDoesNotForceFullSync(t *testing.T) {
	f := newSessionFixture(t)

	edgeID := uuid.New()
	tenantID := uuid.New()
	customerID := uuid.New()
	f.savedSettings = &models.EdgeSettings{
		EdgeID:           edgeID.String(),
		TenantID:         tenantID.String(),
		FullSyncRequired: false,
	}
	f.edges.FindEdgeCustomerIDFunc = func(ctx context.Context, tenantID, edgeID uuid.UUID) (uuid.UUID, bool, error) {
		return customerID, true, nil
	}

	cfg := ceConfiguration(edgeID, tenantID)
	cfg.CustomerID = customerID

	f.session.handleEdgeUpdate(context.Background(), cfg)

	assert.Empty(t, f.customers.CreateCustomerIfNotExistsCalls())
	require.Len(t, f.client.SendSyncRequestMsgCalls(), 1)
	assert.False(t, f.client.SendSyncRequestMsgCalls()[0].FullSync)
}

func TestScheduleReconnect_RetriesUntilCancelled(t *testing.T) {
	f := newSessionFixture(t)

	f.st.initialized.Store(true)
	f.st.setTenantID(uuid.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.session.scheduleReconnect(ctx, assertError{})

	assert.False(t, f.st.initialized.Load())

	// Публикуется отключение
	active, ok := f.savedAttrs["active"]
	require.True(t, ok)
	assert.Equal(t, false, active.Value)

	require.Eventually(t, func() bool {
		return len(f.client.ConnectCalls()) >= 2
	}, time.Second, time.Millisecond)
	assert.NotEmpty(t, f.client.DisconnectCalls())

	// Успешный handshake останавливает таймер
	f.session.cancelReconnect()
	time.Sleep(30 * time.Millisecond)
	calls := len(f.client.ConnectCalls())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, len(f.client.ConnectCalls()))
}

func TestScheduleReconnect_SecondErrorIsNoOp(t *testing.T) {
	f := newSessionFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.session.scheduleReconnect(ctx, assertError{})
	f.session.scheduleReconnect(ctx, assertError{})

	f.session.mu.Lock()
	defer f.session.mu.Unlock()
	assert.NotNil(t, f.session.reconnectCancel)
}

// assertError is a trivial error value for reconnect tests.
type assertError struct{}

func (assertError) Error() string { return "stream closed" }
