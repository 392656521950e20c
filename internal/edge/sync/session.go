package sync

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/edge/processor"
	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/internal/metrics"
	"github.com/nmatveev/edgesync/internal/models"
	"github.com/nmatveev/edgesync/pkg/api"
)

// cloudTypeCE is the only cloud variant this edge build accepts.
const cloudTypeCE = "CE"

// SessionController owns the session lifecycle: connect, handshake,
// reconnect with a fixed-rate timer, shutdown.
type SessionController struct {
	client           transport.RPCClient
	routingKey       string
	secret           string
	reconnectTimeout time.Duration

	st           *state
	cursor       *CursorStore
	settings     storage.SettingsStore
	events       storage.EventStore
	tenants      processor.TenantProcessor
	customers    processor.CustomerProcessor
	edges        processor.EdgeProcessor
	connectivity *ConnectivityReporter

	logger  *slog.Logger
	metrics *metrics.Metrics

	// exit завершает процесс; подменяется в тестах
	exit func(code int)
	now  func() time.Time

	callbacks transport.Callbacks

	edgeConfigCh chan *api.EdgeConfiguration
	errCh        chan error

	mu              sync.Mutex
	reconnectCancel context.CancelFunc
}

// SessionDeps carries the collaborators of the session controller.
type SessionDeps struct {
	Client           transport.RPCClient
	RoutingKey       string
	Secret           string
	ReconnectTimeout time.Duration
	State            *state
	Cursor           *CursorStore
	Settings         storage.SettingsStore
	Events           storage.EventStore
	Tenants          processor.TenantProcessor
	Customers        processor.CustomerProcessor
	Edges            processor.EdgeProcessor
	Connectivity     *ConnectivityReporter
	Logger           *slog.Logger
	Metrics          *metrics.Metrics
}

// NewSessionController creates the controller. Callbacks are registered by
// the manager via SetCallbacks before the first Connect.
func NewSessionController(deps SessionDeps) *SessionController {
	return &SessionController{
		client:           deps.Client,
		routingKey:       deps.RoutingKey,
		secret:           deps.Secret,
		reconnectTimeout: deps.ReconnectTimeout,
		st:               deps.State,
		cursor:           deps.Cursor,
		settings:         deps.Settings,
		events:           deps.Events,
		tenants:          deps.Tenants,
		customers:        deps.Customers,
		edges:            deps.Edges,
		connectivity:     deps.Connectivity,
		logger:           deps.Logger,
		metrics:          deps.Metrics,
		exit:             os.Exit,
		now:              time.Now,
		edgeConfigCh:     make(chan *api.EdgeConfiguration, 4),
		errCh:            make(chan error, 4),
	}
}

// SetCallbacks records the callback set used for every connect.
func (s *SessionController) SetCallbacks(cb transport.Callbacks) {
	s.callbacks = cb
}

// Connect opens the RPC session with the registered callbacks.
func (s *SessionController) Connect() error {
	return s.client.Connect(s.routingKey, s.secret, s.callbacks)
}

// OnEdgeUpdate is the transport callback for edge configurations.
// It only enqueues: the handshake runs on the session worker.
func (s *SessionController) OnEdgeUpdate(configuration *api.EdgeConfiguration) {
	select {
	case s.edgeConfigCh <- configuration:
	default:
		s.logger.Warn("Dropping edge configuration, session worker is behind")
	}
}

// OnError is the transport error callback.
func (s *SessionController) OnError(err error) {
	select {
	case s.errCh <- err:
	default:
	}
}

// Run consumes session events until the context is cancelled. The transport
// callbacks stay non-blocking; all session work happens here.
func (s *SessionController) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case configuration := <-s.edgeConfigCh:
			s.handleEdgeUpdate(ctx, configuration)
		case err := <-s.errCh:
			s.scheduleReconnect(ctx, err)
		}
	}
}

func (s *SessionController) handleEdgeUpdate(ctx context.Context, configuration *api.EdgeConfiguration) {
	s.cancelReconnect()

	if configuration.CloudType != cloudTypeCE {
		s.logger.Error("Terminating application. CE edge can be connected only to CE server version",
			"cloud_type", configuration.CloudType)
		s.exit(-1)
		return
	}

	if err := s.initAndUpdateEdgeSettings(ctx, configuration); err != nil {
		s.logger.Error("Can't process edge configuration message", "error", err)
	}
}

func (s *SessionController) initAndUpdateEdgeSettings(ctx context.Context, configuration *api.EdgeConfiguration) error {
	s.st.setTenantID(configuration.TenantID)

	current, err := s.settings.FindEdgeSettings(ctx)
	if err != nil && !errors.Is(err, storage.ErrEdgeSettingsNotFound) {
		return err
	}

	newSettings := constructEdgeSettings(configuration)
	if current == nil || current.EdgeID != newSettings.EdgeID {
		if err := s.tenants.CleanUp(ctx); err != nil {
			s.logger.Error("Failed to clean up local state", "error", err)
		}
		current = newSettings
	} else {
		s.logger.Debug("Using edge settings from the local store")
	}
	s.st.setSettings(current)

	queueStartTs, _, err := s.cursor.Load(ctx)
	if err != nil {
		return err
	}
	s.st.setQueueStartTs(queueStartTs)

	if err := s.tenants.CreateTenantIfNotExists(ctx, configuration.TenantID, queueStartTs); err != nil {
		return err
	}

	customerIDUpdated := s.setOrUpdateCustomerID(ctx, configuration)
	if customerIDUpdated {
		if err := s.customers.CreateCustomerIfNotExists(ctx, configuration.TenantID, configuration); err != nil {
			return err
		}
	}

	// Обе причины полной синхронизации вычислены заранее и обе учитываются
	fullSyncRequired := current.FullSyncRequired
	s.logger.Debug("Sending sync request",
		"full_sync_required", fullSyncRequired, "customer_id_updated", customerIDUpdated)
	if err := s.client.SendSyncRequestMsg(fullSyncRequired || customerIDUpdated, true); err != nil {
		return err
	}
	s.st.syncInProgress.Store(true)

	if err := s.settings.SaveEdgeSettings(ctx, current); err != nil {
		return err
	}

	if err := s.saveOrUpdateEdge(ctx, configuration); err != nil {
		return err
	}

	s.connectivity.Update(ctx, true)

	s.st.initialized.Store(true)
	s.logger.Info("Edge session initialized",
		"edge_id", configuration.EdgeID, "tenant_id", configuration.TenantID)

	return nil
}

// setOrUpdateCustomerID recomputes the customer assignment and reports
// whether it changed against the last known one.
func (s *SessionController) setOrUpdateCustomerID(ctx context.Context, configuration *api.EdgeConfiguration) bool {
	previous := uuid.Nil
	id, found, err := s.edges.FindEdgeCustomerID(ctx, s.st.TenantID(), configuration.EdgeID)
	if err != nil {
		s.logger.Debug("Failed to look up previous customer id", "error", err)
	} else if found {
		previous = id
	}

	if configuration.CustomerID != uuid.Nil {
		s.st.setCustomerID(configuration.CustomerID)
		return configuration.CustomerID != previous
	}

	s.st.setCustomerID(uuid.Nil)
	return false
}

// saveOrUpdateEdge applies the configuration and seeds two bootstrap events
// so the edge's own attributes and relations flow through the uplink path.
func (s *SessionController) saveOrUpdateEdge(ctx context.Context, configuration *api.EdgeConfiguration) error {
	if err := s.edges.ProcessEdgeConfiguration(ctx, configuration.TenantID, configuration); err != nil {
		return err
	}

	for _, action := range []models.ActionType{models.ActionAttributesRequest, models.ActionRelationRequest} {
		event := newBootstrapEvent(configuration, action, s.now())
		if err := s.events.Append(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// newBootstrapEvent builds a request event on the edge entity itself.
func newBootstrapEvent(configuration *api.EdgeConfiguration, action models.ActionType, now time.Time) *models.CloudEvent {
	return &models.CloudEvent{
		ID:        uuid.Must(uuid.NewV7()),
		TenantID:  configuration.TenantID,
		Type:      models.EventTypeEdge,
		Action:    action,
		EntityID:  configuration.EdgeID,
		CreatedAt: now.UnixMilli(),
	}
}

// scheduleReconnect clears initialized, publishes connectivity down and arms
// the fixed-rate reconnect timer. A second transport error while the timer
// runs does not arm another timer.
func (s *SessionController) scheduleReconnect(ctx context.Context, cause error) {
	s.st.initialized.Store(false)

	s.connectivity.Update(ctx, false)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reconnectCancel != nil {
		return
	}

	reconnectCtx, cancel := context.WithCancel(ctx)
	s.reconnectCancel = cancel

	go func() {
		ticker := time.NewTicker(s.reconnectTimeout)
		defer ticker.Stop()

		for {
			select {
			case <-reconnectCtx.Done():
				return
			case <-ticker.C:
				s.logger.Info("Trying to reconnect due to the error", "error", cause)
				if s.metrics != nil {
					s.metrics.Reconnects.Inc()
				}
				if err := s.client.Disconnect(true); err != nil {
					s.logger.Error("Exception during disconnect", "error", err)
				}
				if err := s.Connect(); err != nil {
					s.logger.Error("Exception during connect", "error", err)
				}
			}
		}
	}()
}

func (s *SessionController) cancelReconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reconnectCancel != nil {
		s.reconnectCancel()
		s.reconnectCancel = nil
	}
}

// Shutdown publishes connectivity down and closes the session best-effort.
func (s *SessionController) Shutdown(ctx context.Context) {
	s.connectivity.Update(ctx, false)

	s.cancelReconnect()

	if err := s.client.Disconnect(false); err != nil {
		s.logger.Error("Exception during disconnect", "error", err)
	}
}

func constructEdgeSettings(configuration *api.EdgeConfiguration) *models.EdgeSettings {
	return &models.EdgeSettings{
		EdgeID:           configuration.EdgeID.String(),
		TenantID:         configuration.TenantID.String(),
		Name:             configuration.Name,
		Type:             configuration.Type,
		RoutingKey:       configuration.RoutingKey,
		FullSyncRequired: true,
	}
}
