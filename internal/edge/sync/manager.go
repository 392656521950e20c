package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nmatveev/edgesync/internal/config"
	"github.com/nmatveev/edgesync/internal/edge/processor"
	"github.com/nmatveev/edgesync/internal/edge/storage"
	"github.com/nmatveev/edgesync/internal/edge/translator"
	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/internal/metrics"
	"github.com/nmatveev/edgesync/internal/models"
)

// complaintInterval paces the error log while routing credentials are blank.
const complaintInterval = 10 * time.Second

// uninitializedSleep paces the loop worker before the first handshake.
const uninitializedSleep = time.Second

// Deps carries everything the manager composes.
type Deps struct {
	Config     *config.Config
	Client     transport.RPCClient
	Attributes storage.AttributeStore
	Events     storage.EventStore
	Settings   storage.SettingsStore
	Downlink   processor.DownlinkProcessor
	Tenants    processor.TenantProcessor
	Customers  processor.CustomerProcessor
	Edges      processor.EdgeProcessor
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
}

// Manager composes the sync loop components and owns their lifecycle.
type Manager struct {
	cfg     *config.Config
	client  transport.RPCClient
	logger  *slog.Logger
	metrics *metrics.Metrics

	st           *state
	cursor       *CursorStore
	reader       *EventReader
	registry     *translator.Registry
	batcher      *UplinkBatcher
	session      *SessionController
	downlink     *DownlinkHandler
	connectivity *ConnectivityReporter

	noRecordsSleep time.Duration

	now func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New wires the components together.
func New(deps Deps) *Manager {
	st := &state{}

	cursor := NewCursorStore(deps.Attributes, deps.Logger)
	reader := NewEventReader(deps.Events, deps.Config.Storage.MaxReadRecordsCount, deps.Logger)
	registry := translator.NewRegistry(deps.Logger)
	connectivity := NewConnectivityReporter(deps.Attributes, st, deps.Logger)

	batcher := NewUplinkBatcher(deps.Client, st,
		time.Duration(deps.Config.Storage.SleepIntervalBetweenBatchesMs)*time.Millisecond,
		deps.Logger, deps.Metrics)

	session := NewSessionController(SessionDeps{
		Client:           deps.Client,
		RoutingKey:       deps.Config.Cloud.RoutingKey,
		Secret:           deps.Config.Cloud.Secret,
		ReconnectTimeout: time.Duration(deps.Config.Cloud.ReconnectTimeoutMs) * time.Millisecond,
		State:            st,
		Cursor:           cursor,
		Settings:         deps.Settings,
		Events:           deps.Events,
		Tenants:          deps.Tenants,
		Customers:        deps.Customers,
		Edges:            deps.Edges,
		Connectivity:     connectivity,
		Logger:           deps.Logger,
		Metrics:          deps.Metrics,
	})

	downlink := NewDownlinkHandler(deps.Client, deps.Downlink, st, session, deps.Logger, deps.Metrics)

	session.SetCallbacks(transport.Callbacks{
		OnUplinkResponse: batcher.OnUplinkResponse,
		OnEdgeUpdate:     session.OnEdgeUpdate,
		OnDownlink:       downlink.OnDownlink,
		OnError:          session.OnError,
	})

	return &Manager{
		cfg:            deps.Config,
		client:         deps.Client,
		logger:         deps.Logger,
		metrics:        deps.Metrics,
		st:             st,
		cursor:         cursor,
		reader:         reader,
		registry:       registry,
		batcher:        batcher,
		session:        session,
		downlink:       downlink,
		connectivity:   connectivity,
		noRecordsSleep: time.Duration(deps.Config.Storage.NoRecordsSleepIntervalMs) * time.Millisecond,
		now:            time.Now,
	}
}

// Start connects to the cloud and starts the workers. With blank routing
// credentials the manager stays inactive and only complains.
func (m *Manager) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	if m.cfg.Cloud.RoutingKey == "" || m.cfg.Cloud.Secret == "" {
		m.wg.Add(1)
		go m.complainLoop(ctx)
		return
	}

	m.logger.Info("Starting cloud edge service")

	if err := m.session.Connect(); err != nil {
		m.logger.Error("Failed to connect to cloud", "error", err)
		m.session.scheduleReconnect(ctx, err)
	}

	m.wg.Add(2)
	go func() {
		defer m.wg.Done()
		m.session.Run(ctx)
	}()
	go func() {
		defer m.wg.Done()
		m.runLoop(ctx)
	}()
}

// Stop unwinds the manager. An in-flight batch is abandoned without
// advancing the cursor.
func (m *Manager) Stop(ctx context.Context) {
	edgeID := ""
	if settings := m.st.Settings(); settings != nil {
		edgeID = settings.EdgeID
	}
	m.logger.Info("Starting destroying process", "edge_id", edgeID)

	m.st.initialized.Store(false)
	m.session.Shutdown(ctx)

	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()

	m.logger.Info("Destroy was successful", "edge_id", edgeID)
}

// complainLoop reminds the operator that the credentials are missing.
func (m *Manager) complainLoop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(complaintInterval)
	defer ticker.Stop()

	for {
		m.logger.Error("Routing key and routing secret must be provided! " +
			"Please configure cloud.routing_key and cloud.secret in the config file " +
			"or set EDGE_CLOUD_ROUTING_KEY and EDGE_CLOUD_SECRET environment variables. " +
			"The edge is not going to connect to the cloud!")

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// runLoop is the outer loop worker: page the log, translate, ship, advance
// the cursor.
func (m *Manager) runLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if !m.st.initialized.Load() {
			if !sleepCtx(ctx, uninitializedSleep) {
				return
			}
			continue
		}

		if err := m.processEvents(ctx); err != nil {
			m.logger.Warn("Failed to process events", "error", err)
		}

		if !sleepCtx(ctx, m.noRecordsSleep) {
			return
		}
	}
}

// processEvents drains the event log once: from the current cursor to the
// end of the current time window.
func (m *Manager) processEvents(ctx context.Context) error {
	startTs, seqIDOffset, err := m.cursor.Load(ctx)
	if err != nil {
		return err
	}
	m.st.setQueueStartTs(startTs)

	link := models.TimePageLink{
		Limit:   m.cfg.Storage.MaxReadRecordsCount,
		StartTs: startTs,
		EndTs:   m.now().UnixMilli(),
	}

	hasNew, err := m.reader.HasNewEvents(ctx, seqIDOffset, link)
	if err != nil {
		return err
	}
	if !hasNew {
		return nil
	}

	var (
		idOffset uuid.UUID
		shipped  bool
	)

	for m.st.initialized.Load() {
		page, err := m.reader.ReadPage(ctx, seqIDOffset, link)
		if err != nil {
			return err
		}
		if len(page.Data) == 0 {
			break
		}
		if m.metrics != nil {
			m.metrics.EventsRead.Add(float64(len(page.Data)))
		}

		msgs := m.registry.TranslateAll(ctx, m.st.TenantID(), page.Data)

		if len(msgs) > 0 {
			if !m.batcher.SendBatch(ctx, msgs) {
				// Батч прерван остановкой или реконнектом: курсор не двигаем,
				// события уйдут повторно после следующего handshake
				break
			}
		}

		latest := page.Data[len(page.Data)-1]
		idOffset = latest.ID
		seqIDOffset = latest.SeqID
		shipped = true

		if !page.HasNext {
			break
		}
		// Следующая страница читается по обновлённому seqIDOffset
	}

	if shipped {
		m.cursor.Store(ctx, models.UUIDTimestampMs(idOffset), seqIDOffset)
	}

	return nil
}
