package sync

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/internal/metrics"
	"github.com/nmatveev/edgesync/pkg/api"
)

// maxUplinkAttempts bounds the delivery waves per batch. After the last
// attempt the remaining messages are discarded and the cursor advances.
const maxUplinkAttempts = 10

// defaultLatchTimeout is how long one delivery wave waits for its acks.
const defaultLatchTimeout = 10 * time.Second

// UplinkBatcher ships batches of uplink messages and waits for per-message
// acknowledgements. At most one batch is in flight at a time.
type UplinkBatcher struct {
	client  transport.RPCClient
	st      *state
	logger  *slog.Logger
	metrics *metrics.Metrics

	sleepBetweenBatches time.Duration
	latchTimeout        time.Duration

	mu sync.Mutex // serializes batches

	pmu     sync.Mutex
	pending map[int32]*api.UplinkMsg

	latch atomic.Pointer[countDownLatch]
}

// NewUplinkBatcher creates a batcher over the transport.
func NewUplinkBatcher(client transport.RPCClient, st *state, sleepBetweenBatches time.Duration, logger *slog.Logger, m *metrics.Metrics) *UplinkBatcher {
	return &UplinkBatcher{
		client:              client,
		st:                  st,
		logger:              logger,
		metrics:             m,
		sleepBetweenBatches: sleepBetweenBatches,
		latchTimeout:        defaultLatchTimeout,
		pending:             make(map[int32]*api.UplinkMsg),
	}
}

// SendBatch ships the messages and blocks until every one is acknowledged,
// the attempts are exhausted (the remainder is discarded and true is still
// returned), or the manager de-initializes (false: the cursor must not
// advance).
func (b *UplinkBatcher) SendBatch(ctx context.Context, msgs []*api.UplinkMsg) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetPending(msgs)

	for attempt := 1; ; attempt++ {
		b.logger.Debug("Sending uplink batch", "size", b.pendingSize(), "attempt", attempt)

		latch := newCountDownLatch(b.pendingSize())
		b.latch.Store(latch)

		maxSize := b.client.ServerMaxInboundMessageSize()
		for _, msg := range b.pendingSnapshot() {
			if maxSize != 0 && msg.SerializedSize() > maxSize {
				b.logger.Error("Uplink msg size exceeds server max inbound message size, skipping this message",
					"uplink_msg_id", msg.UplinkMsgID,
					"size", msg.SerializedSize(), "max_size", maxSize)
				b.removePending(msg.UplinkMsgID)
				if b.metrics != nil {
					b.metrics.UplinkMsgsOversize.Inc()
				}
				latch.countDown()
				continue
			}

			if err := b.client.SendUplinkMsg(msg); err != nil {
				b.logger.Warn("Failed to send uplink msg",
					"uplink_msg_id", msg.UplinkMsgID, "error", err)
				continue
			}
			if b.metrics != nil {
				b.metrics.UplinkMsgsSent.Inc()
			}
		}

		success := latch.await(b.latchTimeout) && b.pendingSize() == 0
		if success {
			return true
		}

		b.logger.Warn("Failed to deliver the batch",
			"remaining", b.pendingIDs(), "attempt", attempt)

		if attempt >= maxUplinkAttempts {
			b.logger.Warn("Failed to deliver the batch after max attempts, messages are going to be discarded",
				"attempts", maxUplinkAttempts, "discarded", b.pendingIDs())
			if b.metrics != nil {
				b.metrics.UplinkBatchesDiscarded.Inc()
			}
			return true
		}

		if !b.st.initialized.Load() {
			return false
		}
		if !sleepCtx(ctx, b.sleepBetweenBatches) {
			return false
		}
		if !b.st.initialized.Load() {
			return false
		}
	}
}

// OnUplinkResponse is the transport ack callback. A positive ack settles the
// message; a negative ack leaves it pending so the next wave resends it.
// Both count against the current wave's latch.
func (b *UplinkBatcher) OnUplinkResponse(msg *api.UplinkResponseMsg) {
	if msg.Success {
		b.removePending(msg.UplinkMsgID)
		if b.metrics != nil {
			b.metrics.UplinkMsgsAcked.Inc()
		}
		b.logger.Debug("Msg has been processed successfully", "uplink_msg_id", msg.UplinkMsgID)
	} else {
		if b.metrics != nil {
			b.metrics.UplinkMsgsFailed.Inc()
		}
		b.logger.Error("Msg processing failed",
			"uplink_msg_id", msg.UplinkMsgID, "error_msg", msg.ErrorMsg)
	}

	if latch := b.latch.Load(); latch != nil {
		latch.countDown()
	}
}

func (b *UplinkBatcher) resetPending(msgs []*api.UplinkMsg) {
	b.pmu.Lock()
	defer b.pmu.Unlock()
	clear(b.pending)
	for _, msg := range msgs {
		b.pending[msg.UplinkMsgID] = msg
	}
}

func (b *UplinkBatcher) removePending(id int32) {
	b.pmu.Lock()
	defer b.pmu.Unlock()
	delete(b.pending, id)
}

func (b *UplinkBatcher) pendingSize() int {
	b.pmu.Lock()
	defer b.pmu.Unlock()
	return len(b.pending)
}

// pendingSnapshot returns the pending messages in a stable order.
func (b *UplinkBatcher) pendingSnapshot() []*api.UplinkMsg {
	b.pmu.Lock()
	defer b.pmu.Unlock()

	msgs := make([]*api.UplinkMsg, 0, len(b.pending))
	for _, msg := range b.pending {
		msgs = append(msgs, msg)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].UplinkMsgID < msgs[j].UplinkMsgID })
	return msgs
}

func (b *UplinkBatcher) pendingIDs() []int32 {
	b.pmu.Lock()
	defer b.pmu.Unlock()

	ids := make([]int32, 0, len(b.pending))
	for id := range b.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sleepCtx waits for d or until the context is cancelled.
// Returns false on cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
