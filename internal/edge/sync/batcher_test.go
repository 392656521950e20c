package sync

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatveev/edgesync/internal/edge/transport"
	"github.com/nmatveev/edgesync/pkg/api"
)

func newTestBatcher(client transport.RPCClient, st *state) *UplinkBatcher {
	b := NewUplinkBatcher(client, st, time.Millisecond, newTestLogger(), nil)
	b.latchTimeout = 50 * time.Millisecond
	return b
}

func initializedState() *state {
	st := &state{}
	st.initialized.Store(true)
	return st
}

func uplinkMsgs(ids ...int32) []*api.UplinkMsg {
	msgs := make([]*api.UplinkMsg, 0, len(ids))
	for _, id := range ids {
		msgs = append(msgs, &api.UplinkMsg{UplinkMsgID: id})
	}
	return msgs
}

func TestSendBatch_AllAcked(t *testing.T) {
	var b *UplinkBatcher

	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 0 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			go b.OnUplinkResponse(&api.UplinkResponseMsg{UplinkMsgID: msg.UplinkMsgID, Success: true})
			return nil
		},
	}

	b = newTestBatcher(mockClient, initializedState())

	success := b.SendBatch(context.Background(), uplinkMsgs(1, 2, 3))

	assert.True(t, success)
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 3)
	assert.Equal(t, 0, b.pendingSize())
}

func TestSendBatch_PartialAckTriggersRetry(t *testing.T) {
	var (
		b     *UplinkBatcher
		waves atomic.Int32
	)

	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 0 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			// Сообщение 4 теряется в первой волне
			if msg.UplinkMsgID == 4 && waves.Load() == 0 {
				return nil
			}
			go b.OnUplinkResponse(&api.UplinkResponseMsg{UplinkMsgID: msg.UplinkMsgID, Success: true})
			return nil
		},
	}

	st := initializedState()
	b = NewUplinkBatcher(mockClient, st, time.Millisecond, newTestLogger(), nil)
	b.latchTimeout = 50 * time.Millisecond

	done := make(chan bool, 1)
	go func() {
		done <- b.SendBatch(context.Background(), uplinkMsgs(1, 2, 3, 4))
	}()

	// После первой волны остается одно подвешенное сообщение
	require.Eventually(t, func() bool {
		return len(mockClient.SendUplinkMsgCalls()) >= 4
	}, time.Second, time.Millisecond)
	waves.Store(1)

	select {
	case success := <-done:
		assert.True(t, success)
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not complete")
	}

	// 4 отправки в первой волне + повторная отправка потерянного
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 5)
	assert.Equal(t, 0, b.pendingSize())
}

func TestSendBatch_NegativeAckIsResent(t *testing.T) {
	var (
		b        *UplinkBatcher
		attempts atomic.Int32
	)

	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 0 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			success := attempts.Add(1) > 1
			go b.OnUplinkResponse(&api.UplinkResponseMsg{
				UplinkMsgID: msg.UplinkMsgID,
				Success:     success,
				ErrorMsg:    "processing failed",
			})
			return nil
		},
	}

	b = newTestBatcher(mockClient, initializedState())

	success := b.SendBatch(context.Background(), uplinkMsgs(7))

	assert.True(t, success)
	// Первая волна получила отрицательный ack, вторая — положительный
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 2)
	assert.Equal(t, 0, b.pendingSize())
}

func TestSendBatch_ExhaustedAttemptsDiscardAndSucceed(t *testing.T) {
	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 0 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			// Ни одного ack'а
			return nil
		},
	}

	b := newTestBatcher(mockClient, initializedState())
	b.latchTimeout = 5 * time.Millisecond

	success := b.SendBatch(context.Background(), uplinkMsgs(1, 2, 3, 4))

	// Отправка "удалась": батч отброшен, курсор продвинется
	assert.True(t, success)
	// 10 волн по 4 сообщения
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 40)
	assert.Equal(t, 4, b.pendingSize())
}

func TestSendBatch_OversizeMsgIsNeverSent(t *testing.T) {
	var b *UplinkBatcher

	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 256 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			go b.OnUplinkResponse(&api.UplinkResponseMsg{UplinkMsgID: msg.UplinkMsgID, Success: true})
			return nil
		},
	}

	b = newTestBatcher(mockClient, initializedState())

	oversize := &api.UplinkMsg{
		UplinkMsgID: 2,
		EntityUpdates: []api.EntityUpdate{{
			EntityType: "DEVICE",
			Entity:     []byte(`{"payload":"` + strings.Repeat("x", 512) + `"}`),
		}},
	}
	require.Greater(t, oversize.SerializedSize(), 256)

	msgs := []*api.UplinkMsg{{UplinkMsgID: 1}, oversize, {UplinkMsgID: 3}}

	success := b.SendBatch(context.Background(), msgs)

	assert.True(t, success)
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 2)
	for _, call := range mockClient.SendUplinkMsgCalls() {
		assert.NotEqual(t, int32(2), call.Msg.UplinkMsgID)
	}
}

func TestSendBatch_AbandonedWhenUninitialized(t *testing.T) {
	st := initializedState()

	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 0 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			// Транспорт оборвался: ack'ов не будет
			st.initialized.Store(false)
			return nil
		},
	}

	b := newTestBatcher(mockClient, st)

	success := b.SendBatch(context.Background(), uplinkMsgs(1, 2))

	assert.False(t, success)
	// Единственная волна: повторов после деинициализации нет
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 2)
}

func TestSendBatch_SingleBatchInFlight(t *testing.T) {
	var (
		b        *UplinkBatcher
		inFlight atomic.Int32
		maxSeen  atomic.Int32
	)

	mockClient := &transport.RPCClientMock{
		ServerMaxInboundMessageSizeFunc: func() int { return 0 },
		SendUplinkMsgFunc: func(msg *api.UplinkMsg) error {
			current := inFlight.Add(1)
			for {
				seen := maxSeen.Load()
				if current <= seen || maxSeen.CompareAndSwap(seen, current) {
					break
				}
			}
			go func() {
				b.OnUplinkResponse(&api.UplinkResponseMsg{UplinkMsgID: msg.UplinkMsgID, Success: true})
				inFlight.Add(-1)
			}()
			return nil
		},
	}

	b = newTestBatcher(mockClient, initializedState())

	done := make(chan struct{})
	go func() {
		b.SendBatch(context.Background(), uplinkMsgs(1, 2))
		close(done)
	}()
	b.SendBatch(context.Background(), uplinkMsgs(3, 4))
	<-done

	// Никогда не больше одного батча (2 сообщений) в полете
	assert.LessOrEqual(t, maxSeen.Load(), int32(2))
	assert.Len(t, mockClient.SendUplinkMsgCalls(), 4)
}
