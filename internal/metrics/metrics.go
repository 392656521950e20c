package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the sync loop counters.
type Metrics struct {
	EventsRead             prometheus.Counter
	UplinkMsgsSent         prometheus.Counter
	UplinkMsgsAcked        prometheus.Counter
	UplinkMsgsFailed       prometheus.Counter
	UplinkMsgsOversize     prometheus.Counter
	UplinkBatchesDiscarded prometheus.Counter
	DownlinkMsgsProcessed  prometheus.Counter
	DownlinkMsgsFailed     prometheus.Counter
	Reconnects             prometheus.Counter
}

// New creates and registers the counters against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_events_read_total",
			Help: "Events read from the local event log.",
		}),
		UplinkMsgsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_uplink_msgs_sent_total",
			Help: "Uplink messages written to the transport, including resends.",
		}),
		UplinkMsgsAcked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_uplink_msgs_acked_total",
			Help: "Uplink messages positively acknowledged by the cloud.",
		}),
		UplinkMsgsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_uplink_msgs_failed_total",
			Help: "Uplink messages negatively acknowledged by the cloud.",
		}),
		UplinkMsgsOversize: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_uplink_msgs_oversize_total",
			Help: "Uplink messages dropped for exceeding the server inbound limit.",
		}),
		UplinkBatchesDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_uplink_batches_discarded_total",
			Help: "Uplink batches discarded after exhausting delivery attempts.",
		}),
		DownlinkMsgsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_downlink_msgs_processed_total",
			Help: "Downlink messages processed successfully.",
		}),
		DownlinkMsgsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_downlink_msgs_failed_total",
			Help: "Downlink messages that failed processing.",
		}),
		Reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edgesync_reconnects_total",
			Help: "Reconnect attempts after a transport error.",
		}),
	}

	reg.MustRegister(
		m.EventsRead,
		m.UplinkMsgsSent,
		m.UplinkMsgsAcked,
		m.UplinkMsgsFailed,
		m.UplinkMsgsOversize,
		m.UplinkBatchesDiscarded,
		m.DownlinkMsgsProcessed,
		m.DownlinkMsgsFailed,
		m.Reconnects,
	)

	return m
}
