package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "edge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:18080/api/v1/edge/rpc", cfg.Cloud.URL)
	assert.Equal(t, int64(10_000), cfg.Cloud.ReconnectTimeoutMs)
	assert.Equal(t, 50, cfg.Storage.MaxReadRecordsCount)
	assert.Equal(t, int64(10_000), cfg.Storage.NoRecordsSleepIntervalMs)
	assert.Equal(t, int64(60_000), cfg.Storage.SleepIntervalBetweenBatchesMs)
	assert.Empty(t, cfg.Cloud.RoutingKey)
	assert.Empty(t, cfg.Cloud.Secret)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
cloud:
  url: wss://cloud.example.com/api/v1/edge/rpc
  routing_key: rk-1
  secret: s-1
  reconnect_timeout_ms: 5000
storage:
  max_read_records_count: 100
  no_records_sleep_interval_ms: 1000
  sleep_interval_between_batches_ms: 2000
metrics:
  addr: :9100
log:
  level: debug
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "wss://cloud.example.com/api/v1/edge/rpc", cfg.Cloud.URL)
	assert.Equal(t, "rk-1", cfg.Cloud.RoutingKey)
	assert.Equal(t, "s-1", cfg.Cloud.Secret)
	assert.Equal(t, int64(5000), cfg.Cloud.ReconnectTimeoutMs)
	assert.Equal(t, 100, cfg.Storage.MaxReadRecordsCount)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
cloud:
  routing_key: from-file
`)
	t.Setenv("EDGE_CLOUD_ROUTING_KEY", "from-env")
	t.Setenv("EDGE_CLOUD_SECRET", "env-secret")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Cloud.RoutingKey)
	assert.Equal(t, "env-secret", cfg.Cloud.Secret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
storage:
  max_read_records_count: 0
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_read_records_count")
}
