package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// CloudConfig describes how to reach and authenticate against the cloud.
// RoutingKey/Secret may be blank: the manager then stays inactive and
// complains instead of connecting.
type CloudConfig struct {
	URL                string `mapstructure:"url"`
	RoutingKey         string `mapstructure:"routing_key"`
	Secret             string `mapstructure:"secret"`
	ReconnectTimeoutMs int64  `mapstructure:"reconnect_timeout_ms"`
}

// StorageConfig describes the local stores and the event log read pacing.
type StorageConfig struct {
	EventsPath                    string `mapstructure:"events_path"`
	AttributesPath                string `mapstructure:"attributes_path"`
	MaxReadRecordsCount           int    `mapstructure:"max_read_records_count"`
	NoRecordsSleepIntervalMs      int64  `mapstructure:"no_records_sleep_interval_ms"`
	SleepIntervalBetweenBatchesMs int64  `mapstructure:"sleep_interval_between_batches_ms"`
}

// MetricsConfig configures the optional prometheus endpoint.
// Blank Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Config is the full daemon configuration.
type Config struct {
	Cloud   CloudConfig   `mapstructure:"cloud"`
	Storage StorageConfig `mapstructure:"storage"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load читает конфигурацию из YAML-файла и переменных окружения с префиксом
// EDGE_ (точки заменяются подчёркиваниями: cloud.routing_key →
// EDGE_CLOUD_ROUTING_KEY). Переменные окружения имеют приоритет.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("cloud.url", "ws://localhost:18080/api/v1/edge/rpc")
	// Пустые default'ы нужны, чтобы AutomaticEnv увидел эти ключи при Unmarshal
	v.SetDefault("cloud.routing_key", "")
	v.SetDefault("cloud.secret", "")
	v.SetDefault("cloud.reconnect_timeout_ms", 10_000)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("storage.events_path", "edgesync-events.db")
	v.SetDefault("storage.attributes_path", "edgesync-attributes.db")
	v.SetDefault("storage.max_read_records_count", 50)
	v.SetDefault("storage.no_records_sleep_interval_ms", 10_000)
	v.SetDefault("storage.sleep_interval_between_batches_ms", 60_000)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("EDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Cloud.URL == "" {
		return fmt.Errorf("cloud.url is required")
	}
	if c.Storage.MaxReadRecordsCount <= 0 {
		return fmt.Errorf("storage.max_read_records_count must be positive")
	}
	if c.Cloud.ReconnectTimeoutMs <= 0 {
		return fmt.Errorf("cloud.reconnect_timeout_ms must be positive")
	}
	return nil
}
