package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Alerts    AlertConfig     `yaml:"alerts"`
	Sync      SyncConfig      `yaml:"sync"`
	JWT       JWTConfig       `yaml:"jwt"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Audit     AuditConfig     `yaml:"audit"`
}

type ServerConfig struct {
	AppEnv      string   `yaml:"app_env"`
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LoggerConfig struct {
	Level             string `yaml:"level"`
	Encoding          string `yaml:"encoding"`
	DisableCaller     bool   `yaml:"disable_caller"`
	DisableStacktrace bool   `yaml:"disable_stacktrace"`
}

// DatabaseConfig selects the relational store. Driver is one of mysql, postgres or sqlite.
type DatabaseConfig struct {
	Driver          string `yaml:"driver"`
	DSN             string `yaml:"dsn"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime int    `yaml:"conn_max_idle_time"`
	LogQueries      bool   `yaml:"log_queries"`
	// IsolationLevel is read_committed, repeatable_read or serializable; empty keeps the driver default.
	IsolationLevel  string `yaml:"isolation_level"`
}

// RedisConfig is optional; an empty Addr disables Redis and notification
// de-duplication falls back to the notification_logs table.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig is optional; no brokers means change events are only pushed over websocket.
type KafkaConfig struct {
	Brokers   []string `yaml:"brokers"`
	Topic     string   `yaml:"topic"`
	// QueueSize bounds the events waiting for the broker; further events are dropped.
	QueueSize int      `yaml:"queue_size"`
}

type AlertConfig struct {
	Recipients      []string `yaml:"recipients"`
	CooldownMinutes int      `yaml:"cooldown_minutes"`
	NotifySupplier  bool     `yaml:"notify_supplier"`
}

type SyncConfig struct {
	// DedupeCorrelationIDs rejects replays of the same (action, correlation id).
	DedupeCorrelationIDs bool `yaml:"dedupe_correlation_ids"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
}

type RateLimitConfig struct {
	WriteRate string `yaml:"write_rate"`
}

type AuditConfig struct {
	// LogFile mirrors every audit entry as a human readable line. Empty disables it.
	LogFile string `yaml:"log_file"`
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:      getEnv("APP_ENV", "dev"),
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "mysql"),
			DSN:             getEnv("DB_DSN", "root:root@tcp(localhost:3306)/inventory?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 3600),
			ConnMaxIdleTime: getEnvInt("DB_CONN_MAX_IDLE_TIME", 60),
			LogQueries:      getEnvBool("DB_LOG_QUERIES", false),
			IsolationLevel:  getEnv("DB_ISOLATION_LEVEL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:   getEnvSlice("KAFKA_BROKERS", nil),
			Topic:     getEnv("KAFKA_TOPIC_INVENTORY", "inventory.changes"),
			QueueSize: getEnvInt("KAFKA_QUEUE_SIZE", 1024),
		},
		Alerts: AlertConfig{
			Recipients:      getEnvSlice("ALERT_RECIPIENTS", []string{"admin"}),
			CooldownMinutes: getEnvInt("ALERT_COOLDOWN_MINUTES", 30),
			NotifySupplier:  getEnvBool("ALERT_NOTIFY_SUPPLIER", true),
		},
		Sync: SyncConfig{
			DedupeCorrelationIDs: getEnvBool("SYNC_DEDUPE_CORRELATION_IDS", false),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", "default_super_secret_key"),
		},
		RateLimit: RateLimitConfig{
			WriteRate: getEnv("RATE_LIMIT_WRITE", "120-M"),
		},
		Audit: AuditConfig{
			LogFile: getEnv("AUDIT_LOG_FILE", ""),
		},
	}
}

// Load reads the environment and then overlays CONFIG_FILE, if set.
func Load() (*Config, error) {
	cfg := LoadEnv()
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return cfg, nil
	}
	if err := cfg.MergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MergeFile overlays the YAML document at path on top of cfg. Keys absent from
// the file keep their current values.
func (c *Config) MergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		if value == "" {
			return nil
		}
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return fallback
}
