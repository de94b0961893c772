package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// MongoDB connection config
type MongoConfig struct {
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	URI             string        `yaml:"uri"`
	DBName          string        `yaml:"db_name"`
	MaxPoolSize     uint64        `yaml:"max_pool_size"`
	MinPoolSize     uint64        `yaml:"min_pool_size"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_minutes"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout_seconds"`
}

// Redis connection config
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
}

// Kafka connection config
type KafkaConfig struct {
	Server           string `yaml:"server"`
	AuditTopic       string `yaml:"audit_topic"`
	SecurityProtocol string `yaml:"security_protocol"`
	SASLMechanism    string `yaml:"sasl_mechanism"`
	SASLUsername     string `yaml:"sasl_username"`
	SASLPassword     string `yaml:"sasl_password"`
	SessionTimeoutMs int    `yaml:"session_timeout_ms"`
	ClientID         string `yaml:"client_id"`
}

type PubSubConfig struct {
	ProjectID         string `yaml:"project_id"`
	NotificationTopic string `yaml:"notification_topic"`
}

type GCSConfig struct {
	BucketName string `yaml:"bucket_name"`
	FolderName string `yaml:"folder_name"`
}

type CommitConfig struct {
	GuardTTL time.Duration `yaml:"guard_ttl_minutes"`
}

type OtelConfig struct {
	ServiceName  string `yaml:"service_name"`
	CollectorURL string `yaml:"collector_url"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server  ServerConfig `yaml:"server"`
	Mongo   MongoConfig  `yaml:"mongo"`
	Redis   RedisConfig  `yaml:"redis"`
	Kafka   KafkaConfig  `yaml:"kafka"`
	PubSub  PubSubConfig `yaml:"pubsub"`
	GCS     GCSConfig    `yaml:"gcs"`
	Commit  CommitConfig `yaml:"commit"`
	Otel    OtelConfig   `yaml:"otel"`
	Logging LogConfig    `yaml:"logging"`
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// server config defaults
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", cfg.Server.Port)

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", "info")

	// MongoDB config defaults
	cfg.Mongo.URI = GetEnvOrDefaultAsString("MONGO_URI", cfg.Mongo.URI)
	cfg.Mongo.DBName = GetEnvOrDefaultAsString("MONGO_DB_NAME", cfg.Mongo.DBName)
	cfg.Mongo.Username = GetEnvOrDefaultAsString("MONGO_USERNAME", cfg.Mongo.Username)
	cfg.Mongo.Password = GetEnvOrDefaultAsString("MONGO_PASSWORD", cfg.Mongo.Password)
	cfg.Mongo.MaxPoolSize = GetEnvOrDefaultAsUint64("MONGO_MAX_POOL_SIZE", cfg.Mongo.MaxPoolSize)
	cfg.Mongo.MinPoolSize = GetEnvOrDefaultAsUint64("MONGO_MIN_POOL_SIZE", cfg.Mongo.MinPoolSize)
	cfg.Mongo.MaxConnIdleTime = time.Duration(GetEnvOrDefaultAsInt("MONGO_MAX_CONN_IDLE_MINUTES", 30)) * time.Minute
	cfg.Mongo.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second

	// Redis config defaults
	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("REDIS_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second

	// Kafka config defaults
	cfg.Kafka.Server = GetEnvOrDefaultAsString("KAFKA_SERVER", cfg.Kafka.Server)
	cfg.Kafka.AuditTopic = GetEnvOrDefaultAsString("KAFKA_AUDIT_TOPIC", cfg.Kafka.AuditTopic)
	cfg.Kafka.SecurityProtocol = GetEnvOrDefaultAsString("KAFKA_SECURITY_PROTOCOL", cfg.Kafka.SecurityProtocol)
	cfg.Kafka.SASLMechanism = GetEnvOrDefaultAsString("KAFKA_SASL_MECHANISM", cfg.Kafka.SASLMechanism)
	cfg.Kafka.SASLUsername = GetEnvOrDefaultAsString("KAFKA_SASL_USERNAME", cfg.Kafka.SASLUsername)
	cfg.Kafka.SASLPassword = GetEnvOrDefaultAsString("KAFKA_SASL_PASSWORD", cfg.Kafka.SASLPassword)
	cfg.Kafka.SessionTimeoutMs = GetEnvOrDefaultAsInt("KAFKA_SESSION_TIMEOUT_MS", 45000)
	cfg.Kafka.ClientID = GetEnvOrDefaultAsString("KAFKA_CLIENT_ID", cfg.Kafka.ClientID)

	// PubSub config defaults
	cfg.PubSub.ProjectID = GetEnvOrDefaultAsString("PUBSUB_PROJECT_ID", cfg.PubSub.ProjectID)
	cfg.PubSub.NotificationTopic = GetEnvOrDefaultAsString("PUBSUB_NOTIFICATION_TOPIC", cfg.PubSub.NotificationTopic)

	// GCS config defaults
	cfg.GCS.BucketName = GetEnvOrDefaultAsString("GCS_BUCKET_NAME", cfg.GCS.BucketName)
	cfg.GCS.FolderName = GetEnvOrDefaultAsString("GCS_FOLDER_NAME", "payment-proofs")

	// Commit guard defaults
	cfg.Commit.GuardTTL = time.Duration(GetEnvOrDefaultAsInt("COMMIT_GUARD_TTL_MINUTES", 10)) * time.Minute

	// Otel defaults
	cfg.Otel.ServiceName = GetEnvOrDefaultAsString("OTEL_SERVICE_NAME", "banqi-core")
	cfg.Otel.CollectorURL = GetEnvOrDefaultAsString("OTEL_COLLECTOR_URL", cfg.Otel.CollectorURL)

	return cfg
}

// LoadFromConfig reads configs/config.yaml (path overridable via CONFIG_PATH),
// then applies env-var overrides. A missing file is fine for env-only runs.
func LoadFromConfig() (*AppConfig, error) {
	// local development convenience, ignored when absent
	_ = godotenv.Load()

	cfg := &AppConfig{}

	path := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return assignDefaultConfigValues(cfg), nil
}

func GetEnvOrDefaultAsString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetEnvOrDefaultAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func GetEnvOrDefaultAsUint64(key string, fallback uint64) uint64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
