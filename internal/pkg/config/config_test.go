package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadFromConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.Commit.GuardTTL)
	assert.Equal(t, "banqi-core", cfg.Otel.ServiceName)
	assert.Equal(t, "payment-proofs", cfg.GCS.FolderName)
}

func TestLoadFromConfigReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9000
mongo:
  uri: mongodb://file-host:27017
  db_name: fromfile
kafka:
  audit_topic: file-topic
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("MONGO_URI", "mongodb://env-host:27017")

	cfg, err := LoadFromConfig()
	require.NoError(t, err)

	// env wins over file, file wins over zero value
	assert.Equal(t, "mongodb://env-host:27017", cfg.Mongo.URI)
	assert.Equal(t, "fromfile", cfg.Mongo.DBName)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "file-topic", cfg.Kafka.AuditTopic)
}

func TestLoadFromConfigMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := LoadFromConfig()
	assert.Error(t, err)
}

func TestGetEnvOrDefaultHelpers(t *testing.T) {
	t.Setenv("SOME_STRING", "value")
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_BAD_INT", "nope")

	assert.Equal(t, "value", GetEnvOrDefaultAsString("SOME_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvOrDefaultAsString("SOME_MISSING", "fallback"))
	assert.Equal(t, 42, GetEnvOrDefaultAsInt("SOME_INT", 7))
	assert.Equal(t, 7, GetEnvOrDefaultAsInt("SOME_BAD_INT", 7))
	assert.Equal(t, uint64(7), GetEnvOrDefaultAsUint64("SOME_MISSING", 7))
}
