package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	t.Setenv("CONFIG", "")

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"endpoint_addr_http": "127.0.0.1:9000",
		"storage_type":       "postgres",
		"database_dsn":       "postgres://u:p@db/x",
		"mongo_uri":          "mongodb://mongo:27017",
		"mongo_database":     "qa",
		"sqlite_path":        "/var/lib/users.db",
		"cors_origin":        "https://front.example",
		"shutdown_timeout":   "3s",
		"log_level":          "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", full})

		assert.Equal(t, "127.0.0.1:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres", cfg.StorageType)
		assert.Equal(t, "postgres://u:p@db/x", cfg.DatabaseDSN)
		assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
		assert.Equal(t, "qa", cfg.MongoDatabase)
		assert.Equal(t, "/var/lib/users.db", cfg.SQLitePath)
		assert.Equal(t, "https://front.example", cfg.CORSOrigin)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"cors_origin": "",
		})
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", partial})

		assert.Empty(t, cfg.CORSOrigin)
		assert.Equal(t, ":3000", cfg.EndpointAddrHTTP)
		assert.Equal(t, StorageMongo, cfg.StorageType)
	})

	t.Run("file from CONFIG env", func(t *testing.T) {
		t.Setenv("CONFIG", full)
		cfg := &Config{}
		parseJson(cfg, nil)
		assert.Equal(t, "postgres", cfg.StorageType)
	})

	t.Run("no config and no flags → no changes", func(t *testing.T) {
		cfg := &Config{
			EndpointAddrHTTP: "defaults:1234",
			StorageType:      "memory",
			ShutdownTimeout:  2 * time.Minute,
		}
		parseJson(cfg, []string{"-a", ":1"})

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, "memory", cfg.StorageType)
		assert.Equal(t, 2*time.Minute, cfg.ShutdownTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-config", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
