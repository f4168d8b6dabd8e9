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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads all fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url":           "http://api.example:8080",
			"request_timeout":           "30s",
			"database_path":             "other.db",
			"log_level":                 "warn",
			"redirect_on_profile_error": false,
		})
		cfg := &Config{}
		cfg.LoadDefaults()

		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "http://api.example:8080", cfg.ServerBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "other.db", cfg.DatabasePath)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.False(t, cfg.RedirectOnProfileError)
	})

	t.Run("absent keys keep earlier values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"request_timeout": 2000000000})
		cfg := &Config{}
		cfg.LoadDefaults()

		parseJson(cfg, []string{"-c", path})

		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "https://groupgo.onrender.com", cfg.ServerBaseURL)
		assert.True(t, cfg.RedirectOnProfileError)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		cfg := &Config{ServerBaseURL: "keep"}
		parseJson(cfg, []string{"-a", "x"})
		assert.Equal(t, "keep", cfg.ServerBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", "/nonexistent/cfg.json"}) })
	})
}
