package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "public.yaml", `
api_base_url: http://localhost:8080
realtime_url: ws://localhost:8080/api/notifications/ws
posts_per_page: 10
post_max_len: 5000
notification_poll_interval: 30s
`)
	writeConfig(t, dir, "private.yaml", `search_api_key: masterKey`)

	cfg := MustLoad(dir)

	assert.Equal(t, "http://localhost:8080", cfg.Public.APIBaseURL)
	assert.Equal(t, "ws://localhost:8080/api/notifications/ws", cfg.Public.RealtimeURL)
	assert.Equal(t, 10, cfg.Public.PostsPerPage)
	assert.Equal(t, 30*time.Second, cfg.Public.NotificationPollInterval)
	assert.Equal(t, "masterKey", cfg.SearchAPIKey())
}

func TestMustLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "public.yaml", `api_base_url: http://localhost:8080`)
	writeConfig(t, dir, "private.yaml", ``)

	cfg := MustLoad(dir)

	assert.Equal(t, "8081", cfg.Public.ListenPort)
	assert.Equal(t, 10, cfg.Public.PostsPerPage)
	assert.Equal(t, 20, cfg.Public.ThreadsPerPage)
	assert.Equal(t, 5000, cfg.Public.PostMaxLen)
	assert.Equal(t, time.Minute, cfg.Public.NotificationPollInterval)
}

func TestMustLoadMissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}
