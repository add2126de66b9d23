package tool

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "explicit config path must exist")

	// default path missing is fine
	old := ConfigPath
	ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { ConfigPath = old }()

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL.Std())
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL.Std())
	assert.False(t, cfg.StrictSessions)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: 9090\nmodel: gpt-4o\nsession_ttl: 1h\nstrict_sessions: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, time.Hour, cfg.SessionTTL.Std())
	assert.True(t, cfg.StrictSessions)
	// untouched keys keep their defaults
	assert.Equal(t, 500, cfg.MaxTokens)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\n"), 0o644))

	t.Setenv("SCRIBE_PORT", "7070")
	t.Setenv("SCRIBE_SESSION_TTL", "30m")
	t.Setenv("AUTH_PASSWORD", "hunter2")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL.Std())
	assert.Equal(t, "hunter2", cfg.AuthPassword)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a port\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
