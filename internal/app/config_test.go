package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, realpath, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, realpath)

	assert.Equal(t, "release", cfg.Server.RunMode)
	assert.Equal(t, ":9000", cfg.Server.HttpPort)
	assert.Equal(t, 60, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "calendar.json", cfg.Sync.PathKey)
	assert.Equal(t, "*/5 * * * *", cfg.Sync.RefreshCron)
	assert.Equal(t, "12h", cfg.Security.TokenExpiry)
	assert.Empty(t, cfg.Calendar.Categories)
	assert.False(t, cfg.RemoteEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  http-port: :8080
  run-mode: debug

security:
  admin-password-digest: "sha256:abc"
  token-expiry: 7d

calendar:
  categories:
    - seminars
    - holidays

sync:
  path-key: takvim.json
  remote:
    type: s3
    bucket-name: calendars
`)

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HttpPort)
	assert.Equal(t, "debug", cfg.Server.RunMode)
	assert.Equal(t, "sha256:abc", cfg.Security.AdminPasswordDigest)
	assert.Equal(t, []string{"seminars", "holidays"}, cfg.Calendar.Categories)
	assert.Equal(t, "takvim.json", cfg.Sync.PathKey)
	assert.True(t, cfg.RemoteEnabled())
	assert.Equal(t, "s3", cfg.Sync.Remote.Type)

	// partially specified sections still receive defaults
	assert.Equal(t, 60, cfg.Server.ReadTimeout)

	assert.Equal(t, 7*24*time.Hour, cfg.GetTokenExpiry())
}

func TestLoadConfigEnvDigestWins(t *testing.T) {
	path := writeConfigFile(t, `
security:
  admin-password-digest: "sha256:from-file"
`)

	t.Setenv(AdminDigestEnv, "sha256:from-env")

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sha256:from-env", cfg.Security.AdminPasswordDigest)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")

	_, _, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetTokenExpiryFallback(t *testing.T) {
	cfg := &AppConfig{}
	cfg.Security.TokenExpiry = "not-a-duration"
	assert.Equal(t, 12*time.Hour, cfg.GetTokenExpiry())
}
