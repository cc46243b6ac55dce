package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelup/internal/syncer"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.json")
	in := DefaultSettings()
	in.SheetID = " sheet-1 "
	in.APIKey = "key-123456"
	in.AutoSync = true
	in.SyncInterval = 15
	in.Theme = "light"

	require.NoError(t, SaveSettings(path, in))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := LoadSettings(path)
	require.NoError(t, err)
	in.SheetID = "sheet-1"
	assert.Equal(t, in, out)
	assert.Equal(t, 15*time.Minute, out.Interval())
}

func TestLoadSettingsPartialAndInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sheet_id":"abc","sync_interval":7,"backend":"SQLite"}`), 0o600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.SheetID)
	assert.Equal(t, 5, s.SyncInterval)
	assert.Equal(t, BackendSQLite, s.Backend)
	assert.True(t, s.Notifications)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = LoadSettings(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	require.ErrorIs(t, s.Validate(), syncer.ErrNotConfigured)
	s.SheetID = "id"
	require.ErrorIs(t, s.Validate(), syncer.ErrNotConfigured)
	s.APIKey = "key"
	require.NoError(t, s.Validate())

	local := DefaultSettings()
	local.Backend = BackendSQLite
	require.NoError(t, local.Validate())
}

func TestSettingsSet(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Set("auto_sync", "true"))
	require.NoError(t, s.Set("sync_interval", "30"))
	require.NoError(t, s.Set("backend", "sqlite"))
	assert.True(t, s.AutoSync)
	assert.Equal(t, 30, s.SyncInterval)
	assert.Equal(t, BackendSQLite, s.Backend)

	assert.Error(t, s.Set("sync_interval", "2"))
	assert.Error(t, s.Set("auto_sync", "perhaps"))
	assert.Error(t, s.Set("backend", "excel"))
	assert.Error(t, s.Set("colour", "red"))
}

func TestMasked(t *testing.T) {
	s := Settings{APIKey: "AIzaSecret1234"}
	assert.Equal(t, "**********1234", s.Masked().APIKey)
	assert.Equal(t, "AIzaSecret1234", s.APIKey)
	assert.Equal(t, "***", Settings{APIKey: "abc"}.Masked().APIKey)
}

func TestLoadAppliesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, SaveSettings(path, Settings{SheetID: "from-file", APIKey: "file-key", SyncInterval: 5}))

	t.Setenv("LEVELUP_SETTINGS", path)
	t.Setenv("LEVELUP_API_KEY", "env-key")
	t.Setenv("LEVELUP_TIMEOUT", "5s")
	t.Setenv("LEVELUP_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "from-file", cfg.Settings.SheetID)
	assert.Equal(t, "env-key", cfg.Settings.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Env.Timeout)
	assert.Equal(t, "debug", cfg.Env.LogLevel)
}

func TestParseEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("LEVELUP_TIMEOUT", "soon")
	_, err := ParseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "k=v")
}
