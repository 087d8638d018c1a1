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

func TestDirRespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "presetctl"), got)
}

func TestDefaultPresetsDirRespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultPresetsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "presetctl", "presets"), got)
}

func TestRegistryPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := RegistryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "presetctl", "uploads.jsonl"), got)
}

func TestLoadMissingReturnsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	b := true
	cfg := &Config{
		ServiceURL: "https://paste.example.com",
		AutoCopy:   &b,
		Timeout:    "10s",
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://paste.example.com", loaded.ServiceURL)
	require.NotNil(t, loaded.AutoCopy)
	assert.True(t, *loaded.AutoCopy)
	assert.Equal(t, 10*time.Second, loaded.TimeoutDuration())
}

func TestLoadToleratesJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{service_url: 'https://p.example', // comment\n}"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://p.example", cfg.ServiceURL)
}

func TestSetGetUnset(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.Set("auto_open", "true"))
	val, ok := cfg.Get("auto_open")
	assert.True(t, ok)
	assert.Equal(t, "true", val)

	require.NoError(t, cfg.Unset("auto_open"))
	_, ok = cfg.Get("auto_open")
	assert.False(t, ok)
}

func TestSetUnknownKey(t *testing.T) {
	cfg := &Config{}

	err := cfg.Set("nope", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestSetInvalidValues(t *testing.T) {
	cfg := &Config{}

	require.Error(t, cfg.Set("auto_copy", "yes"))
	require.Error(t, cfg.Set("timeout", "soon"))
	require.Error(t, cfg.Set("service_url", "ftp://p.example"))
}

func TestTimeoutDurationDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 30*time.Second, cfg.TimeoutDuration())

	cfg.Timeout = "garbage"
	assert.Equal(t, 30*time.Second, cfg.TimeoutDuration())
}

func TestEffectivePresetsDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := &Config{PresetsDir: "/srv/presets"}
	dir, err := cfg.EffectivePresetsDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/presets", dir)

	cfg.PresetsDir = ""
	dir, err = cfg.EffectivePresetsDir()
	require.NoError(t, err)
	assert.Contains(t, dir, "presetctl")
}

func TestManageModePerGraph(t *testing.T) {
	cfg := &Config{}

	assert.False(t, cfg.ManageModeFor("/g/a.json"))

	cfg.SetManageMode("/g/a.json", true)
	assert.True(t, cfg.ManageModeFor("/g/a.json"))
	assert.False(t, cfg.ManageModeFor("/g/b.json"))

	cfg.SetManageMode("/g/a.json", false)
	assert.False(t, cfg.ManageModeFor("/g/a.json"))
	assert.Empty(t, cfg.ManageMode)
}

func TestSavedFileIsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := &Config{Token: "tok"}
	cfg.SetManageMode("/g/a.json", true)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "tok", parsed["token"])
}
