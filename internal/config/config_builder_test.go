package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Name: "FEED"}},
		&StructuredConfig{App: App{PageLimit: 25}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "FEED", cfg.App.Name)
	assert.Equal(t, 25, cfg.App.PageLimit)
}

// TestBuild_LaterSourceWins verifies that a later non-zero value overrides an
// earlier one, while zero values leave earlier values intact.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Workers: Workers{PollInterval: time.Minute, ReconnectDelay: time.Second}},
		&StructuredConfig{Workers: Workers{PollInterval: 20 * time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, time.Second, cfg.Workers.ReconnectDelay)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_NAME", "env-name")
	t.Setenv("WORKERS_POLL_INTERVAL", "7s")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-name", b.configs[0].App.Name)
	assert.Equal(t, 7*time.Second, b.configs[0].Workers.PollInterval)
}

func TestWithEnv_SetsError_OnBadValue(t *testing.T) {
	t.Setenv("APP_PAGE_LIMIT", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "localhost:9000", "-limit", "10"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, 10, b.configs[0].App.PageLimit)
}

func TestWithFlags_SetsError_OnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Name = "json-name"
	payload.Workers.ReconnectDelay = Duration(3 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-name", b.configs[1].App.Name)
	assert.Equal(t, 3*time.Second, b.configs[1].Workers.ReconnectDelay)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Name = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Name)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestChain_JSONOverridesEnv verifies the documented precedence:
// env < flags < json.
func TestChain_JSONOverridesEnv(t *testing.T) {
	t.Setenv("APP_NAME", "from-env")
	t.Setenv("APP_HOME_PATH", "/ENV")

	payload := StructuredJSONConfig{}
	payload.App.Name = "from-json"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-c", path, "-limit", "5"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Name)
	assert.Equal(t, "/ENV", cfg.App.HomePath)
	assert.Equal(t, 5, cfg.App.PageLimit)
}
