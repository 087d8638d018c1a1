package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodekit/presetctl/internal/config"
)

func TestConfigPathCmd(t *testing.T) {
	ctx, _ := testCtx(t, false)

	output := captureStdout(t, func() {
		require.NoError(t, (&ConfigPathCmd{}).Run(ctx))
	})

	assert.True(t, strings.HasSuffix(strings.TrimSpace(output), "config.json"))
}

func TestConfigSetGetRoundtrip(t *testing.T) {
	ctx, _ := testCtx(t, false)

	require.NoError(t, (&ConfigSetCmd{Key: "service_url", Value: "https://snippets.example.com"}).Run(ctx))

	// Get reads the config carried in context, so reload behind it.
	cfgPath, err := config.ConfigPath()
	require.NoError(t, err)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	ctx = config.WithConfig(ctx, cfg)

	output := captureStdout(t, func() {
		require.NoError(t, (&ConfigGetCmd{Key: "service_url"}).Run(ctx))
	})

	assert.Equal(t, "https://snippets.example.com", strings.TrimSpace(output))
}

func TestConfigSetRejectsInvalid(t *testing.T) {
	ctx, _ := testCtx(t, false)

	require.Error(t, (&ConfigSetCmd{Key: "service_url", Value: "not a url"}).Run(ctx))
	require.Error(t, (&ConfigSetCmd{Key: "auto_copy", Value: "maybe"}).Run(ctx))
	require.Error(t, (&ConfigSetCmd{Key: "unknown_key", Value: "x"}).Run(ctx))
}

func TestConfigGetUnset(t *testing.T) {
	ctx, _ := testCtx(t, false)

	output := captureStdout(t, func() {
		require.NoError(t, (&ConfigGetCmd{Key: "token"}).Run(ctx))
	})

	assert.Equal(t, "(unset)", strings.TrimSpace(output))
}

func TestConfigListShowsAllKeys(t *testing.T) {
	ctx, _ := testCtx(t, false)

	output := captureStdout(t, func() {
		require.NoError(t, (&ConfigListCmd{}).Run(ctx))
	})

	for _, key := range config.KnownKeys() {
		assert.Contains(t, output, key)
	}
}

func TestConfigUnset(t *testing.T) {
	ctx, _ := testCtx(t, false)

	require.NoError(t, (&ConfigSetCmd{Key: "auto_copy", Value: "false"}).Run(ctx))
	require.NoError(t, (&ConfigUnsetCmd{Key: "auto_copy"}).Run(ctx))

	cfgPath, err := config.ConfigPath()
	require.NoError(t, err)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	_, ok := cfg.Get("auto_copy")
	assert.False(t, ok)
}
