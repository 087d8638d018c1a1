package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	ctx, _ := testCtx(t, false)

	output := captureStdout(t, func() {
		require.NoError(t, (&ListCmd{}).Run(ctx))
	})

	assert.Contains(t, output, "No presets saved yet")
}

func TestListSorted(t *testing.T) {
	ctx, presetsDir := testCtx(t, false)
	seedPreset(t, presetsDir, "zeta", "{}")
	seedPreset(t, presetsDir, "alpha", "{}")

	output := captureStdout(t, func() {
		require.NoError(t, (&ListCmd{}).Run(ctx))
	})

	assert.Contains(t, output, "alpha")
	assert.Contains(t, output, "zeta")
	assert.Less(t, strings.Index(output, "alpha"), strings.Index(output, "zeta"))
	assert.Contains(t, output, "2 presets")
}

func TestListJSON(t *testing.T) {
	ctx, presetsDir := testCtx(t, true)
	seedPreset(t, presetsDir, "foo", `{"nodes":[]}`)

	output := captureStdout(t, func() {
		require.NoError(t, (&ListCmd{}).Run(ctx))
	})

	var infos []presetInfo
	require.NoError(t, json.Unmarshal([]byte(output), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "foo", infos[0].Name)
	assert.NotZero(t, infos[0].Size)
}

func TestListManageFlagShowsPaths(t *testing.T) {
	ctx, presetsDir := testCtx(t, false)
	seedPreset(t, presetsDir, "foo", "{}")

	output := captureStdout(t, func() {
		require.NoError(t, (&ListCmd{Manage: true}).Run(ctx))
	})

	assert.Contains(t, output, "Path")
	assert.Contains(t, output, "Manage with:")
}
