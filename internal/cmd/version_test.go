package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() { version, commit, date = origVersion, origCommit, origDate }()

	version, commit, date = "dev", "", ""
	assert.Equal(t, "dev", VersionString())

	version, commit, date = "1.2.3", "abc1234", ""
	assert.Equal(t, "1.2.3 (abc1234)", VersionString())

	version, commit, date = "1.2.3", "abc1234", "2026-01-01"
	assert.Equal(t, "1.2.3 (abc1234 2026-01-01)", VersionString())

	version, commit, date = "", "", ""
	assert.Equal(t, "dev", VersionString())
}

func TestVersionCmd(t *testing.T) {
	ctx, _ := testCtx(t, false)

	output := captureStdout(t, func() {
		require.NoError(t, (&VersionCmd{}).Run(ctx))
	})

	assert.Contains(t, output, "presetctl")
	assert.Contains(t, output, "go:")
}

func TestVersionCmdJSON(t *testing.T) {
	ctx, _ := testCtx(t, true)

	output := captureStdout(t, func() {
		require.NoError(t, (&VersionCmd{}).Run(ctx))
	})

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go")
}
