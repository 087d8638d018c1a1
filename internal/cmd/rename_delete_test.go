package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodekit/presetctl/internal/preset"
)

func seedPreset(t *testing.T, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644))
}

func TestRenameCommand(t *testing.T) {
	ctx, presetsDir := testCtx(t, false)
	seedPreset(t, presetsDir, "a", "content-a")

	output := captureStdout(t, func() {
		require.NoError(t, (&RenameCmd{Old: "a", New: "b"}).Run(ctx))
	})
	assert.Contains(t, output, `Renamed "a" to "b"`)

	_, err := os.Stat(filepath.Join(presetsDir, "a.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	data, err := os.ReadFile(filepath.Join(presetsDir, "b.json"))
	require.NoError(t, err)
	assert.Equal(t, "content-a", string(data))
}

func TestRenameCommandConflict(t *testing.T) {
	ctx, presetsDir := testCtx(t, false)
	seedPreset(t, presetsDir, "a", "content-a")
	seedPreset(t, presetsDir, "b", "content-b")

	err := (&RenameCmd{Old: "a", New: "b"}).Run(ctx)
	require.ErrorIs(t, err, preset.ErrExists)
}

func TestRenameCommandValidation(t *testing.T) {
	ctx, _ := testCtx(t, false)

	err := (&RenameCmd{New: "b"}).Run(ctx)
	require.ErrorIs(t, err, preset.ErrNameRequired)

	err = (&RenameCmd{Old: "a"}).Run(ctx)
	require.ErrorIs(t, err, preset.ErrNameRequired)
}

func TestDeleteForced(t *testing.T) {
	ctx, presetsDir := testCtx(t, false)
	seedPreset(t, presetsDir, "doomed", "{}")

	output := captureStdout(t, func() {
		require.NoError(t, (&DeleteCmd{Name: "doomed"}).Run(ctx, &RootFlags{Force: true}))
	})
	assert.Contains(t, output, `Removed "doomed"`)

	_, err := os.Stat(filepath.Join(presetsDir, "doomed.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeleteMissingPreset(t *testing.T) {
	ctx, _ := testCtx(t, false)

	err := (&DeleteCmd{Name: "ghost"}).Run(ctx, &RootFlags{Force: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeleteRefusesWithoutConfirmation(t *testing.T) {
	ctx, presetsDir := testCtx(t, false)
	seedPreset(t, presetsDir, "kept", "{}")

	err := (&DeleteCmd{Name: "kept"}).Run(ctx, &RootFlags{NoInput: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirmation")

	// File untouched.
	_, statErr := os.Stat(filepath.Join(presetsDir, "kept.json"))
	require.NoError(t, statErr)
}
