package cmd

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodekit/presetctl/internal/config"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/ui"
)

// stdoutProxy resolves os.Stdout at write time so that a UI created in
// testCtx still honors captureStdout's later redirection.
type stdoutProxy struct{}

func (stdoutProxy) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())

	data, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(data)
}

// testCtx builds a command context over a temp presets directory.
func testCtx(t *testing.T, jsonMode bool) (context.Context, string) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	presetsDir := t.TempDir()
	cfg := &config.Config{PresetsDir: presetsDir}

	u, err := ui.New(ui.Options{Color: "never", Stdout: stdoutProxy{}})
	require.NoError(t, err)

	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, outfmt.Mode{JSON: jsonMode})
	ctx = config.WithConfig(ctx, cfg)
	ctx = ui.WithUI(ctx, u)

	return ctx, presetsDir
}
