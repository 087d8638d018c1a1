package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nodekit/presetctl/internal/config"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/snippet"
	"github.com/nodekit/presetctl/internal/ui"
)

// SharesCmd lists the local registry of previously uploaded snippets.
type SharesCmd struct{}

// Run executes the shares command.
func (c *SharesCmd) Run(ctx context.Context) error {
	path, err := config.RegistryPath()
	if err != nil {
		return err
	}

	entries, err := snippet.LoadRegistry(path)
	if err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		if entries == nil {
			entries = []snippet.RegistryEntry{}
		}

		return outfmt.WriteJSON(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No snippets uploaded yet")

		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Filename,
			e.URL,
			e.UploadedAt.Format("2006-01-02 15:04"),
		})
	}

	colorEnabled := false
	if u := ui.FromContext(ctx); u != nil {
		colorEnabled = u.Out().ColorEnabled()
	}

	fmt.Fprint(os.Stdout, ui.RenderTable(
		[]string{"File", "URL", "Uploaded"},
		rows,
		colorEnabled,
		0,
	))
	fmt.Fprintf(os.Stdout, "\n%d uploads\n", len(entries))

	return nil
}
