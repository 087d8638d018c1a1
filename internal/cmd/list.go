package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/nodekit/presetctl/internal/config"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/ui"
)

// ListCmd lists all presets, sorted by name. Management mode widens the view
// to include file paths and the management action hints; it is taken from the
// --manage flag or from the per-graph toggle persisted in config.
type ListCmd struct {
	Graph  string `help:"Graph document path (looks up the persisted management-mode toggle)" name:"graph" short:"g"`
	Manage bool   `help:"Management view" name:"manage"`
}

// presetInfo is one row of the listing.
type presetInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Run executes the list command.
func (c *ListCmd) Run(ctx context.Context) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	presets, err := st.List()
	if err != nil {
		return err
	}

	infos := make([]presetInfo, 0, len(presets))
	for _, p := range presets {
		info := presetInfo{Name: p.Name(), Path: p.Path()}

		if fi, statErr := os.Stat(p.Path()); statErr == nil {
			info.Size = fi.Size()
			info.Modified = fi.ModTime()
		}

		infos = append(infos, info)
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, infos)
	}

	manage := c.Manage
	if !manage && c.Graph != "" {
		if abs, absErr := filepath.Abs(c.Graph); absErr == nil {
			manage = config.FromContext(ctx).ManageModeFor(abs)
		}
	}

	if len(infos) == 0 {
		fmt.Fprintln(os.Stdout, "No presets saved yet")

		return nil
	}

	headers := []string{"Name", "Size", "Modified"}
	if manage {
		headers = append(headers, "Path")
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		row := []string{
			info.Name,
			fmt.Sprintf("%d", info.Size),
			info.Modified.Format("2006-01-02 15:04"),
		}

		if manage {
			row = append(row, info.Path)
		}

		rows = append(rows, row)
	}

	colorEnabled := false
	if u := ui.FromContext(ctx); u != nil {
		colorEnabled = u.Out().ColorEnabled()
	}

	// Clamp the table to the terminal width when stdout is a TTY.
	maxWidth := 0
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			maxWidth = w
		}
	}

	fmt.Fprint(os.Stdout, ui.RenderTable(headers, rows, colorEnabled, maxWidth))
	fmt.Fprintf(os.Stdout, "\n%d presets\n", len(infos))

	if manage {
		fmt.Fprintln(os.Stdout, "Manage with: presetctl share|export|rename|delete NAME")
	}

	return nil
}
