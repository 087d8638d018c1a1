package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/ui"
)

// RenameCmd renames a preset. Renaming never overwrites an existing preset.
type RenameCmd struct {
	Old string `arg:"" optional:"" help:"Current preset name"`
	New string `arg:"" optional:"" help:"New preset name"`
}

// Run executes the rename command.
func (c *RenameCmd) Run(ctx context.Context) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	if err := st.Rename(c.Old, c.New); err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]string{
			"old": c.Old,
			"new": c.New,
		})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Renamed %q to %q", c.Old, c.New)
	} else {
		fmt.Fprintf(os.Stdout, "Renamed %q to %q\n", c.Old, c.New)
	}

	return nil
}
