package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/ui"
)

// ExportCmd copies a preset to an external file. An existing file at the
// target path is overwritten.
type ExportCmd struct {
	Name string `arg:"" optional:"" help:"Preset name"`
	Path string `arg:"" optional:"" help:"Target file path"`
}

// Run executes the export command.
func (c *ExportCmd) Run(ctx context.Context) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	if err := st.ExportFile(c.Name, c.Path); err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]string{
			"name": c.Name,
			"path": c.Path,
		})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Saved %q as %s", c.Name, c.Path)
	} else {
		fmt.Fprintf(os.Stdout, "Saved %q as %s\n", c.Name, c.Path)
	}

	return nil
}

// ImportCmd copies an external file into the preset store. An existing preset
// under the same name is overwritten.
type ImportCmd struct {
	Path string `arg:"" optional:"" help:"Source file path"`
	Name string `arg:"" optional:"" help:"Preset name"`
}

// Run executes the import command.
func (c *ImportCmd) Run(ctx context.Context) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	if err := st.ImportFile(c.Path, c.Name); err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]string{
			"name": c.Name,
			"path": st.PresetPath(c.Name),
		})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Imported %s as %q", c.Path, c.Name)
	} else {
		fmt.Fprintf(os.Stdout, "Imported %s as %q\n", c.Path, c.Name)
	}

	return nil
}
