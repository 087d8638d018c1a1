package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nodekit/presetctl/internal/graph"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/preset"
	"github.com/nodekit/presetctl/internal/tui"
	"github.com/nodekit/presetctl/internal/ui"
)

// ApplyCmd inserts a preset's subgraph into a graph document. When the name
// is omitted on a terminal, an interactive picker is shown.
type ApplyCmd struct {
	Name  string `arg:"" optional:"" help:"Preset name (omit to pick interactively)"`
	Graph string `help:"Graph document path" name:"graph" short:"g"`
}

// Run executes the apply command.
func (c *ApplyCmd) Run(ctx context.Context, root *RootFlags) error {
	if c.Graph == "" {
		return errors.New("graph document is not specified")
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		// TTY gate: interactive picker only on a terminal, not JSON, not --no-input.
		if !isatty.IsTerminal(os.Stdout.Fd()) || outfmt.IsJSON(ctx) || root.NoInput {
			return errors.New("preset name is not specified")
		}

		name, err = pickPreset(st)
		if err != nil {
			return err
		}

		if name == "" {
			return nil // cancelled
		}
	}

	data, err := st.Read(name)
	if err != nil {
		return err
	}

	var sub graph.Document
	if err := json.Unmarshal(data, &sub); err != nil {
		return fmt.Errorf("parsing preset %q: %w", name, err)
	}

	doc, err := graph.Load(c.Graph)
	if err != nil {
		return err
	}

	added := doc.Merge(&sub)

	if err := graph.Save(c.Graph, doc); err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]any{
			"name":  name,
			"graph": c.Graph,
			"nodes": added,
		})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Inserted %d nodes from preset %q into %s", added, name, c.Graph)
	} else {
		fmt.Fprintf(os.Stdout, "Inserted %d nodes from preset %q into %s\n", added, name, c.Graph)
	}

	return nil
}

// pickPreset runs the interactive preset picker and returns the chosen name,
// or "" if the user cancelled.
func pickPreset(st *preset.Store) (string, error) {
	presets, err := st.List()
	if err != nil {
		return "", err
	}

	if len(presets) == 0 {
		return "", errors.New("no presets saved yet")
	}

	items := make([]list.Item, len(presets))
	for i, p := range presets {
		var size int64
		var modified time.Time

		if info, statErr := os.Stat(p.Path()); statErr == nil {
			size = info.Size()
			modified = info.ModTime()
		}

		items[i] = tui.NewPresetItem(p.Name(), p.Path(), size, modified)
	}

	m := tui.NewPicker(items)

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithInputTTY())

	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("interactive picker: %w", err)
	}

	picker, ok := result.(tui.Model)
	if !ok {
		return "", errors.New("unexpected picker result type")
	}

	if picker.Cancelled() {
		return "", nil
	}

	return picker.Choice(), nil
}
