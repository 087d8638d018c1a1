package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nodekit/presetctl/internal/graph"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/ui"
)

// SaveCmd saves the selected nodes of a graph document as a named preset.
// An existing preset under the same name is overwritten silently.
type SaveCmd struct {
	Name  string `arg:"" optional:"" help:"Preset name"`
	Graph string `help:"Graph document path" name:"graph" short:"g"`
}

// Run executes the save command.
func (c *SaveCmd) Run(ctx context.Context) error {
	// Each missing input gets its own message, checked before any effect.
	if c.Graph == "" {
		return errors.New("graph document is not specified")
	}

	if c.Name == "" {
		return errors.New("preset name is not specified")
	}

	doc, err := graph.Load(c.Graph)
	if err != nil {
		return err
	}

	sub, err := doc.SelectedSubgraph()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(sub, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing subgraph: %w", err)
	}
	data = append(data, '\n')

	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	path, err := st.Write(c.Name, data)
	if err != nil {
		return err
	}

	slog.Debug("saved preset", "name", c.Name, "path", path, "nodes", len(sub.Nodes))

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]any{
			"name":  c.Name,
			"path":  path,
			"nodes": len(sub.Nodes),
		})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Saved %d selected nodes to %s", len(sub.Nodes), path)
	} else {
		fmt.Fprintf(os.Stdout, "Saved %d selected nodes to %s\n", len(sub.Nodes), path)
	}

	return nil
}
