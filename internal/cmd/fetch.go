package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nodekit/presetctl/internal/actions"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/snippet"
	"github.com/nodekit/presetctl/internal/ui"
)

// FetchCmd downloads a snippet and stores it as a preset. Fetching never
// overwrites an existing preset. When the identifier is omitted and prompting
// is allowed, the clipboard is consulted: a shared snippet URL usually
// arrives by being copied from a chat or browser.
type FetchCmd struct {
	Name string `arg:"" optional:"" help:"Preset name"`
	ID   string `arg:"" optional:"" help:"Snippet identifier or full URL (defaults to clipboard)"`
}

// Run executes the fetch command.
func (c *FetchCmd) Run(ctx context.Context, root *RootFlags) error {
	if c.Name == "" {
		return errors.New("preset name is not specified")
	}

	id := c.ID
	if id == "" && !root.NoInput {
		clip, err := actions.PasteFromClipboard()
		if err == nil {
			id = clip
		}
	}

	if id == "" {
		return errors.New("snippet identifier is not specified")
	}

	client := snippet.ClientFromContext(ctx)
	if client == nil {
		return errors.New("snippet client not found in context")
	}

	doc, err := client.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching snippet (check your internet connection): %w", err)
	}

	canonical, err := snippet.Canonical(doc)
	if err != nil {
		return err
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	path, err := st.WriteNew(c.Name, canonical)
	if err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]string{
			"name": c.Name,
			"id":   snippet.ExtractID(id),
			"path": path,
		})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Imported %q as %q", id, c.Name)
	} else {
		fmt.Fprintf(os.Stdout, "Imported %q as %q\n", id, c.Name)
	}

	return nil
}
