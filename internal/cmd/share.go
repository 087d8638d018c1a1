package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nodekit/presetctl/internal/actions"
	"github.com/nodekit/presetctl/internal/config"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/snippet"
	"github.com/nodekit/presetctl/internal/ui"
)

// ShareCmd uploads a preset to the snippet service. On success the snippet
// URL is copied to the clipboard and recorded in the local upload registry;
// a failed upload exits non-zero.
type ShareCmd struct {
	Name string `arg:"" optional:"" help:"Preset name"`
	Open bool   `help:"Open the snippet URL in the browser" name:"open" short:"o"`
}

// Run executes the share command.
func (c *ShareCmd) Run(ctx context.Context) error {
	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	data, err := st.Read(c.Name)
	if err != nil {
		return err
	}

	client := snippet.ClientFromContext(ctx)
	if client == nil {
		return errors.New("snippet client not found in context")
	}

	filename := c.Name + ".json"

	url, err := client.Upload(ctx, snippet.UploadRequest{
		Filename:    filename,
		Description: c.Name,
		Content:     string(data),
		Public:      true,
	})
	if err != nil {
		slog.Error("snippet upload failed", "name", c.Name, "error", err)

		return fmt.Errorf("uploading snippet (check your internet connection): %w", err)
	}

	slog.Info("uploaded snippet", "name", c.Name, "url", url)

	cfg := config.FromContext(ctx)

	// Copy the URL to the clipboard unless auto_copy is disabled.
	if cfg == nil || cfg.AutoCopy == nil || *cfg.AutoCopy {
		if copyErr := actions.CopyToClipboard(url); copyErr != nil {
			fmt.Fprintf(os.Stderr, "warning: clipboard: %v\n", copyErr)
		} else if u := ui.FromContext(ctx); u != nil {
			u.Err().Warnf("Copied snippet URL to clipboard")
		}
	}

	// Record the upload so it can be found again later (best-effort).
	if regPath, regErr := config.RegistryPath(); regErr == nil {
		if appendErr := snippet.AppendRegistry(regPath, url, filename); appendErr != nil {
			fmt.Fprintf(os.Stderr, "warning: upload registry: %v\n", appendErr)
		}
	}

	if c.Open || (cfg != nil && cfg.AutoOpen != nil && *cfg.AutoOpen) {
		if openErr := actions.OpenInBrowser(url); openErr != nil {
			fmt.Fprintf(os.Stderr, "warning: browser: %v\n", openErr)
		}
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]string{
			"name": c.Name,
			"url":  url,
		})
	}

	fmt.Fprintln(os.Stdout, url)

	return nil
}
