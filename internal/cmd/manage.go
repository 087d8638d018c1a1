package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nodekit/presetctl/internal/config"
)

// ManageCmd toggles management mode for one graph document. The toggle is
// persisted in config and picked up by subsequent list invocations.
type ManageCmd struct {
	State string `arg:"" enum:"on,off" help:"Desired state: on|off"`
	Graph string `help:"Graph document path" name:"graph" short:"g"`
}

// Run executes the manage command.
func (c *ManageCmd) Run(_ context.Context) error {
	if c.Graph == "" {
		return errors.New("graph document is not specified")
	}

	abs, err := filepath.Abs(c.Graph)
	if err != nil {
		return fmt.Errorf("resolving graph path: %w", err)
	}

	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	cfg.SetManageMode(abs, c.State == "on")

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Management mode %s for %s\n", c.State, abs)

	return nil
}
