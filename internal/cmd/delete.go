package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/ui"
)

// DeleteCmd deletes a preset. The removal is irreversible, so an explicit
// confirmation is collected first unless --force is given.
type DeleteCmd struct {
	Name string `arg:"" optional:"" help:"Preset name"`
}

// confirmStdin is the reader used for the confirmation prompt (swappable in tests).
var confirmStdin = func() *bufio.Reader { return bufio.NewReader(os.Stdin) }

// Run executes the delete command.
func (c *DeleteCmd) Run(ctx context.Context, root *RootFlags) error {
	if !root.Force {
		if root.NoInput || !isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New("deleting a preset needs confirmation; pass --force to skip the prompt")
		}

		fmt.Fprintf(os.Stderr, "Delete preset %q? This cannot be undone. [y/N]: ", c.Name)

		answer, err := confirmStdin().ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(os.Stderr, "Aborted")

			return nil
		}
	}

	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	if err := st.Delete(c.Name); err != nil {
		return err
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSON(os.Stdout, map[string]string{"deleted": c.Name})
	}

	if u := ui.FromContext(ctx); u != nil {
		u.Out().Successf("Removed %q", c.Name)
	} else {
		fmt.Fprintf(os.Stdout, "Removed %q\n", c.Name)
	}

	return nil
}
