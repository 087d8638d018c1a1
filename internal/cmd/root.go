package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/nodekit/presetctl/internal/config"
	"github.com/nodekit/presetctl/internal/outfmt"
	"github.com/nodekit/presetctl/internal/preset"
	"github.com/nodekit/presetctl/internal/snippet"
	"github.com/nodekit/presetctl/internal/ui"
)

// RootFlags are global flags available to all commands.
type RootFlags struct {
	Color   string `help:"Color output: auto|always|never" default:"auto" enum:"auto,always,never"`
	JSON    bool   `help:"JSON output" default:"false"`
	Verbose bool   `help:"Verbose logging" default:"false"`
	NoInput bool   `help:"Never prompt; fail instead" name:"no-input" default:"false"`
	Force   bool   `help:"Skip confirmations" default:"false"`
}

// CLI is the top-level Kong command struct.
type CLI struct {
	RootFlags `embed:""`

	Version    kong.VersionFlag `help:"Print version and exit"`
	VersionCmd VersionCmd       `cmd:"" name:"version" help:"Print version info"`
	Save       SaveCmd          `cmd:"" name:"save" help:"Save the selected nodes of a graph as a preset"`
	Apply      ApplyCmd         `cmd:"" name:"apply" help:"Insert a preset into a graph"`
	List       ListCmd          `cmd:"" name:"list" aliases:"ls" help:"List presets"`
	Rename     RenameCmd        `cmd:"" name:"rename" aliases:"mv" help:"Rename a preset"`
	Delete     DeleteCmd        `cmd:"" name:"delete" aliases:"rm" help:"Delete a preset"`
	Export     ExportCmd        `cmd:"" name:"export" help:"Export a preset to an external file"`
	Import     ImportCmd        `cmd:"" name:"import" help:"Import a preset from an external file"`
	Share      ShareCmd         `cmd:"" name:"share" help:"Upload a preset to the snippet service"`
	Fetch      FetchCmd         `cmd:"" name:"fetch" help:"Download a snippet as a preset"`
	Shares     SharesCmd        `cmd:"" name:"shares" help:"List previously uploaded snippets"`
	Manage     ManageCmd        `cmd:"" name:"manage" help:"Toggle management mode for a graph"`
	Config     ConfigCmd        `cmd:"" name:"config" help:"Manage configuration"`
}

// Execute parses CLI args, sets up context, and runs the matched command.
func Execute(args []string) (err error) {
	cli := &CLI{}
	parser, err := kong.New(
		cli,
		kong.Name("presetctl"),
		kong.Description("Manage node-graph presets from the terminal"),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": VersionString()},
		kong.Writers(os.Stdout, os.Stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
	)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				if ep.code == 0 {
					err = nil
					return
				}
				err = &ExitError{Code: ep.code, Err: errors.New("exited")}
				return
			}
			panic(r)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return &ExitError{Code: 2, Err: err}
	}

	// Verbose logging
	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Output mode
	mode := outfmt.Mode{JSON: cli.JSON}
	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, mode)

	// UI printer -- force no color in JSON mode
	uiColor := cli.Color
	if outfmt.IsJSON(ctx) {
		uiColor = "never"
	}
	u, uiErr := ui.New(ui.Options{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  uiColor,
	})
	if uiErr != nil {
		return uiErr
	}
	ctx = ui.WithUI(ctx, u)

	// Config
	cfgPath, _ := config.ConfigPath()
	cfg, cfgErr := config.Load(cfgPath)
	if cfgErr != nil {
		slog.Warn("loading config", "error", cfgErr)
		cfg = &config.Config{}
	}
	ctx = config.WithConfig(ctx, cfg)

	// Snippet service client
	token := os.Getenv("PRESETCTL_TOKEN")
	if token == "" {
		token = cfg.Token
	}
	client := snippet.NewClient(snippet.ClientOptions{
		BaseURL:   cfg.ServiceURL,
		Token:     token,
		Timeout:   cfg.TimeoutDuration(),
		Verbose:   cli.Verbose,
		UserAgent: "presetctl/" + version,
	})
	ctx = snippet.WithClient(ctx, client)

	// Bind context + root flags to Kong
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(&cli.RootFlags)

	return kctx.Run()
}

// openStore resolves the presets directory from config and returns a store
// over it. The directory itself is created lazily by store operations.
func openStore(ctx context.Context) (*preset.Store, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		cfg = &config.Config{}
	}

	dir, err := cfg.EffectivePresetsDir()
	if err != nil {
		return nil, fmt.Errorf("resolving presets directory: %w", err)
	}

	return preset.NewStore(dir), nil
}
