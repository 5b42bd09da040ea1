// Package cli implements the waypoint command-line interface.
//
// The CLI drives a real navigator from the terminal. It has two main commands:
//   - replay: run a navigation script and print both stacks after every step
//   - tui: an interactive terminal host for routing destinations by hand
//
// Configuration is read from ~/.config/waypoint/config.toml (or the file named by
// --config / WAYPOINT_CONFIG) with WAYPOINT_ environment overrides. Library logs
// are routed through the CLI's charmbracelet logger.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/pathconfig"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/session"
)

const appName = "waypoint"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level and the level handed to the library.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Config.Log.Level = level.String()
	waypoint.SetRawLogLevel(c.Config.Log.Level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Waypoint routes destinations onto a primary and a modal stack",
		Long:         `Waypoint is a dual-stack navigation router. This CLI replays navigation scripts and hosts an interactive terminal session against the same router a native app would embed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg

			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				c.Logger.Warn("Unknown log level, using info", "level", cfg.Log.Level)
				level = log.InfoLevel
			}
			c.SetLogLevel(level)
			waypoint.SetLogHandler(c.Logger)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/waypoint/config.toml)")

	root.AddCommand(c.replayCommand())
	root.AddCommand(c.tuiCommand())

	return root
}

// newApp builds a navigator from the CLI configuration. Path configuration can
// be a local file or an http(s) URL.
func (c *CLI) newApp(ctx context.Context, host router.Host, loader session.Loader) (*waypoint.Waypoint, error) {
	opts := waypoint.Options{
		Root:     router.NewVisitableScreen(c.Config.Root),
		Host:     host,
		Loader:   loader,
		Context:  ctx,
		Language: c.Config.Language,
		LogPath:  c.Config.Log.Path,
		LogLevel: c.Config.Log.Level,
	}

	switch src := c.Config.PathConfig; {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		cfg, err := pathconfig.Fetch(ctx, nil, src)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("Fetched path configuration", "url", src, "rules", len(cfg.Rules))
		opts.Config = cfg
	default:
		opts.PathConfiguration = src
	}

	return waypoint.New(opts)
}
