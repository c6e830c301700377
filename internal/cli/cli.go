// Package cli implements the tiegraph command-line interface.
//
// The commands load an edge list (a built-in fixture or a JSON, TOML or YAML
// file), build the tie graph, and report degree counts and shortest paths.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - report: Graph dump, degree per label and one shortest path
//   - summary: Node and edge counts
//   - degrees: Ranked degree table or degree histogram
//   - path: Shortest path between two labels
//   - render: Node-link diagram as DOT, SVG or PNG
//   - serve: Read-only HTTP query service
//   - explore: Interactive path picker
//
// # Configuration
//
// Settings come from ~/.config/tiegraph/config.toml (or --config), then
// TIEGRAPH_* environment variables, then flags. See package config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/analysis"
	"github.com/matzehuels/tiegraph/pkg/buildinfo"
	"github.com/matzehuels/tiegraph/pkg/config"
)

// appName is the application name used for display.
const appName = "tiegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	dataSource string

	cfg config.Config
}

// New creates a new CLI instance whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "tiegraph analyzes networks of ties between entities",
		Long:              `tiegraph builds a directed graph from a list of labeled, weighted relationships and reports how many ties touch each entity and the fewest hops between two of them.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&c.configPath, "config", "c", "", "config file (default ~/.config/tiegraph/config.toml)")
	flags.StringVarP(&c.dataSource, "data", "d", "", `edge list file or fixture name (default "dining")`)

	root.AddCommand(c.reportCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.degreesCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies flag overrides and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataSource != "" {
		cfg.Data.Source = c.dataSource
	}
	c.cfg = cfg

	c.SetLogLevel(levelFor(c.verbose, cfg.LogLevel()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// analyze loads and analyzes the configured edge list.
func (c *CLI) analyze(ctx context.Context) (*analysis.Result, error) {
	return c.newRunner(ctx).Run(ctx, c.cfg.Data.Source)
}

func (c *CLI) newRunner(ctx context.Context) *analysis.Runner {
	return analysis.NewRunner(loggerFromContext(ctx))
}

// endpoints fills empty path endpoints from the [query] config section.
func (c *CLI) endpoints(from, to string) (string, string) {
	if from == "" {
		from = c.cfg.Query.From
	}
	if to == "" {
		to = c.cfg.Query.To
	}
	return from, to
}
