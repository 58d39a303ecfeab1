// Package cli implements the badges command-line interface.
//
// Every command runs without arguments: paths come from badges.toml (or
// the built-in defaults when the file is absent) and can be overridden with
// flags. Positional arguments are accepted and ignored.
//
// # Commands
//
//   - badges, badges generate: lay out one badge per roster record
//   - blank: pages of the default template with no text
//   - help-sheet: pages of the help template with no text
//   - rules: show which template each roster record gets
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context to the pipeline.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/buildinfo"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/config"
	"github.com/larktraditionalarts/badge-pdf-creator/pkg/pipeline"
)

// appName is the command name used in help and completion scripts.
const appName = "badges"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives status output.
	Out io.Writer

	configPath string
	verbose    bool
}

// New creates a CLI that logs to w at level and prints status to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run on its own, the root command generates badges.
func (c *CLI) RootCommand() *cobra.Command {
	var opts generateOpts

	root := &cobra.Command{
		Use:   appName,
		Short: "Lay out printable name badges as PDF",
		Long: `Badges reads a roster CSV and lays out one name badge per row, twelve to a
US Letter page. Each badge gets a background chosen by the holder's title,
the holder's name fitted to the badge, and pronouns when given.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultPath, "config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	opts.bind(root)

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.blankCommand())
	root.AddCommand(c.helpSheetCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file. The default path may be missing; a
// path given with --config must exist.
func (c *CLI) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(c.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("loaded config", "path", c.configPath, "rules", len(cfg.Rules))
	return cfg, nil
}

// newRunner creates a pipeline runner that logs through the command's logger.
func newRunner(cmd *cobra.Command) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(cmd.Context()))
}
