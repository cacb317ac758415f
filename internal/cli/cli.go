package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ordbench/layerheur/pkg/buildinfo"
)

// CLI holds shared state for all commands: the logger every subcommand
// logs through, and the config defaults loaded from --config (if any).
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a CLI instance with a default logger and built-in config
// defaults; LoadConfig can replace Config before RootCommand is built.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// RootCommand builds the root cobra command with every subcommand
// registered, the same shape as the teacher's internal/cli/cli.go
// RootCommand: one cobra.Command per external operation, a persistent
// --verbose flag, version info wired from pkg/buildinfo.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "layerheur",
		Short:        "layerheur explores layered-graph ordering heuristics",
		Long: `layerheur runs crossing- and stretch-minimizing ordering heuristics
(median, barycenter, modified barycenter, maximum-crossings-node,
maximum-crossings-edge, maximum-stretch-edge, sifting) over a layered
graph read from SGF or DOT+ORD, and writes the best ordering found back
out in the same format.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			c.Logger.SetLevel(level)

			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				c.Config = cfg
			}

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a layerheur.toml config file")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.historyCommand())

	return root
}
