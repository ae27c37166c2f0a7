package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/adjgraph/pkg/buildinfo"
	"github.com/matzehuels/adjgraph/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root loads the configuration file, attaches
// the logger to the command context and bridges the observability hooks to
// the logger. The --verbose flag is added by main, which raises the log level
// before this hook runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "adjgraph generates and persists random undirected graphs",
		Long:          `adjgraph generates random undirected graphs as adjacency matrices, saves them as JSON and loads them back, locally, from a graph store or over HTTP.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			hooks := newLogHooks(c.Logger)
			observability.SetGenerateHooks(hooks)
			observability.SetStoreHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/adjgraph/adjgraph.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
