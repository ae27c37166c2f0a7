package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/generate"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
)

// runCommand creates the run command: generate, print, save, load back.
func (c *CLI) runCommand() *cobra.Command {
	var (
		nodes  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate, print, save and reload a graph in one step",
		Long: `Generate a random graph, print its adjacency matrix, save it as JSON and
load it back. Exits non-zero if saving or loading fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if !cmd.Flags().Changed("nodes") {
				nodes = cfg.Generate.Nodes
			}
			if output == "" {
				output = cfg.Output.Path
			}
			return c.runRoundTrip(cmd.Context(), os.Stdout, nodes, c.seed(cfg.Generate.Seed), output)
		},
	}

	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "number of nodes (default from config, 100)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file (default from config, graph.json)")

	return cmd
}

// runRoundTrip writes the matrix and the final success line to w.
func (c *CLI) runRoundTrip(ctx context.Context, w io.Writer, nodes int, seed uint64, path string) error {
	if err := errors.ValidateNodeCount(nodes, 0); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	g := generate.New(seed).Generate(nodes)
	g.Print(w)

	if err := graphio.Save(g, path); err != nil {
		return err
	}
	logger.Debug("saved graph", "path", path)

	loaded, err := graphio.Load(path)
	if err != nil {
		return err
	}
	if !loaded.Matrix().Equal(g.Matrix()) {
		return errors.New(errors.ErrCodeInternal, "reloaded matrix differs from generated matrix")
	}
	logger.Debug("loaded graph", "path", path, "nodes", loaded.Matrix().Size())

	fmt.Fprintln(w, successMessage)
	return nil
}
