package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjgraph/pkg/errors"
	"github.com/matzehuels/adjgraph/pkg/generate"
	"github.com/matzehuels/adjgraph/pkg/graph"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
	"github.com/matzehuels/adjgraph/pkg/store"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	nodes   int    // matrix size
	seed    uint64 // 0 selects a time-based seed
	output  string // JSON file path, empty to skip the file
	print   bool   // print the matrix to stdout
	toStore bool   // also put the graph into the configured store
	key     string // store key, a fresh UUID when empty
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph and save it",
		Long: `Generate a random undirected graph as an n×n adjacency matrix.

The graph is written as JSON to --output (default from the config file). With
--store it is also put into the configured graph store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if !cmd.Flags().Changed("nodes") {
				opts.nodes = cfg.Generate.Nodes
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Generate.Seed
			}
			if !cmd.Flags().Changed("output") && !opts.toStore {
				opts.output = cfg.Output.Path
			}
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 0, "number of nodes (default from config, 100)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output JSON file")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the adjacency matrix")
	cmd.Flags().BoolVar(&opts.toStore, "store", false, "put the graph into the configured store")
	cmd.Flags().StringVar(&opts.key, "key", "", "store key (default: new UUID)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts generateOpts) error {
	if err := errors.ValidateNodeCount(opts.nodes, 0); err != nil {
		return err
	}
	if opts.output == "" && !opts.toStore {
		return errors.New(errors.ErrCodeInvalidInput, "nothing to do: set --output or --store")
	}

	logger := loggerFromContext(ctx)
	seed := c.seed(opts.seed)
	logger.Debug("generating graph", "nodes", opts.nodes, "seed", seed)

	prog := newProgress(logger)
	g := generate.New(seed).Generate(opts.nodes)
	prog.done(fmt.Sprintf("Generated %d nodes", opts.nodes))

	if opts.print {
		g.Print(os.Stdout)
	}

	if opts.output != "" {
		if err := graphio.Save(g, opts.output); err != nil {
			return err
		}
		printSuccess("Saved graph")
		printFile(opts.output)
	}

	if opts.toStore {
		key, err := c.putGraph(ctx, opts.key, g)
		if err != nil {
			return err
		}
		printSuccess("Stored graph")
		printKeyValue("key", key)
	}

	printStats(statsOf(g))
	printDetail("seed %d", seed)
	return nil
}

// putGraph stores g under key, or under a fresh key when key is empty, and
// returns the key used.
func (c *CLI) putGraph(ctx context.Context, key string, g *graph.Graph) (string, error) {
	if key == "" {
		key = store.NewKey()
	}
	s, err := c.openStore(ctx)
	if err != nil {
		return "", err
	}
	defer s.Close()

	if err := graphio.Put(ctx, s, key, g); err != nil {
		return "", err
	}
	return key, nil
}
