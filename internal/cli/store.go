package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjgraph/pkg/errors"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
	"github.com/matzehuels/adjgraph/pkg/store"
)

// storeCommand creates the graph store management command.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage graphs in the configured store",
		Long: `Manage graphs in the configured store.

The backend is chosen by the [store] section of the config file: file
(default), memory, redis or mongo.`,
	}

	cmd.AddCommand(c.storePutCommand())
	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storePathCommand())

	return cmd
}

// storePutCommand creates the "store put" subcommand.
func (c *CLI) storePutCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "put [file]",
		Short: "Validate a graph file and put it into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(args[0])
			if err != nil {
				return err
			}
			stored, err := c.putGraph(cmd.Context(), key, g)
			if err != nil {
				return err
			}
			printSuccess("Stored %s", args[0])
			printKeyValue("key", stored)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "store key (default: new UUID)")

	return cmd
}

// storeGetCommand creates the "store get" subcommand.
func (c *CLI) storeGetCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Fetch a graph from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			g, err := graphio.Get(ctx, s, args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return graphio.Write(g, os.Stdout)
			}
			if err := graphio.Save(g, output); err != nil {
				return err
			}
			printSuccess("Fetched %s", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [key]",
		Short: "Delete a graph from the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := errors.ValidateStoreKey(args[0]); err != nil {
				return err
			}
			s, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, ok, err := s.Get(ctx, args[0]); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "fetch graph %s", args[0])
			} else if !ok {
				printInfo("No graph stored under %s", args[0])
				return nil
			}
			if err := s.Delete(ctx, args[0]); err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "delete graph %s", args[0])
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graph keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			keys, err := s.List(ctx)
			if err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "list graphs")
			}
			if len(keys) == 0 {
				printInfo("Store is empty")
				return nil
			}
			for _, k := range keys {
				fmt.Println(k)
			}
			return nil
		},
	}
}

// storePathCommand creates the "store path" subcommand.
func (c *CLI) storePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file store directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if cfg.Store.Backend != store.BackendFile {
				return errors.New(errors.ErrCodeUnsupported, "store backend %q has no directory", cfg.Store.Backend)
			}
			dir := cfg.Store.Dir
			if dir == "" {
				d, err := storeDir()
				if err != nil {
					return fmt.Errorf("get store dir: %w", err)
				}
				dir = d
			}
			fmt.Println(dir)
			return nil
		},
	}
}
