package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjgraph/pkg/graph"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
)

// maxTableSize is the largest matrix show renders as a table. Larger
// matrices fall back to the raw form.
const maxTableSize = 32

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Display a saved graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), os.Stdout, args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the matrix in its plain text form")

	return cmd
}

func runShow(ctx context.Context, w io.Writer, path string, raw bool) error {
	g, err := graphio.Load(path)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("loaded graph", "path", path)

	m := g.Matrix()
	switch {
	case raw:
		g.Print(w)
	case m.Size() > maxTableSize:
		printWarning("%d×%d matrix is too wide for a table; use 'adjgraph view %s'", m.Size(), m.Size(), path)
		g.Print(w)
	default:
		fmt.Fprintln(w, StyleTitle.Render("Adjacency matrix"))
		fmt.Fprintln(w, matrixTable(m, 0, m.Size()))
	}

	printStats(statsOf(g))
	printNodes(w, g)
	return nil
}

// printNodes lists node table entries and their adjacency.
func printNodes(w io.Writer, g *graph.Graph) {
	if g.NodeCount() == 0 {
		return
	}
	fmt.Fprintln(w, StyleTitle.Render("Nodes"))
	for _, n := range g.Nodes() {
		line := "  " + StyleValue.Render(n.ID.String())
		for _, a := range n.Adjacency {
			line += StyleDim.Render(fmt.Sprintf(" %s %s (%s)", iconArrow, a.Neighbor, a.Edge))
		}
		fmt.Fprintln(w, line)
	}
}
