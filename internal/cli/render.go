package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/adjgraph/pkg/errors"
	graphio "github.com/matzehuels/adjgraph/pkg/io"
	"github.com/matzehuels/adjgraph/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file, "-" for stdout
	format string // "dot" or "svg"
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a saved graph as Graphviz DOT or SVG",
		Long: `Render a saved graph as Graphviz DOT or SVG.

The output defaults to the input path with the format's extension. Use
"-o -" to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .dot/.svg extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")

	return cmd
}

// validateFormat checks that the requested format is supported.
func validateFormat(format string) error {
	switch format {
	case formatDOT, formatSVG:
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "invalid format: %s (must be 'dot' or 'svg')", format)
}

// outputPath derives the output file from the input path when none is given.
func outputPath(input, output, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	g, err := graphio.Load(input)
	if err != nil {
		return err
	}

	dot := render.ToDOT(g)
	data := []byte(dot)
	if opts.format == formatSVG {
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		prog := newProgress(logger)
		data, err = render.RenderSVG(ctx, dot)
		spinner.Stop()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		prog.done("Rendered SVG")
	}

	out := outputPath(input, opts.output, opts.format)
	if out == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", out)
	}

	printSuccess("Rendered %s", strings.ToUpper(opts.format))
	printFile(out)
	logger.Debug("render complete", "bytes", len(data), "format", opts.format)
	return nil
}
