package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/analysis"
	errs "github.com/matzehuels/tiegraph/pkg/errors"
	"github.com/matzehuels/tiegraph/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"

	defaultScale = 2.0 // PNG resolution multiplier
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file path
	format  string  // dot, svg or png; inferred from output when empty
	from    string  // highlighted path source
	to      string  // highlighted path target
	weights bool    // label edges with their weight
	scale   float64 // PNG scale factor
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the graph as a node-link diagram",
		Long: `Render draws every label as a box and every relation as an arrow.

With --from and --to the shortest path between the two labels is
highlighted. The output format follows the file extension of --output
unless --format is given.`,
		Example: `  tiegraph render -o dining.svg
  tiegraph render -o dining.svg --from Louise --to Maxine
  tiegraph render -o ties.dot --weights -d ties.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveFormat(opts.format, opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			if (opts.from == "") != (opts.to == "") {
				return errs.New(errs.ErrCodeInvalidInput, "--from and --to must be given together")
			}

			ctx := cmd.Context()
			res, err := c.analyze(ctx)
			if err != nil {
				return err
			}
			return c.render(ctx, cmd, res, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, png")
	cmd.Flags().StringVar(&opts.from, "from", "", "highlight the shortest path from this label")
	cmd.Flags().StringVar(&opts.to, "to", "", "highlight the shortest path to this label")
	cmd.Flags().BoolVar(&opts.weights, "weights", false, "label edges with their weight")
	cmd.Flags().Float64Var(&opts.scale, "scale", defaultScale, "PNG scale factor")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) render(ctx context.Context, cmd *cobra.Command, res *analysis.Result, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	var dotOpts nodelink.Options
	dotOpts.Weights = opts.weights
	if opts.from != "" {
		pr, err := c.newRunner(ctx).ShortestPath(ctx, res, opts.from, opts.to)
		if err != nil {
			return err
		}
		if pr.Found {
			dotOpts.Highlight = pr.IDs
		} else {
			printWarning(w, "no path from %s to %s, nothing highlighted", pr.From, pr.To)
		}
	}

	prog := newProgress(logger)
	dot := nodelink.ToDOT(res.Graph, dotOpts)

	var (
		data []byte
		err  error
	)
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG, formatPNG:
		spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
		spinner.Start()
		if opts.format == formatSVG {
			data, err = nodelink.RenderSVG(ctx, dot)
		} else {
			data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
		}
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("render %s: %w", opts.format, err)
		}
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Rendered diagram")

	printSuccess(w, "Rendered %s diagram", strings.ToUpper(opts.format))
	printStats(w, res.Graph.NodeCount(), res.Graph.EdgeCount())
	printFile(w, opts.output)
	return nil
}

// resolveFormat returns the explicit format, or the one implied by the
// output file extension.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "gv" {
			format = formatDOT
		}
	}
	switch format {
	case formatDOT, formatSVG, formatPNG:
		return format, nil
	case "":
		return formatSVG, nil
	}
	return "", errs.New(errs.ErrCodeUnsupported, "unsupported render format %q (want dot, svg or png)", format)
}
