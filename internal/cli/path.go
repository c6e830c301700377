package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/analysis"
)

func (c *CLI) pathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Find the fewest-hop directed path between two labels",
		Long: `Path follows edges in their declared direction and reports the path with
the fewest hops from FROM to TO. Weights are ignored.

An unknown label is an error. A target that cannot be reached is reported
but is not an error.`,
		Example: `  tiegraph path Eva Maxine
  tiegraph path Louise Maxine -d ties.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := c.analyze(ctx)
			if err != nil {
				return err
			}
			pr, err := c.newRunner(ctx).ShortestPath(ctx, res, args[0], args[1])
			if err != nil {
				return err
			}
			printPathResult(cmd.OutOrStdout(), pr)
			return nil
		},
	}
	return cmd
}

func printPathResult(w io.Writer, pr *analysis.PathResult) {
	if !pr.Found {
		printWarning(w, "no path from %s to %s", pr.From, pr.To)
		return
	}
	printSuccess(w, "%s", formatPath(pr.Path))
	printKeyValue(w, "hops", strconv.Itoa(pr.Hops))
}
