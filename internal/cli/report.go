package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/analysis"
)

func (c *CLI) reportCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the graph, every degree and one shortest path",
		Long: `Report builds the graph from the edge list and prints, in plain text:

  - the graph with its nodes and edges
  - the degree of every label, highest first
  - the shortest directed path between --from and --to

Without flags the path endpoints come from the [query] config section
(Eva and Maxine by default).`,
		Example: `  tiegraph report
  tiegraph report --from Louise --to Maxine
  tiegraph report -d ties.yaml --from A --to C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			res, err := c.analyze(ctx)
			if err != nil {
				return err
			}
			from, to := c.endpoints(from, to)
			pr, err := c.newRunner(ctx).ShortestPath(ctx, res, from, to)
			if err != nil {
				return err
			}
			writeReport(cmd.OutOrStdout(), res, pr)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "path source label")
	cmd.Flags().StringVar(&to, "to", "", "path target label")
	return cmd
}

func writeReport(w io.Writer, res *analysis.Result, pr *analysis.PathResult) {
	fmt.Fprintf(w, "graph: %s\n", res.Graph)
	for _, e := range res.Degrees.Ranked() {
		fmt.Fprintf(w, "node %s has degree %d\n", e.Label, e.Degree)
	}
	if !pr.Found {
		fmt.Fprintf(w, "shortest path from %s to %s: none\n", pr.From, pr.To)
		return
	}
	fmt.Fprintf(w, "shortest path from %s to %s: [%s]\n", pr.From, pr.To, strings.Join(pr.Path, ", "))
}
