package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) summaryCommand() *cobra.Command {
	var listNodes bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show node and edge counts of the edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.analyze(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			g := res.Graph
			fmt.Fprintln(w, StyleTitle.Render("Summary"))
			printKeyValue(w, "source", c.cfg.Data.Source)
			printKeyValue(w, "nodes", strconv.Itoa(g.NodeCount()))
			printKeyValue(w, "edges", strconv.Itoa(g.EdgeCount()))
			printKeyValue(w, "mean degree", strconv.FormatFloat(res.Degrees.Mean(), 'f', 2, 64))
			if top, ok := res.Degrees.Max(); ok {
				printKeyValue(w, "most ties", fmt.Sprintf("%s (%d)", top.Label, top.Degree))
			}

			if listNodes {
				fmt.Fprintln(w)
				for _, n := range g.Nodes() {
					printDetail(w, "%3d  %s  (out %d)", n.ID, n.Label, g.OutDegree(n.ID))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listNodes, "nodes", "n", false, "list every node with its id")
	return cmd
}
