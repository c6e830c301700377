package cli

import (
	"cmp"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/degree"
	errs "github.com/matzehuels/tiegraph/pkg/errors"
)

func (c *CLI) degreesCommand() *cobra.Command {
	var (
		histogram bool
		top       int
	)

	cmd := &cobra.Command{
		Use:   "degrees",
		Short: "Show how many ties touch each label",
		Long: `Degrees counts, for every label, the relations it takes part in as
source or target. A self-loop counts twice.

With --histogram the table lists how many labels share each degree value.`,
		Example: `  tiegraph degrees
  tiegraph degrees --top 5
  tiegraph degrees --histogram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if top < 0 {
				return errs.New(errs.ErrCodeInvalidInput, "--top must not be negative, got %d", top)
			}
			res, err := c.analyze(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if histogram {
				printTable(w, []string{"Degree", "Labels"}, histogramRows(res.Degrees))
			} else {
				printTable(w, []string{"#", "Label", "Degree"}, rankedRows(res.Degrees, top))
			}
			printDetail(w, "%d labels · %d endpoints", len(res.Degrees), res.Degrees.Total())
			return nil
		},
	}

	cmd.Flags().BoolVar(&histogram, "histogram", false, "count labels per degree value")
	cmd.Flags().IntVar(&top, "top", 0, "show only the N highest degrees (0 = all)")
	return cmd
}

func rankedRows(d degree.Distribution, top int) [][]string {
	ranked := d.Ranked()
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	rows := make([][]string, 0, len(ranked))
	for i, e := range ranked {
		rows = append(rows, []string{strconv.Itoa(i + 1), e.Label, strconv.Itoa(e.Degree)})
	}
	return rows
}

func histogramRows(d degree.Distribution) [][]string {
	hist := d.Histogram()
	values := slices.SortedFunc(maps.Keys(hist), func(a, b int) int { return cmp.Compare(b, a) })
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{strconv.Itoa(v), strconv.Itoa(hist[v])})
	}
	return rows
}
