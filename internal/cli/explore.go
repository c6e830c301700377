package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tiegraph/pkg/analysis"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listPickedStyle   = lipgloss.NewStyle().Foreground(colorGreen)
)

func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Pick two labels interactively and see the path between them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			res, err := c.analyze(ctx)
			if err != nil {
				return err
			}

			runner := c.newRunner(ctx)
			query := func(from, to string) (*analysis.PathResult, error) {
				return runner.ShortestPath(ctx, res, from, to)
			}
			m := NewExploreModel(labelsOf(res), query)

			final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run()
			if err != nil {
				return err
			}
			if em, ok := final.(ExploreModel); ok && em.Result != nil {
				printPathResult(cmd.OutOrStdout(), em.Result)
			}
			return nil
		},
	}
}

func labelsOf(res *analysis.Result) []string {
	nodes := res.Graph.Nodes()
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = n.Label
	}
	slices.Sort(labels)
	return labels
}

// =============================================================================
// ExploreModel - Interactive source/target selection
// =============================================================================

// PathQuery answers a shortest path query between two labels.
type PathQuery func(from, to string) (*analysis.PathResult, error)

// ExploreModel is the bubbletea model for picking a source and a target.
// The first enter picks the source, the second the target and runs the query.
type ExploreModel struct {
	Labels []string
	Cursor int
	Offset int
	Height int

	From   string
	To     string
	Result *analysis.PathResult
	Err    error

	query PathQuery
}

// NewExploreModel creates a model listing labels.
func NewExploreModel(labels []string, query PathQuery) ExploreModel {
	return ExploreModel{
		Labels: labels,
		Height: 15,
		query:  query,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Labels)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "backspace", "r":
			m.From, m.To, m.Result, m.Err = "", "", nil, nil
		case "enter":
			if len(m.Labels) == 0 {
				return m, nil
			}
			m.pick(m.Labels[m.Cursor])
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// pick selects label as source, or as target when a source is already set.
// Picking a target runs the query; picking again starts a new pair.
func (m *ExploreModel) pick(label string) {
	if m.From == "" || m.To != "" {
		m.From, m.To, m.Result, m.Err = label, "", nil, nil
		return
	}
	m.To = label
	m.Result, m.Err = m.query(m.From, m.To)
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Paths"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ pick  r reset  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Labels))
	for i := m.Offset; i < end; i++ {
		label := m.Labels[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + label
		switch {
		case label == m.From || label == m.To:
			b.WriteString(listPickedStyle.Render(line))
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Labels))))
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	return b.String()
}

func (m ExploreModel) status() string {
	switch {
	case m.Err != nil:
		return styleIconError.Render(iconError) + " " + m.Err.Error()
	case m.From == "":
		return listDimStyle.Render("pick a source")
	case m.To == "":
		return "from " + StyleHighlight.Render(m.From) + listDimStyle.Render(", pick a target")
	case m.Result == nil:
		return ""
	case !m.Result.Found:
		return styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render("no path from "+m.From+" to "+m.To)
	}
	return styleIconSuccess.Render(iconSuccess) + " " + formatPath(m.Result.Path) +
		StyleDim.Render(fmt.Sprintf("  (%d hops)", m.Result.Hops))
}

var _ tea.Model = ExploreModel{}
