package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aurorder/pkg/deps"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// browseCommand creates the interactive plan browser.
func (c *CLI) browseCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "browse [package]",
		Short: "Explore a build order interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := c.loadPlan(cmd, args, from)
			if err != nil {
				return err
			}
			return runBrowser(cmd, plan)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "read the plan from a JSON file")

	return cmd
}

// runBrowser shows plan in the full-screen browser until the user quits.
func runBrowser(cmd *cobra.Command, plan *deps.Plan) error {
	p := tea.NewProgram(NewPlanModel(plan),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// =============================================================================
// PlanModel - Interactive build order browser
// =============================================================================

// PlanModel is the bubbletea model for browsing a resolved plan. The table
// lists the build order; the panel below it shows what the package under
// the cursor depends on and what depends on it.
type PlanModel struct {
	Plan   *deps.Plan
	Cursor int
	Height int
	Offset int

	stage map[string]int
}

// NewPlanModel creates a browser positioned on the first package of p.
func NewPlanModel(p *deps.Plan) PlanModel {
	stage := make(map[string]int)
	for i, level := range p.Levels {
		for _, name := range level {
			stage[name] = i + 1
		}
	}
	return PlanModel{Plan: p, Height: 15, stage: stage}
}

func (m PlanModel) Init() tea.Cmd {
	return nil
}

func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Plan.Order)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Plan.Order) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m PlanModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Build order for " + m.Plan.Root))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Plan.Order))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		name := m.Plan.Order[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		stage := "—"
		if s, ok := m.stage[name]; ok {
			stage = fmt.Sprint(s)
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprint(i + 1),
			name,
			m.version(name),
			stage,
			fmt.Sprint(len(m.dependencies(name))),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Package", "Version", "Stage", "Deps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 || col == 4 || col == 5 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Plan.Order))))
	b.WriteString("\n\n")
	b.WriteString(m.details())

	return b.String()
}

// details renders the panel for the package under the cursor.
func (m PlanModel) details() string {
	if len(m.Plan.Order) == 0 {
		return ""
	}
	name := m.Plan.Order[m.Cursor]

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(name))
	if desc := m.meta(name, "description"); desc != "" {
		b.WriteString("  " + listDimStyle.Render(desc))
	}
	b.WriteString("\n")
	b.WriteString(detailLine("depends on", m.dependencies(name)))
	b.WriteString(detailLine("needed by", m.dependents(name)))
	return b.String()
}

func detailLine(label string, names []string) string {
	value := "—"
	if len(names) > 0 {
		value = strings.Join(names, ", ")
	}
	return "  " + lipgloss.NewStyle().Foreground(colorGray).Width(12).Render(label) + " " + value + "\n"
}

// dependencies returns the direct dependencies of name, marking those
// expected from another repository.
func (m PlanModel) dependencies(name string) []string {
	g := m.Plan.Graph
	if g == nil {
		return nil
	}
	var out []string
	for _, dep := range g.Children(name) {
		if n, ok := g.Node(dep); ok && n.IsExternal() {
			dep += " (external)"
		}
		out = append(out, dep)
	}
	return out
}

func (m PlanModel) dependents(name string) []string {
	if m.Plan.Graph == nil {
		return nil
	}
	return m.Plan.Graph.Parents(name)
}

func (m PlanModel) version(name string) string {
	if v := m.meta(name, "version"); v != "" {
		return v
	}
	return "—"
}

func (m PlanModel) meta(name, key string) string {
	if m.Plan.Graph == nil {
		return ""
	}
	n, ok := m.Plan.Graph.Node(name)
	if !ok || n.Meta == nil {
		return ""
	}
	if s, ok := n.Meta[key].(string); ok {
		return s
	}
	return ""
}
