package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ladder/pkg/ladder"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive viewer for the
// ladders of one query.
func (c *CLI) browseCommand() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "browse <begin> <end> [word...]",
		Short: "Page through the shortest ladders interactively",
		Long: `Solve a query and page through its ladders in the terminal.

Keys: ↑/↓ (k/j) move, g/G jump to first/last, enter shows the selected
ladder rung by rung with the changed letter highlighted, q quits.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			popts, err := c.options(cmd, &opts, args)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Solve(ctx, popts)
			if err != nil {
				return err
			}
			if !res.Found {
				printWarning("No ladder from %s to %s", res.Begin, res.End)
				return nil
			}

			p := tea.NewProgram(NewPathListModel(res.Result), tea.WithContext(ctx), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	opts.register(cmd)
	return cmd
}

// =============================================================================
// PathListModel - Interactive ladder browser
// =============================================================================

// PathListModel is the bubbletea model for browsing the ladders of a result.
type PathListModel struct {
	Result *ladder.Result
	Cursor int
	Offset int
	Height int
	Detail bool
}

// NewPathListModel creates a browser positioned on the first ladder.
func NewPathListModel(res *ladder.Result) PathListModel {
	return PathListModel{Result: res, Height: 15}
}

func (m PathListModel) Init() tea.Cmd {
	return nil
}

func (m PathListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.Result.Paths)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			if n > 0 {
				m.Cursor = n - 1
			}
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Detail {
			m.Height -= m.Result.Length + 1
		}
		if m.Height < 5 {
			m.Height = 5
		}
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *PathListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m PathListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s %s %s", m.Result.Begin, iconArrow, m.Result.End)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ rungs  q quit"))
	b.WriteString("\n\n")

	paths := m.Result.Paths
	if len(paths) == 0 {
		b.WriteString(listDimStyle.Render("No ladder found"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(paths))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, fmt.Sprint(i + 1), strings.Join(paths[i], " "+iconArrow+" ")})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Ladder").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Detail {
		b.WriteString("\n")
		b.WriteString(renderRungs(paths[m.Cursor]))
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] · %d words per ladder", m.Cursor+1, len(paths), m.Result.Length)))
	return b.String()
}

// renderRungs lists a ladder top to bottom, highlighting the letter each
// rung changes.
func renderRungs(path []string) string {
	var b strings.Builder
	for i, word := range path {
		changed := -1
		if i > 0 {
			changed = changedIndex(path[i-1], word)
		}
		b.WriteString(fmt.Sprintf("  %2d  ", i+1))
		for j := 0; j < len(word); j++ {
			if j == changed {
				b.WriteString(StyleChanged.Render(word[j : j+1]))
			} else {
				b.WriteString(StyleValue.Render(word[j : j+1]))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// changedIndex returns the first position where a and b differ, or -1.
func changedIndex(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
