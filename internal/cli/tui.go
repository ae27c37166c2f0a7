package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/adjgraph/pkg/graph"
)

var (
	viewDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// minViewHeight is the fewest matrix rows the viewer shows.
const minViewHeight = 5

// =============================================================================
// MatrixViewModel - Scrollable matrix viewer
// =============================================================================

// MatrixViewModel is the bubbletea model for scrolling through a large
// adjacency matrix one page of rows at a time.
type MatrixViewModel struct {
	Title  string
	Matrix graph.Matrix
	Offset int // first visible row
	Height int // visible rows
}

// NewMatrixViewModel creates a viewer positioned at the first row.
func NewMatrixViewModel(title string, m graph.Matrix) MatrixViewModel {
	return MatrixViewModel{
		Title:  title,
		Matrix: m,
		Height: 15,
	}
}

func (m MatrixViewModel) Init() tea.Cmd {
	return nil
}

func (m MatrixViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup", "b":
			m.scroll(-m.Height)
		case "pgdown", "f", " ":
			m.scroll(m.Height)
		case "home", "g":
			m.Offset = 0
		case "end", "G":
			m.Offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		// title, hint, table borders and header, footer
		m.Height = max(msg.Height-8, minViewHeight)
		m.Offset = min(m.Offset, m.maxOffset())
	}
	return m, nil
}

func (m *MatrixViewModel) scroll(delta int) {
	m.Offset = max(0, min(m.Offset+delta, m.maxOffset()))
}

func (m MatrixViewModel) maxOffset() int {
	return max(0, m.Matrix.Size()-m.Height)
}

func (m MatrixViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render("↑/↓ scroll  pgup/pgdn page  q quit"))
	b.WriteString("\n\n")

	n := m.Matrix.Size()
	if n == 0 {
		b.WriteString(viewDimStyle.Render("  empty matrix"))
		return b.String()
	}

	end := min(m.Offset+m.Height, n)
	b.WriteString(matrixTable(m.Matrix, m.Offset, end))
	b.WriteString("\n")
	b.WriteString(viewDimStyle.Render(fmt.Sprintf("  rows %d-%d of %d", m.Offset, end-1, n)))

	return b.String()
}
