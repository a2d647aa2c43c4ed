package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	pickerRowStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorWhite)
	pickedRowStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorGreen).Bold(true)
)

// historyRow is one row of the history picker.
type historyRow struct {
	Label string
	MIME  string
	Size  string
	Bytes string
}

// HistoryPickerModel is the bubbletea model for choosing a saved image.
type HistoryPickerModel struct {
	Title    string
	Rows     []historyRow
	Cursor   int
	Selected int // 1-based; 0 when nothing was chosen
	Height   int
	Offset   int
}

// NewHistoryPickerModel creates a picker over rows.
func NewHistoryPickerModel(title string, rows []historyRow) HistoryPickerModel {
	return HistoryPickerModel{Title: title, Rows: rows, Height: 10}
}

func (m HistoryPickerModel) Init() tea.Cmd {
	return nil
}

func (m HistoryPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Height = max(3, msg.Height-7)
		m.move(0)
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter":
			if len(m.Rows) > 0 {
				return m.choose(m.Cursor + 1)
			}
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && int(key[0]-'0') <= len(m.Rows) {
				return m.choose(int(key[0] - '0'))
			}
		}
	}
	return m, nil
}

// move shifts the cursor by delta and scrolls it into the visible window.
func (m *HistoryPickerModel) move(delta int) {
	m.Cursor = max(0, min(m.Cursor+delta, len(m.Rows)-1))
	switch {
	case m.Cursor < m.Offset:
		m.Offset = m.Cursor
	case m.Cursor >= m.Offset+m.Height:
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m HistoryPickerModel) choose(n int) (tea.Model, tea.Cmd) {
	m.Selected = n
	return m, tea.Quit
}

func (m HistoryPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))

	t := newTable("", "#", "Name", "Type", "Size", "Bytes")
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		t.Row(cursor, fmt.Sprint(i+1), r.Label, r.MIME, r.Size, r.Bytes)
	}
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return tableHeaderStyle
		case m.Offset+row == m.Cursor:
			return pickedRowStyle
		default:
			return pickerRowStyle
		}
	})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
