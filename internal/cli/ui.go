package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings such as the game title.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleHighlight marks the current choice in lists.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Status lines
// =============================================================================

// statusKind selects the icon and colour of a status line.
type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusInfo
)

var statusIcons = map[statusKind]string{
	statusSuccess: lipgloss.NewStyle().Foreground(colorGreen).Render("✓"),
	statusError:   lipgloss.NewStyle().Foreground(colorRed).Render("✗"),
	statusInfo:    lipgloss.NewStyle().Foreground(colorGray).Render("›"),
}

const iconInfo = "›"

func printStatus(kind statusKind, format string, args ...any) {
	fmt.Println(statusIcons[kind] + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { printStatus(statusSuccess, format, args...) }
func printError(format string, args ...any)   { printStatus(statusError, format, args...) }
func printInfo(format string, args ...any)    { printStatus(statusInfo, format, args...) }

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a file the command wrote.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep suggests a command, e.g. after an empty history listing.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }

// =============================================================================
// Tables
// =============================================================================

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// newTable returns a rounded table whose first column is highlighted.
func newTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return cell.Foreground(colorCyan)
			default:
				return cell.Foreground(colorWhite)
			}
		})
}
