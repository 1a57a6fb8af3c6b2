package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	shaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func apply(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// Header renders a section header
func Header(s string) string {
	return apply(headerStyle, s)
}

// ColorSHA renders a commit identifier
func ColorSHA(s string) string {
	return apply(shaStyle, s)
}

// ColorBranch renders a branch name
func ColorBranch(s string) string {
	return apply(branchStyle, s)
}

// ColorWarning renders warning text
func ColorWarning(s string) string {
	return apply(warningStyle, s)
}

// Dim renders de-emphasized text
func Dim(s string) string {
	return apply(dimStyle, s)
}
