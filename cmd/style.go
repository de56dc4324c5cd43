package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#f97316"))

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// heading styles text when w is a terminal and leaves it plain otherwise.
func heading(w io.Writer, text string) string {
	if isTerminal(w) {
		return headingStyle.Render(text)
	}
	return text
}
