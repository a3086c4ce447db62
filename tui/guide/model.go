package guide

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scandash/tui/shared"
)

type Model struct {
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(shared.SectionTitleStyle.Render("Welcome to ScanDash"))
	b.WriteString("\n\n")
	b.WriteString(shared.ValueStyle.Render("Upload a project archive and get a health report in minutes."))
	b.WriteString("\n\n")

	steps := []struct{ key, desc string }{
		{"a", "start an analysis: pick a project archive and upload it"},
		{"r", "open the detailed report once the analysis finishes"},
		{"v", "generate a visual architecture report"},
		{"h", "browse previous analysis runs"},
		{"?", "show every key binding"},
	}
	for _, s := range steps {
		b.WriteString("  " + shared.HelpKeyStyle.Render(s.key) + "  " + shared.HelpDescStyle.Render(s.desc) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(shared.DimStyle.Render("Reports flag issues by severity: critical, warning, suggestion."))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
