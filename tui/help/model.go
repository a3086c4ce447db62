package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scandash/tui/shared"
)

// Model is the full-screen key binding reference, toggled with "?".
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

var helpGroups = []string{"Navigation", "Analysis", "Reports", "Sections", "General"}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(shared.SectionTitleStyle.Render("ScanDash Help"))
	b.WriteString("\n\n")

	for i, group := range shared.Keys.FullHelp() {
		if i < len(helpGroups) {
			b.WriteString(shared.SidebarTitleStyle.Render(helpGroups[i]))
			b.WriteString("\n")
		}
		for _, k := range group {
			h := k.Help()
			b.WriteString("  " + shared.HelpKeyStyle.Render(h.Key) + "  " + shared.HelpDescStyle.Render(h.Desc) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(shared.DimStyle.Render("press any key to close"))

	content := shared.HelpOverlayStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
