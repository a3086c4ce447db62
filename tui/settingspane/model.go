package settingspane

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scandash/tui/shared"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
	ActionToggleDark
)

// Model is the settings overlay. The backend URL is shown read-only; it is
// edited in the config file.
type Model struct {
	baseURL  string
	darkMode bool
	cursor   int
	width    int
	height   int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *Model) SetValues(baseURL string, darkMode bool) {
	m.baseURL = baseURL
	m.darkMode = darkMode
}

func (m *Model) HandleKey(msg tea.KeyMsg) ActionKind {
	switch msg.String() {
	case "esc", "q":
		return ActionClose
	case "enter", " ":
		return ActionToggleDark
	}
	return ActionNone
}

func (m Model) ViewOverlay(background string, w, h int) string {
	content := m.renderContent()
	overlay := shared.ModalOverlayStyle.Render(content)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

func (m Model) renderContent() string {
	var b strings.Builder

	b.WriteString(shared.SectionTitleStyle.Render("Settings"))
	b.WriteString("\n\n")

	mode := "dark"
	if !m.darkMode {
		mode = "light"
	}
	b.WriteString(shared.LabelStyle.Render("Theme:    "))
	b.WriteString(shared.ValueStyle.Render(mode))
	b.WriteString(shared.DimStyle.Render("  (enter to toggle)"))
	b.WriteString("\n")

	b.WriteString(shared.LabelStyle.Render("Backend:  "))
	b.WriteString(shared.ValueStyle.Render(m.baseURL))
	b.WriteString("\n\n")

	b.WriteString(shared.HelpDescStyle.Render("enter: toggle theme  esc: close"))
	return b.String()
}
