package githubpane

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
)

// Model is the GitHub integration overlay. The integration itself lives on
// the backend; this panel only points at it.
type Model struct {
	baseURL string
	width   int
	height  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *Model) SetBaseURL(baseURL string) {
	m.baseURL = baseURL
}

func (m *Model) HandleKey(msg tea.KeyMsg) ActionKind {
	switch msg.String() {
	case "esc", "q", "enter":
		return ActionClose
	}
	return ActionNone
}

func (m Model) ViewOverlay(background string, w, h int) string {
	var b strings.Builder

	b.WriteString(shared.SectionTitleStyle.Render("GitHub integration"))
	b.WriteString("\n\n")
	b.WriteString(shared.ValueStyle.Render("Connect a repository to analyze it on every push."))
	b.WriteString("\n")
	b.WriteString(shared.DimStyle.Render("Manage connections in the web console:"))
	b.WriteString("\n")
	b.WriteString(shared.HelpKeyStyle.Render(m.baseURL + "/github"))
	b.WriteString("\n\n")
	b.WriteString(shared.HelpDescStyle.Render("esc: close"))

	overlay := shared.ModalOverlayStyle.Render(b.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}
