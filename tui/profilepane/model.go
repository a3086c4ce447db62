package profilepane

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
	ActionLogout
)

// Model is the user profile overlay.
type Model struct {
	username string
	userID   string
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

func (m *Model) SetIdentity(username, userID string) {
	m.username = username
	m.userID = userID
}

func (m *Model) HandleKey(msg tea.KeyMsg) ActionKind {
	switch msg.String() {
	case "esc", "q":
		return ActionClose
	case "L":
		return ActionLogout
	}
	return ActionNone
}

func (m Model) ViewOverlay(background string, w, h int) string {
	var b strings.Builder

	b.WriteString(shared.SectionTitleStyle.Render("Profile"))
	b.WriteString("\n\n")

	name := m.username
	if name == "" {
		name = "(unknown)"
	}
	b.WriteString(shared.LabelStyle.Render("Username: "))
	b.WriteString(shared.ValueStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(shared.LabelStyle.Render("User id:  "))
	b.WriteString(shared.ValueStyle.Render(m.userID))
	b.WriteString("\n\n")

	b.WriteString(shared.HelpDescStyle.Render("L: log out  esc: close"))

	overlay := shared.ModalOverlayStyle.Render(b.String())
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}
