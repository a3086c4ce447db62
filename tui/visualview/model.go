package visualview

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scandash/tui/shared"
)

// Model shows the visual-report payload. The payload is opaque to the
// dashboard: it is pretty-printed as-is for inspection.
type Model struct {
	viewport    viewport.Model
	projectName string
	ready       bool
	width       int
	height      int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	contentHeight := h - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport = viewport.New(w, contentHeight)
	m.viewport.YPosition = 1
	m.ready = true
}

func (m *Model) SetPayload(payload json.RawMessage, projectName string) {
	m.projectName = projectName

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(payload)
	}
	m.viewport.SetContent(pretty.String())
	m.viewport.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := shared.ReportHeaderStyle.Width(m.width).Render(fmt.Sprintf(" Visual report: %s", m.projectName))
	footer := shared.ReportFooterStyle.Width(m.width).Render("j/k: scroll  q/esc: close")

	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
}
