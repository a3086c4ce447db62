package upload

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scandash/tui/shared"
)

// Model is the upload panel: a path prompt for the project archive.
type Model struct {
	pathInput   textinput.Model
	err         error
	analyzing   bool
	spinnerView string
	width       int
	height      int
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "path/to/project.zip"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()
	return Model{
		pathInput: ti,
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.pathInput.Width = w - 14
	if m.pathInput.Width > 80 {
		m.pathInput.Width = 80
	}
}

func (m *Model) Focus() {
	m.pathInput.Focus()
}

func (m *Model) SetError(err error) {
	m.err = err
}

// SetAnalyzing toggles the pending state. While pending the input is shown
// read-only and the trigger is disabled by the app.
func (m *Model) SetAnalyzing(v bool) {
	m.analyzing = v
	if !v {
		m.spinnerView = ""
	}
}

func (m Model) Analyzing() bool {
	return m.analyzing
}

// SetSpinnerView sets the rendered spinner string for the pending state.
func (m *Model) SetSpinnerView(view string) {
	m.spinnerView = view
}

// Reset clears the path and error for a fresh analysis session.
func (m *Model) Reset() {
	m.err = nil
	m.analyzing = false
	m.pathInput.Reset()
	m.pathInput.Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// Value returns the trimmed archive path.
func (m Model) Value() string {
	return strings.TrimSpace(m.pathInput.Value())
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + shared.SectionTitleStyle.Render("Analyze a project"))
	b.WriteString("\n\n")
	b.WriteString("  " + shared.LabelStyle.Render("Project archive (.zip, .tar.gz):"))
	b.WriteString("\n\n")

	if m.analyzing {
		spinLabel := "Uploading and analyzing your project..."
		if m.spinnerView != "" {
			spinLabel = m.spinnerView + " " + spinLabel
		}
		b.WriteString("  " + shared.HelpDescStyle.Render(spinLabel))
		b.WriteString("\n\n")
	} else {
		b.WriteString("  " + m.pathInput.View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString("  " + shared.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(shared.HelpDescStyle.Render("  enter: analyze  esc: guide"))

	return b.String()
}
