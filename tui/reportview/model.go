package reportview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scandash/state"
	"github.com/marcus/scandash/tui/shared"
)

// Action is the app-facing outcome of a key press inside the viewer.
type Action int

const (
	ActionNone Action = iota
	// ActionClose closes the viewer; the report is done with.
	ActionClose
	// ActionReturnToDashboard leaves the file sub-view back to the
	// dashboard, expecting the report to be restored and reopened there.
	ActionReturnToDashboard
)

type mode int

const (
	reportMode mode = iota
	fileMode
)

// fileRef is a per-file slice of the report, entered from the report body.
type fileRef struct {
	name  string
	start int // line index of the file header
	end   int // exclusive
}

// Model is the full-screen report viewer, with a drill-down sub-view for a
// single file's findings. It replaces the dashboard wholesale while open.
type Model struct {
	viewport viewport.Model
	mode     mode

	content     string
	lines       []string
	projectName string
	projectPath string

	files  []fileRef
	cursor int

	ready  bool
	width  int
	height int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	headerHeight := 1
	footerHeight := 1
	contentHeight := h - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport = viewport.New(w, contentHeight)
	m.viewport.YPosition = headerHeight
	m.ready = true
	m.refreshContent()
}

// SetReport loads a report body into the viewer.
func (m *Model) SetReport(content, projectName, projectPath string) {
	m.content = content
	m.lines = strings.Split(content, "\n")
	m.projectName = projectName
	m.projectPath = projectPath
	m.mode = reportMode
	m.files = indexFiles(m.lines)
	m.cursor = 0
	m.refreshContent()
}

// Handoff returns the payload the viewer hands back when the user leaves
// its file sub-view toward the dashboard.
func (m Model) Handoff() state.Handoff {
	return state.Handoff{
		ReportContent: m.content,
		ProjectName:   m.projectName,
		ProjectPath:   m.projectPath,
	}
}

// HandleKey processes viewer-level keys. Scrolling is handled by Update.
func (m *Model) HandleKey(msg tea.KeyMsg) Action {
	switch m.mode {
	case reportMode:
		switch {
		case msg.String() == "esc" || msg.String() == "q":
			return ActionClose
		case msg.String() == "tab":
			if len(m.files) > 0 {
				m.cursor = (m.cursor + 1) % len(m.files)
				m.refreshContent()
			}
		case msg.Type == tea.KeyEnter:
			if len(m.files) > 0 {
				m.mode = fileMode
				m.refreshContent()
			}
		}
	case fileMode:
		if msg.String() == "esc" || msg.String() == "q" {
			m.mode = reportMode
			return ActionReturnToDashboard
		}
	}
	return ActionNone
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	switch m.mode {
	case fileMode:
		if m.cursor < len(m.files) {
			f := m.files[m.cursor]
			m.viewport.SetContent(styleReport(m.lines[f.start:f.end]))
		}
	default:
		m.viewport.SetContent(styleReport(m.lines))
	}
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var header, footer string
	switch m.mode {
	case fileMode:
		name := ""
		if m.cursor < len(m.files) {
			name = m.files[m.cursor].name
		}
		header = shared.ReportHeaderStyle.Width(m.width).Render(fmt.Sprintf(" File: %s", name))
		footer = shared.ReportFooterStyle.Width(m.width).Render("j/k: scroll  esc: back to dashboard")
	default:
		header = shared.ReportHeaderStyle.Width(m.width).Render(fmt.Sprintf(" Report: %s", m.projectName))
		hint := "j/k: scroll  q/esc: close"
		if len(m.files) > 0 {
			hint = fmt.Sprintf("j/k: scroll  tab: next file (%d/%d)  enter: open file  q/esc: close",
				m.cursor+1, len(m.files))
		}
		footer = shared.ReportFooterStyle.Width(m.width).Render(hint)
	}

	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
}

// indexFiles locates per-file sections, marked with a 📄 prefix by the
// report generator.
func indexFiles(lines []string) []fileRef {
	var files []fileRef
	for i, line := range lines {
		if !strings.Contains(line, "📄") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "📄"))
		if len(files) > 0 {
			files[len(files)-1].end = i
		}
		files = append(files, fileRef{name: name, start: i, end: len(lines)})
	}
	return files
}

func styleReport(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.Contains(line, "🚨 🔴"):
			b.WriteString(shared.ReportCriticalStyle.Render(line))
		case strings.Contains(line, "🚨 🟡"), strings.Contains(line, "🚨 ⚠️"):
			b.WriteString(shared.ReportWarningStyle.Render(line))
		case strings.Contains(line, "🚨 🟠"):
			b.WriteString(shared.ReportSuggestStyle.Render(line))
		case strings.Contains(line, "📄"):
			b.WriteString(shared.SectionTitleStyle.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
