package historypane

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/marcus/scandash/history"
	"github.com/marcus/scandash/tui/shared"
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClose
)

// Model is the history overlay: past analysis runs, newest first.
type Model struct {
	runs    []history.Run
	loading bool
	err     error

	cursor       int
	scrollOffset int

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

func (m *Model) SetLoading() {
	m.loading = true
	m.err = nil
}

func (m *Model) SetRuns(runs []history.Run, err error) {
	m.loading = false
	m.runs = runs
	m.err = err
	m.cursor = 0
	m.scrollOffset = 0
}

func (m *Model) HandleKey(msg tea.KeyMsg) ActionKind {
	switch msg.String() {
	case "esc", "q":
		return ActionClose
	case "j", "down":
		if m.cursor < len(m.runs)-1 {
			m.cursor++
			if m.cursor >= m.scrollOffset+m.listHeight() {
				m.scrollOffset++
			}
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.scrollOffset {
				m.scrollOffset--
			}
		}
	}
	return ActionNone
}

func (m Model) listHeight() int {
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	return h
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

	b.WriteString(shared.SectionTitleStyle.Render("Analysis history"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(shared.DimStyle.Render("Loading..."))
	case m.err != nil:
		b.WriteString(shared.ErrorStyle.Render("Could not load history: " + m.err.Error()))
	case len(m.runs) == 0:
		b.WriteString(shared.DimStyle.Render("No analysis runs yet."))
	default:
		visibleH := m.listHeight()
		end := m.scrollOffset + visibleH
		if end > len(m.runs) {
			end = len(m.runs)
		}
		for i := m.scrollOffset; i < end; i++ {
			run := m.runs[i]
			line := fmt.Sprintf("%-24s %4d issues  %-16s %s",
				truncate(run.Project, 24), run.TotalIssues, run.Health,
				humanize.Time(run.CreatedAt))
			if i == m.cursor {
				line = shared.CursorStyle.Render(line)
			} else {
				line = shared.ValueStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if m.cursor < len(m.runs) {
			run := m.runs[m.cursor]
			b.WriteString("\n")
			b.WriteString(shared.DimStyle.Render(fmt.Sprintf(
				"critical %d  warnings %d  suggestions %d",
				run.CriticalIssues, run.Warnings, run.Suggestions)))
			if run.ReportPath != "" {
				b.WriteString("\n")
				b.WriteString(shared.MutedStyle.Render(run.ReportPath))
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(shared.HelpDescStyle.Render("j/k: move  esc: close"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
