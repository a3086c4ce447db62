package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scandash/analysis"
	"github.com/marcus/scandash/tui/shared"
)

// Model renders the results panel for the current analysis run. It holds no
// run state of its own: the session owns that, this pane only displays it.
type Model struct {
	result      *analysis.Result
	projectName string
	stale       bool
	width       int
	height      int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *Model) SetResult(r *analysis.Result, projectName string) {
	m.result = r
	m.projectName = projectName
	m.stale = false
}

// SetStale flags that the analyzed archive changed on disk after the run.
func (m *Model) SetStale(v bool) {
	m.stale = v
}

func (m *Model) Clear() {
	m.result = nil
	m.projectName = ""
	m.stale = false
}

func healthStyle(h analysis.Health) lipgloss.Style {
	switch h {
	case analysis.HealthExcellent:
		return shared.HealthExcellentStyle
	case analysis.HealthCritical:
		return shared.HealthCriticalStyle
	case analysis.HealthNeedsAttention:
		return shared.HealthAttentionStyle
	default:
		return shared.HealthGoodStyle
	}
}

func (m Model) View() string {
	if m.result == nil {
		return ""
	}
	r := m.result
	health := analysis.EvaluateHealth(r.TotalIssues, r.CriticalIssues, r.Warnings)

	var b strings.Builder

	b.WriteString("\n")
	title := "Analysis results"
	if m.projectName != "" {
		title = "Analysis results: " + m.projectName
	}
	b.WriteString("  " + shared.SectionTitleStyle.Render(title))
	if m.stale {
		b.WriteString("  " + shared.StaleBadgeStyle.Render("[archive changed on disk]"))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + shared.LabelStyle.Render("Code health: "))
	b.WriteString(healthStyle(health).Render(string(health)))
	b.WriteString("\n")

	if r.TotalIssues == 0 {
		b.WriteString("  " + shared.DimStyle.Render("No issues detected in your codebase!"))
	} else {
		noun := "issues"
		if r.TotalIssues == 1 {
			noun = "issue"
		}
		b.WriteString("  " + shared.DimStyle.Render(fmt.Sprintf("Found %d %s that need attention", r.TotalIssues, noun)))
	}
	b.WriteString("\n\n")

	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"Critical", r.CriticalIssues, shared.CriticalCountStyle},
		{"Warnings", r.Warnings, shared.WarningCountStyle},
		{"Suggestions", r.Suggestions, shared.SuggestionCountStyle},
	}
	for _, row := range rows {
		count := row.style.Render(fmt.Sprintf("%4d", row.count))
		b.WriteString(fmt.Sprintf("  %s  %s\n", count, shared.ValueStyle.Render(row.label)))
	}

	b.WriteString("\n")
	if r.TotalIssues > 0 {
		b.WriteString("  " + shared.LabelStyle.Render("Recommendations:"))
		b.WriteString("\n")
		if r.CriticalIssues > 0 {
			b.WriteString("  " + shared.DimStyle.Render("- address critical issues first, they may impact functionality or security") + "\n")
		}
		if r.Warnings > 5 {
			b.WriteString("  " + shared.DimStyle.Render("- review warnings to improve maintainability") + "\n")
		}
		if r.Suggestions > 0 {
			b.WriteString("  " + shared.DimStyle.Render("- consider suggestions for better code quality") + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(shared.HelpDescStyle.Render("  r: detailed report  v: visual report  C-x: copy summary  n: new analysis"))

	return b.String()
}
