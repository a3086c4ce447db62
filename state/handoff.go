package state

import (
	"strings"

	"github.com/marcus/scandash/analysis"
)

// Handoff is the transient payload carried across the hop to the full-screen
// file viewer and back. It exists because the viewer replaces the dashboard
// wholesale; on return the session is rebuilt from this payload alone.
type Handoff struct {
	ReportContent string
	ProjectName   string
	ProjectPath   string
}

// HandoffSlot holds at most one pending handoff. It is a single-consumption
// message: Take yields the payload exactly once, so a re-render or refresh
// after the first observation restores nothing.
type HandoffSlot struct {
	payload    Handoff
	openReport bool
	armed      bool
}

// Set arms the slot with a payload and the return-to-report flag.
func (s *HandoffSlot) Set(h Handoff) {
	s.payload = h
	s.openReport = true
	s.armed = true
}

// Take consumes the pending handoff. The second call returns false.
func (s *HandoffSlot) Take() (Handoff, bool) {
	if !s.armed || !s.openReport {
		return Handoff{}, false
	}
	h := s.payload
	*s = HandoffSlot{}
	return h, true
}

// ReconstructReportPath derives the comprehensive-report file path from its
// project directory. The report file name is coupled to the directory name:
// "uploads/Proj" maps to "uploads/Proj/Proj_comprehensive.txt".
func ReconstructReportPath(projectPath string) string {
	if projectPath == "" {
		return ""
	}
	seg := projectPath[strings.LastIndex(projectPath, "/")+1:]
	return projectPath + "/" + seg + "_comprehensive.txt"
}

// Restore rebuilds the report state from a consumed handoff: content and
// project name come from the payload, the locator is reconstructed from the
// project directory, and the report view opens.
func (s *Session) Restore(h Handoff) {
	s.ReportContent = h.ReportContent
	s.ProjectName = h.ProjectName
	if h.ProjectPath != "" {
		s.Locator = analysis.ReportLocator{
			Path:       ReconstructReportPath(h.ProjectPath),
			ProjectDir: h.ProjectPath,
		}
	}
	s.ReportOpen = true
}
