package state

import "github.com/marcus/scandash/analysis"

// Section identifies the focused top-level panel. Exactly one is active at
// a time; modal sections overlay the upload/results content underneath.
type Section string

const (
	SectionGuide    Section = "guide"
	SectionUpload   Section = "upload"
	SectionResults  Section = "results"
	SectionSettings Section = "settings"
	SectionHistory  Section = "history"
	SectionGitHub   Section = "github"
	SectionProfile  Section = "profile"
)

// modal reports whether a section is one of the overlay-flavored ones.
func modal(sec Section) bool {
	switch sec {
	case SectionSettings, SectionHistory, SectionGitHub, SectionProfile:
		return true
	}
	return false
}

// Session is the dashboard's per-run mutable state. Single writer per field:
// CompleteAnalysis writes the result fields, the section methods write view
// state, Restore writes the report fields from a navigation handoff.
type Session struct {
	Active      Section
	ShowResults bool

	SettingsOpen bool
	HistoryOpen  bool
	GitHubOpen   bool
	ProfileOpen  bool
	ReportOpen   bool

	Result        *analysis.Result
	Locator       analysis.ReportLocator
	ReportContent string
	ProjectName   string
	ArchivePath   string
}

// New returns a fresh session showing the welcome guide.
func New() *Session {
	return &Session{Active: SectionGuide}
}

// StartAnalysis focuses the upload panel and force-closes every modal.
func (s *Session) StartAnalysis() {
	s.Active = SectionUpload
	s.SettingsOpen = false
	s.HistoryOpen = false
	s.GitHubOpen = false
	s.ProfileOpen = false
}

// ShowGuide focuses the welcome guide.
func (s *Session) ShowGuide() {
	s.Active = SectionGuide
}

// OpenModal activates a modal section and raises its open flag. Non-modal
// sections are ignored.
func (s *Session) OpenModal(sec Section) {
	if !modal(sec) {
		return
	}
	s.Active = sec
	switch sec {
	case SectionSettings:
		s.SettingsOpen = true
	case SectionHistory:
		s.HistoryOpen = true
	case SectionGitHub:
		s.GitHubOpen = true
	case SectionProfile:
		s.ProfileOpen = true
	}
}

// CloseModal drops every modal flag and returns focus to the upload panel.
func (s *Session) CloseModal() {
	s.SettingsOpen = false
	s.HistoryOpen = false
	s.GitHubOpen = false
	s.ProfileOpen = false
	s.Active = SectionUpload
}

// ModalOpen reports whether any modal section is currently raised.
func (s *Session) ModalOpen() bool {
	return s.SettingsOpen || s.HistoryOpen || s.GitHubOpen || s.ProfileOpen
}

// CompleteAnalysis replaces the run state wholesale from a finished
// workflow outcome and switches to the results view.
func (s *Session) CompleteAnalysis(o *analysis.Outcome) {
	r := o.Result
	s.Result = &r
	s.Locator = o.Locator
	s.ReportContent = o.ReportText
	s.ProjectName = o.ProjectName
	s.ArchivePath = o.ArchivePath
	s.ShowResults = true
}

// NewAnalysis resets the run state atomically: no field from the previous
// run survives. Focus returns to the upload panel.
func (s *Session) NewAnalysis() {
	s.ShowResults = false
	s.Result = nil
	s.Locator = analysis.ReportLocator{}
	s.ReportContent = ""
	s.ProjectName = ""
	s.ArchivePath = ""
	s.ReportOpen = false
	s.Active = SectionUpload
}

// ResultsVisible reports whether the results panel should render: a result
// exists, the results flag is raised, and no modal outranks it.
func (s *Session) ResultsVisible() bool {
	return s.ShowResults && s.Result != nil && !s.ModalOpen()
}
