package state_test

import (
	"testing"

	"github.com/marcus/scandash/analysis"
	"github.com/marcus/scandash/state"
)

func completedSession() *state.Session {
	s := state.New()
	s.StartAnalysis()
	s.CompleteAnalysis(&analysis.Outcome{
		Result:      analysis.Result{TotalIssues: 4, CriticalIssues: 1, Warnings: 2, Suggestions: 1, Summary: "raw"},
		Locator:     analysis.NewReportLocator("uploads/Demo/Demo_comprehensive.txt"),
		ReportText:  "🚨 🔴 something",
		ProjectName: "Demo",
		ArchivePath: "/tmp/Demo.zip",
	})
	return s
}

func TestNewSessionStartsOnGuide(t *testing.T) {
	s := state.New()
	if s.Active != state.SectionGuide {
		t.Errorf("Active = %q, want guide", s.Active)
	}
	if s.ResultsVisible() {
		t.Error("fresh session should not show results")
	}
}

func TestCompleteAnalysisShowsResults(t *testing.T) {
	s := completedSession()

	if !s.ShowResults {
		t.Error("ShowResults should be raised")
	}
	if !s.ResultsVisible() {
		t.Error("ResultsVisible should be true with no modal open")
	}
	if s.Result == nil || s.Result.TotalIssues != 4 {
		t.Errorf("Result = %+v", s.Result)
	}
	if s.ProjectName != "Demo" || s.ArchivePath != "/tmp/Demo.zip" {
		t.Errorf("run identity not carried: %q %q", s.ProjectName, s.ArchivePath)
	}
}

func TestNewAnalysisResetsEverything(t *testing.T) {
	s := completedSession()
	s.ReportOpen = true
	s.OpenModal(state.SectionHistory)
	s.CloseModal()

	s.NewAnalysis()

	if s.ShowResults || s.Result != nil || s.ReportOpen {
		t.Errorf("run flags survived reset: %+v", s)
	}
	if s.ReportContent != "" || s.ProjectName != "" || s.ArchivePath != "" {
		t.Errorf("run data survived reset: %+v", s)
	}
	if !s.Locator.Empty() {
		t.Errorf("Locator survived reset: %+v", s.Locator)
	}
	if s.Active != state.SectionUpload {
		t.Errorf("Active = %q, want upload after reset", s.Active)
	}
}

func TestModalLifecycle(t *testing.T) {
	s := completedSession()

	s.OpenModal(state.SectionSettings)
	if !s.SettingsOpen || s.Active != state.SectionSettings {
		t.Errorf("settings modal not raised: %+v", s)
	}
	if !s.ModalOpen() {
		t.Error("ModalOpen should be true")
	}
	if s.ResultsVisible() {
		t.Error("results hidden while a modal is open")
	}

	s.CloseModal()
	if s.ModalOpen() {
		t.Error("ModalOpen should be false after CloseModal")
	}
	if !s.ResultsVisible() {
		t.Error("results visible again after closing the modal")
	}
}

func TestOpenModalIgnoresNonModalSections(t *testing.T) {
	s := state.New()
	s.OpenModal(state.SectionUpload)
	if s.ModalOpen() {
		t.Error("upload is not a modal section")
	}
	if s.Active != state.SectionGuide {
		t.Errorf("Active changed to %q", s.Active)
	}
}

func TestStartAnalysisClosesModals(t *testing.T) {
	s := state.New()
	s.OpenModal(state.SectionProfile)
	s.OpenModal(state.SectionHistory)

	s.StartAnalysis()

	if s.ModalOpen() {
		t.Error("StartAnalysis must force-close every modal")
	}
	if s.Active != state.SectionUpload {
		t.Errorf("Active = %q, want upload", s.Active)
	}
}

func TestResultsVisibleRequiresResult(t *testing.T) {
	s := state.New()
	s.ShowResults = true
	if s.ResultsVisible() {
		t.Error("ResultsVisible must be false without a result")
	}
}
