package tui

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/scandash/analysis"
	"github.com/marcus/scandash/api"
	"github.com/marcus/scandash/auth"
	"github.com/marcus/scandash/config"
	"github.com/marcus/scandash/tui/shared"
)

func newTestApp() App {
	client := api.NewClient("http://localhost:0", "tok", "user-1", time.Second)
	return NewApp(config.Config{}, "", auth.Credentials{Token: "tok", UserID: "user-1"}, nil, client, nil)
}

// completeRun delivers a finished analysis for the app's current sequence.
func completeRun(t *testing.T, app App) App {
	t.Helper()
	model, _ := app.Update(shared.AnalysisCompleteMsg{
		Seq: app.analysisSeq,
		Outcome: &analysis.Outcome{
			Result:      analysis.Result{TotalIssues: 4, CriticalIssues: 1, Warnings: 2, Suggestions: 1},
			Locator:     analysis.NewReportLocator("uploads/Demo/Demo_comprehensive.txt"),
			ProjectName: "Demo",
			ArchivePath: "/tmp/Demo.zip",
		},
	})
	return model.(App)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewAnalysisDropsStaleReportFetch(t *testing.T) {
	app := newTestApp()
	app = completeRun(t, app)
	staleSeq := app.analysisSeq

	model, _ := app.Update(keyMsg("n"))
	app = model.(App)
	if app.session.Result != nil || app.session.ReportContent != "" {
		t.Fatalf("new analysis did not reset the session: %+v", app.session)
	}

	model, _ = app.Update(shared.ReportFetchedMsg{Seq: staleSeq, Content: "old report body"})
	app = model.(App)

	if app.session.ReportContent != "" {
		t.Errorf("stale fetch overwrote the reset session: %q", app.session.ReportContent)
	}
	if app.session.ReportOpen {
		t.Error("stale fetch marked the report open")
	}
	if app.activeView == ReportView {
		t.Error("stale fetch reopened the report view over the fresh session")
	}
}

func TestNewAnalysisDropsStaleVisualReport(t *testing.T) {
	app := newTestApp()
	app = completeRun(t, app)
	staleSeq := app.analysisSeq

	model, _ := app.Update(keyMsg("n"))
	app = model.(App)

	model, _ = app.Update(shared.VisualReportMsg{Seq: staleSeq, Payload: json.RawMessage(`{"nodes": []}`)})
	app = model.(App)

	if app.activeView == VisualView {
		t.Error("stale visual report opened its view over the fresh session")
	}
}

func TestCurrentRunReportFetchStillApplies(t *testing.T) {
	app := newTestApp()
	app = completeRun(t, app)

	model, _ := app.Update(shared.ReportFetchedMsg{Seq: app.analysisSeq, Content: "🚨 🔴 finding"})
	app = model.(App)

	if app.session.ReportContent != "🚨 🔴 finding" {
		t.Errorf("current-run fetch not applied: %q", app.session.ReportContent)
	}
	if app.activeView != ReportView {
		t.Error("current-run fetch should open the report view")
	}
}

func TestAnalysisCompleteFeedbackNamesRun(t *testing.T) {
	app := newTestApp()
	app = completeRun(t, app)

	if app.feedback == nil {
		t.Fatal("completion should raise feedback")
	}
	if !strings.Contains(app.feedback.Message, "Demo") || !strings.Contains(app.feedback.Message, "4") {
		t.Errorf("feedback should name the project and issue count, got %q", app.feedback.Message)
	}
}

func TestStaleAnalysisCompletionDropped(t *testing.T) {
	app := newTestApp()
	app = completeRun(t, app)
	staleSeq := app.analysisSeq

	model, _ := app.Update(keyMsg("n"))
	app = model.(App)

	model, _ = app.Update(shared.AnalysisCompleteMsg{
		Seq: staleSeq,
		Outcome: &analysis.Outcome{
			Result:      analysis.Result{TotalIssues: 9},
			ProjectName: "Old",
		},
	})
	app = model.(App)

	if app.session.Result != nil {
		t.Errorf("stale completion populated the session: %+v", app.session.Result)
	}
}
