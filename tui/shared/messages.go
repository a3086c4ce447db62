package shared

import (
	"encoding/json"

	"github.com/marcus/scandash/analysis"
	"github.com/marcus/scandash/history"
	"github.com/marcus/scandash/state"
)

// Messages produced by async commands. Seq carries the analyze-invocation
// sequence number; the app drops any completion whose Seq is stale.

type AnalysisCompleteMsg struct {
	Seq     int
	Outcome *analysis.Outcome
	Err     error
}

type ReportFetchedMsg struct {
	Seq     int
	Content string
	Err     error
}

type VisualReportMsg struct {
	Seq     int
	Payload json.RawMessage
	Err     error
}

type HistoryLoadedMsg struct {
	Runs []history.Run
	Err  error
}

type RunRecordedMsg struct {
	Err error
}

type SummaryCopiedMsg struct {
	Err error
}

// ArchiveChangedMsg reports that the analyzed archive was rewritten on disk
// after the run completed.
type ArchiveChangedMsg struct {
	Path string
}

// CloseReportMsg closes the full-screen report viewer. When the viewer was
// left via its file sub-view, Handoff carries the state to restore and
// OpenReport is true.
type CloseReportMsg struct {
	OpenReport bool
	Handoff    state.Handoff
}

type CloseVisualMsg struct{}

type ConfigSavedMsg struct {
	Err error
}
