package analysis

import (
	"context"
	"path/filepath"
)

// Backend is the slice of the analysis service the workflow needs.
type Backend interface {
	// Upload submits a project archive and returns the raw summary body.
	Upload(ctx context.Context, archivePath string) (string, error)
	// FetchReport reads a generated report's text body.
	FetchReport(ctx context.Context, reportPath string) (string, error)
}

// Result is the outcome of one completed analysis run. The per-class counts
// are heuristic and need not sum to TotalIssues.
type Result struct {
	TotalIssues    int
	CriticalIssues int
	Warnings       int
	Suggestions    int
	Summary        string
}

// Outcome bundles everything a completed run produces: the result, the
// report locator, the fetched report body, and the derived project name.
type Outcome struct {
	Result      Result
	Locator     ReportLocator
	ReportText  string
	ProjectName string
	ArchivePath string

	// ClassifyErr records a report fetch failure during the optional
	// classification step. Non-fatal: the fallback split was applied.
	ClassifyErr error
}

// Workflow drives one analysis run: upload, summary parsing, report fetch,
// severity classification.
type Workflow struct {
	backend Backend
}

func NewWorkflow(backend Backend) *Workflow {
	return &Workflow{backend: backend}
}

// Analyze uploads an archive and builds the run outcome. An upload failure
// is fatal and aborts the run. Failures in the later fetch/classify step are
// recovered locally via the fallback split and never abort the run.
//
// The report fetch is issued strictly after the upload response and only
// when a report path was extracted; classification runs on the fetched body.
func (w *Workflow) Analyze(ctx context.Context, archivePath string) (*Outcome, error) {
	body, err := w.backend.Upload(ctx, archivePath)
	if err != nil {
		return nil, err
	}

	sum := ParseUploadSummary(body)
	locator := NewReportLocator(sum.ReportPath)

	var counts SeverityCounts
	var reportText string
	var classifyErr error

	switch {
	case sum.TotalIssues > 0 && !locator.Empty():
		reportText, classifyErr = w.backend.FetchReport(ctx, locator.Path)
		if classifyErr != nil {
			counts = FallbackSplit(sum.TotalIssues)
		} else {
			counts = Classify(reportText)
			if counts.Zero() {
				// Positive total but no markers matched: classification
				// is unavailable, not authoritative zero.
				counts = FallbackSplit(sum.TotalIssues)
			}
		}
	case sum.TotalIssues > 0:
		counts = FallbackSplit(sum.TotalIssues)
	}

	return &Outcome{
		Result: Result{
			TotalIssues:    sum.TotalIssues,
			CriticalIssues: counts.Critical,
			Warnings:       counts.Warnings,
			Suggestions:    counts.Suggestions,
			Summary:        body,
		},
		Locator:     locator,
		ReportText:  reportText,
		ProjectName: ProjectNameFromFile(filepath.Base(archivePath)),
		ArchivePath: archivePath,
		ClassifyErr: classifyErr,
	}, nil
}
