package analysis_test

import (
	"testing"

	"github.com/marcus/scandash/analysis"
)

func TestParseUploadSummary(t *testing.T) {
	body := "Analysis complete!\n" +
		"🔍 Issues detected: 12\n" +
		"📋 Report path: uploads/Demo/Demo_comprehensive.txt\n" +
		"Thanks for using the analyzer.\n"

	sum := analysis.ParseUploadSummary(body)
	if sum.TotalIssues != 12 {
		t.Errorf("TotalIssues = %d, want 12", sum.TotalIssues)
	}
	if sum.ReportPath != "uploads/Demo/Demo_comprehensive.txt" {
		t.Errorf("ReportPath = %q", sum.ReportPath)
	}
	if sum.Raw != body {
		t.Error("Raw should carry the full body")
	}
}

func TestParseUploadSummaryMissingMarkers(t *testing.T) {
	sum := analysis.ParseUploadSummary("Upload accepted.\n")
	if sum.TotalIssues != 0 {
		t.Errorf("TotalIssues = %d, want 0", sum.TotalIssues)
	}
	if sum.ReportPath != "" {
		t.Errorf("ReportPath = %q, want empty", sum.ReportPath)
	}
}

func TestParseUploadSummaryCRLF(t *testing.T) {
	sum := analysis.ParseUploadSummary("🔍 Issues detected: 3\r\n📋 Report path: uploads/P/r.txt\r\n")
	if sum.TotalIssues != 3 {
		t.Errorf("TotalIssues = %d, want 3", sum.TotalIssues)
	}
	if sum.ReportPath != "uploads/P/r.txt" {
		t.Errorf("ReportPath = %q, carriage return not stripped", sum.ReportPath)
	}
}

func TestNewReportLocator(t *testing.T) {
	tests := []struct {
		path        string
		wantDir     string
		wantIsEmpty bool
	}{
		{"uploads/Proj/report.txt", "uploads/Proj", false},
		{"uploads/a/b/c.txt", "uploads/a/b", false},
		{"report.txt", "", false},
		{"", "", true},
	}
	for _, tt := range tests {
		loc := analysis.NewReportLocator(tt.path)
		if loc.ProjectDir != tt.wantDir {
			t.Errorf("NewReportLocator(%q).ProjectDir = %q, want %q", tt.path, loc.ProjectDir, tt.wantDir)
		}
		if loc.Empty() != tt.wantIsEmpty {
			t.Errorf("NewReportLocator(%q).Empty() = %v, want %v", tt.path, loc.Empty(), tt.wantIsEmpty)
		}
	}
}

func TestProjectNameFromFile(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Demo.zip", "Demo"},
		{"site.tar.gz", "site.tar"},
		{"noext", "noext"},
		{"my.project.zip", "my.project"},
	}
	for _, tt := range tests {
		if got := analysis.ProjectNameFromFile(tt.in); got != tt.want {
			t.Errorf("ProjectNameFromFile(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
