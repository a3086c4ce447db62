package analysis

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// The upload endpoint answers with human-readable summary text. Until the
// backend grows a structured response contract, these two line markers are
// the interface. The compatibility parser stays isolated here so nothing
// else in the repo touches the raw format.
var (
	issueCountRe = regexp.MustCompile(`🔍 Issues detected: (\d+)`)
	reportPathRe = regexp.MustCompile(`(?m)📋 Report path: (.+)$`)
)

// UploadSummary is the parsed form of an upload response body.
type UploadSummary struct {
	TotalIssues int    // 0 when the issue-count marker is absent
	ReportPath  string // empty when the path marker is absent
	Raw         string
}

// ParseUploadSummary extracts the issue count and report path markers from
// an upload response body. Missing markers are not errors: the count
// defaults to 0 and the path to empty.
func ParseUploadSummary(body string) UploadSummary {
	sum := UploadSummary{Raw: body}

	if m := issueCountRe.FindStringSubmatch(body); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			sum.TotalIssues = n
		}
	}
	if m := reportPathRe.FindStringSubmatch(body); m != nil {
		sum.ReportPath = strings.TrimRight(m[1], "\r")
	}
	return sum
}

// ReportLocator identifies a generated report artifact on the backend.
// ProjectDir is always the path with its final /-delimited segment removed.
type ReportLocator struct {
	Path       string
	ProjectDir string
}

// NewReportLocator derives a locator from a report path. A path without a
// slash yields an empty project directory.
func NewReportLocator(path string) ReportLocator {
	loc := ReportLocator{Path: path}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		loc.ProjectDir = path[:i]
	}
	return loc
}

// Empty reports whether no report path was extracted from the upload summary.
func (l ReportLocator) Empty() bool {
	return l.Path == ""
}

// ProjectNameFromFile strips the trailing extension from an archive file
// name: "Demo.zip" becomes "Demo", "site.tar.gz" becomes "site.tar".
func ProjectNameFromFile(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
