package analysis

import "strings"

// Severity markers the report generator embeds in report text.
const (
	markerCritical   = "🚨 🔴"
	markerWarning    = "🚨 🟡"
	markerSuggestion = "🚨 🟠"
	markerParseError = "🚨 ⚠️"
)

// Fallback split percentages, used when a report carries no severity markers.
// Tunable constants, not derived values; kept at the historical 20/50/30.
const (
	fallbackCriticalPct   = 20
	fallbackWarningPct    = 50
	fallbackSuggestionPct = 30
)

// SeverityCounts is the per-class breakdown of issues in one report.
type SeverityCounts struct {
	Critical    int
	Warnings    int
	Suggestions int
}

// Zero reports whether no issues were classified. A zero result does not
// distinguish a clean report from a report without markers; callers holding
// a positive backend-declared total must treat it as "classification
// unavailable" and use FallbackSplit instead.
func (c SeverityCounts) Zero() bool {
	return c.Critical == 0 && c.Warnings == 0 && c.Suggestions == 0
}

// Classify counts severity markers in report text. Parse-error markers are
// folded into the warning count. Pure and idempotent.
func Classify(reportText string) SeverityCounts {
	return SeverityCounts{
		Critical:    strings.Count(reportText, markerCritical),
		Warnings:    strings.Count(reportText, markerWarning) + strings.Count(reportText, markerParseError),
		Suggestions: strings.Count(reportText, markerSuggestion),
	}
}

// FallbackSplit distributes a backend-declared issue total across severities
// when per-issue classification is unavailable. Integer arithmetic: floor on
// critical and warnings, ceil on suggestions, so the parts may sum to one
// more or one less than the total.
func FallbackSplit(total int) SeverityCounts {
	if total <= 0 {
		return SeverityCounts{}
	}
	return SeverityCounts{
		Critical:    total * fallbackCriticalPct / 100,
		Warnings:    total * fallbackWarningPct / 100,
		Suggestions: (total*fallbackSuggestionPct + 99) / 100,
	}
}
