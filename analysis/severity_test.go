package analysis_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/marcus/scandash/analysis"
)

func TestClassifyCountsMarkers(t *testing.T) {
	report := strings.Join([]string{
		"📄 src/main.js",
		"🚨 🔴 CRITICAL: eval() call with user input",
		"🚨 🟡 WARNING: unused variable 'tmp'",
		"🚨 🟡 WARNING: function exceeds 80 lines",
		"🚨 🟠 SUGGESTION: prefer const over let",
		"📄 src/util.js",
		"🚨 ⚠️ Could not parse file",
		"🚨 🔴 CRITICAL: hardcoded credential",
	}, "\n")

	got := analysis.Classify(report)
	want := analysis.SeverityCounts{Critical: 2, Warnings: 3, Suggestions: 1}
	if got != want {
		t.Errorf("Classify = %+v, want %+v", got, want)
	}
}

func TestClassifyParseErrorsCountAsWarnings(t *testing.T) {
	got := analysis.Classify("🚨 ⚠️ bad file\n🚨 ⚠️ another bad file\n")
	if got.Warnings != 2 {
		t.Errorf("Warnings = %d, want 2", got.Warnings)
	}
	if got.Critical != 0 || got.Suggestions != 0 {
		t.Errorf("unexpected non-warning counts: %+v", got)
	}
}

func TestClassifyNoMarkers(t *testing.T) {
	got := analysis.Classify("Everything looks great.\nNo issues found.\n")
	if !got.Zero() {
		t.Errorf("expected zero counts for markerless text, got %+v", got)
	}
}

func TestClassifyIgnoresBareEmoji(t *testing.T) {
	// A marker is the siren plus the severity emoji; either alone is not one.
	got := analysis.Classify("🔴 red circle without siren\n🚨 siren without severity\n")
	if !got.Zero() {
		t.Errorf("expected zero counts, got %+v", got)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringN(0, 500, -1).Draw(t, "text")
		first := analysis.Classify(text)
		second := analysis.Classify(text)
		if first != second {
			t.Errorf("Classify not idempotent: %+v then %+v", first, second)
		}
	})
}

func TestFallbackSplitExactValues(t *testing.T) {
	tests := []struct {
		total int
		want  analysis.SeverityCounts
	}{
		{0, analysis.SeverityCounts{}},
		{-3, analysis.SeverityCounts{}},
		{1, analysis.SeverityCounts{Critical: 0, Warnings: 0, Suggestions: 1}},
		{7, analysis.SeverityCounts{Critical: 1, Warnings: 3, Suggestions: 3}},
		{10, analysis.SeverityCounts{Critical: 2, Warnings: 5, Suggestions: 3}},
		{100, analysis.SeverityCounts{Critical: 20, Warnings: 50, Suggestions: 30}},
	}
	for _, tt := range tests {
		if got := analysis.FallbackSplit(tt.total); got != tt.want {
			t.Errorf("FallbackSplit(%d) = %+v, want %+v", tt.total, got, tt.want)
		}
	}
}

func TestFallbackSplitProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 1_000_000).Draw(t, "total")
		got := analysis.FallbackSplit(total)

		if got.Critical < 0 || got.Warnings < 0 || got.Suggestions < 0 {
			t.Fatalf("negative count in %+v", got)
		}
		if got.Zero() {
			t.Fatalf("FallbackSplit(%d) returned zero counts", total)
		}

		sum := got.Critical + got.Warnings + got.Suggestions
		if sum < total-1 || sum > total {
			t.Errorf("FallbackSplit(%d) parts sum to %d, want within [total-1, total]", total, sum)
		}
	})
}
