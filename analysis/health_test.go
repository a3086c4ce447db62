package analysis_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/marcus/scandash/analysis"
)

func TestEvaluateHealth(t *testing.T) {
	tests := []struct {
		name                      string
		total, critical, warnings int
		want                      analysis.Health
	}{
		{"clean run", 0, 0, 0, analysis.HealthExcellent},
		{"zero total wins over inconsistent counts", 0, 9, 20, analysis.HealthExcellent},
		{"many criticals", 20, 6, 0, analysis.HealthCritical},
		{"boundary five criticals is not critical tier", 20, 5, 0, analysis.HealthNeedsAttention},
		{"one critical", 3, 1, 0, analysis.HealthNeedsAttention},
		{"many warnings", 15, 0, 11, analysis.HealthNeedsAttention},
		{"boundary ten warnings", 10, 0, 10, analysis.HealthGood},
		{"only suggestions", 5, 0, 0, analysis.HealthGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.EvaluateHealth(tt.total, tt.critical, tt.warnings)
			if got != tt.want {
				t.Errorf("EvaluateHealth(%d, %d, %d) = %q, want %q",
					tt.total, tt.critical, tt.warnings, got, tt.want)
			}
		})
	}
}

func TestEvaluateHealthTotality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 10_000).Draw(t, "total")
		critical := rapid.IntRange(0, 10_000).Draw(t, "critical")
		warnings := rapid.IntRange(0, 10_000).Draw(t, "warnings")

		got := analysis.EvaluateHealth(total, critical, warnings)
		switch got {
		case analysis.HealthExcellent, analysis.HealthGood,
			analysis.HealthNeedsAttention, analysis.HealthCritical:
		default:
			t.Fatalf("EvaluateHealth returned unknown tier %q", got)
		}

		if total == 0 && got != analysis.HealthExcellent {
			t.Errorf("zero total must be Excellent, got %q", got)
		}
	})
}
