package analysis

// Health is the qualitative tier derived from issue counts.
type Health string

const (
	HealthExcellent      Health = "Excellent"
	HealthCritical       Health = "Critical"
	HealthNeedsAttention Health = "Needs Attention"
	HealthGood           Health = "Good"
)

// EvaluateHealth maps issue counts to a health tier. Check order is
// significant: a zero total always wins, even when the other counts are
// inconsistently non-zero.
func EvaluateHealth(totalIssues, criticalIssues, warnings int) Health {
	switch {
	case totalIssues == 0:
		return HealthExcellent
	case criticalIssues > 5:
		return HealthCritical
	case criticalIssues > 0 || warnings > 10:
		return HealthNeedsAttention
	default:
		return HealthGood
	}
}
