package export

import (
	"fmt"
	"strings"

	"github.com/marcus/scandash/analysis"
)

// BuildRunSummary renders a markdown summary of an analysis run, suitable
// for pasting into an issue or a chat thread.
func BuildRunSummary(projectName string, r analysis.Result) string {
	health := analysis.EvaluateHealth(r.TotalIssues, r.CriticalIssues, r.Warnings)

	var b strings.Builder
	fmt.Fprintf(&b, "# Analysis: %s\n\n", projectName)
	fmt.Fprintf(&b, "- Health: %s\n", health)
	fmt.Fprintf(&b, "- Total issues: %d\n", r.TotalIssues)
	fmt.Fprintf(&b, "- Critical: %d\n", r.CriticalIssues)
	fmt.Fprintf(&b, "- Warnings: %d\n", r.Warnings)
	fmt.Fprintf(&b, "- Suggestions: %d\n", r.Suggestions)

	if sum := strings.TrimSpace(r.Summary); sum != "" {
		b.WriteString("\n```\n")
		b.WriteString(sum)
		b.WriteString("\n```\n")
	}

	return b.String()
}
