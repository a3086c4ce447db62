package shared

import "time"

// FeedbackLevel controls styling and auto-clear duration.
type FeedbackLevel int

const (
	FeedbackInfo    FeedbackLevel = iota // transient, auto-clears 4s
	FeedbackSuccess                      // green styled, auto-clears 4s
	FeedbackWarning                      // yellow, auto-clears 8s
	FeedbackError                        // red, auto-clears 12s
)

// FeedbackTTL returns the auto-clear duration for a given level.
func FeedbackTTL(level FeedbackLevel) time.Duration {
	switch level {
	case FeedbackInfo, FeedbackSuccess:
		return 4 * time.Second
	case FeedbackWarning:
		return 8 * time.Second
	default:
		return 12 * time.Second
	}
}

// Feedback represents a user-facing feedback message. Op ties it to the
// async operation that produced it, so a completion replaces the loading
// state for the same operation instead of stacking beside it.
type Feedback struct {
	Level     FeedbackLevel
	Message   string
	Detail    string // full error text, shown in the status bar on demand
	Timestamp time.Time
	Op        LoaderOp
}

// DismissFeedbackMsg clears the current feedback after its TTL elapses.
type DismissFeedbackMsg struct {
	Timestamp time.Time // only dismiss if the current feedback is this one
}
