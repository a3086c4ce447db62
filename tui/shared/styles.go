package shared

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/scandash/config"
)

var (
	// Sidebar
	SidebarActiveStyle lipgloss.Style
	SidebarItemStyle   lipgloss.Style
	SidebarTitleStyle  lipgloss.Style

	// Section content
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	ValueStyle        lipgloss.Style
	DimStyle          lipgloss.Style
	MutedStyle        lipgloss.Style

	// Health banner
	HealthExcellentStyle lipgloss.Style
	HealthGoodStyle      lipgloss.Style
	HealthAttentionStyle lipgloss.Style
	HealthCriticalStyle  lipgloss.Style

	// Severity counts
	CriticalCountStyle   lipgloss.Style
	WarningCountStyle    lipgloss.Style
	SuggestionCountStyle lipgloss.Style

	// Report viewer
	ReportHeaderStyle   lipgloss.Style
	ReportFooterStyle   lipgloss.Style
	ReportCriticalStyle lipgloss.Style
	ReportWarningStyle  lipgloss.Style
	ReportSuggestStyle  lipgloss.Style

	// Status bar
	StatusBarStyle lipgloss.Style

	// Help
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpOverlayStyle lipgloss.Style

	// Modal overlays
	ModalOverlayStyle lipgloss.Style
	CursorStyle       lipgloss.Style

	// Misc
	ErrorStyle      lipgloss.Style
	StaleBadgeStyle lipgloss.Style
	SpinnerStyle    lipgloss.Style

	// Feedback
	FeedbackSuccessStyle lipgloss.Style
	FeedbackWarningStyle lipgloss.Style
	FeedbackErrorStyle   lipgloss.Style
	FeedbackInfoStyle    lipgloss.Style

	// Spinner frames resolved from theme
	SpinnerType spinner.Spinner
)

// InitStyles configures all styles from a resolved theme.
func InitStyles(theme config.ThemeConfig) {
	SidebarActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	SidebarTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FG))

	SectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FG))

	DimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	MutedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Muted))

	HealthExcellentStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Success))

	HealthGoodStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Suggestion))

	HealthAttentionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Warning))

	HealthCriticalStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Critical))

	CriticalCountStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Critical))

	WarningCountStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Warning))

	SuggestionCountStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Suggestion))

	ReportHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.FG)).
		Background(lipgloss.Color(theme.CursorBG)).
		Padding(0, 1)

	ReportFooterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim)).
		Padding(0, 1)

	ReportCriticalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Critical))

	ReportWarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning))

	ReportSuggestStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Suggestion))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Dim))

	HelpOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Muted)).
		Padding(1, 2)

	ModalOverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	CursorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.CursorBG))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error))

	StaleBadgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.SpinnerFG))

	FeedbackSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackSuccessFG)).
		Background(lipgloss.Color(theme.FeedbackSuccessBG)).
		Padding(0, 1)

	FeedbackWarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackWarningFG)).
		Background(lipgloss.Color(theme.FeedbackWarningBG)).
		Padding(0, 1)

	FeedbackErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.FeedbackErrorFG)).
		Background(lipgloss.Color(theme.FeedbackErrorBG)).
		Padding(0, 1)

	FeedbackInfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFG)).
		Background(lipgloss.Color(theme.StatusBarBG)).
		Padding(0, 1)

	SpinnerType = resolveSpinner(theme.SpinnerType)
}

func resolveSpinner(name string) spinner.Spinner {
	switch name {
	case "dot":
		return spinner.Dot
	case "line":
		return spinner.Line
	case "jump":
		return spinner.Jump
	case "points":
		return spinner.Points
	default:
		return spinner.MiniDot
	}
}

// FeedbackStyle maps a level to its style.
func FeedbackStyle(level FeedbackLevel) lipgloss.Style {
	switch level {
	case FeedbackSuccess:
		return FeedbackSuccessStyle
	case FeedbackWarning:
		return FeedbackWarningStyle
	case FeedbackError:
		return FeedbackErrorStyle
	default:
		return FeedbackInfoStyle
	}
}
