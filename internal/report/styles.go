package report

import "github.com/charmbracelet/lipgloss"

// Shared color palette, picked for dark terminal backgrounds.
const (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorMuted     = lipgloss.Color("#6B7280")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarning   = lipgloss.Color("#F59E0B")
	colorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for section headers.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	// SubtitleStyle is for secondary text and de-emphasized detail.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// SuccessStyle is for positive outcomes.
	SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// ErrorStyle is for failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	// WarningStyle is for caution states.
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// labelStyle is for per-line field labels.
	labelStyle = lipgloss.NewStyle().Foreground(colorHighlight)
)
