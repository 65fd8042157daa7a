// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the macwrap theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("#FF5FD7") // Magenta
	Secondary = lipgloss.Color("#5FD7FF") // Cyan
	Subtle    = lipgloss.Color("240")     // Gray

	// Status colors
	Success = lipgloss.Color("#04B575") // Green
	Error   = lipgloss.Color("#FF5F87") // Red
	Warning = lipgloss.Color("#FFD75F") // Yellow
	Info    = lipgloss.Color("#58A6FF") // Blue

	// Background colors
	BgDark  = lipgloss.Color("#0D1117")
	BgLight = lipgloss.Color("#161B22")

	// Text colors
	TextPrimary   = lipgloss.Color("#F0F6FC")
	TextSecondary = lipgloss.Color("#C9D1D9")
	TextMuted     = lipgloss.Color("244")

	// ToastStyle for floating notifications.
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginBottom(1)
)

// TitleStyle is used for panel headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for secondary headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// HeadlineStyle renders the big number of a panel.
var HeadlineStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextPrimary)

// BodyStyle renders ordinary panel text.
var BodyStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// QuipStyle renders the italic one-liner under a statistic.
var QuipStyle = lipgloss.NewStyle().
	Italic(true).
	Foreground(TextSecondary)

// PersonalityStyle renders the personality label.
var PersonalityStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Warning).
	Padding(1, 4).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Secondary)

// ShareStyle renders the share block on the finale panel.
var ShareStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Background(BgLight).
	Padding(1, 2)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 4)

// ErrorCardStyle frames the explanation shown when no data could be read.
var ErrorCardStyle = CardStyle.
	BorderForeground(Error)

// ProgressStyle renders the "3/16" deck position in the footer.
var ProgressStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpKeyStyle styles keyboard shortcut keys.
var HelpKeyStyle = lipgloss.NewStyle().
	Foreground(Primary).
	Bold(true)

// HelpDescStyle styles help descriptions.
var HelpDescStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// HelpSeparatorStyle styles separators in help text.
var HelpSeparatorStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// WarningTextStyle for warning messages.
var WarningTextStyle = lipgloss.NewStyle().
	Foreground(Warning)

// InfoTextStyle for info messages.
var InfoTextStyle = lipgloss.NewStyle().
	Foreground(Info)

// AccentTextStyle for highlighted figures inside a sentence.
var AccentTextStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary)

// GetIntensityStyle returns the heatmap color for a slot at ratio of the busiest hour.
func GetIntensityStyle(ratio float64) lipgloss.Style {
	switch {
	case ratio >= 0.75:
		return ErrorTextStyle
	case ratio >= 0.5:
		return WarningTextStyle
	case ratio >= 0.25:
		return SuccessTextStyle
	default:
		return lipgloss.NewStyle().Foreground(Subtle)
	}
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// CenterBoth centers content both horizontally and vertically.
func CenterBoth(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
