package tui

import (
	"aqiform/models"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#3A7BD5") // Blue
	SuccessColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor   = lipgloss.Color("#E5534B") // Red
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtleColor  = lipgloss.Color("#626262") // Gray
)

// tierColors maps each AQI color tag to a terminal color
var tierColors = map[models.ColorTag]lipgloss.Color{
	models.ColorGood:          lipgloss.Color("#2E9D4A"),
	models.ColorModerate:      lipgloss.Color("#E0C200"),
	models.ColorSensitive:     lipgloss.Color("#E67E22"),
	models.ColorUnhealthy:     lipgloss.Color("#D63031"),
	models.ColorVeryUnhealthy: lipgloss.Color("#8E44AD"),
	models.ColorHazardous:     lipgloss.Color("#7B1F1F"),
}

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Width(18)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(18)

	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(18)

	AlertStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 1)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SubtleColor).
			Padding(0, 2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2).
			Width(60)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginTop(1)
)

// aqiValueStyle colors the AQI value by its tier; no tag leaves it gray
func aqiValueStyle(tag models.ColorTag) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Foreground(SubtleColor)
	if c, ok := tierColors[tag]; ok {
		style = style.Foreground(c)
	}
	return style
}
