package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	SuccessColor = lipgloss.Color("10")
	ErrorColor   = lipgloss.Color("9")
	WarningColor = lipgloss.Color("11")
	MutedColor   = lipgloss.Color("8")
	PathColor    = lipgloss.Color("12")
	HeadingColor = lipgloss.Color("13")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
