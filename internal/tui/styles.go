// Package tui provides the interactive name browser for onamer.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, rejected words
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - settings
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - selection, banner
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - accepted words
	ColorText      = lipgloss.Color("#f1faee")
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBgAlt     = lipgloss.Color("#2d3436")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	wordStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1)

	wordSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	kanaStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	acceptedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	rejectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Foreground(ColorAccent).
			Padding(0, 2).
			Margin(1, 0)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
