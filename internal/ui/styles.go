package ui

import "github.com/charmbracelet/lipgloss"

// Dial palette
var (
	ColorAccent    = lipgloss.Color("#1E6FFF")
	ColorAccentDim = lipgloss.Color("#0B3A8C")
	ColorActive    = lipgloss.Color("#00CC33")
	ColorMarker    = lipgloss.Color("#FF3300")
	ColorText      = lipgloss.Color("#D0D0D0")
	ColorMuted     = lipgloss.Color("#6C6C6C")
	ColorBar       = lipgloss.Color("#101830")
	ColorBorder    = lipgloss.Color("#3A5A9A")
	ColorWarning   = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusSweeping = lipgloss.NewStyle().
				Foreground(ColorActive).
				Bold(true)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)

	StyleStatusDiag = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorAccentDim)

	StyleSelection = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleSelectionCommitted = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(ColorActive).
				Bold(true)

	StyleSelectionTarget = lipgloss.NewStyle().
				Foreground(ColorMarker).
				Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
