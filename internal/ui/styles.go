package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — headings, category names
	colorAccent  = lipgloss.Color("#FFD700") // Gold — subcategories, warnings
	colorSuccess = lipgloss.Color("#00E676") // Green — clean results
	colorDanger  = lipgloss.Color("#FF5252") // Red — findings, errors
	colorMuted   = lipgloss.Color("#636363") // Gray — identifiers, counts
)

// Result icons for validator and writer output.
const (
	iconPass = "✓"
	iconFail = "✗"
)

var (
	stylePass    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleFail    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorAccent)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
)

// Tree view styles, one per hierarchy level plus the dimmed identifier.
var (
	styleCategory    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleSubcategory = lipgloss.NewStyle().Foreground(colorAccent)
	styleID          = lipgloss.NewStyle().Foreground(colorMuted)
)
