// Package styles provides the centralized color palette and style definitions
// for the taxonpages TUI. All visual constants live here so the rest of the
// TUI code can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	// Accent
	Blue     = lipgloss.Color("#5FAFFF")
	DarkBlue = lipgloss.Color("#1A2F40")

	// Status
	Green = lipgloss.Color("#5FD787")
	Red   = lipgloss.Color("#FF8787")
)

// --- Map layer colors ---
//
// One per legend background token, matching the fills the map draws for
// each record category.

var (
	MapAggregate        = lipgloss.Color("#8E44AD")
	MapAsserted         = lipgloss.Color("#E67E22")
	MapGeoreference     = lipgloss.Color("#2E86C1")
	MapCollectionObject = lipgloss.Color("#27AE60")
	MapTypeMaterial     = lipgloss.Color("#C0392B")
)
