// Package style provides the shop's colour palette and icons for consistent
// presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Petal  = lipgloss.Color("#E11D48")
	Pollen = lipgloss.Color("#F59E0B")
	Stem   = lipgloss.Color("#667085")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
