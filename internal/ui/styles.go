package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/meishiki/internal/ganzhi"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan, headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold, warnings, highlights
	colorSuccess = lipgloss.Color("#00E676") // Green, success
	colorDanger  = lipgloss.Color("#FF5252") // Red, errors, clashes
	colorMuted   = lipgloss.Color("#8C8C8C") // Gray, labels
)

// elementColors tints stems and branches by element.
var elementColors = [ganzhi.ElementCount]lipgloss.Color{
	lipgloss.Color("#4CAF50"), // wood
	lipgloss.Color("#FF7043"), // fire
	lipgloss.Color("#C8A165"), // earth
	lipgloss.Color("#E0E0E0"), // metal
	lipgloss.Color("#42A5F5"), // water
}

var (
	styleHeading = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMuted)
	styleInfo    = lipgloss.NewStyle().Foreground(colorMuted)
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	styleCell    = lipgloss.NewStyle().Width(10)
	styleBox     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// Status icons.
const (
	iconDone  = "✓"
	iconFail  = "✗"
	iconWarn  = "⚠"
	iconWatch = "◎"
)

func elementStyle(e ganzhi.Element) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(elementColors[e]).Bold(true)
}

// pillarText renders a pillar with each character tinted by its element.
func pillarText(p ganzhi.Pillar) string {
	return elementStyle(p.StemElement()).Render(p.Stem.String()) +
		elementStyle(p.BranchElement()).Render(p.Branch.String())
}
