package display

import "github.com/charmbracelet/lipgloss"

// ── Styles (soft palette) ────────────────────────────────────────

var (
	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	// Primary text — light zinc for recipe names and body copy.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints, counts, metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Accent — soft sky blue for selected rows and active tabs.
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Tag — soft mint for facet chips and quick-filter pills.
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	tagOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	// Urgent — soft coral for errors.
	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#a1a1aa"))
)
