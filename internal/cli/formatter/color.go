package formatter

import (
	"fmt"
	"strings"

	"chrona/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LimitColor returns the lipgloss style for the given limit state.
func LimitColor(state domain.LimitState) lipgloss.Style {
	switch state {
	case domain.LimitOver:
		return StyleRed
	case domain.LimitNear:
		return StyleYellow
	case domain.LimitUnder:
		return StyleGreen
	default:
		return StyleDim
	}
}

// LimitIndicator returns a colored limit indicator string such as "● OVER LIMIT".
func LimitIndicator(state domain.LimitState) string {
	switch state {
	case domain.LimitOver:
		return StyleRed.Render("● OVER LIMIT")
	case domain.LimitNear:
		return StyleYellow.Render("● NEAR LIMIT")
	case domain.LimitUnder:
		return StyleGreen.Render("● UNDER LIMIT")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// CategoryBadge returns a colored category label.
func CategoryBadge(c domain.Category) string {
	switch c {
	case domain.CategorySocial:
		return StyleBlue.Render(string(c))
	case domain.CategoryStudy:
		return StyleGreen.Render(string(c))
	case domain.CategoryProductivity:
		return StylePurple.Render(string(c))
	case domain.CategoryEntertainment:
		return StyleYellow.Render(string(c))
	default:
		return StyleDim.Render(string(c))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
