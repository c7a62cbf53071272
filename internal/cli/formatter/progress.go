package formatter

import (
	"fmt"
	"strings"

	"chrona/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored green below 66%, yellow from 66%, red from 100%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	clamped := pct
	if clamped > 1 {
		clamped = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(clamped * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct >= 1 {
		style = StyleRed
	} else if pct >= 0.66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// RenderLimitBar renders the daily usage bar colored by limit state
// rather than by raw percentage, so "near" turns yellow at 80%.
func RenderLimitBar(pct float64, state domain.LimitState, width int) string {
	if pct < 0 {
		pct = 0
	}
	clamped := pct
	if clamped > 1 {
		clamped = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(clamped * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", LimitColor(state).Render(bar), pctStr)
}
