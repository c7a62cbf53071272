package formatter

import (
	"testing"

	"chrona/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(0.5, 8)
	assert.Contains(t, out, "████░░░░")
	assert.Contains(t, out, "50%")

	// Over-full bars clamp but the percentage keeps counting.
	out = RenderProgress(1.5, 4)
	assert.Contains(t, out, "████")
	assert.Contains(t, out, "150%")

	out = RenderProgress(-0.2, 4)
	assert.Contains(t, out, "░░░░")
	assert.Contains(t, out, "0%")
}

func TestRenderLimitBar(t *testing.T) {
	out := RenderLimitBar(0.25, domain.LimitUnder, 8)
	assert.Contains(t, out, "██░░░░░░")
	assert.Contains(t, out, "25%")

	out = RenderLimitBar(1.02, domain.LimitOver, 8)
	assert.Contains(t, out, "████████")
	assert.Contains(t, out, "102%")
}

func TestLimitIndicator(t *testing.T) {
	assert.Contains(t, LimitIndicator(domain.LimitUnder), "UNDER LIMIT")
	assert.Contains(t, LimitIndicator(domain.LimitNear), "NEAR LIMIT")
	assert.Contains(t, LimitIndicator(domain.LimitOver), "OVER LIMIT")
}
