package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quarterplan/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCapacityBar renders allocated vs estimated weeks as a bar like
// [████░░░░] 8/12w, colored by the capacity badge for the pair.
func RenderCapacityBar(allocated, estimated float64, width int) string {
	if width < 2 {
		width = 2
	}

	ratio := 0.0
	if estimated > 0 {
		ratio = allocated / estimated
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := BadgeStyle(domain.CapacityStatus(allocated, estimated))
	return fmt.Sprintf("[%s] %s", style.Render(bar), FormatWeeks(allocated)+"/"+FormatWeeks(estimated)+"w")
}

// FormatWeeks renders a week count, dropping the fraction when whole.
func FormatWeeks(w float64) string {
	if w == float64(int(w)) {
		return fmt.Sprintf("%d", int(w))
	}
	return fmt.Sprintf("%.1f", w)
}

// FormatPercentage renders an allocation percentage, dropping the fraction
// when whole.
func FormatPercentage(pct float64) string {
	if pct == float64(int(pct)) {
		return fmt.Sprintf("%d%%", int(pct))
	}
	return fmt.Sprintf("%.1f%%", pct)
}
