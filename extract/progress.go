package extract

import "strings"

// Progress bar glyphs: filled and empty cells.
const (
	barFilled = "🟩"
	barEmpty  = "⬜"
)

// ProgressBar renders a progress bar of width cells for percent (0..100).
// Out-of-range percentages are clamped.
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if width <= 0 {
		return ""
	}

	filled := (percent * width) / 100

	var sb strings.Builder
	sb.Grow(width * 4)
	for i := 0; i < filled; i++ {
		sb.WriteString(barFilled)
	}
	for i := filled; i < width; i++ {
		sb.WriteString(barEmpty)
	}
	return sb.String()
}
