package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderSeats renders seat usage like [██░] 2/3. The bar turns yellow past
// two thirds and red when the course is full.
func RenderSeats(enrolled, capacity, width int) string {
	if width < 2 {
		width = 2
	}
	var pct float64
	filled := 0
	if capacity > 0 {
		pct = float64(enrolled) / float64(capacity)
		filled = min(max(enrolled, 0)*width/capacity, width)
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case capacity > 0 && enrolled >= capacity:
		style = StyleRed
	case pct > 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), enrolled, capacity)
}
