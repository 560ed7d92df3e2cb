package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// clamp constrains a value between min and max
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncate shortens a string to fit the given width, appending an
// ellipsis when it had to cut
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	runes := []rune(s)
	out := make([]rune, 0, width)
	w := 0
	for _, r := range runes {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}

// pad right-pads a string with spaces to the given width, truncating
// when it is too long
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate(s, width)
	gap := width - lipgloss.Width(s)
	if gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
