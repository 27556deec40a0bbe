package tui

import "github.com/mattn/go-runewidth"

// truncateLabel shortens s to fit width terminal cells, appending an
// ellipsis when anything was cut. Wide runes count as two cells.
func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
