package cmd

import (
	"strings"

	"github.com/marcus/dropdown/pkg/dropdown"
)

// blank returns an empty w x h frame.
func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// place draws block onto frame at (x, y).
func place(frame, block string, x, y, width int) string {
	return dropdown.Overlay(frame, block, x, y, width)
}
