// Package testutil has helpers shared by the view tests.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI drops styling so views can be compared as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// FindLine returns the first line of output that contains substr.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// SplitLines splits output on newlines without the trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == ""; n = len(lines) {
		lines = lines[:n-1]
	}
	return lines
}
