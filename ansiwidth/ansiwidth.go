// Package ansiwidth measures the visible width of strings that carry
// terminal styling escape sequences.
package ansiwidth

import (
	"regexp"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// escapeRegex matches CSI styling sequences: ESC '[' then digits or
// semicolons then a single letter. Compiled once, never mutated.
var escapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Strip returns s with every styling escape sequence removed. Partial or
// malformed sequences that do not match the pattern are left in place.
func Strip(s string) string {
	if s == "" {
		return s
	}
	return escapeRegex.ReplaceAllString(s, "")
}

// Width returns the number of visible Unicode scalar values in s, i.e. the
// rune count of s after Strip.
func Width(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// CellWidth returns the number of terminal cells the visible part of s
// occupies. East Asian wide runes count as two cells, combining marks as
// zero. For ASCII and most Latin text it equals Width.
func CellWidth(s string) int {
	return runewidth.StringWidth(Strip(s))
}
