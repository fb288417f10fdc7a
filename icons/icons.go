// Package icons provides the Nerd Font glyphs shown in front of each info
// line. The OS line picks a distribution logo when one is known.
package icons

import (
	"strings"

	"hostfetch/fields"
)

var categoryGlyphs = map[fields.Category]string{
	fields.OS:          "\uf17c",
	fields.Host:        "\uf109",
	fields.Terminal:    "\uf120",
	fields.Shell:       "\ue795",
	fields.Kernel:      "\uf013",
	fields.Uptime:      "\uf017",
	fields.LoadAverage: "\uf0e4",
	fields.RAM:         "\uf2db",
	fields.Swap:        "\uf0ec",
	fields.Locale:      "\uf0ac",
}

// osLogos is checked in order; the first keyword contained in the
// lower-cased OS name wins. More specific names come before the ones they
// contain.
var osLogos = []struct {
	keyword string
	glyph   string
}{
	{"android", "\uf17b"},
	{"raspbian", "\uf315"},
	{"ubuntu", "\uf31b"},
	{"mint", "\uf30e"},
	{"debian", "\uf306"},
	{"manjaro", "\uf312"},
	{"arch", "\uf303"},
	{"fedora", "\uf30a"},
	{"centos", "\uf304"},
	{"alpine", "\uf300"},
	{"gentoo", "\uf30d"},
	{"nixos", "\uf313"},
	{"opensuse", "\uf314"},
	{"windows", "\uf17a"},
	{"macos", "\uf179"},
	{"darwin", "\uf179"},
}

// For returns the glyph for category c.
//
// Parameters:
//   - c: The info line category
//
// Returns:
//   - The category's glyph, or an empty string for an unknown category
func For(c fields.Category) string {
	return categoryGlyphs[c]
}

// ForOS returns the logo glyph for an OS pretty name such as
// "Ubuntu 22.04.3 LTS", falling back to the generic OS glyph.
func ForOS(name string) string {
	lower := strings.ToLower(name)
	for _, l := range osLogos {
		if strings.Contains(lower, l.keyword) {
			return l.glyph
		}
	}
	return categoryGlyphs[fields.OS]
}
