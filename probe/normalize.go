package probe

import "strings"

// sentinels are placeholder strings firmware and platform vendors leave in
// identity fields. Compared case-insensitively after trimming.
var sentinels = []string{
	"Not Specified",
	"Default string",
	"To be filled by O.E.M.",
	"System Product Name",
	"System Version",
	"Not Applicable",
}

// IsSentinel reports whether s (already trimmed) is a known vendor
// placeholder.
func IsSentinel(s string) bool {
	for _, v := range sentinels {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// Normalize cleans a raw candidate: NUL bytes and literal `\n` sequences
// are removed, surrounding whitespace is trimmed, and sentinel values
// collapse to "". An empty result means the candidate is invalid.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\x00", "")
	s = strings.ReplaceAll(s, `\n`, "")
	s = strings.TrimSpace(s)
	if IsSentinel(s) {
		return ""
	}
	return s
}
