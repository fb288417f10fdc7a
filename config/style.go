package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fallback is used for colors that cannot be parsed.
const Fallback = lipgloss.Color("7")

// namedColors maps color names to ANSI palette indexes.
var namedColors = map[string]lipgloss.Color{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// ParseColor accepts a color name ("blue", "bright_red") or a hex triplet
// ("#8af", "#88aaff", with or without '#'). Anything else is Fallback.
func ParseColor(s string) lipgloss.Color {
	s = strings.TrimSpace(s)
	if c, ok := parseHex(s); ok {
		return c
	}
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	return Fallback
}

func parseHex(s string) (lipgloss.Color, bool) {
	h := strings.TrimPrefix(s, "#")
	var r, g, b uint64
	var err error
	switch len(h) {
	case 3:
		if r, err = strconv.ParseUint(h[0:1], 16, 8); err != nil {
			return "", false
		}
		if g, err = strconv.ParseUint(h[1:2], 16, 8); err != nil {
			return "", false
		}
		if b, err = strconv.ParseUint(h[2:3], 16, 8); err != nil {
			return "", false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if r, err = strconv.ParseUint(h[0:2], 16, 8); err != nil {
			return "", false
		}
		if g, err = strconv.ParseUint(h[2:4], 16, 8); err != nil {
			return "", false
		}
		if b, err = strconv.ParseUint(h[4:6], 16, 8); err != nil {
			return "", false
		}
	default:
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b)), true
}

// NewStyle builds a foreground style from a color and a list of text
// attributes: bold, italic, underline, dimmed, blink, reverse. Unknown
// attributes are ignored.
func NewStyle(color string, styles []string) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(ParseColor(color))
	for _, s := range styles {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "bold":
			st = st.Bold(true)
		case "italic":
			st = st.Italic(true)
		case "underline":
			st = st.Underline(true)
		case "dimmed":
			st = st.Faint(true)
		case "blink":
			st = st.Blink(true)
		case "reverse":
			st = st.Reverse(true)
		}
	}
	return st
}

// HostStyle styles the user@hostname header.
func (c *Config) HostStyle() lipgloss.Style { return NewStyle(c.Host.Color, c.Host.Styles) }

// MainStyle styles info values.
func (c *Config) MainStyle() lipgloss.Style { return NewStyle(c.Info.MainColor, c.Info.MainStyles) }

// SecondaryStyle styles info labels.
func (c *Config) SecondaryStyle() lipgloss.Style {
	return NewStyle(c.Info.SecondaryColor, c.Info.SecondaryStyles)
}

// IconStyle styles the per-line glyphs.
func (c *Config) IconStyle() lipgloss.Style { return NewStyle(c.Icons.Color, nil) }

// BorderStyle styles frame glyphs.
func (c *Config) BorderStyle() lipgloss.Style { return NewStyle(c.Info.BorderColor, nil) }
