// Package frame draws box-drawing borders around styled text. Widths are
// measured on the visible text only, so embedded escape sequences never
// shift the right-hand border.
package frame

import (
	"strings"

	"hostfetch/ansiwidth"
)

// Border is the set of glyphs a frame is drawn with.
type Border struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

// Rounded is the default border: single lines with rounded corners.
var Rounded = Border{
	TopLeft: "╭", TopRight: "╮",
	BottomLeft: "╰", BottomRight: "╯",
	Horizontal: "─", Vertical: "│",
}

// Renderer draws frames. The zero value draws Rounded borders, unstyled,
// measuring with ansiwidth.Width.
type Renderer struct {
	Border Border

	// Paint styles border glyphs, e.g. with a color. nil leaves them plain.
	Paint func(string) string

	// Measure returns the visible width of a line. Set it to
	// ansiwidth.CellWidth to pad by terminal cells when lines hold
	// double-width runes.
	Measure func(string) int
}

func (r Renderer) border() Border {
	if r.Border == (Border{}) {
		return Rounded
	}
	return r.Border
}

func (r Renderer) measure(s string) int {
	if r.Measure != nil {
		return r.Measure(s)
	}
	return ansiwidth.Width(s)
}

func (r Renderer) paint(s string) string {
	if r.Paint != nil {
		return r.Paint(s)
	}
	return s
}

// ContentWidth returns the widest visible width among lines.
func (r Renderer) ContentWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		if n := r.measure(l); n > w {
			w = n
		}
	}
	return w
}

// Block frames lines at their own content width. An empty slice renders
// nothing.
func (r Renderer) Block(lines []string) []string {
	return r.BlockWidth(lines, 0)
}

// BlockWidth frames lines with content width max(width, ContentWidth(lines)).
// Every row, rules included, is width+4 cells wide: a border glyph and a
// space on each side.
func (r Renderer) BlockWidth(lines []string, width int) []string {
	if len(lines) == 0 {
		return nil
	}
	if cw := r.ContentWidth(lines); cw > width {
		width = cw
	}

	b := r.border()
	rule := strings.Repeat(b.Horizontal, width+2)
	left := r.paint(b.Vertical) + " "
	right := " " + r.paint(b.Vertical)

	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, r.paint(b.TopLeft+rule+b.TopRight))
	for _, l := range lines {
		pad := width - r.measure(l)
		rows = append(rows, left+l+strings.Repeat(" ", pad)+right)
	}
	rows = append(rows, r.paint(b.BottomLeft+rule+b.BottomRight))
	return rows
}

// Centered frames a single line centered within width, which is typically
// the content width of a sibling block so that stacked frames line up. The
// left margin is floor((width-len)/2); the remainder goes right. A line
// wider than width is framed at its own width.
func (r Renderer) Centered(line string, width int) []string {
	n := r.measure(line)
	if n >= width {
		return r.BlockWidth([]string{line}, n)
	}
	left := (width - n) / 2
	right := width - n - left
	return r.BlockWidth([]string{strings.Repeat(" ", left) + line + strings.Repeat(" ", right)}, width)
}

// String joins rows with newlines, with a trailing newline when non-empty.
func String(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}
