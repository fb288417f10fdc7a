package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostfetch/ansiwidth"
)

func TestBlockExactOutput(t *testing.T) {
	rows := Renderer{}.Block([]string{"OS: Arch", "Kernel: 6.9"})
	want := []string{
		"╭─────────────╮",
		"│ OS: Arch    │",
		"│ Kernel: 6.9 │",
		"╰─────────────╯",
	}
	assert.Equal(t, want, rows)
}

func TestBlockRowsShareVisibleWidth(t *testing.T) {
	lines := []string{
		"\x1b[1;34mOS\x1b[0m: \x1b[3mUbuntu 22.04\x1b[0m",
		"plain",
		"\x1b[32m42%\x1b[0m",
		"",
	}
	r := Renderer{Paint: func(s string) string { return "\x1b[34m" + s + "\x1b[0m" }}
	rows := r.Block(lines)
	require.Len(t, rows, len(lines)+2)

	w := r.ContentWidth(lines)
	assert.Equal(t, 16, w)
	for _, row := range rows {
		assert.Equal(t, w+4, ansiwidth.Width(row), "row %q", row)
	}
}

func TestBlockEmpty(t *testing.T) {
	assert.Nil(t, Renderer{}.Block(nil))
	assert.Nil(t, Renderer{}.Block([]string{}))
	assert.Equal(t, "", String(nil))
}

func TestBlockWidthNeverShrinks(t *testing.T) {
	rows := Renderer{}.BlockWidth([]string{"abcdef"}, 3)
	assert.Equal(t, "│ abcdef │", rows[1])
}

func TestCentered(t *testing.T) {
	rows := Renderer{}.Centered("user@host", 14)
	want := []string{
		"╭────────────────╮",
		"│   user@host    │",
		"╰────────────────╯",
	}
	assert.Equal(t, want, rows)
}

func TestCenteredMatchesSiblingWidth(t *testing.T) {
	r := Renderer{}
	info := r.Block([]string{"Uptime: up 3 hours", "Shell: zsh"})
	header := r.Centered("\x1b[35;1mada@lab\x1b[0m", r.ContentWidth([]string{"Uptime: up 3 hours", "Shell: zsh"}))

	assert.Equal(t, ansiwidth.Width(info[0]), ansiwidth.Width(header[0]))
	assert.Equal(t, ansiwidth.Width(info[1]), ansiwidth.Width(header[1]))
}

func TestCenteredWiderThanTarget(t *testing.T) {
	rows := Renderer{}.Centered("a-very-long-hostname", 4)
	assert.Equal(t, "│ a-very-long-hostname │", rows[1])
}

func TestCustomBorderAndMeasure(t *testing.T) {
	ascii := Border{TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+", Horizontal: "-", Vertical: "|"}
	r := Renderer{Border: ascii, Measure: ansiwidth.Width}
	assert.Equal(t, "+----+\n| ab |\n+----+\n", String(r.Block([]string{"ab"})))
}

func TestWideRunesCountAsOneScalar(t *testing.T) {
	rows := Renderer{}.Block([]string{"日本", "abcd"})
	assert.Equal(t, "│ 日本   │", rows[1])
	for _, row := range rows {
		assert.Equal(t, 8, ansiwidth.Width(row), "row %q", row)
	}
}

func TestCellMeasureKeepsWideRunesAligned(t *testing.T) {
	rows := Renderer{Measure: ansiwidth.CellWidth}.Block([]string{"日本", "abcd"})
	assert.Equal(t, "│ 日本 │", rows[1])
	assert.Equal(t, "│ abcd │", rows[2])
}
