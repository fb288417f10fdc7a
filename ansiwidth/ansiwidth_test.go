package ansiwidth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceStrip removes CSI sequences by scanning bytes, independent of the
// regular expression used by Strip.
func referenceStrip(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
				j++
			}
			if j < len(s) && ((s[j] >= 'a' && s[j] <= 'z') || (s[j] >= 'A' && s[j] <= 'Z')) {
				i = j
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"plain", "hello", 5},
		{"single sequence", "\x1b[31mred\x1b[0m", 3},
		{"compound sequence", "\x1b[1;3;38;2;255;0;0mbold\x1b[0m", 4},
		{"repeated sequences", "\x1b[1m\x1b[34ma\x1b[0mb\x1b[2mc\x1b[0m", 3},
		{"only escapes", "\x1b[0m\x1b[1m", 0},
		{"unicode scalars", "héllo─│", 7},
		{"cursor movement letter", "\x1b[2Kline", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Width(tc.in))
		})
	}
}

func TestWidthMatchesReferenceStripper(t *testing.T) {
	inputs := []string{
		"",
		"no escapes at all",
		"\x1b[35mhost\x1b[0m",
		"\x1b[1m\x1b[3m\x1b[36mnested\x1b[0m\x1b[0m tail",
		"a\x1b[0mb\x1b[0mc\x1b[0m",
		"╭─\x1b[34m─\x1b[0m─╮",
	}
	for _, in := range inputs {
		want := []rune(referenceStrip(in))
		assert.Equal(t, len(want), Width(in), "input %q", in)
	}
}

func TestMalformedSequencesCountedLiterally(t *testing.T) {
	// ESC without '[' and an unterminated CSI are not styling sequences.
	assert.Equal(t, 4, Width("\x1bxyz"))
	assert.Equal(t, 5, Width("\x1b[12"))
	assert.Equal(t, "\x1b[12", Strip("\x1b[12"))
}

func TestStripDoesNotMutateInput(t *testing.T) {
	in := "\x1b[31mred\x1b[0m"
	copyIn := strings.Clone(in)
	_ = Strip(in)
	assert.Equal(t, copyIn, in)
	assert.Equal(t, "red", Strip(in))
}

func TestCellWidth(t *testing.T) {
	assert.Equal(t, 5, CellWidth("\x1b[1mhello\x1b[0m"))
	assert.Equal(t, 4, CellWidth("\x1b[32m日本\x1b[0m"))
	assert.Equal(t, 2, Width("\x1b[32m日本\x1b[0m"))
}
