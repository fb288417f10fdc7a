package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes accepted by ConfigureColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConfigureColor picks the color profile for w and installs it as the
// lipgloss default.
func ConfigureColor(mode string, w io.Writer) (termenv.Profile, error) {
	profile, err := colorProfile(mode, w)
	if err != nil {
		return termenv.Ascii, err
	}
	lipgloss.SetColorProfile(profile)
	return profile, nil
}

func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case ColorNever:
		return termenv.Ascii, nil
	case ColorAlways:
		return forcedProfile(), nil
	case ColorAuto, "":
	default:
		return termenv.Ascii, fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}

	if termenv.EnvNoColor() {
		return termenv.Ascii, nil
	}
	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return termenv.NewOutput(w).ColorProfile(), nil
		}
	}
	return termenv.Ascii, nil
}

// forcedProfile is used when output is not a terminal but color was
// requested anyway.
func forcedProfile() termenv.Profile {
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}
	return termenv.ANSI256
}
