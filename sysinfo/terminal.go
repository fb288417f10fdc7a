package sysinfo

import (
	"context"
	"path/filepath"
	"strings"

	"hostfetch/probe"
)

// terminalMarker maps an environment variable to the terminal that sets it.
// An empty name means the variable's own value is reported.
type terminalMarker struct {
	env  string
	name string
}

var terminalMarkers = []terminalMarker{
	{"KONSOLE_VERSION", "Konsole"},
	{"VTE_VERSION", "GNOME Terminal"},
	{"ALACRITTY_LOG", "Alacritty"},
	{"KITTY_PID", "Kitty"},
	{"TERMUX_VERSION", "Termux"},
	{"WEZTERM_EXECUTABLE", "WezTerm"},
	{"WT_SESSION", "Windows Terminal"},
	{"TERM_PROGRAM", ""},
}

// knownTerminals maps process-name patterns to display names. Patterns of
// three characters or fewer must match the whole name.
var knownTerminals = []struct {
	pattern string
	name    string
}{
	{"gnome-terminal", "GNOME Terminal"},
	{"xterm", "XTerm"},
	{"tilix", "Tilix"},
	{"terminator", "Terminator"},
	{"xfce4-terminal", "XFCE Terminal"},
	{"urxvt", "URxvt"},
	{"st", "ST"},
	{"kitty", "Kitty"},
	{"alacritty", "Alacritty"},
	{"termux", "Termux"},
	{"wezterm", "WezTerm"},
	{"lxterminal", "LXTerminal"},
	{"konsole", "Konsole"},
	{"foot", "Foot"},
	{"ghostty", "Ghostty"},
}

// Terminal identifies the terminal emulator: environment markers first,
// then the names of ancestor processes, then $TERM.
func Terminal(ctx context.Context, src Sources) string {
	return probe.New("terminal",
		probe.NamedFunc("env-markers", src.terminalFromEnv),
		probe.NamedFunc("ancestors", src.terminalFromAncestors),
		src.env("TERM"),
	).ResolveOr(ctx, "unknown")
}

func (s Sources) terminalFromEnv(context.Context) (string, error) {
	for _, m := range terminalMarkers {
		v, ok := s.LookupEnv(m.env)
		if !ok {
			continue
		}
		if m.name != "" {
			return m.name, nil
		}
		if v != "" {
			return v, nil
		}
	}
	return "", unavailable("terminal env", nil)
}

func (s Sources) terminalFromAncestors(ctx context.Context) (string, error) {
	names, err := s.Ancestors(ctx)
	if err != nil {
		return "", unavailable("ancestors", err)
	}
	for _, n := range names {
		if name := MatchTerminal(n); name != "" {
			return name, nil
		}
	}
	return "", unavailable("ancestors", nil)
}

// MatchTerminal maps a process name to a known terminal display name, or
// returns "".
func MatchTerminal(process string) string {
	proc := strings.ToLower(strings.TrimSpace(filepath.Base(process)))
	for _, t := range knownTerminals {
		if len(t.pattern) <= 3 {
			if proc == t.pattern {
				return t.name
			}
			continue
		}
		if strings.Contains(proc, t.pattern) {
			return t.name
		}
	}
	return ""
}
