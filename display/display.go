// Package display turns a sysinfo snapshot into the framed, styled output
// printed by hostfetch: a centered user@hostname header above a block of
// info lines ordered by configuration.
package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"hostfetch/ansiwidth"
	"hostfetch/config"
	"hostfetch/fields"
	"hostfetch/frame"
	"hostfetch/icons"
	"hostfetch/sysinfo"
)

// Percentage thresholds for usage coloring.
const (
	warnPercent = 50
	critPercent = 75
)

var (
	lowUsage  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	midUsage  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	highUsage = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Display renders snapshots with a fixed configuration.
type Display struct {
	cfg    *config.Config
	frames frame.Renderer

	host, main, secondary, icon lipgloss.Style
}

// New returns a Display styled by cfg.
func New(cfg *config.Config) *Display {
	border := cfg.BorderStyle()
	return &Display{
		cfg: cfg,
		frames: frame.Renderer{
			Border: frame.Rounded,
			Paint:  func(s string) string { return border.Render(s) },
		},
		host:      cfg.HostStyle(),
		main:      cfg.MainStyle(),
		secondary: cfg.SecondaryStyle(),
		icon:      cfg.IconStyle(),
	}
}

// Header returns the styled user@hostname line, or "" when the hostname is
// unknown.
func (d *Display) Header(info *sysinfo.Info) string {
	if info.Hostname == "" {
		return ""
	}
	return d.host.Render(info.Username) + "@" + d.host.Render(info.Hostname)
}

type entry struct {
	category fields.Category
	value    string
}

// entries returns the value of every category present in info. Swap is
// absent when no swap is configured.
func (d *Display) entries(info *sysinfo.Info) []entry {
	out := make([]entry, 0, len(fields.Categories))
	for _, c := range fields.Categories {
		var v string
		switch c {
		case fields.OS:
			v = d.main.Render(info.OS)
		case fields.Host:
			v = d.main.Render(info.Host)
		case fields.Terminal:
			v = d.main.Render(info.Terminal)
		case fields.Shell:
			v = d.main.Render(info.Shell)
		case fields.Kernel:
			v = d.main.Render(info.Kernel)
		case fields.Uptime:
			v = d.main.Render(info.Uptime)
		case fields.LoadAverage:
			v = d.main.Render(info.LoadAverage)
		case fields.Locale:
			v = d.main.Render(info.Locale)
		case fields.RAM:
			if info.RAM == nil {
				v = d.main.Render(sysinfo.Unknown)
				break
			}
			v = d.main.Render(sysinfo.FormatRAM(*info.RAM)) + " " + usage(info.RAM.Percent())
		case fields.Swap:
			if info.Swap == nil {
				continue
			}
			v = d.main.Render(sysinfo.FormatSwap(*info.Swap)) + " " + usage(info.Swap.Percent())
		}
		out = append(out, entry{category: c, value: v})
	}
	return out
}

// InfoLines returns the styled info lines in display order. Labels are
// padded to the widest visible label so values line up.
func (d *Display) InfoLines(info *sysinfo.Info) []string {
	entries := d.entries(info)

	labelWidth := 0
	for _, e := range entries {
		if d.cfg.Position.Order(e.category) == 0 {
			continue
		}
		if w := ansiwidth.Width(e.category.String()); w > labelWidth {
			labelWidth = w
		}
	}

	var a fields.Assembler
	for _, e := range entries {
		var b strings.Builder
		if d.cfg.Icons.Enabled {
			glyph := icons.For(e.category)
			if e.category == fields.OS {
				glyph = icons.ForOS(info.OS)
			}
			b.WriteString(d.icon.Render(glyph))
			b.WriteByte(' ')
		}
		if d.cfg.Names.Enabled {
			label := e.category.String()
			b.WriteString(d.secondary.Render(label + ":"))
			b.WriteString(strings.Repeat(" ", labelWidth-ansiwidth.Width(label)+1))
		}
		b.WriteString(e.value)

		if err := a.Add(e.category, d.cfg.Position.Order(e.category), b.String()); err != nil {
			log.Warn().Err(err).Msg("skipping info line")
		}
	}
	return a.Lines()
}

// Rows returns every output row: the header frame (when the hostname is
// known) followed by the info frame. Both frames share one content width.
func (d *Display) Rows(info *sysinfo.Info) []string {
	lines := d.InfoLines(info)
	header := d.Header(info)

	width := d.frames.ContentWidth(lines)
	if header != "" {
		if hw := d.frames.ContentWidth([]string{header}); hw > width {
			width = hw
		}
	}

	var rows []string
	if header != "" {
		rows = append(rows, d.frames.Centered(header, width)...)
	}
	rows = append(rows, d.frames.BlockWidth(lines, width)...)
	return rows
}

// Render writes the framed output for info to w.
func (d *Display) Render(w io.Writer, info *sysinfo.Info) error {
	_, err := io.WriteString(w, frame.String(d.Rows(info)))
	return err
}

func usage(percent float64) string {
	s := sysinfo.FormatPercent(percent)
	switch {
	case percent < warnPercent:
		return lowUsage.Render(s)
	case percent < critPercent:
		return midUsage.Render(s)
	default:
		return highUsage.Render(s)
	}
}
