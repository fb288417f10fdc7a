// Package config provides TOML-based configuration for hostfetch.
package config

import (
	_ "embed"

	"hostfetch/fields"
	"hostfetch/sysinfo"
)

// DefaultTOML is the document written when no configuration file exists.
//
//go:embed default.toml
var DefaultTOML string

// Config is the root configuration.
type Config struct {
	Host     HostConfig     `toml:"host"`
	Position PositionConfig `toml:"position"`
	Info     InfoConfig     `toml:"info"`
	Icons    IconsConfig    `toml:"icons"`
	Names    NamesConfig    `toml:"names"`
	Probe    ProbeConfig    `toml:"probe"`
}

// HostConfig styles the user@hostname header.
type HostConfig struct {
	Color  string   `toml:"color"`
	Styles []string `toml:"styles"`
}

// PositionConfig holds the display priority of each info line. Lower values
// come first; 0 hides the line.
type PositionConfig struct {
	OSOrder          uint8 `toml:"os_order"`
	HostOrder        uint8 `toml:"host_order"`
	TerminalOrder    uint8 `toml:"terminal_order"`
	ShellOrder       uint8 `toml:"shell_order"`
	KernelOrder      uint8 `toml:"kernel_order"`
	UptimeOrder      uint8 `toml:"uptime_order"`
	LoadAverageOrder uint8 `toml:"load_average_order"`
	RAMOrder         uint8 `toml:"ram_order"`
	SwapOrder        uint8 `toml:"swap_order"`
	LocaleOrder      uint8 `toml:"locale_order"`
}

// InfoConfig styles the info block. Main applies to values, secondary to
// labels.
type InfoConfig struct {
	MainColor       string   `toml:"main_color"`
	MainStyles      []string `toml:"main_styles"`
	SecondaryColor  string   `toml:"secondary_color"`
	SecondaryStyles []string `toml:"secondary_styles"`
	BorderColor     string   `toml:"border_color"`
}

// IconsConfig controls the glyph in front of each info line.
type IconsConfig struct {
	Enabled bool   `toml:"enabled"`
	Color   string `toml:"color"`
}

// NamesConfig controls the label text of each info line.
type NamesConfig struct {
	Enabled bool `toml:"enabled"`
}

// ProbeConfig tunes fact detection.
type ProbeConfig struct {
	CommandTimeout Duration `toml:"command_timeout"`
}

// Default returns the configuration matching DefaultTOML.
func Default() *Config {
	return &Config{
		Host: HostConfig{
			Color:  "magenta",
			Styles: []string{"bold"},
		},
		Position: PositionConfig{
			OSOrder:          1,
			HostOrder:        2,
			TerminalOrder:    3,
			ShellOrder:       4,
			KernelOrder:      5,
			UptimeOrder:      6,
			LoadAverageOrder: 7,
			RAMOrder:         8,
			SwapOrder:        9,
			LocaleOrder:      10,
		},
		Info: InfoConfig{
			MainColor:       "white",
			MainStyles:      []string{"italic"},
			SecondaryColor:  "blue",
			SecondaryStyles: []string{"bold"},
			BorderColor:     "blue",
		},
		Icons: IconsConfig{
			Enabled: true,
			Color:   "green",
		},
		Names: NamesConfig{
			Enabled: true,
		},
		Probe: ProbeConfig{
			CommandTimeout: Duration{sysinfo.DefaultCommandTimeout},
		},
	}
}

// Order returns the configured priority of category c.
func (p PositionConfig) Order(c fields.Category) uint8 {
	switch c {
	case fields.OS:
		return p.OSOrder
	case fields.Host:
		return p.HostOrder
	case fields.Terminal:
		return p.TerminalOrder
	case fields.Shell:
		return p.ShellOrder
	case fields.Kernel:
		return p.KernelOrder
	case fields.Uptime:
		return p.UptimeOrder
	case fields.LoadAverage:
		return p.LoadAverageOrder
	case fields.RAM:
		return p.RAMOrder
	case fields.Swap:
		return p.SwapOrder
	case fields.Locale:
		return p.LocaleOrder
	}
	return 0
}
