package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "HOSTFETCH_CONFIG"

// Path returns the configuration file location. Search order:
//  1. $HOSTFETCH_CONFIG
//  2. $XDG_CONFIG_HOME/hostfetch/config.toml
//  3. ~/.config/hostfetch/config.toml
func Path() (string, error) {
	if v := os.Getenv(EnvPath); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "hostfetch", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory not found: %w", err)
	}
	return filepath.Join(home, ".config", "hostfetch", "config.toml"), nil
}

// LoadOrCreate reads the configuration at path. When the file does not
// exist and create is true, DefaultTOML is written there first; when create
// is false the defaults are returned without touching the filesystem.
func LoadOrCreate(path string, create bool) (*Config, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return LoadFromFile(path)
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	case !create:
		log.Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultTOML), 0o644); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}
	log.Debug().Str("path", path).Msg("wrote default config")
	return LoadFromFile(path)
}

// LoadFromFile reads configuration from a specific file path. A missing file
// yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML from r on top of the defaults, so keys
// missing from the document keep their default values.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	for _, key := range md.Undecoded() {
		log.Warn().Str("key", key.String()).Msg("unknown config key ignored")
	}
	return cfg, nil
}
