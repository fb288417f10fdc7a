// Package main provides the hostfetch command-line tool, which prints a
// framed summary of the host: user@hostname above OS, device, terminal,
// shell, kernel, uptime, load, memory and locale.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hostfetch/config"
	"hostfetch/display"
	"hostfetch/sysinfo"
)

// Version is set at build time.
var Version = "devel"

// newSources builds the fact sources; tests replace it with fakes.
var newSources = sysinfo.DefaultSources

type options struct {
	configPath string
	noWrite    bool
	debug      bool
	color      string
	timeout    time.Duration

	cfg *config.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "hostfetch",
		Short:         "Print a framed summary of this host",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDisplay(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/hostfetch/config.toml)")
	f.BoolVar(&opts.noWrite, "no-write", false, "do not create the config file when it is missing")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr (sets HOSTFETCH_DEBUG)")
	f.StringVar(&opts.color, "color", display.ColorAuto, "color output: auto, always or never")
	f.DurationVar(&opts.timeout, "timeout", 0, "upper bound on each helper program (overrides [probe] command_timeout)")

	cmd.AddCommand(newFactsCmd(opts))
	return cmd
}

func newFactsCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Print the resolved facts as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFacts(cmd.Context(), opts, format, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}

// setup configures logging, loads the configuration and installs the color
// profile. It runs before every command.
func (o *options) setup(cmd *cobra.Command) error {
	if o.debug {
		_ = os.Setenv("HOSTFETCH_DEBUG", "1")
	}
	setupLogging(cmd.ErrOrStderr(), os.Getenv("HOSTFETCH_DEBUG") == "1")

	path := o.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.LoadOrCreate(path, !o.noWrite)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg
	log.Debug().Str("path", path).Msg("config loaded")

	profile, err := display.ConfigureColor(o.color, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	log.Debug().Int("profile", int(profile)).Msg("color profile selected")
	return nil
}

func setupLogging(w io.Writer, debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
}

// commandTimeout prefers the --timeout flag over the config file.
func (o *options) commandTimeout() time.Duration {
	if o.timeout > 0 {
		return o.timeout
	}
	return o.cfg.Probe.CommandTimeout.Duration
}

// collect resolves every fact. A hostname failure is reported on stderr
// and does not stop the rest of the output.
func collect(ctx context.Context, opts *options, stderr io.Writer) *sysinfo.Info {
	info, err := sysinfo.Collect(ctx, newSources(opts.commandTimeout()))
	if err != nil {
		fmt.Fprintf(stderr, "Error getting hostname: %v\n", err)
	}
	return info
}

func runDisplay(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	info := collect(ctx, opts, stderr)
	return display.New(opts.cfg).Render(stdout, info)
}

func runFacts(ctx context.Context, opts *options, format string, stdout, stderr io.Writer) error {
	switch format {
	case "yaml", "json":
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}

	info := collect(ctx, opts, stderr)
	if format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return err
	}
	return enc.Close()
}
