// Package sysinfo gathers the host facts printed by hostfetch. Each fact is
// resolved by an ordered chain of detectors built on Sources, the thin layer
// of file, environment, process and syscall readers.
package sysinfo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Info is one snapshot of every fact category. All string fields are
// non-empty after Collect except Hostname, which is empty when the hostname
// could not be resolved.
type Info struct {
	// Username is the current logged-in user's name
	Username string `json:"username" yaml:"username"`

	// Hostname is the machine's network name
	Hostname string `json:"hostname" yaml:"hostname"`

	// OS is the operating system pretty name and version
	OS string `json:"os" yaml:"os"`

	// Host is the device vendor and model
	Host string `json:"host" yaml:"host"`

	Kernel      string `json:"kernel" yaml:"kernel"`
	Uptime      string `json:"uptime" yaml:"uptime"`
	LoadAverage string `json:"load_average" yaml:"load_average"`
	Terminal    string `json:"terminal" yaml:"terminal"`
	Shell       string `json:"shell" yaml:"shell"`
	Locale      string `json:"locale" yaml:"locale"`

	// RAM and Swap are nil when unavailable; Swap is also nil when no swap
	// is configured.
	RAM  *Usage `json:"ram,omitempty" yaml:"ram,omitempty"`
	Swap *Usage `json:"swap,omitempty" yaml:"swap,omitempty"`
}

// Collect resolves every category concurrently. The returned Info is always
// fully populated; the error is non-nil only when the hostname could not be
// resolved, in which case it wraps ErrHostnameNotFound.
func Collect(ctx context.Context, src Sources) (*Info, error) {
	info := &Info{}
	var hostErr error

	// Each goroutine owns exactly one field of info.
	var g errgroup.Group
	g.Go(func() error {
		info.Hostname, hostErr = NewHostnameResolver(src).Resolve(ctx)
		return nil
	})
	g.Go(func() error { info.Username = Username(ctx, src); return nil })
	g.Go(func() error { info.OS = NewOSIdentity(src).Resolve(ctx); return nil })
	g.Go(func() error { info.Host = NewDeviceIdentity(src).Resolve(ctx); return nil })
	g.Go(func() error { info.Kernel = Kernel(ctx, src); return nil })
	g.Go(func() error { info.Uptime = Uptime(ctx, src); return nil })
	g.Go(func() error { info.LoadAverage = LoadAverage(ctx, src); return nil })
	g.Go(func() error { info.Terminal = Terminal(ctx, src); return nil })
	g.Go(func() error { info.Shell = Shell(ctx, src); return nil })
	g.Go(func() error { info.Locale = Locale(ctx, src); return nil })
	g.Go(func() error { info.RAM = RAM(ctx, src); return nil })
	g.Go(func() error { info.Swap = Swap(ctx, src); return nil })

	if err := g.Wait(); err != nil {
		return info, err
	}
	return info, hostErr
}
