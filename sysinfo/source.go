package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"hostfetch/probe"
)

// DefaultCommandTimeout bounds every helper program invocation.
const DefaultCommandTimeout = 2 * time.Second

// maxAncestors limits how far up the process tree terminal detection walks.
const maxAncestors = 6

// Uname holds the raw, NUL-padded fields of the uname(2) call.
type Uname struct {
	Nodename string
	Release  string
}

// Usage is a used/total byte pair for RAM or swap.
type Usage struct {
	Used  uint64 `json:"used" yaml:"used"`
	Total uint64 `json:"total" yaml:"total"`
}

// Percent returns Used as a percentage of Total, or 0 when Total is 0.
func (u Usage) Percent() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Total) * 100
}

// Sources is the set of primitive I/O functions every detector is built
// from. Each function returns raw data and an error; none of them panic on
// missing files. Tests replace individual fields with in-memory fakes.
type Sources struct {
	GOOS string

	ReadFile  func(path string) (string, error)
	Exists    func(path string) bool
	LookupEnv func(key string) (string, bool)

	// Run executes a helper program and returns its stdout. A non-zero exit
	// status is an error.
	Run func(ctx context.Context, name string, args ...string) (string, error)

	Uname       func() (Uname, error)
	CurrentUser func() (string, error)
	Uptime      func(ctx context.Context) (time.Duration, error)
	LoadAvg     func(ctx context.Context) ([3]float64, error)
	Memory      func(ctx context.Context) (Usage, error)
	Swap        func(ctx context.Context) (Usage, error)

	// Ancestors returns the names of the parent processes, nearest first.
	Ancestors func(ctx context.Context) ([]string, error)
}

// DefaultSources returns Sources backed by the running host. Helper programs
// are killed after timeout; a non-positive timeout selects
// DefaultCommandTimeout.
func DefaultSources(timeout time.Duration) Sources {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	return Sources{
		GOOS: runtime.GOOS,
		ReadFile: func(path string) (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
		Exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		LookupEnv: os.LookupEnv,
		Run: func(ctx context.Context, name string, args ...string) (string, error) {
			return runCommand(ctx, timeout, name, args...)
		},
		Uname: unameRaw,
		CurrentUser: func() (string, error) {
			u, err := user.Current()
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		Uptime: func(ctx context.Context) (time.Duration, error) {
			secs, err := host.UptimeWithContext(ctx)
			if err != nil {
				return 0, err
			}
			return time.Duration(secs) * time.Second, nil
		},
		LoadAvg: func(ctx context.Context) ([3]float64, error) {
			avg, err := load.AvgWithContext(ctx)
			if err != nil {
				return [3]float64{}, err
			}
			return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
		},
		Memory: func(ctx context.Context) (Usage, error) {
			vm, err := mem.VirtualMemoryWithContext(ctx)
			if err != nil {
				return Usage{}, err
			}
			return Usage{Used: vm.Used, Total: vm.Total}, nil
		},
		Swap: func(ctx context.Context) (Usage, error) {
			sw, err := mem.SwapMemoryWithContext(ctx)
			if err != nil {
				return Usage{}, err
			}
			return Usage{Used: sw.Used, Total: sw.Total}, nil
		},
		Ancestors: processAncestors,
	}
}

// runCommand runs name with a timeout and returns raw stdout. The command
// inherits no stdin; stderr is discarded.
func runCommand(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s: %w", name, ctx.Err())
		}
		return "", err
	}
	return string(out), nil
}

// processAncestors walks the parent chain of the current process via
// gopsutil, collecting process names.
func processAncestors(ctx context.Context) ([]string, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getppid()))
	if err != nil {
		return nil, err
	}

	var names []string
	for i := 0; i < maxAncestors && p != nil; i++ {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			break
		}
		names = append(names, name)
		if p.Pid <= 1 {
			break
		}
		p, err = p.ParentWithContext(ctx)
		if err != nil {
			break
		}
	}
	if len(names) == 0 {
		return nil, errors.New("no ancestor processes")
	}
	return names, nil
}

// unavailable wraps err (or a description) as probe.ErrSourceUnavailable.
func unavailable(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", what, probe.ErrSourceUnavailable)
	}
	return fmt.Errorf("%s: %w: %w", what, probe.ErrSourceUnavailable, err)
}

// file returns a detector reading path. The raw contents are returned; the
// probe's cleaning step trims them.
func (s Sources) file(path string) probe.Detector {
	return probe.NamedFunc("file:"+path, func(context.Context) (string, error) {
		data, err := s.ReadFile(path)
		if err != nil {
			return "", unavailable(path, err)
		}
		return data, nil
	})
}

// firstFile reads each path in turn and returns the first normalized,
// non-empty contents.
func (s Sources) firstFile(paths ...string) (string, error) {
	var lastErr error
	for _, path := range paths {
		data, err := s.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		if v := probe.Normalize(data); v != "" {
			return v, nil
		}
		lastErr = fmt.Errorf("%s: %w", path, probe.ErrInvalidValue)
	}
	return "", unavailable(strings.Join(paths, ","), lastErr)
}

// env returns a detector reporting the first non-empty variable of keys.
func (s Sources) env(keys ...string) probe.Detector {
	return probe.NamedFunc("env:"+strings.Join(keys, ","), func(context.Context) (string, error) {
		for _, key := range keys {
			if v, ok := s.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
				return v, nil
			}
		}
		return "", unavailable("env", nil)
	})
}

// command returns a detector reporting the stdout of a helper program.
func (s Sources) command(name string, args ...string) probe.Detector {
	return probe.NamedFunc("exec:"+name, func(ctx context.Context) (string, error) {
		out, err := s.Run(ctx, name, args...)
		if err != nil {
			return "", unavailable(name, err)
		}
		return out, nil
	})
}

// prop reads a platform system property through getprop. Each key is tried
// in order and normalized on its own, so a sentinel under one key does not
// hide a real value under the next.
func (s Sources) prop(ctx context.Context, keys ...string) (string, error) {
	for _, key := range keys {
		out, err := s.Run(ctx, "getprop", key)
		if err != nil {
			continue
		}
		if v := probe.Normalize(out); v != "" {
			return v, nil
		}
	}
	return "", unavailable("getprop "+strings.Join(keys, ","), nil)
}

// props returns a detector wrapping Sources.prop.
func (s Sources) props(name string, keys ...string) probe.Detector {
	return probe.NamedFunc(name, func(ctx context.Context) (string, error) {
		return s.prop(ctx, keys...)
	})
}
