package sysinfo

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"sync"
	"time"
)

// fakeHost is an in-memory host. Every source that is not populated fails.
type fakeHost struct {
	mu       sync.Mutex
	goos     string
	files    map[string]string
	env      map[string]string
	commands map[string]string // "name arg1 arg2" -> stdout
	uname    *Uname
	reads    map[string]int
	runs     map[string]int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		goos:     "linux",
		files:    map[string]string{},
		env:      map[string]string{},
		commands: map[string]string{},
		reads:    map[string]int{},
		runs:     map[string]int{},
	}
}

// prop registers a getprop answer.
func (h *fakeHost) prop(key, value string) {
	h.commands["getprop "+key] = value + "\n"
}

func (h *fakeHost) sources() Sources {
	errNone := errors.New("not available in fake")
	return Sources{
		GOOS: h.goos,
		ReadFile: func(path string) (string, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.reads[path]++
			if v, ok := h.files[path]; ok {
				return v, nil
			}
			return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
		},
		Exists: func(path string) bool {
			_, ok := h.files[path]
			return ok
		},
		LookupEnv: func(key string) (string, bool) {
			v, ok := h.env[key]
			return v, ok
		},
		Run: func(_ context.Context, name string, args ...string) (string, error) {
			key := strings.Join(append([]string{name}, args...), " ")
			h.mu.Lock()
			defer h.mu.Unlock()
			h.runs[key]++
			if v, ok := h.commands[key]; ok {
				return v, nil
			}
			return "", errNone
		},
		Uname: func() (Uname, error) {
			if h.uname == nil {
				return Uname{}, errNone
			}
			return *h.uname, nil
		},
		CurrentUser: func() (string, error) { return "", errNone },
		Uptime:      func(context.Context) (time.Duration, error) { return 0, errNone },
		LoadAvg:     func(context.Context) ([3]float64, error) { return [3]float64{}, errNone },
		Memory:      func(context.Context) (Usage, error) { return Usage{}, errNone },
		Swap:        func(context.Context) (Usage, error) { return Usage{}, errNone },
		Ancestors:   func(context.Context) ([]string, error) { return nil, errNone },
	}
}
