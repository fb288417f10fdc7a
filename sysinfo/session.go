package sysinfo

import (
	"context"
	"path/filepath"
	"strings"

	"hostfetch/probe"
)

// Shell returns the base name of $SHELL, or "unknown".
func Shell(ctx context.Context, src Sources) string {
	p := probe.New("shell", src.env("SHELL"))
	p.Clean = func(raw string) string {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return ""
		}
		return filepath.Base(raw)
	}
	return p.ResolveOr(ctx, "unknown")
}

// Locale returns $LC_ALL or $LANG.
func Locale(ctx context.Context, src Sources) string {
	return probe.New("locale",
		src.env("LC_ALL"),
		src.env("LANG"),
	).ResolveOr(ctx, Unknown)
}

// Username returns the login name of the current user.
func Username(ctx context.Context, src Sources) string {
	return probe.New("username",
		probe.NamedFunc("passwd", func(context.Context) (string, error) {
			name, err := src.CurrentUser()
			if err != nil {
				return "", unavailable("passwd", err)
			}
			return name, nil
		}),
		src.env("USER"),
		src.env("LOGNAME"),
	).ResolveOr(ctx, "unknown")
}
