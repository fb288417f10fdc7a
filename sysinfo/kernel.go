package sysinfo

import (
	"context"
	"strings"

	"hostfetch/probe"
)

// Kernel resolves the kernel release: uname(2), then
// /proc/sys/kernel/osrelease, then `uname -r`.
func Kernel(ctx context.Context, src Sources) string {
	return probe.New("kernel",
		probe.NamedFunc("uname", func(context.Context) (string, error) {
			u, err := src.Uname()
			if err != nil {
				return "", unavailable("uname", err)
			}
			release, _, _ := strings.Cut(u.Release, "\x00")
			return release, nil
		}),
		src.file("/proc/sys/kernel/osrelease"),
		src.command("uname", "-r"),
	).ResolveOr(ctx, Unknown)
}
