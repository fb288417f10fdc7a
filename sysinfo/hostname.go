package sysinfo

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"hostfetch/probe"
)

// ErrHostnameNotFound is returned when every hostname source fails. It
// wraps fs.ErrNotExist.
var ErrHostnameNotFound = fmt.Errorf("error while getting hostname: %w", fs.ErrNotExist)

// HostnameResolver resolves the machine's hostname. Unlike the other facts
// it has no placeholder: callers decide how to degrade.
type HostnameResolver struct {
	probe *probe.Probe
}

// NewHostnameResolver builds the chain: uname(2), the kernel pseudo-file,
// the hostname helper, then $HOSTNAME / $DHCP_HOSTNAME.
func NewHostnameResolver(src Sources) *HostnameResolver {
	p := probe.New("hostname",
		probe.NamedFunc("uname", src.unameNodename),
		src.file("/proc/sys/kernel/hostname"),
		src.command("hostname"),
		src.env("HOSTNAME", "DHCP_HOSTNAME"),
	)
	p.Clean = func(raw string) string {
		return probe.Normalize(strings.TrimRight(raw, "\r\n"))
	}
	return &HostnameResolver{probe: p}
}

// Resolve returns the hostname or an error wrapping ErrHostnameNotFound.
func (h *HostnameResolver) Resolve(ctx context.Context) (string, error) {
	name, err := h.probe.Resolve(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHostnameNotFound, err)
	}
	return name, nil
}

// unameNodename returns the node name up to its NUL terminator; anything
// after the first NUL is not part of the name.
func (s Sources) unameNodename(context.Context) (string, error) {
	u, err := s.Uname()
	if err != nil {
		return "", unavailable("uname", err)
	}
	name, _, _ := strings.Cut(u.Nodename, "\x00")
	return name, nil
}
