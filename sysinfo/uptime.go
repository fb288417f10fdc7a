package sysinfo

import (
	"context"
	"fmt"
	"strings"

	"hostfetch/probe"
)

// Uptime resolves the time since boot as "up 2 days, 5 hours, 30 minutes".
func Uptime(ctx context.Context, src Sources) string {
	return probe.New("uptime",
		probe.NamedFunc("gopsutil", func(ctx context.Context) (string, error) {
			d, err := src.Uptime(ctx)
			if err != nil {
				return "", unavailable("uptime", err)
			}
			return "up " + formatUptime(d), nil
		}),
		src.command("uptime", "-p"),
	).ResolveOr(ctx, Unknown)
}

// LoadAverage resolves the 1, 5 and 15 minute load averages as
// "0.52, 0.48, 0.40", or "N/A".
func LoadAverage(ctx context.Context, src Sources) string {
	return probe.New("loadavg",
		probe.NamedFunc("gopsutil", func(ctx context.Context) (string, error) {
			avg, err := src.LoadAvg(ctx)
			if err != nil {
				return "", unavailable("loadavg", err)
			}
			return fmt.Sprintf("%.2f, %.2f, %.2f", avg[0], avg[1], avg[2]), nil
		}),
		probe.NamedFunc("/proc/loadavg", func(context.Context) (string, error) {
			data, err := src.ReadFile("/proc/loadavg")
			if err != nil {
				return "", unavailable("/proc/loadavg", err)
			}
			parts := strings.Fields(data)
			if len(parts) < 3 {
				return "", fmt.Errorf("/proc/loadavg: %w", probe.ErrInvalidValue)
			}
			return strings.Join(parts[:3], ", "), nil
		}),
	).ResolveOr(ctx, NotAvailable)
}
