// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Placeholders for facts whose every source failed.
const (
	Unknown      = "Unknown"
	NotAvailable = "N/A"
)

// FormatBytes converts a byte count to a compact human-readable string.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - The value in the largest unit (B, KB, MB, GB, TB) that keeps it at or
//     above 1, without decimals when whole and with one decimal otherwise
//
// Example: FormatBytes(1536) returns "1.5KB", FormatBytes(2<<30) returns "2GB"
func FormatBytes(bytes uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}

	size := float64(bytes)
	exp := 0
	for size >= 1024 && exp < len(units)-1 {
		size /= 1024
		exp++
	}

	if exp == 0 || size == math.Trunc(size) {
		return fmt.Sprintf("%.0f%s", size, units[exp])
	}
	return fmt.Sprintf("%.1f%s", size, units[exp])
}

// formatUptime converts a duration into the shape printed by `uptime -p`.
//
// Parameters:
//   - uptime: The duration to format
//
// Returns:
//   - A formatted string (e.g., "2 days, 5 hours, 30 minutes")
func formatUptime(uptime time.Duration) string {
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", mins, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}
