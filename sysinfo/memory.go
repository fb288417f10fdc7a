package sysinfo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RAM returns physical memory usage, or nil when it cannot be read.
func RAM(ctx context.Context, src Sources) *Usage {
	u, err := src.Memory(ctx)
	if err != nil || u.Total == 0 {
		log.Debug().Err(err).Msg("memory unavailable")
		return nil
	}
	return &u
}

// Swap returns swap usage, or nil when there is no swap configured.
func Swap(ctx context.Context, src Sources) *Usage {
	u, err := src.Swap(ctx)
	if err != nil || u.Total == 0 {
		log.Debug().Err(err).Msg("swap unavailable")
		return nil
	}
	return &u
}

// FormatRAM renders usage in decimal gigabytes: "3.2 GB / 15.6 GB".
func FormatRAM(u Usage) string {
	return fmt.Sprintf("%.1f GB / %.1f GB", float64(u.Used)/1e9, float64(u.Total)/1e9)
}

// FormatSwap renders usage in binary units: "512MB / 2GB".
func FormatSwap(u Usage) string {
	return FormatBytes(u.Used) + " / " + FormatBytes(u.Total)
}

// FormatPercent renders a percentage without decimals: "42%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}
