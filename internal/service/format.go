package service

import (
	"fmt"
	"math"
	"strings"
)

// FormatDuration renders a millisecond duration as "0 secs", "50 secs",
// "5 hr 20 min", or "1 hr 2 min 3 secs". Seconds appear whenever nonzero,
// after any hour/minute parts.
func FormatDuration(ms int64) string {
	totalSeconds := int64(math.Round(float64(ms) / 1000.0))
	if totalSeconds == 0 {
		return "0 secs"
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hr", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%d secs", seconds))
	}
	return strings.Join(parts, " ")
}
