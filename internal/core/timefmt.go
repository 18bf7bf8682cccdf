package core

import (
	"fmt"
	"math"
	"time"
)

// FormatTime formats elapsed seconds as M:SS. Minutes and seconds are
// truncated, not rounded. Negative and non-finite values render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	mins := int64(math.Floor(seconds / 60))
	secs := int64(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatDuration formats a duration as M:SS.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}
