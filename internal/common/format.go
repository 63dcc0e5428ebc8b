package common

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatMoney formats a currency amount with thousands separators
// and up to two decimal places.
func FormatMoney(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// FormatCompact renders large monetary values as short magnitude labels
// (1.2T, 345.6B, 78.9M). Used for chart axis ticks.
func FormatCompact(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.1fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
