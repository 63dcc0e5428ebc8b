package market

import (
	"fmt"
	"time"

	"github.com/finmap-org/finmap-mcp/internal/models"
)

// MinYear is the earliest year with any dataset coverage.
const MinYear = 2012

// ResolveDate composes an optional (year, month, day) into a canonical
// YYYY-MM-DD date, defaulting omitted (zero) fields from now. It rejects
// dates that do not exist on the calendar and dates that fall on a weekend.
// Pure function of its inputs.
func ResolveDate(now time.Time, year, month, day int) (string, error) {
	y := year
	if y == 0 {
		y = now.Year()
	}
	m := month
	if m == 0 {
		m = int(now.Month())
	}
	d := day
	if d == 0 {
		d = now.Day()
	}

	if y < MinYear {
		return "", fmt.Errorf("%w: year %d is before %d", models.ErrInvalidDate, y, MinYear)
	}

	// time.Date normalizes out-of-range components (e.g. Feb 30 becomes
	// Mar 1/2); a round-trip mismatch means the composed date is not real.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return "", fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", models.ErrInvalidDate, y, m, d)
	}

	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return "", models.ErrNonTradingDay
	}

	return t.Format("2006-01-02"), nil
}
