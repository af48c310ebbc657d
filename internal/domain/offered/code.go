package offered

import (
	"fmt"
	"time"
)

// BatchCode derives the production batch code from a date. The format
// is YY-WW-D: two-digit year, two-digit week of the year counted in
// seven-day blocks from January 1st, and the ISO weekday (1 is Monday,
// 7 is Sunday).
func BatchCode(t time.Time) string {
	week := (t.YearDay()-1)/7 + 1

	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}

	return fmt.Sprintf("%02d-%02d-%d", t.Year()%100, week, day)
}
