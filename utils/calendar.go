package utils

import "time"

// WeekdayHours returns the hours between start and end that fall on weekdays
// (Monday through Friday). The walk advances one calendar day at a time from
// start; each weekday contributes the overlap between [start, end] and that
// day, so partial days count linearly and weekends contribute nothing.
// Returns 0 when start >= end.
func WeekdayHours(start, end time.Time) float64 {
	if !start.Before(end) {
		return 0
	}

	var hours float64
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		wd := cur.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}

		dayStart := time.Date(cur.Year(), cur.Month(), cur.Day(), 0, 0, 0, 0, cur.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		from := start
		if dayStart.After(from) {
			from = dayStart
		}
		to := end
		if dayEnd.Before(to) {
			to = dayEnd
		}
		if to.After(from) {
			hours += to.Sub(from).Hours()
		}
	}
	return hours
}
