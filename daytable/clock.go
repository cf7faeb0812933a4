package daytable

import "time"

// referenceTick picks the tick used to stamp the day's weekday and
// day-of-year columns. The poll right at midnight sometimes carries the
// previous day's offset, so the 6th reading is used, clamped for days
// with fewer ticks.
const referenceTick = 5

// TimeRow is one formatted time entry: day of year, weekday (Monday=0)
// and minute of day relative to the first tick.
type TimeRow [3]int

// TimeMatrix formats the accepted tick timestamps into an N x 3 matrix of
// [day-of-year, weekday, minute]. Day-of-year and weekday are derived once
// from the reference tick and broadcast across all rows.
func TimeMatrix(ticks []int64) []TimeRow {
	if len(ticks) == 0 {
		return nil
	}
	ref := referenceTick
	if ref >= len(ticks) {
		ref = len(ticks) - 1
	}
	refTime := time.Unix(ticks[ref], 0)
	yday := refTime.YearDay()
	weekday := (int(refTime.Weekday()) + 6) % 7 // Monday=0

	rows := make([]TimeRow, len(ticks))
	for i, t := range ticks {
		rows[i] = TimeRow{yday, weekday, int((t - ticks[0]) / 60)}
	}
	return rows
}

// Minutes extracts the minute-of-day column as the float feature axis the
// resampler fits against.
func Minutes(rows []TimeRow) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = float64(r[2])
	}
	return out
}
