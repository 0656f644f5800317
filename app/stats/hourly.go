package stats

import (
	"sort"
	"time"

	"github.com/lysyi3m/tweet-display/app/archive"
)

// HourlyActivity counts tweets by local hour of day and weekday class.
// Only records with a resolved local time participate; everything else has no
// defensible wall-clock hour.
func HourlyActivity(t *archive.Table) []HourlyRow {
	type bucket struct {
		weekday int
		weekend int
	}

	counts := make(map[int]*bucket)
	for _, rec := range t.Records {
		if rec.LocalTime == nil {
			continue
		}
		hour := rec.LocalTime.Hour()
		b := counts[hour]
		if b == nil {
			b = &bucket{}
			counts[hour] = b
		}
		if isWeekend(rec.LocalTime.Weekday()) {
			b.weekend++
		} else {
			b.weekday++
		}
	}

	hours := make([]int, 0, len(counts))
	for hour := range counts {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	rows := make([]HourlyRow, 0, len(hours))
	for _, hour := range hours {
		b := counts[hour]
		rows = append(rows, HourlyRow{Hour: hour, Weekday: b.weekday, Weekend: b.weekend})
	}

	return rows
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}
