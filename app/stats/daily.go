package stats

import (
	"sort"
	"time"

	"github.com/lysyi3m/tweet-display/app/archive"
)

// DailyTotals reports the trailing windowDays-day rolling mean of tweets per
// day, one row per UTC calendar date with at least one tweet. Days without
// tweets do not enter the mean.
func DailyTotals(t *archive.Table, windowDays int) []DailyRow {
	counts := make(map[time.Time]int)
	for _, rec := range t.Records {
		counts[utcDate(rec.UTCTime)]++
	}

	dates := make([]time.Time, 0, len(counts))
	for day := range counts {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rows := make([]DailyRow, 0, len(dates))
	for _, day := range dates {
		start := day.AddDate(0, 0, -windowDays)
		sum := 0
		observed := 0
		for _, prev := range dates {
			if !prev.After(start) {
				continue
			}
			if prev.After(day) {
				break
			}
			sum += counts[prev]
			observed++
		}
		rows = append(rows, DailyRow{
			Date:   day.Format(DateLayout),
			Tweets: float64(sum) / float64(observed),
		})
	}

	return rows
}
