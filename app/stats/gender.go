package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/lysyi3m/tweet-display/app/archive"
	"github.com/lysyi3m/tweet-display/app/gender"
)

// Partner selects the interaction-partner display name of a record, or nil
// when the record has no such partner.
type Partner func(archive.Record) *string

func RetweetPartner(rec archive.Record) *string {
	return rec.RetweetDisplayName
}

func ReplyPartner(rec archive.Record) *string {
	return rec.ReplyDisplayName
}

// GenderRolling infers a gender label for every interaction partner selected
// by partner, groups the labels by UTC calendar date, and reports the trailing
// windowDays-day rolling mean of the daily counts for the male and female
// labels. The mostly_* / andy / unknown series are counted but not reported.
//
// Output rows cover exactly the dates with at least one selected partner.
// Inside the window, days a label was never observed are skipped by the mean
// rather than counted as zero; a label with no observation anywhere in the
// window yields a nil cell.
func GenderRolling(t *archive.Table, partner Partner, windowDays int, detector gender.Detector) []RollingRow {
	counts := make(map[time.Time]map[gender.Label]int)

	for _, rec := range t.Records {
		name := partner(rec)
		if name == nil {
			continue
		}
		// The first whitespace-delimited token is the presumed given name.
		fields := strings.Fields(*name)
		if len(fields) == 0 {
			continue
		}
		label := detector.Guess(fields[0])

		day := utcDate(rec.UTCTime)
		byLabel := counts[day]
		if byLabel == nil {
			byLabel = make(map[gender.Label]int)
			counts[day] = byLabel
		}
		byLabel[label]++
	}

	dates := make([]time.Time, 0, len(counts))
	for day := range counts {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	rows := make([]RollingRow, 0, len(dates))
	for _, day := range dates {
		rows = append(rows, RollingRow{
			Date:   day.Format(DateLayout),
			Male:   rollingMean(counts, dates, day, windowDays, gender.Male),
			Female: rollingMean(counts, dates, day, windowDays, gender.Female),
		})
	}

	return rows
}

// rollingMean averages the label's daily counts over the trailing window
// (end-windowDays, end]. Only days the label was actually observed contribute;
// nil means the label never appears inside the window.
func rollingMean(counts map[time.Time]map[gender.Label]int, dates []time.Time, end time.Time, windowDays int, label gender.Label) *float64 {
	start := end.AddDate(0, 0, -windowDays)

	sum := 0
	observed := 0
	for _, day := range dates {
		if !day.After(start) {
			continue
		}
		if day.After(end) {
			break
		}
		if c, ok := counts[day][label]; ok {
			sum += c
			observed++
		}
	}

	if observed == 0 {
		return nil
	}
	mean := float64(sum) / float64(observed)
	return &mean
}

func utcDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
