package stats

import (
	"testing"
	"time"

	"github.com/lysyi3m/tweet-display/app/archive"
)

func recordAtLocal(local time.Time) archive.Record {
	return archive.Record{
		UTCTime:   local.UTC(),
		LocalTime: &local,
	}
}

func TestHourlyActivityCountsByClass(t *testing.T) {
	// 2021-01-04 is a Monday, 2021-01-09 is a Saturday.
	table := &archive.Table{Records: []archive.Record{
		recordAtLocal(time.Date(2021, 1, 4, 9, 15, 0, 0, time.UTC)),
		recordAtLocal(time.Date(2021, 1, 4, 9, 45, 0, 0, time.UTC)),
		recordAtLocal(time.Date(2021, 1, 9, 9, 5, 0, 0, time.UTC)),
		recordAtLocal(time.Date(2021, 1, 9, 23, 59, 0, 0, time.UTC)),
	}}

	rows := HourlyActivity(table)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows (hours 9 and 23), got: %d", len(rows))
	}

	if rows[0].Hour != 9 || rows[0].Weekday != 2 || rows[0].Weekend != 1 {
		t.Errorf("Unexpected hour 9 row: %+v", rows[0])
	}
	// Missing class combinations report zero, not absent.
	if rows[1].Hour != 23 || rows[1].Weekday != 0 || rows[1].Weekend != 1 {
		t.Errorf("Unexpected hour 23 row: %+v", rows[1])
	}
}

func TestHourlyActivitySkipsRecordsWithoutLocalTime(t *testing.T) {
	table := &archive.Table{Records: []archive.Record{
		{UTCTime: time.Date(2021, 1, 4, 9, 0, 0, 0, time.UTC)},
	}}

	rows := HourlyActivity(table)
	if len(rows) != 0 {
		t.Errorf("Expected no rows without local times, got: %d", len(rows))
	}
}

func TestHourlyActivityWeekdayClassification(t *testing.T) {
	// Friday is a weekday, Sunday is weekend.
	table := &archive.Table{Records: []archive.Record{
		recordAtLocal(time.Date(2021, 1, 8, 12, 0, 0, 0, time.UTC)),  // Friday
		recordAtLocal(time.Date(2021, 1, 10, 12, 0, 0, 0, time.UTC)), // Sunday
	}}

	rows := HourlyActivity(table)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got: %d", len(rows))
	}
	if rows[0].Weekday != 1 || rows[0].Weekend != 1 {
		t.Errorf("Unexpected classification: %+v", rows[0])
	}
}

func TestHourlyActivityMatchesRecordCounts(t *testing.T) {
	// Round-trip: every (hour, class) cell equals the number of records with
	// that local hour and weekday classification.
	locals := []time.Time{
		time.Date(2021, 3, 1, 0, 10, 0, 0, time.UTC),  // Monday
		time.Date(2021, 3, 2, 0, 20, 0, 0, time.UTC),  // Tuesday
		time.Date(2021, 3, 6, 0, 30, 0, 0, time.UTC),  // Saturday
		time.Date(2021, 3, 6, 17, 0, 0, 0, time.UTC),  // Saturday
		time.Date(2021, 3, 3, 17, 30, 0, 0, time.UTC), // Wednesday
	}
	records := make([]archive.Record, 0, len(locals))
	for _, l := range locals {
		records = append(records, recordAtLocal(l))
	}
	table := &archive.Table{Records: records}

	rows := HourlyActivity(table)

	for _, row := range rows {
		weekday, weekend := 0, 0
		for _, l := range locals {
			if l.Hour() != row.Hour {
				continue
			}
			if l.Weekday() == time.Saturday || l.Weekday() == time.Sunday {
				weekend++
			} else {
				weekday++
			}
		}
		if row.Weekday != weekday || row.Weekend != weekend {
			t.Errorf("Hour %d: expected %d/%d, got %d/%d", row.Hour, weekday, weekend, row.Weekday, row.Weekend)
		}
		if row.Weekday == 0 && row.Weekend == 0 {
			t.Errorf("Hour %d has no observations and must be omitted", row.Hour)
		}
	}
}
