package stats

import (
	"testing"
	"time"

	"github.com/lysyi3m/tweet-display/app/archive"
	"github.com/lysyi3m/tweet-display/app/gender"
)

// stubDetector resolves from a fixed map; anything else is unknown.
type stubDetector struct {
	labels map[string]gender.Label
}

func (d *stubDetector) Guess(firstName string) gender.Label {
	if label, ok := d.labels[firstName]; ok {
		return label
	}
	return gender.Unknown
}

func retweetRecord(utc time.Time, displayName string) archive.Record {
	return archive.Record{
		UTCTime:            utc,
		RetweetDisplayName: &displayName,
	}
}

func TestGenderRollingGroupsByDate(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{
		"Jane": gender.Female,
		"John": gender.Male,
	}}

	table := &archive.Table{Records: []archive.Record{
		retweetRecord(time.Date(2021, 1, 5, 8, 0, 0, 0, time.UTC), "Jane Doe"),
		retweetRecord(time.Date(2021, 1, 5, 20, 0, 0, 0, time.UTC), "Jane Smith"),
		retweetRecord(time.Date(2021, 1, 5, 21, 0, 0, 0, time.UTC), "John Doe"),
	}}

	rows := GenderRolling(table, RetweetPartner, 180, detector)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got: %d", len(rows))
	}

	row := rows[0]
	if row.Date != "2021-01-05" {
		t.Errorf("Expected date 2021-01-05, got: %s", row.Date)
	}
	if row.Female == nil || *row.Female != 2 {
		t.Errorf("Expected female mean 2, got: %v", row.Female)
	}
	if row.Male == nil || *row.Male != 1 {
		t.Errorf("Expected male mean 1, got: %v", row.Male)
	}
}

func TestGenderRollingUsesFirstNameToken(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{"Jane": gender.Female}}

	table := &archive.Table{Records: []archive.Record{
		// "Jane van Dyke" must be looked up as "Jane", not the full string.
		retweetRecord(time.Date(2021, 1, 5, 8, 0, 0, 0, time.UTC), "Jane van Dyke"),
	}}

	rows := GenderRolling(table, RetweetPartner, 180, detector)
	if len(rows) != 1 || rows[0].Female == nil || *rows[0].Female != 1 {
		t.Fatalf("Expected first-token lookup to count one female, got: %+v", rows)
	}
}

func TestGenderRollingSkipsRecordsWithoutPartner(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{}}

	table := &archive.Table{Records: []archive.Record{
		{UTCTime: time.Date(2021, 1, 5, 8, 0, 0, 0, time.UTC)},
		retweetRecord(time.Date(2021, 1, 6, 8, 0, 0, 0, time.UTC), "   "),
	}}

	rows := GenderRolling(table, RetweetPartner, 180, detector)
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got: %d", len(rows))
	}
}

func TestGenderRollingNoDataBeforeFirstObservation(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{
		"Jane": gender.Female,
		"John": gender.Male,
	}}

	table := &archive.Table{Records: []archive.Record{
		retweetRecord(time.Date(2021, 1, 5, 8, 0, 0, 0, time.UTC), "John Doe"),
		retweetRecord(time.Date(2021, 1, 10, 8, 0, 0, 0, time.UTC), "Jane Doe"),
	}}

	rows := GenderRolling(table, RetweetPartner, 180, detector)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got: %d", len(rows))
	}

	// On Jan 5 the female label has not been observed yet: no data, never 0.
	if rows[0].Female != nil {
		t.Errorf("Expected nil female cell before first observation, got: %v", *rows[0].Female)
	}
	if rows[0].Male == nil || *rows[0].Male != 1 {
		t.Errorf("Expected male mean 1 on first date, got: %v", rows[0].Male)
	}

	// On Jan 10 both labels are inside the window.
	if rows[1].Female == nil || *rows[1].Female != 1 {
		t.Errorf("Expected female mean 1 on second date, got: %v", rows[1].Female)
	}
	if rows[1].Male == nil || *rows[1].Male != 1 {
		t.Errorf("Expected male mean 1 carried in window, got: %v", rows[1].Male)
	}
}

func TestGenderRollingSkipsUnobservedDaysInMean(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{
		"Jane": gender.Female,
		"John": gender.Male,
	}}

	// Male observed on day 1 (2x) and day 3 (1x); day 2 only has a female
	// partner. The male mean on day 3 averages over two observed days, the
	// female-only day is skipped rather than counted as zero.
	table := &archive.Table{Records: []archive.Record{
		retweetRecord(time.Date(2021, 1, 1, 8, 0, 0, 0, time.UTC), "John A"),
		retweetRecord(time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC), "John B"),
		retweetRecord(time.Date(2021, 1, 2, 8, 0, 0, 0, time.UTC), "Jane A"),
		retweetRecord(time.Date(2021, 1, 3, 8, 0, 0, 0, time.UTC), "John C"),
	}}

	rows := GenderRolling(table, RetweetPartner, 180, detector)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got: %d", len(rows))
	}

	last := rows[2]
	if last.Male == nil || *last.Male != 1.5 {
		t.Errorf("Expected male mean 1.5 (days with 2 and 1), got: %v", last.Male)
	}
}

func TestGenderRollingWindowExpiry(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{"John": gender.Male}}

	table := &archive.Table{Records: []archive.Record{
		retweetRecord(time.Date(2021, 1, 1, 8, 0, 0, 0, time.UTC), "John A"),
		retweetRecord(time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC), "John B"),
		retweetRecord(time.Date(2021, 6, 1, 8, 0, 0, 0, time.UTC), "John C"),
	}}

	// June 1 is 151 days after January 1: inside a 180-day window, outside a
	// 30-day one.
	wide := GenderRolling(table, RetweetPartner, 180, detector)
	if m := wide[1].Male; m == nil || *m != 1.5 {
		t.Errorf("Expected mean 1.5 inside 180-day window, got: %v", m)
	}

	narrow := GenderRolling(table, RetweetPartner, 30, detector)
	if m := narrow[1].Male; m == nil || *m != 1 {
		t.Errorf("Expected mean 1 once the old day expired, got: %v", m)
	}
}

func TestGenderRollingReportsOnlyMaleAndFemale(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{
		"Alex":  gender.MostlyMale,
		"Dana":  gender.Andy,
		"Xlkjq": gender.Unknown,
	}}

	table := &archive.Table{Records: []archive.Record{
		retweetRecord(time.Date(2021, 1, 5, 8, 0, 0, 0, time.UTC), "Alex Doe"),
		retweetRecord(time.Date(2021, 1, 5, 9, 0, 0, 0, time.UTC), "Dana Doe"),
		retweetRecord(time.Date(2021, 1, 5, 10, 0, 0, 0, time.UTC), "Xlkjq Doe"),
	}}

	rows := GenderRolling(table, RetweetPartner, 180, detector)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row (the date was observed), got: %d", len(rows))
	}
	if rows[0].Male != nil || rows[0].Female != nil {
		t.Error("Expected both reported series empty when only excluded labels occur")
	}
}

func TestGenderRollingReplyPartnerColumn(t *testing.T) {
	detector := &stubDetector{labels: map[string]gender.Label{"Jane": gender.Female}}

	name := "Jane Doe"
	table := &archive.Table{Records: []archive.Record{
		{UTCTime: time.Date(2021, 1, 5, 8, 0, 0, 0, time.UTC), ReplyDisplayName: &name},
		retweetRecord(time.Date(2021, 1, 6, 8, 0, 0, 0, time.UTC), "Jane Smith"),
	}}

	rows := GenderRolling(table, ReplyPartner, 180, detector)
	if len(rows) != 1 {
		t.Fatalf("Expected only the reply record to count, got %d rows", len(rows))
	}
	if rows[0].Date != "2021-01-05" {
		t.Errorf("Expected date 2021-01-05, got: %s", rows[0].Date)
	}
}
