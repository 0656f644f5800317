package stats

// DateLayout formats the calendar-date column of rolling aggregates.
const DateLayout = "2006-01-02"

// Weekday class column names, also the JSON keys of HourlyRow.
const (
	ClassWeekday = "Weekday"
	ClassWeekend = "Weekend"
)

// HourlyRow is one output row of HourlyActivity: counts of tweets posted
// locally at Hour, split by weekday class. A class with no observations at
// this hour reports 0; hours with no observations in either class are omitted
// from the output entirely.
type HourlyRow struct {
	Hour    int `json:"hour"`
	Weekday int `json:"Weekday"`
	Weekend int `json:"Weekend"`
}

// RollingRow is one output row of GenderRolling: the trailing rolling mean of
// daily interaction counts per reported label. A nil cell means no data inside
// the window for that label, which is distinct from a mean of zero.
type RollingRow struct {
	Date   string   `json:"date"`
	Male   *float64 `json:"male"`
	Female *float64 `json:"female"`
}

// DailyRow is one output row of DailyTotals: the trailing rolling mean of
// tweets per observed day.
type DailyRow struct {
	Date   string  `json:"date"`
	Tweets float64 `json:"tweets"`
}
