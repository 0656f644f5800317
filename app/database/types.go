package database

import (
	"time"
)

// Graph is one persisted aggregate: a type tag, a human-readable description,
// and a row-oriented JSON payload ready for chart rendering.
type Graph struct {
	ID          string // Database UUID
	Type        string // e.g. "gender_rt", "hourly_stats"
	Description string
	Data        string // JSON-encoded list of row records
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
