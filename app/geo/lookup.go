package geo

// TimezoneLookup resolves geographic coordinates to an IANA timezone name.
// Implementations are expected to be deterministic and side-effect free. An
// empty string means no zone is known for the point.
type TimezoneLookup interface {
	TimezoneAt(lat, lon float64) string
}
