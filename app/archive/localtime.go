package archive

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/tweet-display/app/geo"
)

// Resolver converts a UTC timestamp to local wall-clock time through an
// injected timezone lookup. The lookup is a point-in-polygon query and by far
// the most expensive step per record, so resolved locations are memoized per
// coordinate pair. Archives revisit the same handful of places constantly.
type Resolver struct {
	lookup geo.TimezoneLookup
	mu     sync.RWMutex
	cache  map[coordKey]*time.Location
}

type coordKey struct {
	lat, lon float64
}

func NewResolver(lookup geo.TimezoneLookup) *Resolver {
	return &Resolver{
		lookup: lookup,
		cache:  make(map[coordKey]*time.Location),
	}
}

// Resolve returns the local time for utc at the given coordinates, or nil when
// either coordinate is absent or no timezone is known for the point. Lookup
// failures degrade to nil, never to an error.
func (r *Resolver) Resolve(lat, lon *float64, utc time.Time) *time.Time {
	if lat == nil || lon == nil {
		return nil
	}

	loc := r.location(*lat, *lon)
	if loc == nil {
		return nil
	}

	local := utc.In(loc)
	return &local
}

func (r *Resolver) location(lat, lon float64) *time.Location {
	key := coordKey{lat: lat, lon: lon}

	r.mu.RLock()
	loc, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return loc
	}

	var resolved *time.Location
	if name := r.lookup.TimezoneAt(lat, lon); name != "" {
		l, err := time.LoadLocation(name)
		if err != nil {
			slog.Warn("Unknown timezone name from lookup", "timezone", name, "lat", lat, "lon", lon, "error", err)
		} else {
			resolved = l
		}
	}

	r.mu.Lock()
	r.cache[key] = resolved
	r.mu.Unlock()

	return resolved
}
