package geo

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// TZFLookup backs TimezoneLookup with the tzf polygon index. Construction
// loads the embedded timezone shape data and is expensive; build one per
// process and share it.
type TZFLookup struct {
	finder tzf.F
}

func NewTZFLookup() (*TZFLookup, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timezone finder: %w", err)
	}
	return &TZFLookup{finder: finder}, nil
}

// TimezoneAt returns the IANA zone name at the point. tzf takes longitude
// first; this adapter is the single place that argument order is swapped.
func (l *TZFLookup) TimezoneAt(lat, lon float64) string {
	return l.finder.GetTimezoneName(lon, lat)
}
