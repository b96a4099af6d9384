// Package geo places filtered countries on a map using a static table of
// country coordinates.
package geo

import (
	"fmt"

	geohash "github.com/TomiHiltunen/geohash-golang"

	"github.com/okian/medalboard/internal/domain/model"
	"github.com/okian/medalboard/internal/domain/tally"
	"github.com/okian/medalboard/internal/domain/types"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Table is a read-only lookup from country code to coordinate.
type Table struct {
	coords map[string]Coordinate
}

// DefaultTable returns the built-in table of IOC country codes.
func DefaultTable() Table {
	return Table{coords: countryCoordinates}
}

// NewTable builds a table from m. The map is copied.
func NewTable(m map[string]Coordinate) Table {
	coords := make(map[string]Coordinate, len(m))
	for k, v := range m {
		coords[k] = v
	}
	return Table{coords: coords}
}

// Lookup returns the coordinate for code. Unknown codes report false.
func (t Table) Lookup(code string) (Coordinate, bool) {
	c, ok := t.coords[code]
	return c, ok
}

// Len returns the number of mapped codes.
func (t Table) Len() int { return len(t.coords) }

// Result is the outcome of placing markers.
type Result struct {
	Markers []types.Marker `json:"markers"`
	// Skipped lists countries present in the records but absent from the table.
	Skipped []string `json:"skipped"`
}

// Markers returns one marker per distinct country in records that the table
// knows about, labelled with that country's record count. Countries without
// a coordinate are skipped, never an error.
func Markers(records []model.Record, table Table) Result {
	res := Result{Markers: make([]types.Marker, 0), Skipped: make([]string, 0)}
	for _, kc := range tally.CountByCountry(records) {
		c, ok := table.Lookup(kc.Key)
		if !ok {
			res.Skipped = append(res.Skipped, kc.Key)
			continue
		}
		res.Markers = append(res.Markers, types.Marker{
			Country: kc.Key,
			Lat:     c.Lat,
			Lon:     c.Lon,
			Count:   kc.Count,
			Label:   fmt.Sprintf("%s - %d medals", kc.Key, kc.Count),
			Geohash: geohash.Encode(c.Lat, c.Lon),
		})
	}
	return res
}
