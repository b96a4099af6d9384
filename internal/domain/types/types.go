// Package types contains common types used across the application
package types

// CountryTally is one row of the medal table.
type CountryTally struct {
	Country string `json:"country"`
	Gold    int    `json:"gold"`
	Silver  int    `json:"silver"`
	Bronze  int    `json:"bronze"`
	Total   int    `json:"total"`
}

// YearCount is one point of a per-year series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// KeyCount is one bar of a categorical series.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Marker is a map pin for a country.
type Marker struct {
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Count   int     `json:"count"`
	Label   string  `json:"label"`
	Geohash string  `json:"geohash"`
}

// Page is a window over an ordered result.
type Page[T any] struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Items  []T `json:"items"`
}
