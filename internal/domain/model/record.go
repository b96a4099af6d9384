// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Gender is the competition category of a record.
type Gender string

// Known genders. The dataset uses exactly these two values.
const (
	GenderMen   Gender = "Men"
	GenderWomen Gender = "Women"
)

// Medal is the medal won by a record. MedalNone is the zero value and means
// the row carries no medal.
type Medal string

// Known medal values.
const (
	MedalNone   Medal = ""
	MedalGold   Medal = "Gold"
	MedalSilver Medal = "Silver"
	MedalBronze Medal = "Bronze"
)

// Medals lists the awarded medals in podium order.
var Medals = []Medal{MedalGold, MedalSilver, MedalBronze}

// Valid reports whether m is one of the awarded medals.
func (m Medal) Valid() bool {
	switch m {
	case MedalGold, MedalSilver, MedalBronze:
		return true
	default:
		return false
	}
}

// Record is one row of the medal dataset.
type Record struct {
	Year       int               `json:"year"`
	City       string            `json:"city"`
	Sport      string            `json:"sport"`
	Discipline string            `json:"discipline"`
	Athlete    string            `json:"athlete"`
	Country    string            `json:"country"`
	Gender     Gender            `json:"gender"`
	Event      string            `json:"event"`
	Medal      Medal             `json:"medal,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"` // columns not modelled above
}

// HasMedal reports whether the record won a medal.
func (r Record) HasMedal() bool { return r.Medal != MedalNone }

// Dataset is the loaded, read-only table. Callers must not mutate Records.
type Dataset struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.Records) }

// ParseGender validates a raw gender cell.
func ParseGender(raw string) (Gender, error) {
	switch strings.TrimSpace(raw) {
	case string(GenderMen):
		return GenderMen, nil
	case string(GenderWomen):
		return GenderWomen, nil
	default:
		return "", fmt.Errorf("%w: gender %q", ErrInvalidValue, raw)
	}
}

// ParseMedal validates a raw medal cell. Empty and NaN-like cells are MedalNone.
func ParseMedal(raw string) (Medal, error) {
	switch v := strings.TrimSpace(raw); v {
	case "", "NA", "NaN", "nan", "<nil>":
		return MedalNone, nil
	case string(MedalGold), string(MedalSilver), string(MedalBronze):
		return Medal(v), nil
	default:
		return MedalNone, fmt.Errorf("%w: medal %q", ErrInvalidValue, raw)
	}
}
