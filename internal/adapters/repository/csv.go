package repository

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/medalboard/internal/domain/model"
)

// Column names of the source CSV.
const (
	colYear       = "Year"
	colCity       = "City"
	colSport      = "Sport"
	colDiscipline = "Discipline"
	colAthlete    = "Athlete"
	colCountry    = "Country"
	colGender     = "Gender"
	colEvent      = "Event"
	colMedal      = "Medal"
)

var requiredColumns = []string{colYear, colSport, colEvent, colCountry, colGender, colMedal}

// maxIssues caps the per-row diagnostics kept from one parse.
const maxIssues = 20

// ParseResult is a parsed dataset plus the rows that failed validation.
type ParseResult struct {
	Dataset model.Dataset
	Skipped int
	Issues  []string
}

// ParseCSV reads the medal CSV. Every column is loaded as text and each row
// is validated into a model.Record; invalid rows are skipped and counted.
// A missing required column fails the whole parse.
func ParseCSV(r io.Reader) (ParseResult, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return ParseResult{}, fmt.Errorf("%w: %w", ErrParse, df.Err)
	}

	names := df.Names()
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[strings.TrimSpace(n)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return ParseResult{}, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	known := map[string]bool{
		colYear: true, colCity: true, colSport: true, colDiscipline: true, colAthlete: true,
		colCountry: true, colGender: true, colEvent: true, colMedal: true,
	}

	rows := df.Records()
	res := ParseResult{
		Dataset: model.Dataset{
			Columns: names,
			Records: make([]model.Record, 0, len(rows)),
		},
	}
	// rows[0] is the header.
	for line, row := range rows[1:] {
		rec, err := toRecord(row, index, names, known)
		if err != nil {
			res.Skipped++
			if len(res.Issues) < maxIssues {
				res.Issues = append(res.Issues, fmt.Sprintf("row %d: %v", line+1, err))
			}
			continue
		}
		res.Dataset.Records = append(res.Dataset.Records, rec)
	}
	return res, nil
}

func toRecord(row []string, index map[string]int, names []string, known map[string]bool) (model.Record, error) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return cleanCell(row[i])
	}

	year, err := strconv.Atoi(cell(colYear))
	if err != nil {
		return model.Record{}, fmt.Errorf("%w: year %q", model.ErrInvalidValue, cell(colYear))
	}
	gender, err := model.ParseGender(cell(colGender))
	if err != nil {
		return model.Record{}, err
	}
	medal, err := model.ParseMedal(cell(colMedal))
	if err != nil {
		return model.Record{}, err
	}

	rec := model.Record{
		Year:       year,
		City:       cell(colCity),
		Sport:      cell(colSport),
		Discipline: cell(colDiscipline),
		Athlete:    cell(colAthlete),
		Country:    cell(colCountry),
		Gender:     gender,
		Event:      cell(colEvent),
		Medal:      medal,
	}
	for i, name := range names {
		if known[strings.TrimSpace(name)] || i >= len(row) {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[name] = row[i]
	}
	return rec, nil
}

// cleanCell trims whitespace and maps the NaN marker of missing values to "".
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "NaN" {
		return ""
	}
	return v
}
