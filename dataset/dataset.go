package dataset

import (
	"errors"
	"sort"
	"strconv"
)

// All is the selector sentinel meaning "no constraint". It is valid for
// both the season and the year position.
const All = "All"

// Record is one observation: a growing season within a year, with its area
// under production, burned area, their stored difference, and the burned
// percentage change. Difference is carried from the source as an
// independent column, never recomputed from Area and Burned.
type Record struct {
	Year          int
	Season        string
	Area          float64
	Burned        float64
	Difference    float64
	PctDifference float64
}

// Dataset is the immutable record store every view derives from. It is
// built once by Load (or New) and only read afterwards, so concurrent use
// needs no locking.
type Dataset struct {
	records []Record
	seasons []string
	years   []int
}

// New builds a dataset from records and derives the season and year
// catalogs. An empty record set is rejected: a dashboard over zero rows is
// a load failure, not an empty view.
func New(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, errors.New("no data rows")
	}

	rs := make([]Record, len(records))
	copy(rs, records)

	seasonSet := make(map[string]struct{})
	yearSet := make(map[int]struct{})
	for _, r := range rs {
		seasonSet[r.Season] = struct{}{}
		yearSet[r.Year] = struct{}{}
	}

	seasons := make([]string, 0, len(seasonSet))
	for s := range seasonSet {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	return &Dataset{records: rs, seasons: seasons, years: years}, nil
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Seasons returns the distinct seasons in lexicographic order.
func (d *Dataset) Seasons() []string {
	out := make([]string, len(d.seasons))
	copy(out, d.seasons)
	return out
}

// Years returns the distinct years in ascending order.
func (d *Dataset) Years() []int {
	out := make([]int, len(d.years))
	copy(out, d.years)
	return out
}

// SeasonOptions returns the season catalog for selector widgets: the All
// sentinel followed by the concrete seasons.
func (d *Dataset) SeasonOptions() []string {
	out := make([]string, 0, len(d.seasons)+1)
	out = append(out, All)
	out = append(out, d.seasons...)
	return out
}

// YearOptions returns the year catalog for selector widgets: the All
// sentinel followed by the concrete years formatted as strings.
func (d *Dataset) YearOptions() []string {
	out := make([]string, 0, len(d.years)+1)
	out = append(out, All)
	for _, y := range d.years {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

func (d *Dataset) hasSeason(season string) bool {
	i := sort.SearchStrings(d.seasons, season)
	return i < len(d.seasons) && d.seasons[i] == season
}
