package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// YearSummary pairs one concrete year with its summary block.
type YearSummary struct {
	Year    int
	Summary Summary
}

// Comparison is the side-by-side block for two or more concrete years of a
// season. Trend is computed once for the whole season and shared across the
// compared years; per-year trend slices would just be single points. When
// the selection cannot support a comparison, Insufficient is set and the
// data fields are empty: an under-specified selection is a normal outcome,
// not an error.
type Comparison struct {
	Season       string
	Years        []YearSummary
	Trend        []TrendPoint
	Insufficient bool
}

// Compare builds the comparison block for a season across selected years.
// The season selector must be All or cataloged, and every year selector
// must be All or an integer; anything else is ErrInvalidSelector. All
// entries and duplicates do not count as concrete years, and selected
// years with no records are skipped. Fewer than two surviving years flags
// the comparison Insufficient.
func Compare(ds *dataset.Dataset, season string, years []string) (Comparison, error) {
	seasonView, err := ds.Filter(season, dataset.All)
	if err != nil {
		return Comparison{}, err
	}

	concrete, err := concreteYears(years)
	if err != nil {
		return Comparison{}, err
	}

	cmp := Comparison{Season: season}
	if len(concrete) < 2 {
		cmp.Insufficient = true
		return cmp, nil
	}

	for _, year := range concrete {
		yearView, err := seasonView.Filter(dataset.All, strconv.Itoa(year))
		if err != nil {
			return Comparison{}, err
		}
		if yearView.Empty() {
			continue
		}
		cmp.Years = append(cmp.Years, YearSummary{Year: year, Summary: Summarize(yearView)})
	}
	if len(cmp.Years) < 2 {
		cmp.Years = nil
		cmp.Insufficient = true
		return cmp, nil
	}

	trend, err := Trend(ds, season)
	if err != nil {
		return Comparison{}, err
	}
	cmp.Trend = trend
	return cmp, nil
}

// concreteYears parses year selectors into distinct integers, ascending.
// The All sentinel is legal but names no concrete year, so it contributes
// nothing.
func concreteYears(selectors []string) ([]int, error) {
	seen := make(map[int]struct{})
	var years []int
	for _, s := range selectors {
		if s == dataset.All {
			continue
		}
		y, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: year %q is not %q or an integer", dataset.ErrInvalidSelector, s, dataset.All)
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}
