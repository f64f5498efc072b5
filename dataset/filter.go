package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// selector is a parsed constraint pair. A zero year with anyYear set means
// the year position is unconstrained.
type selector struct {
	season  string
	anyYear bool
	year    int
}

func parseSelector(season, year string) (selector, error) {
	sel := selector{season: season, anyYear: year == All}
	if !sel.anyYear {
		y, err := strconv.Atoi(year)
		if err != nil {
			return selector{}, fmt.Errorf("%w: year %q is not %q or an integer", ErrInvalidSelector, year, All)
		}
		sel.year = y
	}
	return sel, nil
}

func (sel selector) matches(r Record) bool {
	if sel.season != All && r.Season != sel.season {
		return false
	}
	if !sel.anyYear && r.Year != sel.year {
		return false
	}
	return true
}

func filterRecords(records []Record, sel selector) View {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if sel.matches(r) {
			out = append(out, r)
		}
	}
	return View{records: out}
}

// Filter returns the view of records matching both selectors conjunctively.
// The season selector must be All or a cataloged season; the year selector
// must be All or a base-10 integer. Anything else is ErrInvalidSelector. A
// valid pair that matches zero rows yields an empty view, not an error.
func (d *Dataset) Filter(season, year string) (View, error) {
	if season != All && !d.hasSeason(season) {
		return View{}, fmt.Errorf("%w: unknown season %q", ErrInvalidSelector, season)
	}
	sel, err := parseSelector(season, year)
	if err != nil {
		return View{}, err
	}
	return filterRecords(d.records, sel), nil
}

// View is a filtered snapshot. It holds record values, not references, so a
// view stays valid however the selectors that produced it are reused.
type View struct {
	records []Record
}

// Len returns the number of records in the view.
func (v View) Len() int {
	return len(v.records)
}

// Empty reports whether the view matched zero records.
func (v View) Empty() bool {
	return len(v.records) == 0
}

// Records returns the records in the view, in dataset order.
func (v View) Records() []Record {
	return v.records
}

// Years returns the distinct years present in the view, ascending.
func (v View) Years() []int {
	seen := make(map[int]struct{})
	for _, r := range v.records {
		seen[r.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Filter narrows the view with another selector pair. Predicates apply
// as written: season membership is only checked at the Dataset boundary,
// so re-filtering with the same selectors is idempotent even when the view
// is already empty. The year selector must still be All or an integer.
func (v View) Filter(season, year string) (View, error) {
	sel, err := parseSelector(season, year)
	if err != nil {
		return View{}, err
	}
	return filterRecords(v.records, sel), nil
}
