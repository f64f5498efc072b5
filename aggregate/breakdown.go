package aggregate

import (
	"sort"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// SeasonalPoint is one (year, season) cell of the cross-seasonal grid.
type SeasonalPoint struct {
	Year       int
	Season     string
	Area       float64
	Burned     float64
	Difference float64
	AvgPct     float64
}

// SeasonalBreakdown groups a season selection by year and season, summing
// the hectare columns and averaging the burned percentage within each
// cell. Points are ordered by year, then season. With the All selector the
// grid covers every season of every year, the shape behind
// season-versus-season charts.
func SeasonalBreakdown(ds *dataset.Dataset, season string) ([]SeasonalPoint, error) {
	view, err := ds.Filter(season, dataset.All)
	if err != nil {
		return nil, err
	}

	type cell struct {
		year   int
		season string
	}
	buckets := make(map[cell][]dataset.Record)
	for _, r := range view.Records() {
		k := cell{r.Year, r.Season}
		buckets[k] = append(buckets[k], r)
	}

	cells := make([]cell, 0, len(buckets))
	for k := range buckets {
		cells = append(cells, k)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].year != cells[j].year {
			return cells[i].year < cells[j].year
		}
		return cells[i].season < cells[j].season
	})

	points := make([]SeasonalPoint, len(cells))
	for i, k := range cells {
		rs := buckets[k]
		points[i] = SeasonalPoint{
			Year:       k.year,
			Season:     k.season,
			Area:       sumOf(columnValues(rs, dataset.MetricArea)),
			Burned:     sumOf(columnValues(rs, dataset.MetricBurned)),
			Difference: sumOf(columnValues(rs, dataset.MetricDifference)),
			AvgPct:     meanOf(columnValues(rs, dataset.MetricPctDiff)),
		}
	}
	return points, nil
}
