package aggregate

import (
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// TrendPoint is one year of a season's trajectory: area summed over the
// year's records, burned percentage averaged, and the smoothed percentage.
type TrendPoint struct {
	Year          int
	Area          float64
	AvgPct        float64
	RollingAvgPct float64
}

// Trend returns the yearly trajectory for a season selector, ascending by
// year. RollingAvgPct is a 3-year trailing mean over AvgPct whose window
// shrinks at the head of the series (sizes 1, 2, 3, 3, ...), so the first
// years average only the points seen so far instead of going undefined.
// A season with no records yields an empty slice and no error.
func Trend(ds *dataset.Dataset, season string) ([]TrendPoint, error) {
	view, err := ds.Filter(season, dataset.All)
	if err != nil {
		return nil, err
	}
	if view.Empty() {
		return nil, nil
	}

	records := view.Records()
	years, areas := metricByYear(records, dataset.MetricArea)
	_, pcts := metricByYear(records, dataset.MetricPctDiff)
	rolling := rollingMean(pcts, 3)

	points := make([]TrendPoint, len(years))
	for i := range years {
		points[i] = TrendPoint{
			Year:          years[i],
			Area:          areas[i],
			AvgPct:        pcts[i],
			RollingAvgPct: rolling[i],
		}
	}
	return points, nil
}

// rollingMean computes a trailing rolling mean with a window that shrinks
// at the head of the series.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		out[i] = meanOf(values[start : i+1])
	}
	return out
}
