package aggregate

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// columnValues extracts one metric's value from every record, in order.
func columnValues(records []dataset.Record, metric dataset.Metric) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = metric.Value(r)
	}
	return out
}

// yearGroups buckets one metric's values by calendar year.
func yearGroups(records []dataset.Record, metric dataset.Metric) map[int][]float64 {
	groups := make(map[int][]float64)
	for _, r := range records {
		groups[r.Year] = append(groups[r.Year], metric.Value(r))
	}
	return groups
}

// metricByYear reduces a metric to one value per year, ascending. Hectare
// metrics add across a year's records; the burned percentage averages,
// since percentages over different bases do not sum. Every series-shaped
// consumer reduces through here so a season and metric always collapse the
// same way.
func metricByYear(records []dataset.Record, metric dataset.Metric) ([]int, []float64) {
	groups := yearGroups(records, metric)

	years := make([]int, 0, len(groups))
	for y := range groups {
		years = append(years, y)
	}
	sort.Ints(years)

	values := make([]float64, len(years))
	for i, y := range years {
		if metric == dataset.MetricPctDiff {
			values[i] = meanOf(groups[y])
		} else {
			values[i] = sumOf(groups[y])
		}
	}
	return years, values
}

// sumOf totals values; the sum of nothing is zero.
func sumOf(values []float64) float64 {
	s, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return s
}

// meanOf averages values; the mean of nothing is undefined, and NaN keeps
// it from reading as a real zero downstream.
func meanOf(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

func medianOf(values []float64) float64 {
	m, err := stats.Median(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

func stdOf(values []float64) float64 {
	s, err := stats.StandardDeviationSample(values)
	if err != nil {
		return math.NaN()
	}
	return s
}

func minOf(values []float64) float64 {
	m, err := stats.Min(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

func maxOf(values []float64) float64 {
	m, err := stats.Max(values)
	if err != nil {
		return math.NaN()
	}
	return m
}
