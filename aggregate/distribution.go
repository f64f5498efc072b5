package aggregate

import (
	"math"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// Distribution describes how one metric's record-level values spread
// across a view.
type Distribution struct {
	Metric dataset.Metric
	Count  int
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64
	Total  float64
}

// Describe computes the spread of one metric over a view's records. Every
// moment is NaN on an empty view, while Total keeps the sums-are-zero rule
// the summary block uses. Total is NaN for the percentage metric:
// percentages over different bases do not sum, and the grid renders that
// gap explicitly.
func Describe(view dataset.View, metric dataset.Metric) Distribution {
	values := columnValues(view.Records(), metric)

	d := Distribution{
		Metric: metric,
		Count:  len(values),
		Mean:   meanOf(values),
		Median: medianOf(values),
		Std:    stdOf(values),
		Min:    minOf(values),
		Max:    maxOf(values),
	}
	if metric == dataset.MetricPctDiff {
		d.Total = math.NaN()
	} else {
		d.Total = sumOf(values)
	}
	return d
}
