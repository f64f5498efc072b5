package aggregate

import (
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// Summary is the headline block for one filtered view: total hectares under
// production, total burned, their stored difference, and the mean burned
// percentage.
type Summary struct {
	TotalArea        float64
	TotalBurned      float64
	TotalDifference  float64
	AvgPctDifference float64
}

// Summarize computes the headline figures over a view. Sums over an empty
// view are zero; AvgPctDifference is NaN there, never zero, so an absent
// average cannot be mistaken for a measured one. Callers render the empty
// case explicitly.
func Summarize(view dataset.View) Summary {
	records := view.Records()
	return Summary{
		TotalArea:        sumOf(columnValues(records, dataset.MetricArea)),
		TotalBurned:      sumOf(columnValues(records, dataset.MetricBurned)),
		TotalDifference:  sumOf(columnValues(records, dataset.MetricDifference)),
		AvgPctDifference: meanOf(columnValues(records, dataset.MetricPctDiff)),
	}
}
