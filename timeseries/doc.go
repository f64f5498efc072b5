// Package timeseries provides a yearly series type for aggregated
// agricultural metrics.
//
// A Series carries one value per calendar year in ascending year order. The
// aggregate package produces Series values from filtered records, and the
// forecast package consumes them.
//
// # Creating a Series
//
// Create a series over contiguous years:
//
//	values := []float64{1200, 1350, 1100, 1600}
//	series := timeseries.New(2019, values)
//
// Or with explicit year labels (sorted on construction):
//
//	series, err := timeseries.NewWithYears(
//	    []int{2021, 2019, 2020},
//	    []float64{1350, 1200, 1100},
//	)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Differencing
//
// First differences drop the leading year label:
//
//	diff := series.Diff()
package timeseries
