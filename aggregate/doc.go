// Package aggregate turns filtered record views into the blocks the
// dashboard renders: headline summaries, yearly trends, year-on-year
// comparisons, cross-seasonal grids and distribution statistics.
//
// All reductions share one per-year collapse, metricByYear, so a given
// season and metric aggregate identically wherever they appear. Hectare
// columns sum across a year's records; the burned percentage averages.
//
// # Summaries
//
//	view, _ := ds.Filter("Rabi", dataset.All)
//	s := aggregate.Summarize(view)
//	fmt.Printf("%.0f ha burned of %.0f ha\n", s.TotalBurned, s.TotalArea)
//
// Over an empty view the sums are zero and AvgPctDifference is NaN, so an
// undefined average can never be read as a measured zero.
//
// # Trends
//
//	points, err := aggregate.Trend(ds, "Rabi")
//
// Each point carries the year's summed area, mean burned percentage, and a
// 3-year trailing rolling mean that shrinks its window at the start of the
// series.
//
// # Comparisons
//
//	cmp, err := aggregate.Compare(ds, "Rabi", []string{"2020", "2021"})
//	if cmp.Insufficient {
//	    // fewer than two concrete years selected or present
//	}
//
// # Forecast input
//
// MetricSeries reduces a season and metric to the yearly series the
// forecast package consumes.
package aggregate
