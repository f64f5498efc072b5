// Package dataset loads agricultural production records and answers
// filtered views over them.
//
// A Dataset is loaded once at startup and never mutated afterwards. Every
// downstream computation works from a View, the value snapshot produced by
// a season/year selector pair, so concurrent readers need no coordination.
//
// # Loading
//
// Load reads a delimited file or an .xlsx workbook, dispatching on the
// file extension:
//
//	ds, err := dataset.Load("agri_analysis_punjab_clean.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Required columns are Year, Season, Area under Production (Hac), Burned
// Area (Hac) and Difference (Hac). The burned percentage comes from
// % Difference Numeric when present, otherwise it is derived from the
// % Difference display column by stripping the trailing percent sign. Any
// missing column or uncoercible cell fails the whole load with *LoadError.
//
// # Filtering
//
// Selectors are strings straight from the catalog surfaces. The sentinel
// All leaves a position unconstrained:
//
//	view, err := ds.Filter("Rabi", dataset.All) // one season, every year
//	view, err := ds.Filter(dataset.All, "2021") // every season, one year
//
// A selector outside the catalogs is ErrInvalidSelector. A valid selector
// pair matching nothing yields an empty view, which is a normal outcome,
// not an error.
//
// # Metrics
//
// Metric names the numeric columns for the aggregation and forecasting
// surfaces. Keys arrive from the presentation layer and are validated at
// this boundary:
//
//	metric, err := dataset.ParseMetric("pct_diff")
//	if err != nil {
//	    // unknown key, reject the request
//	}
package dataset
