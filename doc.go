// Package hydrolytix is the aggregation and forecasting core behind an
// agricultural production dashboard.
//
// The module turns a flat table of per-year, per-season production and
// burned-area records into the filtered, grouped and rolling-window
// metrics every visualization and export path consumes: KPI summaries,
// multi-year trends, year-over-year comparisons, distribution grids and
// time-series forecasts. Chart rendering and file encoding live outside
// this module; it hands them raw numbers in well-defined shapes.
//
// # Quick Start
//
// Load the dataset once at startup and derive everything else per request:
//
//	ds, err := dataset.Load("agri_analysis_punjab_clean.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	view, _ := ds.Filter("Rabi", dataset.All)
//	summary := aggregate.Summarize(view)
//	trend, _ := aggregate.Trend(ds, "Rabi")
//
// Forecast a metric three years out:
//
//	series, _ := forecast.PrepareSeries(ds, "Rabi", dataset.MetricArea)
//	result, _ := forecast.Forecast(series, 3, forecast.ModelARIMA)
//
// # Packages
//
// The module is organized into the following packages:
//
//   - dataset: record loading, catalogs, selector validation and filtering
//   - timeseries: the year-indexed series shared by aggregation and forecasting
//   - aggregate: summaries, trends, comparisons, breakdowns and distributions
//   - forecast: exponential smoothing and ARIMA(1,1,1) projections
//   - report: export-ready data blocks for the CSV/PDF side
//   - config: process settings from the environment
//
// The Dataset is immutable after loading, and every derived value is
// freshly allocated, so concurrent requests share it without locking.
package hydrolytix
