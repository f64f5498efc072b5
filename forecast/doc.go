// Package forecast fits yearly projection models over aggregated series.
//
// Two models are available: additive Holt-Winters exponential smoothing and
// a fixed-order ARIMA(1,1,1). Both are deterministic: no random starting
// points, fixed iteration budgets, and grids searched in a fixed order, so
// the same series and horizon always produce the same result.
//
// # Preparing a series
//
// PrepareSeries reduces a season and metric to the yearly series a model
// consumes:
//
//	series, err := forecast.PrepareSeries(ds, "Rabi", dataset.MetricArea)
//
// The forecastable metrics are area, burned and pct_diff.
//
// # Forecasting
//
//	result, err := forecast.Forecast(series, 3, forecast.ModelARIMA)
//	if err != nil {
//	    // bad horizon or unknown model; a caller bug, not a data problem
//	}
//	if result.Empty() {
//	    // the model could not be fit; result.Fit.Failure says why
//	}
//	for _, p := range result.Points {
//	    fmt.Printf("%d: %.1f [%.1f, %.1f]\n", p.Year, p.Value, p.Lower, p.Upper)
//	}
//
// A fit failure is not an error. Short or degenerate series come back as a
// degraded Result with zero points and the reason in Fit.Failure, so a thin
// season never takes down the page that asked for it.
//
// # Intervals
//
// The bands are approximations, not derived prediction intervals. The
// exponential path uses a constant 1.96 standard deviations of the
// historical values; the ARIMA path grows the residual standard deviation
// with the square root of the step.
package forecast
