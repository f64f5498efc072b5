package forecast

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/timeseries"
)

// Candidate smoothing weights. The grids are fixed and iterated in order,
// so the search is deterministic: ties keep the earliest candidate.
var (
	hwAlphas = []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	hwBetas  = []float64{0.05, 0.15, 0.3}
	hwGammas = []float64{0.05, 0.15, 0.3}
)

// hwFit is the state of one additive Holt-Winters pass: the one-step-ahead
// fitted values, the final level and trend, the seasonal indices, and the
// in-sample sum of squared errors the grid search minimizes.
type hwFit struct {
	fitted   []float64
	level    float64
	trend    float64
	seasonal []float64
	sse      float64
}

// holtWinters fits additive exponential smoothing with trend and seasonal
// components, choosing weights by grid search, and extends the series.
// The seasonal period is min(3, n): yearly agricultural records have no
// sub-year cycle, so the short period acts as a smoothing window rather
// than a true season. The band is point +/- 1.96 times the sample standard
// deviation of the history, a deliberately blunt spread that is constant
// across the horizon.
func holtWinters(series *timeseries.Series, horizon int) ([]Point, float64, float64, error) {
	n := series.Len()
	if n < 2 {
		return nil, 0, 0, fmt.Errorf("exponential smoothing needs at least 2 observations, have %d", n)
	}

	period := 3
	if n < period {
		period = n
	}

	values := series.Values
	var best hwFit
	haveBest := false
	for _, alpha := range hwAlphas {
		for _, beta := range hwBetas {
			for _, gamma := range hwGammas {
				fit := hwSmooth(values, period, alpha, beta, gamma)
				if !haveBest || fit.sse < best.sse {
					best = fit
					haveBest = true
				}
			}
		}
	}

	forecasts := make([]float64, horizon)
	for h := 1; h <= horizon; h++ {
		si := (n + h - 1) % period
		forecasts[h-1] = best.level + float64(h)*best.trend + best.seasonal[si]
	}

	margin := 1.96 * stat.StdDev(values, nil)
	lower := make([]float64, horizon)
	upper := make([]float64, horizon)
	copy(lower, forecasts)
	copy(upper, forecasts)
	floats.AddConst(-margin, lower)
	floats.AddConst(margin, upper)

	if !allFinite(forecasts) || !allFinite(best.fitted) {
		return nil, 0, 0, fmt.Errorf("exponential smoothing produced non-finite values")
	}

	years := forecastYears(series, horizon)
	points := make([]Point, horizon)
	for i := range points {
		points[i] = Point{Year: years[i], Value: forecasts[i], Lower: lower[i], Upper: upper[i]}
	}

	mae, rmse := accuracy(values, best.fitted)
	return points, mae, rmse, nil
}

// hwSmooth runs one additive smoothing pass. The level and trend start on
// the least-squares line through the series, and the seasonal indices
// start as the first cycle's deviations from that line.
func hwSmooth(values []float64, period int, alpha, beta, gamma float64) hwFit {
	n := len(values)

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	intercept, slope := stat.LinearRegression(xs, values, nil, false)

	level := intercept
	trend := slope
	seasonal := make([]float64, period)
	for i := 0; i < period; i++ {
		seasonal[i] = values[i] - (intercept + slope*float64(i))
	}

	fit := hwFit{fitted: make([]float64, n)}
	for t := 0; t < n; t++ {
		si := t % period

		predicted := level + trend + seasonal[si]
		fit.fitted[t] = predicted

		err := values[t] - predicted
		fit.sse += err * err

		prevLevel := level
		level = alpha*(values[t]-seasonal[si]) + (1-alpha)*(level+trend)
		trend = beta*(level-prevLevel) + (1-beta)*trend
		seasonal[si] = gamma*(values[t]-level) + (1-gamma)*seasonal[si]
	}

	fit.level = level
	fit.trend = trend
	fit.seasonal = seasonal
	return fit
}
