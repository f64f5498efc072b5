package forecast

import (
	"errors"
	"fmt"
	"math"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/aggregate"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/timeseries"
)

// ErrInvalidModel reports a model key outside the closed model set.
var ErrInvalidModel = errors.New("invalid model")

// Model identifies one of the projection models.
type Model int

const (
	ModelExponential Model = iota
	ModelARIMA
)

// Models returns every model in display order.
func Models() []Model {
	return []Model{ModelExponential, ModelARIMA}
}

// ParseModel maps a model key to its Model. The keys are "exponential" and
// "arima"; anything else is ErrInvalidModel.
func ParseModel(key string) (Model, error) {
	switch key {
	case "exponential":
		return ModelExponential, nil
	case "arima":
		return ModelARIMA, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidModel, key)
}

// String returns the model key.
func (m Model) String() string {
	switch m {
	case ModelExponential:
		return "exponential"
	case ModelARIMA:
		return "arima"
	}
	return fmt.Sprintf("model(%d)", int(m))
}

// Point is one forecast step: the point estimate and its 95% band.
type Point struct {
	Year  int
	Value float64
	Lower float64
	Upper float64
}

// FitMetrics describes the in-sample fit behind a forecast. When the model
// could not be fit, Failure carries the reason and the accuracy figures
// are meaningless.
type FitMetrics struct {
	MAE     float64
	RMSE    float64
	Model   string
	Failure string
}

// Result pairs the historical series with its forecast rows. A degraded
// result has no rows and a Failure reason but is still a renderable value,
// so one panel's fit problem never takes down the page.
type Result struct {
	Historical *timeseries.Series
	Points     []Point
	Fit        FitMetrics
}

// Empty reports whether the result carries no forecast rows.
func (r *Result) Empty() bool {
	return len(r.Points) == 0
}

// PrepareSeries reduces a season and metric to the yearly series a model
// consumes. The forecastable metrics are area, burned and pct_diff; the
// stored difference column is a display artifact, not a forecasting
// target, so it is rejected along with unknown metrics.
func PrepareSeries(ds *dataset.Dataset, season string, metric dataset.Metric) (*timeseries.Series, error) {
	switch metric {
	case dataset.MetricArea, dataset.MetricBurned, dataset.MetricPctDiff:
	default:
		return nil, fmt.Errorf("%w: %q is not forecastable", dataset.ErrInvalidMetric, metric.String())
	}
	return aggregate.MetricSeries(ds, season, metric)
}

// Forecast fits model to the series and extends it horizon years past the
// last observation. A horizon below 1 or an unknown model is an error. A
// model that cannot be fit is not: the result comes back degraded, with no
// rows and the reason in Fit.Failure.
func Forecast(series *timeseries.Series, horizon int, model Model) (*Result, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be at least 1, got %d", horizon)
	}

	result := &Result{
		Historical: series.Copy(),
		Fit:        FitMetrics{Model: model.String()},
	}

	var (
		points    []Point
		mae, rmse float64
		err       error
	)
	switch model {
	case ModelExponential:
		points, mae, rmse, err = holtWinters(series, horizon)
	case ModelARIMA:
		points, mae, rmse, err = arimaForecast(series, horizon)
	default:
		return nil, fmt.Errorf("%w: model(%d)", ErrInvalidModel, int(model))
	}
	if err != nil {
		result.Fit.Failure = err.Error()
		return result, nil
	}

	result.Points = points
	result.Fit.MAE = mae
	result.Fit.RMSE = rmse
	return result, nil
}

// forecastYears labels horizon steps after the series' last observation.
func forecastYears(series *timeseries.Series, horizon int) []int {
	years := make([]int, horizon)
	last := series.LastYear()
	for i := range years {
		years[i] = last + i + 1
	}
	return years
}

// accuracy computes in-sample MAE and RMSE between actual and fitted.
func accuracy(actual, fitted []float64) (mae, rmse float64) {
	n := len(actual)
	if len(fitted) < n {
		n = len(fitted)
	}
	if n == 0 {
		return math.NaN(), math.NaN()
	}

	var absSum, sqSum float64
	for i := 0; i < n; i++ {
		diff := actual[i] - fitted[i]
		absSum += math.Abs(diff)
		sqSum += diff * diff
	}
	return absSum / float64(n), math.Sqrt(sqSum / float64(n))
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
