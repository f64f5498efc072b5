package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/timeseries"
)

// Fixed optimization schedule for the conditional sum-of-squares fit. The
// counts and grids never depend on the data, so a given series always
// produces the same coefficients.
const (
	arimaMaxIter   = 100
	arimaTolerance = 1e-6
	arimaLearnRate = 0.01
)

// arimaModel is a fitted ARIMA(1,1,1): one autoregressive and one moving
// average term over the first-differenced series.
type arimaModel struct {
	phi       float64
	theta     float64
	intercept float64
	diff      []float64
	residuals []float64
	fitted    []float64 // on the original scale, aligned with values[1:]
}

// arimaForecast fits ARIMA(1,1,1) to the series and extends it horizon
// steps. The first observation is consumed by differencing, so fit
// accuracy is measured from the second observation on. The band widens
// with the step: point +/- 1.96 times the residual standard deviation
// times sqrt(step).
func arimaForecast(series *timeseries.Series, horizon int) ([]Point, float64, float64, error) {
	n := series.Len()
	if n < 5 {
		return nil, 0, 0, fmt.Errorf("arima(1,1,1) needs at least 5 observations, have %d", n)
	}

	m := fitARIMA(series.Values)
	if !allFinite(m.fitted) {
		return nil, 0, 0, fmt.Errorf("arima fit produced non-finite values")
	}

	forecasts := m.predict(series.Values, horizon)
	if !allFinite(forecasts) {
		return nil, 0, 0, fmt.Errorf("arima forecast produced non-finite values")
	}

	sigma := stat.StdDev(m.residuals, nil)
	years := forecastYears(series, horizon)
	points := make([]Point, horizon)
	for i := range points {
		margin := 1.96 * sigma * math.Sqrt(float64(i+1))
		points[i] = Point{
			Year:  years[i],
			Value: forecasts[i],
			Lower: forecasts[i] - margin,
			Upper: forecasts[i] + margin,
		}
	}

	mae, rmse := accuracy(series.Values[1:], m.fitted)
	return points, mae, rmse, nil
}

// fitARIMA estimates the coefficients by conditional sum of squares on the
// first-differenced values. The AR term starts at the Yule-Walker estimate
// (the lag-1 autocorrelation, for a single term) and the MA term at a
// small positive weight; both are then refined by bounded gradient steps
// until the squared error stops moving.
func fitARIMA(values []float64) arimaModel {
	y := difference(values)
	nd := len(y)

	m := arimaModel{
		phi:       clampCoeff(acf1(y)),
		theta:     0.1,
		intercept: stat.Mean(y, nil),
		diff:      y,
	}

	residuals := make([]float64, nd)
	prevSSE := math.Inf(1)
	for iter := 0; iter < arimaMaxIter; iter++ {
		var sse, phiGrad, thetaGrad float64
		for t := 1; t < nd; t++ {
			pred := m.intercept + m.phi*(y[t-1]-m.intercept) + m.theta*residuals[t-1]
			residuals[t] = y[t] - pred
			sse += residuals[t] * residuals[t]
			phiGrad -= 2 * residuals[t] * (y[t-1] - m.intercept)
			thetaGrad -= 2 * residuals[t] * residuals[t-1]
		}

		if math.Abs(prevSSE-sse) < arimaTolerance {
			break
		}
		prevSSE = sse

		m.phi = clampCoeff(m.phi - arimaLearnRate*phiGrad/float64(nd))
		m.theta = clampCoeff(m.theta - arimaLearnRate*thetaGrad/float64(nd))
	}

	// Final pass with the settled coefficients. The differenced fit at
	// step t predicts the level at values[t+1] from the level at values[t].
	m.residuals = make([]float64, nd)
	m.fitted = make([]float64, nd)
	for t := 0; t < nd; t++ {
		pred := m.intercept
		if t > 0 {
			pred += m.phi*(y[t-1]-m.intercept) + m.theta*m.residuals[t-1]
		}
		m.residuals[t] = y[t] - pred
		m.fitted[t] = values[t] + pred
	}
	return m
}

// predict runs the recursion past the end of the differenced series, with
// future residuals at their expected value of zero, then integrates the
// differenced forecasts back onto the level of the last observation.
func (m arimaModel) predict(values []float64, horizon int) []float64 {
	nd := len(m.diff)
	extY := make([]float64, nd+horizon)
	copy(extY, m.diff)
	extRes := make([]float64, nd+horizon)
	copy(extRes, m.residuals)

	for h := 0; h < horizon; h++ {
		t := nd + h
		pred := m.intercept + m.phi*(extY[t-1]-m.intercept) + m.theta*extRes[t-1]
		extY[t] = pred
	}

	forecasts := make([]float64, horizon)
	level := values[len(values)-1]
	for i := range forecasts {
		level += extY[nd+i]
		forecasts[i] = level
	}
	return forecasts
}

func difference(values []float64) []float64 {
	out := make([]float64, len(values)-1)
	for i := range out {
		out[i] = values[i+1] - values[i]
	}
	return out
}

// acf1 is the lag-1 autocorrelation; 0 when the series has no variance,
// which leaves the AR term to the gradient refinement.
func acf1(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := stat.Mean(values, nil)
	var variance, cov float64
	for i, v := range values {
		d := v - mean
		variance += d * d
		if i > 0 {
			cov += d * (values[i-1] - mean)
		}
	}
	if variance == 0 {
		return 0
	}
	return cov / variance
}

// clampCoeff bounds a coefficient inside the stationarity/invertibility
// region.
func clampCoeff(c float64) float64 {
	return math.Max(-0.99, math.Min(0.99, c))
}
