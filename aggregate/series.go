package aggregate

import (
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/timeseries"
)

// MetricSeries reduces a season's records to a yearly series for one
// metric, via the same per-year reduction every other block uses. A season
// with no records yields an empty series, which the forecasting side
// treats as a degraded fit rather than an error.
func MetricSeries(ds *dataset.Dataset, season string, metric dataset.Metric) (*timeseries.Series, error) {
	view, err := ds.Filter(season, dataset.All)
	if err != nil {
		return nil, err
	}

	years, values := metricByYear(view.Records(), metric)
	series, err := timeseries.NewWithYears(years, values)
	if err != nil {
		return nil, err
	}
	series.Name = metric.String()
	return series, nil
}
