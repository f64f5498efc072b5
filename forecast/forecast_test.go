package forecast

import (
	"errors"
	"math"
	"testing"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/timeseries"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	records := []dataset.Record{
		{Year: 2017, Season: "Rabi", Area: 100, Burned: 10, Difference: 90, PctDifference: 10},
		{Year: 2018, Season: "Rabi", Area: 110, Burned: 12, Difference: 98, PctDifference: 10.9},
		{Year: 2019, Season: "Rabi", Area: 125, Burned: 11, Difference: 114, PctDifference: 8.8},
		{Year: 2020, Season: "Rabi", Area: 130, Burned: 15, Difference: 115, PctDifference: 11.5},
		{Year: 2021, Season: "Rabi", Area: 142, Burned: 14, Difference: 128, PctDifference: 9.9},
		{Year: 2020, Season: "Kharif", Area: 80, Burned: 9, Difference: 71, PctDifference: 11.3},
		{Year: 2021, Season: "Kharif", Area: 85, Burned: 8, Difference: 77, PctDifference: 9.4},
	}
	ds, err := dataset.New(records)
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	return ds
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		key  string
		want Model
		ok   bool
	}{
		{"exponential", ModelExponential, true},
		{"arima", ModelARIMA, true},
		{"ARIMA", 0, false},
		{"prophet", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseModel(tt.key)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseModel(%q) failed: %v", tt.key, err)
				}
				if got != tt.want {
					t.Errorf("ParseModel(%q) = %v, want %v", tt.key, got, tt.want)
				}
				return
			}
			if !errors.Is(err, ErrInvalidModel) {
				t.Errorf("ParseModel(%q) error = %v, want ErrInvalidModel", tt.key, err)
			}
		})
	}
}

func TestPrepareSeries(t *testing.T) {
	ds := testDataset(t)

	s, err := PrepareSeries(ds, "Rabi", dataset.MetricArea)
	if err != nil {
		t.Fatalf("PrepareSeries failed: %v", err)
	}
	if s.Len() != 5 {
		t.Fatalf("Expected 5 points, got %d", s.Len())
	}
	if s.Years[0] != 2017 || s.LastYear() != 2021 {
		t.Errorf("Years span %d..%d, want 2017..2021", s.Years[0], s.LastYear())
	}
	if s.Values[0] != 100 {
		t.Errorf("Values[0] = %f, want 100", s.Values[0])
	}
}

func TestPrepareSeriesRejectsDifference(t *testing.T) {
	ds := testDataset(t)

	_, err := PrepareSeries(ds, "Rabi", dataset.MetricDifference)
	if !errors.Is(err, dataset.ErrInvalidMetric) {
		t.Errorf("Expected ErrInvalidMetric for difference, got %v", err)
	}
}

func TestForecastBadHorizon(t *testing.T) {
	series := timeseries.New(2018, []float64{10, 12, 14, 16})

	if _, err := Forecast(series, 0, ModelExponential); err == nil {
		t.Error("Expected error for horizon 0, got nil")
	}
	if _, err := Forecast(series, -2, ModelARIMA); err == nil {
		t.Error("Expected error for negative horizon, got nil")
	}
}

func TestForecastUnknownModel(t *testing.T) {
	series := timeseries.New(2018, []float64{10, 12, 14, 16})

	if _, err := Forecast(series, 3, Model(42)); err == nil {
		t.Error("Expected error for unknown model, got nil")
	}
}

func TestForecastYearsContiguous(t *testing.T) {
	series := timeseries.New(2015, []float64{100, 104, 103, 110, 112, 118, 117, 125})

	for _, model := range Models() {
		t.Run(model.String(), func(t *testing.T) {
			result, err := Forecast(series, 4, model)
			if err != nil {
				t.Fatalf("Forecast failed: %v", err)
			}
			if result.Empty() {
				t.Fatalf("Unexpected degraded result: %s", result.Fit.Failure)
			}
			if len(result.Points) != 4 {
				t.Fatalf("Expected 4 points, got %d", len(result.Points))
			}
			for i, p := range result.Points {
				want := 2023 + i
				if p.Year != want {
					t.Errorf("Points[%d].Year = %d, want %d", i, p.Year, want)
				}
			}
		})
	}
}

func TestForecastDeterministic(t *testing.T) {
	series := timeseries.New(2014, []float64{55, 61, 58, 70, 66, 74, 80, 77, 85})

	for _, model := range Models() {
		t.Run(model.String(), func(t *testing.T) {
			first, err := Forecast(series, 3, model)
			if err != nil {
				t.Fatalf("First Forecast failed: %v", err)
			}
			second, err := Forecast(series, 3, model)
			if err != nil {
				t.Fatalf("Second Forecast failed: %v", err)
			}

			if len(first.Points) != len(second.Points) {
				t.Fatalf("Point counts differ: %d vs %d", len(first.Points), len(second.Points))
			}
			for i := range first.Points {
				if first.Points[i] != second.Points[i] {
					t.Errorf("Points[%d] differ: %+v vs %+v", i, first.Points[i], second.Points[i])
				}
			}
			if first.Fit != second.Fit {
				t.Errorf("Fit metrics differ: %+v vs %+v", first.Fit, second.Fit)
			}
		})
	}
}

func TestForecastHistoricalIsCopy(t *testing.T) {
	series := timeseries.New(2018, []float64{10, 12, 14, 16, 18})

	result, err := Forecast(series, 2, ModelExponential)
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}

	result.Historical.Values[0] = -1
	if series.Values[0] != 10 {
		t.Error("Mutating Historical leaked into the input series")
	}
}

func TestAccuracy(t *testing.T) {
	mae, rmse := accuracy([]float64{10, 20, 30}, []float64{12, 18, 30})
	if math.Abs(mae-4.0/3.0) > 1e-12 {
		t.Errorf("MAE = %f, want %f", mae, 4.0/3.0)
	}
	wantRMSE := math.Sqrt(8.0 / 3.0)
	if math.Abs(rmse-wantRMSE) > 1e-12 {
		t.Errorf("RMSE = %f, want %f", rmse, wantRMSE)
	}

	mae, rmse = accuracy(nil, nil)
	if !math.IsNaN(mae) || !math.IsNaN(rmse) {
		t.Errorf("Empty accuracy = (%f, %f), want NaN", mae, rmse)
	}
}
