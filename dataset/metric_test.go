package dataset

import (
	"errors"
	"testing"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		key  string
		want Metric
	}{
		{"area", MetricArea},
		{"burned", MetricBurned},
		{"difference", MetricDifference},
		{"pct_diff", MetricPctDiff},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, err := ParseMetric(tt.key)
			if err != nil {
				t.Fatalf("ParseMetric(%q) failed: %v", tt.key, err)
			}
			if m != tt.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tt.key, m, tt.want)
			}
			if m.String() != tt.key {
				t.Errorf("String() = %q, want %q", m.String(), tt.key)
			}
		})
	}
}

func TestParseMetricInvalid(t *testing.T) {
	for _, key := range []string{"", "Area", "yield", "pct-diff"} {
		if _, err := ParseMetric(key); !errors.Is(err, ErrInvalidMetric) {
			t.Errorf("ParseMetric(%q) = %v, want ErrInvalidMetric", key, err)
		}
	}
}

func TestMetricValue(t *testing.T) {
	r := Record{Year: 2020, Season: "Rabi", Area: 100, Burned: 10, Difference: 90, PctDifference: 12.5}

	tests := []struct {
		metric Metric
		want   float64
	}{
		{MetricArea, 100},
		{MetricBurned, 10},
		{MetricDifference, 90},
		{MetricPctDiff, 12.5},
	}

	for _, tt := range tests {
		if got := tt.metric.Value(r); got != tt.want {
			t.Errorf("%v.Value() = %f, want %f", tt.metric, got, tt.want)
		}
	}
}

func TestMetricColumn(t *testing.T) {
	tests := []struct {
		metric Metric
		want   string
	}{
		{MetricArea, "Area under Production (Hac)"},
		{MetricBurned, "Burned Area (Hac)"},
		{MetricDifference, "Difference (Hac)"},
		{MetricPctDiff, "% Difference Numeric"},
	}

	for _, tt := range tests {
		if got := tt.metric.Column(); got != tt.want {
			t.Errorf("%v.Column() = %q, want %q", tt.metric, got, tt.want)
		}
	}
}

func TestMetricsOrder(t *testing.T) {
	all := Metrics()
	want := []Metric{MetricArea, MetricBurned, MetricDifference, MetricPctDiff}
	if len(all) != len(want) {
		t.Fatalf("Metrics() returned %d entries, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Metrics()[%d] = %v, want %v", i, all[i], want[i])
		}
	}
}
