package dataset

import (
	"fmt"
	"math"
)

// Metric identifies one numeric column of a Record. The set is closed:
// unknown keys are rejected by ParseMetric rather than routed to a default
// column.
type Metric int

const (
	MetricArea Metric = iota
	MetricBurned
	MetricDifference
	MetricPctDiff
)

// Metrics returns every metric in display order.
func Metrics() []Metric {
	return []Metric{MetricArea, MetricBurned, MetricDifference, MetricPctDiff}
}

// ParseMetric maps a metric key to its Metric. The keys are "area",
// "burned", "difference" and "pct_diff"; anything else is ErrInvalidMetric.
func ParseMetric(key string) (Metric, error) {
	switch key {
	case "area":
		return MetricArea, nil
	case "burned":
		return MetricBurned, nil
	case "difference":
		return MetricDifference, nil
	case "pct_diff":
		return MetricPctDiff, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMetric, key)
}

// String returns the metric key.
func (m Metric) String() string {
	switch m {
	case MetricArea:
		return "area"
	case MetricBurned:
		return "burned"
	case MetricDifference:
		return "difference"
	case MetricPctDiff:
		return "pct_diff"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// Column returns the source column header the metric is read from.
func (m Metric) Column() string {
	switch m {
	case MetricArea:
		return colArea
	case MetricBurned:
		return colBurned
	case MetricDifference:
		return colDifference
	case MetricPctDiff:
		return colPctNumeric
	}
	return ""
}

// Value extracts the metric's field from a record.
func (m Metric) Value(r Record) float64 {
	switch m {
	case MetricArea:
		return r.Area
	case MetricBurned:
		return r.Burned
	case MetricDifference:
		return r.Difference
	case MetricPctDiff:
		return r.PctDifference
	}
	return math.NaN()
}
