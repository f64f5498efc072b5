// Package timeseries provides the year-indexed series type shared by the
// aggregation and forecasting packages.
package timeseries

import (
	"errors"
	"math"
	"sort"
)

// Series represents a yearly series: one value per calendar year, ordered by
// ascending year. Agricultural records aggregate to at most one point per
// year, so years double as the series index.
type Series struct {
	Years  []int
	Values []float64
	Name   string
}

// New creates a series over contiguous years starting at startYear.
func New(startYear int, values []float64) *Series {
	years := make([]int, len(values))
	for i := range years {
		years[i] = startYear + i
	}
	return &Series{
		Years:  years,
		Values: values,
	}
}

// NewWithYears creates a series with explicit year labels. Pairs are sorted
// by ascending year; duplicate years are rejected because a yearly series
// has exactly one value per year.
func NewWithYears(years []int, values []float64) (*Series, error) {
	if len(years) != len(values) {
		return nil, errors.New("years and values must have the same length")
	}

	idx := make([]int, len(years))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return years[idx[a]] < years[idx[b]] })

	sortedYears := make([]int, len(years))
	sortedValues := make([]float64, len(values))
	for i, j := range idx {
		sortedYears[i] = years[j]
		sortedValues[i] = values[j]
	}
	for i := 1; i < len(sortedYears); i++ {
		if sortedYears[i] == sortedYears[i-1] {
			return nil, errors.New("duplicate year in series")
		}
	}

	return &Series{
		Years:  sortedYears,
		Values: sortedValues,
	}, nil
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// LastYear returns the final year label, or 0 for an empty series.
func (s *Series) LastYear() int {
	if len(s.Years) == 0 {
		return 0
	}
	return s.Years[len(s.Years)-1]
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Diff calculates the first difference of the series. The first year label
// is consumed by the differencing.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Name: s.Name + "_diff"}
	}

	values := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		values[i-1] = s.Values[i] - s.Values[i-1]
	}

	years := make([]int, len(values))
	copy(years, s.Years[1:])

	return &Series{
		Years:  years,
		Values: values,
		Name:   s.Name + "_diff",
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	years := make([]int, len(s.Years))
	copy(years, s.Years)

	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Years:  years,
		Values: values,
		Name:   s.Name,
	}
}
