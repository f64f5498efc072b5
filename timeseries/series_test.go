package timeseries

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	values := []float64{1200, 1350, 1100, 1600, 1425}
	s := New(2019, values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}

	for i, y := range s.Years {
		if y != 2019+i {
			t.Errorf("Expected year %d at index %d, got %d", 2019+i, i, y)
		}
	}
}

func TestNewWithYears(t *testing.T) {
	s, err := NewWithYears([]int{2021, 2019, 2020}, []float64{30, 10, 20})
	if err != nil {
		t.Fatalf("NewWithYears failed: %v", err)
	}

	wantYears := []int{2019, 2020, 2021}
	wantValues := []float64{10, 20, 30}
	for i := range wantYears {
		if s.Years[i] != wantYears[i] {
			t.Errorf("Expected year %d at index %d, got %d", wantYears[i], i, s.Years[i])
		}
		if s.Values[i] != wantValues[i] {
			t.Errorf("Expected value %f at index %d, got %f", wantValues[i], i, s.Values[i])
		}
	}
}

func TestNewWithYearsValidation(t *testing.T) {
	tests := []struct {
		name   string
		years  []int
		values []float64
	}{
		{"length mismatch", []int{2019, 2020}, []float64{1}},
		{"duplicate year", []int{2019, 2020, 2019}, []float64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewWithYears(tt.years, tt.values); err == nil {
				t.Errorf("Expected error for %s, got nil", tt.name)
			}
		})
	}
}

func TestLastYear(t *testing.T) {
	s := New(2018, []float64{1, 2, 3})
	if got := s.LastYear(); got != 2020 {
		t.Errorf("Expected last year 2020, got %d", got)
	}

	empty := &Series{}
	if got := empty.LastYear(); got != 0 {
		t.Errorf("Expected last year 0 for empty series, got %d", got)
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(2020, tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New(2015, []float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestStd(t *testing.T) {
	s := New(2015, []float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := math.Sqrt(4.571428571428571)

	result := s.Std()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected std %f, got %f", expected, result)
	}
}

func TestMinMax(t *testing.T) {
	s := New(2015, []float64{5, 2, 8, 1, 9, 3})

	if s.Min() != 1 {
		t.Errorf("Expected min 1, got %f", s.Min())
	}

	if s.Max() != 9 {
		t.Errorf("Expected max 9, got %f", s.Max())
	}
}

func TestDiff(t *testing.T) {
	s := New(2015, []float64{1, 3, 6, 10, 15})
	diff := s.Diff()

	expected := []float64{2, 3, 4, 5}
	if len(diff.Values) != len(expected) {
		t.Errorf("Expected length %d, got %d", len(expected), len(diff.Values))
	}

	for i, v := range diff.Values {
		if math.Abs(v-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}

	if len(diff.Years) != 4 || diff.Years[0] != 2016 {
		t.Errorf("Expected year labels starting at 2016, got %v", diff.Years)
	}
}

func TestDiffShort(t *testing.T) {
	s := New(2020, []float64{7})
	diff := s.Diff()

	if diff.Len() != 0 {
		t.Errorf("Expected empty difference for single observation, got %d values", diff.Len())
	}
}

func TestCopy(t *testing.T) {
	s := New(2020, []float64{1, 2, 3})
	copied := s.Copy()

	// Modify original
	s.Values[0] = 100
	s.Years[0] = 1900

	// Copy should be unchanged
	if copied.Values[0] != 1 {
		t.Errorf("Copy was modified when original changed")
	}
	if copied.Years[0] != 2020 {
		t.Errorf("Copy year labels were modified when original changed")
	}
}
