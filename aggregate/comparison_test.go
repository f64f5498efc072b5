package aggregate

import (
	"errors"
	"testing"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

func TestCompare(t *testing.T) {
	ds := testDataset(t)

	cmp, err := Compare(ds, "Rabi", []string{"2020", "2021"})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if cmp.Insufficient {
		t.Fatal("Comparison flagged insufficient with two concrete years")
	}
	if len(cmp.Years) != 2 {
		t.Fatalf("Expected 2 year summaries, got %d", len(cmp.Years))
	}
	if cmp.Years[0].Year != 2020 || cmp.Years[1].Year != 2021 {
		t.Errorf("Years out of order: %d, %d", cmp.Years[0].Year, cmp.Years[1].Year)
	}
	if cmp.Years[0].Summary.TotalArea != 100 {
		t.Errorf("2020 Rabi area = %f, want 100", cmp.Years[0].Summary.TotalArea)
	}

	// The trend is the whole season's series, not per-year slices.
	if len(cmp.Trend) != 3 {
		t.Errorf("Expected shared 3-point season trend, got %d points", len(cmp.Trend))
	}
}

func TestCompareInsufficient(t *testing.T) {
	ds := testDataset(t)

	tests := []struct {
		name  string
		years []string
	}{
		{"no years", nil},
		{"single year", []string{"2020"}},
		{"all sentinel only", []string{"All"}},
		{"all plus one concrete", []string{"All", "2020"}},
		{"duplicates of one year", []string{"2020", "2020"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, err := Compare(ds, "Rabi", tt.years)
			if err != nil {
				t.Fatalf("Compare failed: %v", err)
			}
			if !cmp.Insufficient {
				t.Error("Expected insufficient comparison")
			}
			if len(cmp.Years) != 0 || len(cmp.Trend) != 0 {
				t.Errorf("Placeholder should carry no data, got %+v", cmp)
			}
		})
	}
}

func TestCompareSkipsAbsentYears(t *testing.T) {
	ds := testDataset(t)

	// 1999 is a valid selector but matches nothing; with only one year
	// left the comparison degrades to the placeholder.
	cmp, err := Compare(ds, "Rabi", []string{"1999", "2020"})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !cmp.Insufficient {
		t.Error("Expected insufficient comparison after skipping absent year")
	}

	// With two present years the absent one is simply dropped.
	cmp, err = Compare(ds, "Rabi", []string{"1999", "2020", "2021"})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if cmp.Insufficient || len(cmp.Years) != 2 {
		t.Errorf("Expected 2 surviving years, got %+v", cmp)
	}
}

func TestCompareInvalidSelectors(t *testing.T) {
	ds := testDataset(t)

	if _, err := Compare(ds, "Rabi", []string{"2020", "20x1"}); !errors.Is(err, dataset.ErrInvalidSelector) {
		t.Errorf("Expected ErrInvalidSelector for malformed year, got %v", err)
	}
	if _, err := Compare(ds, "Monsoon", []string{"2020", "2021"}); !errors.Is(err, dataset.ErrInvalidSelector) {
		t.Errorf("Expected ErrInvalidSelector for unknown season, got %v", err)
	}
}

func TestCompareAllSeasons(t *testing.T) {
	ds := testDataset(t)

	cmp, err := Compare(ds, dataset.All, []string{"2019", "2020"})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if cmp.Insufficient {
		t.Fatal("Expected sufficient comparison across all seasons")
	}

	// 2019 spans Kharif and Rabi: 200 + 90.
	if cmp.Years[0].Summary.TotalArea != 290 {
		t.Errorf("2019 all-season area = %f, want 290", cmp.Years[0].Summary.TotalArea)
	}
}
