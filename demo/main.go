// Package main drives the full analytics pipeline over a real dataset:
// load, filter, aggregate, compare, forecast, and export the results the
// chart-building side consumes.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/aggregate"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/config"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/forecast"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/report"
)

// ForecastBlock holds one model's results for JSON export.
type ForecastBlock struct {
	Metric  string    `json:"metric"`
	Model   string    `json:"model"`
	Years   []int     `json:"years"`
	Values  []float64 `json:"values"`
	Lower   []float64 `json:"lower"`
	Upper   []float64 `json:"upper"`
	MAE     float64   `json:"mae"`
	RMSE    float64   `json:"rmse"`
	Failure string    `json:"failure,omitempty"`
}

// OutputData holds everything the visualization side reads.
type OutputData struct {
	Summary    aggregate.Summary         `json:"summary"`
	Trend      []aggregate.TrendPoint    `json:"trend"`
	Comparison aggregate.Comparison      `json:"comparison"`
	Breakdown  []aggregate.SeasonalPoint `json:"breakdown"`
	Forecasts  []ForecastBlock           `json:"forecasts"`
}

func main() {
	banner("Agricultural Production Analytics Demonstration")

	settings := config.Load()
	fmt.Printf("\nData file: %s\n", settings.DataFile)

	ds, err := dataset.Load(settings.DataFile)
	if err != nil {
		log.Fatal("dataset load error: ", err)
	}
	fmt.Printf("Loaded %d records, %d seasons, %d years\n",
		ds.Len(), len(ds.Seasons()), len(ds.Years()))
	fmt.Printf("Seasons: %s\n", strings.Join(ds.SeasonOptions(), ", "))

	output := OutputData{}

	banner("KPI Summary")
	view, err := ds.Filter(settings.DefaultSeason, settings.DefaultYear)
	if err != nil {
		log.Fatal("default selectors invalid: ", err)
	}
	output.Summary = aggregate.Summarize(view)
	printSummary(output.Summary, view.Len())

	banner("Trend with Rolling Averages")
	output.Trend, err = aggregate.Trend(ds, settings.DefaultSeason)
	if err != nil {
		log.Fatal("trend error: ", err)
	}
	for _, p := range output.Trend {
		fmt.Printf("   %d  area=%12.1f  pct=%7.2f  rolling=%7.2f\n",
			p.Year, p.Area, p.AvgPct, p.RollingAvgPct)
	}

	banner("Year-over-Year Comparison")
	output.Comparison = compareRecentYears(ds, settings.DefaultSeason)

	banner("Seasonal Breakdown")
	output.Breakdown, err = aggregate.SeasonalBreakdown(ds, dataset.All)
	if err != nil {
		log.Fatal("breakdown error: ", err)
	}
	for _, p := range output.Breakdown {
		fmt.Printf("   %d %-8s  area=%12.1f  burned=%10.1f\n", p.Year, p.Season, p.Area, p.Burned)
	}

	banner("Distribution Statistics")
	for _, metric := range dataset.Metrics() {
		d := aggregate.Describe(view, metric)
		fmt.Printf("   %-10s  mean=%10.2f  median=%10.2f  std=%10.2f  total=%12.1f\n",
			metric, d.Mean, d.Median, d.Std, d.Total)
	}

	banner("Forecasts")
	output.Forecasts = runForecasts(ds, settings)

	banner("Export Preview")
	rep, err := report.Build(ds, settings.DefaultSeason, settings.DefaultYear, nil)
	if err != nil {
		log.Fatal("report error: ", err)
	}
	fmt.Printf("   %s\n", strings.Join(rep.Table.Columns, " | "))
	for _, row := range rep.Table.Head(10) {
		fmt.Printf("   %d | %-8s | %v\n", row.Year, row.Season, row.Values)
	}

	banner("Exporting Results")
	if data, err := json.MarshalIndent(output, "", "  "); err == nil {
		os.WriteFile("dashboard_data.json", data, 0644)
		fmt.Println("Exported dashboard data to dashboard_data.json")
	}
}

func banner(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
}

func printSummary(s aggregate.Summary, n int) {
	fmt.Printf("   Records:           %d\n", n)
	fmt.Printf("   Total area:        %.1f Hac\n", s.TotalArea)
	fmt.Printf("   Total burned:      %.1f Hac\n", s.TotalBurned)
	fmt.Printf("   Total difference:  %.1f Hac\n", s.TotalDifference)
	if math.IsNaN(s.AvgPctDifference) {
		fmt.Println("   Avg % difference:  n/a (no records)")
	} else {
		fmt.Printf("   Avg %% difference:  %.2f\n", s.AvgPctDifference)
	}
}

// compareRecentYears compares the two most recent years of the season, the
// default the comparison tab opens on.
func compareRecentYears(ds *dataset.Dataset, season string) aggregate.Comparison {
	years := ds.Years()
	var selection []string
	for _, y := range years {
		selection = append(selection, fmt.Sprint(y))
	}
	if len(selection) > 2 {
		selection = selection[len(selection)-2:]
	}

	cmp, err := aggregate.Compare(ds, season, selection)
	if err != nil {
		log.Fatal("comparison error: ", err)
	}
	if cmp.Insufficient {
		fmt.Println("   Not enough years selected for a comparison")
		return cmp
	}
	for _, ys := range cmp.Years {
		fmt.Printf("   %d  area=%12.1f  burned=%10.1f  avg_pct=%7.2f\n",
			ys.Year, ys.Summary.TotalArea, ys.Summary.TotalBurned, ys.Summary.AvgPctDifference)
	}
	return cmp
}

// runForecasts fits both models for every forecastable metric. Degraded
// fits print their reason instead of rows.
func runForecasts(ds *dataset.Dataset, settings config.Settings) []ForecastBlock {
	metrics := []dataset.Metric{dataset.MetricArea, dataset.MetricBurned, dataset.MetricPctDiff}

	var blocks []ForecastBlock
	for _, metric := range metrics {
		series, err := forecast.PrepareSeries(ds, settings.DefaultSeason, metric)
		if err != nil {
			log.Fatal("series preparation error: ", err)
		}

		for _, model := range forecast.Models() {
			result, err := forecast.Forecast(series, settings.ForecastHorizon, model)
			if err != nil {
				log.Fatal("forecast error: ", err)
			}

			block := ForecastBlock{
				Metric: metric.String(),
				Model:  model.String(),
				MAE:    result.Fit.MAE,
				RMSE:   result.Fit.RMSE,
			}

			if result.Empty() {
				block.Failure = result.Fit.Failure
				fmt.Printf("   %-10s %-12s  degraded: %s\n", metric, model, result.Fit.Failure)
				blocks = append(blocks, block)
				continue
			}

			fmt.Printf("   %-10s %-12s  MAE=%.3f RMSE=%.3f\n", metric, model, result.Fit.MAE, result.Fit.RMSE)
			for _, p := range result.Points {
				fmt.Printf("      %d: %12.2f  [%12.2f, %12.2f]\n", p.Year, p.Value, p.Lower, p.Upper)
				block.Years = append(block.Years, p.Year)
				block.Values = append(block.Values, p.Value)
				block.Lower = append(block.Lower, p.Lower)
				block.Upper = append(block.Upper, p.Upper)
			}
			blocks = append(blocks, block)
		}
	}
	return blocks
}
