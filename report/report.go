package report

import (
	"time"

	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/aggregate"
	"github.com/hasaan1315/Hydrolytix-Agri-Intelligence/dataset"
)

// Row is one record of a report table: the identifying year and season
// followed by the requested metric values, in column order.
type Row struct {
	Year   int
	Season string
	Values []float64
}

// Table is the tabular half of a report. Columns starts with Year and
// Season and continues with the source column header of each requested
// metric, so the export side labels cells with the names the file arrived
// under.
type Table struct {
	Columns []string
	Rows    []Row
}

// Head returns the first n rows, or all of them when fewer exist. Preview
// panes show a fixed-size slice of a table that may be much longer.
func (t Table) Head(n int) []Row {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return t.Rows[:n]
}

// Report is the full export block for one selector pair: the selection
// that produced it, its headline summary, the record table, and the
// generation timestamp the document header prints.
type Report struct {
	Season      string
	Year        string
	Stats       aggregate.Summary
	Table       Table
	GeneratedAt time.Time
}

// Empty reports whether the selection matched no records.
func (r Report) Empty() bool {
	return len(r.Table.Rows) == 0
}

// BuildTable lays a view out as a table over the requested metrics, in
// request order. A nil or empty metrics slice means all four columns. An
// empty view produces a table with columns and no rows.
func BuildTable(view dataset.View, metrics []dataset.Metric) Table {
	if len(metrics) == 0 {
		metrics = dataset.Metrics()
	}

	columns := make([]string, 0, len(metrics)+2)
	columns = append(columns, "Year", "Season")
	for _, m := range metrics {
		columns = append(columns, m.Column())
	}

	records := view.Records()
	rows := make([]Row, len(records))
	for i, rec := range records {
		values := make([]float64, len(metrics))
		for j, m := range metrics {
			values[j] = m.Value(rec)
		}
		rows[i] = Row{Year: rec.Year, Season: rec.Season, Values: values}
	}
	return Table{Columns: columns, Rows: rows}
}

// Build assembles the report for a selector pair. Selector validation
// errors pass through from the filter boundary. A selection matching no
// records still builds: the summary carries the zero sums and NaN average
// and the table has no rows, and rendering that emptiness distinctly is
// the document side's job. Values are raw; all rounding and unit
// formatting happens in the exporter.
func Build(ds *dataset.Dataset, season, year string, metrics []dataset.Metric) (Report, error) {
	view, err := ds.Filter(season, year)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Season:      season,
		Year:        year,
		Stats:       aggregate.Summarize(view),
		Table:       BuildTable(view, metrics),
		GeneratedAt: time.Now(),
	}, nil
}
