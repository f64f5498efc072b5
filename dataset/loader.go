package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Source column headers. The numeric percentage column is preferred; the
// display column, whose cells carry a trailing percent sign, is the
// fallback it is derived from.
const (
	colYear       = "Year"
	colSeason     = "Season"
	colArea       = "Area under Production (Hac)"
	colBurned     = "Burned Area (Hac)"
	colDifference = "Difference (Hac)"
	colPctNumeric = "% Difference Numeric"
	colPctDisplay = "% Difference"
)

// Load reads the dataset from path. Files ending in .xlsx or .xlsm are read
// as workbooks, everything else as comma-delimited text. Any failure comes
// back as a *LoadError carrying the path; there is no partial dataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var ds *Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		ds, err = ParseExcel(f)
	default:
		ds, err = ParseCSV(f)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ds, nil
}

// ParseCSV reads comma-delimited records from r. The first row is the
// header; header cells are matched after trimming surrounding whitespace.
func ParseCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return buildDataset(rows)
}

// ParseExcel reads the first sheet of an .xlsx workbook from r. The sheet
// layout mirrors the delimited form: a header row followed by one record
// per row.
func ParseExcel(r io.Reader) (*Dataset, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return buildDataset(rows)
}

// columns holds the resolved cell index of every required column. pct
// points at the numeric percentage column when present, otherwise at the
// display column, with pctDisplay marking that the trailing percent sign
// must be stripped.
type columns struct {
	year, season, area, burned, diff, pct int
	pctDisplay                            bool
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var cols columns
	var missing []string
	lookup := func(name string, dst *int) {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
			return
		}
		*dst = i
	}
	lookup(colYear, &cols.year)
	lookup(colSeason, &cols.season)
	lookup(colArea, &cols.area)
	lookup(colBurned, &cols.burned)
	lookup(colDifference, &cols.diff)

	if i, ok := idx[colPctNumeric]; ok {
		cols.pct = i
	} else if i, ok := idx[colPctDisplay]; ok {
		cols.pct = i
		cols.pctDisplay = true
	} else {
		missing = append(missing, colPctNumeric)
	}

	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func buildDataset(rows [][]string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty input")
	}

	cols, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		rec, err := parseRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		records = append(records, rec)
	}
	return New(records)
}

func parseRecord(row []string, cols columns) (Record, error) {
	year, err := parseYear(cell(row, cols.year))
	if err != nil {
		return Record{}, err
	}

	season := cell(row, cols.season)
	if season == "" {
		return Record{}, errors.New("empty season")
	}

	area, err := parseNumber(cell(row, cols.area), colArea)
	if err != nil {
		return Record{}, err
	}
	burned, err := parseNumber(cell(row, cols.burned), colBurned)
	if err != nil {
		return Record{}, err
	}
	diff, err := parseNumber(cell(row, cols.diff), colDifference)
	if err != nil {
		return Record{}, err
	}

	pctText := cell(row, cols.pct)
	pctName := colPctNumeric
	if cols.pctDisplay {
		pctText = strings.TrimSuffix(pctText, "%")
		pctName = colPctDisplay
	}
	pct, err := parseNumber(strings.TrimSpace(pctText), pctName)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Year:          year,
		Season:        season,
		Area:          area,
		Burned:        burned,
		Difference:    diff,
		PctDifference: pct,
	}, nil
}

// cell returns the trimmed cell at index i. Workbook rows omit trailing
// empty cells, so out-of-range reads are empty, not panics.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseYear coerces a year cell to an integer. Workbook exports sometimes
// format whole years as floats, so an integral float is accepted too.
func parseYear(text string) (int, error) {
	if y, err := strconv.Atoi(text); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("year %q is not an integer", text)
	}
	return int(f), nil
}

func parseNumber(text, column string) (float64, error) {
	if text == "" {
		return 0, fmt.Errorf("%s: empty cell", column)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", column, text)
	}
	return v, nil
}
