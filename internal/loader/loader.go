// Package loader reads raw tabular input files into untyped tables.
// It supports the spreadsheet exports produced by marketplace seller
// dashboards (xlsx) and plain csv dumps from scraping jobs.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"marketpulse/internal/schema"
)

// Read dispatches on the file extension and returns the parsed table.
// tableName identifies the input in error messages and downstream logs.
func Read(path, tableName string) (*schema.RawTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, tableName)
	case ".csv":
		return ReadCSV(path, tableName)
	default:
		return nil, fmt.Errorf("unsupported input format %q for %s", filepath.Ext(path), path)
	}
}

// ReadXLSX reads the first sheet of an Excel workbook. The first row
// containing any non-empty cell becomes the header row and everything
// after it becomes data rows.
func ReadXLSX(path, tableName string) (*schema.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	headerIdx := -1
	for i, row := range rows {
		if rowHasData(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("workbook %s contains no data", path)
	}

	table := &schema.RawTable{
		Name:    tableName,
		Headers: rows[headerIdx],
	}
	for _, row := range rows[headerIdx+1:] {
		if rowHasData(row) {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

// ReadCSV reads a comma-separated file. The first record is the header
// row. Records are allowed to have fewer fields than the header.
func ReadCSV(path, tableName string) (*schema.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s contains no data", path)
	}

	table := &schema.RawTable{
		Name:    tableName,
		Headers: records[0],
	}
	for _, row := range records[1:] {
		if rowHasData(row) {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

func rowHasData(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
