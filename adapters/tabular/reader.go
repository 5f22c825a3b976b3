// Package tabular converts delimited text and spreadsheet files into
// the in-memory table model consumed by the profiling engine.
//
// Import contract: numeric-looking tokens become number cells,
// everything else stays text, and short rows pad with empty text so
// every row matches the header's column count.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

// DataReader handles reading Excel and CSV files into a table
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file path
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadTable reads the file into the table model
func (r *DataReader) ReadTable() (*table.Table, error) {
	log.Printf("[DataReader] reading %s file: %s", r.fileType, r.filePath)

	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file: %w", r.fileType, err)
	}
	defer file.Close()

	switch r.fileType {
	case "csv":
		return ReadCSV(file)
	case "xlsx":
		return ReadXLSX(file)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// ReadCSV parses delimited text into a table. The first record is the
// header; its order becomes the table's column order.
func ReadCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows shorter than the header pad below

	readStart := time.Now()
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	log.Printf("[DataReader] CSV read in %.2fms (%d records)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(records))

	return buildTable(records)
}

// ReadXLSX parses an Excel workbook's first sheet into a table
func ReadXLSX(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel data: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel workbook has no sheets")
	}

	readStart := time.Now()
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	log.Printf("[DataReader] sheet %s read in %.2fms (%d rows)",
		sheets[0], float64(time.Since(readStart).Nanoseconds())/1e6, len(records))

	return buildTable(records)
}

// buildTable converts raw string records into the table model
func buildTable(records [][]string) (*table.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("input must have at least a header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	tbl := table.New(headers)
	for _, record := range records[1:] {
		row := make(table.Row, len(headers))
		for j, name := range headers {
			if j < len(record) {
				row[name] = ParseCell(record[j])
			} else {
				row[name] = table.NewTextCell("")
			}
		}
		tbl.AppendRow(row)
	}

	log.Printf("[DataReader] table built (%d columns, %d rows)",
		tbl.ColumnCount(), tbl.RowCount())
	return tbl, nil
}

// ParseCell converts a raw token into a cell. Numeric-looking tokens
// become number cells; everything else remains text, including the
// empty string which the missing predicate covers. Non-finite specials
// (NaN, Inf) stay text: they have no JSON representation and no place
// in the statistics.
func ParseCell(raw string) table.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return table.NewTextCell("")
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return table.NewTextCell(trimmed)
		}
		return table.NewNumberCell(f)
	}
	return table.NewTextCell(trimmed)
}
