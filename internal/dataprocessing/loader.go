package dataprocessing

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"sentipulse/internal/errors"
)

// Loader reads raw tabular datasets from disk. CSV is the primary format;
// Excel workbooks are accepted as well, with the first sheet's first row
// taken as the header.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the file at path into a RawTable, dispatching on extension.
func (l *Loader) Load(ctx context.Context, path string) (*RawTable, error) {
	l.logger.InfoContext(ctx, "loading dataset", slog.String("path", path))

	var (
		table *RawTable
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		table, err = l.loadExcel(path)
	default:
		table, err = l.loadCSV(path)
	}
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("path", path),
		slog.Int("record_count", table.Len()),
		slog.Int("column_count", len(table.Headers)))

	return table, nil
}

// loadCSV reads a delimited file with a required header row. Ragged rows are
// tolerated; short rows read as empty cells downstream.
func (l *Loader) loadCSV(path string) (*RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewLoadError("data file not found", err).WithContext("path", path)
		}
		return nil, errors.NewLoadError("failed to open data file", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewLoadError("data file is empty, header row required", nil).WithContext("path", path)
		}
		return nil, errors.NewLoadError("failed to read header row", err).WithContext("path", path)
	}
	headers[0] = stripBOM(headers[0])

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewLoadError("failed to read data row", err).WithContext("path", path)
		}
		rows = append(rows, record)
	}

	return NewRawTable(headers, rows), nil
}

// loadExcel reads the first sheet of an Excel workbook.
func (l *Loader) loadExcel(path string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewLoadError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewLoadError("workbook has no sheets", nil).WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewLoadError("failed to read sheet rows", err).WithContext("path", path)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewLoadError("sheet is empty, header row required", nil).WithContext("path", path)
	}

	headers := rows[0]
	headers[0] = stripBOM(headers[0])

	return NewRawTable(headers, rows[1:]), nil
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
