package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"meshgrowth/internal/errors"
	"meshgrowth/internal/validation"
)

// Loader reads the property and transaction tables from disk.
// CSV and Excel inputs are supported, selected by file extension.
type Loader struct {
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewLoader creates a new table loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		validator: validation.NewFileValidator(logger),
	}
}

// LoadProperties reads the property to mesh-block mapping table.
// Identifiers and codes are whitespace-trimmed; rows are returned in
// file order, duplicates included.
func (l *Loader) LoadProperties(ctx context.Context, path string) ([]PropertyRecord, error) {
	tbl, err := l.readTable(path, []string{ColPropertyID, ColMeshBlock})
	if err != nil {
		return nil, err
	}

	records := make([]PropertyRecord, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		records = append(records, PropertyRecord{
			PropertyID: strings.TrimSpace(tbl.cell(row, ColPropertyID)),
			MeshBlock:  strings.TrimSpace(tbl.cell(row, ColMeshBlock)),
		})
	}

	l.logger.InfoContext(ctx, "loaded property records",
		slog.String("file", path),
		slog.Int("count", len(records)))
	return records, nil
}

// LoadTransactions reads the sale transactions table. The first cell
// that fails to parse as the declared column type aborts the load.
func (l *Loader) LoadTransactions(ctx context.Context, path string) ([]Transaction, error) {
	tbl, err := l.readTable(path, []string{ColPropertyID, ColPrice, ColSaleDate})
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		// 1-based row number in the file, counting the header row
		rowNum := i + 2

		price, err := parsePrice(tbl.cell(row, ColPrice), tbl.name, rowNum)
		if err != nil {
			return nil, err
		}

		saleDate, err := parseDate(tbl.cell(row, ColSaleDate), tbl.name, rowNum)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, Transaction{
			PropertyID: strings.TrimSpace(tbl.cell(row, ColPropertyID)),
			Price:      price,
			SaleDate:   saleDate,
		})
	}

	l.logger.InfoContext(ctx, "loaded transactions",
		slog.String("file", path),
		slog.Int("count", len(transactions)))
	return transactions, nil
}

// table holds the raw rows of one input file with its resolved columns
type table struct {
	name    string
	columns map[string]int
	rows    [][]string
}

// cell returns the value of the named column in the given row.
// Excel rows omit trailing empty cells, so short rows read as empty.
func (t *table) cell(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// readTable validates the file, reads all rows and resolves the
// required columns from the header row
func (l *Loader) readTable(path string, required []string) (*table, error) {
	if err := l.validator.ValidateInputFile(path); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx", ".xls":
		rows, err = readExcelRows(path)
	default:
		return nil, errors.NewSchemaError(fmt.Sprintf("unsupported input format %q for file %s", ext, path), nil)
	}
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	if len(rows) == 0 {
		return nil, errors.NewSchemaError(fmt.Sprintf("file %s has no header row", name), nil)
	}

	columns, err := mapColumns(rows[0], required, name)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("resolved table columns",
		slog.String("file", name),
		slog.Any("columns", columns),
		slog.Int("data_rows", len(rows)-1))

	return &table{
		name:    name,
		columns: columns,
		rows:    rows[1:],
	}, nil
}

// mapColumns resolves header names to column indexes and verifies the
// required columns are all present. The first occurrence of a
// duplicated header wins.
func mapColumns(header []string, required []string, file string) (map[string]int, error) {
	columns := make(map[string]int)
	for j, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := columns[key]; !exists {
			columns[key] = j
		}
	}

	for _, col := range required {
		if _, ok := columns[col]; !ok {
			return nil, errors.NewSchemaError(fmt.Sprintf("file %s is missing required column %q", file, col), nil)
		}
	}

	return columns, nil
}

// readCSVRows reads all records of a CSV file, header included
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewMissingFileError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewSchemaError(fmt.Sprintf("file %s is not a readable CSV table", filepath.Base(path)), err)
	}

	return rows, nil
}

// readExcelRows reads all rows of the first sheet of an Excel workbook
func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewSchemaError(fmt.Sprintf("file %s is not a readable Excel workbook", filepath.Base(path)), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewSchemaError(fmt.Sprintf("file %s contains no sheets", filepath.Base(path)), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewSchemaError(fmt.Sprintf("failed to read sheet %q of %s", sheets[0], filepath.Base(path)), err)
	}

	return rows, nil
}

// parsePrice parses a sale price cell. Prices must be positive decimals.
func parsePrice(str, file string, rowNum int) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, errors.NewCellError(file, ColPrice, rowNum, fmt.Errorf("empty value"))
	}

	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.NewCellError(file, ColPrice, rowNum, err)
	}
	if value <= 0 {
		return 0, errors.NewCellError(file, ColPrice, rowNum, fmt.Errorf("price must be positive, got %s", str))
	}

	return value, nil
}

// dateFormats lists the supported sale date layouts. Day-first layouts
// match the Australian source data.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
}

// parseDate parses a sale date cell
func parseDate(str, file string, rowNum int) (time.Time, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return time.Time{}, errors.NewCellError(file, ColSaleDate, rowNum, fmt.Errorf("empty value"))
	}

	for _, format := range dateFormats {
		if date, err := time.Parse(format, str); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.NewCellError(file, ColSaleDate, rowNum, fmt.Errorf("unable to parse date: %s", str))
}
