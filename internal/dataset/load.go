package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/edsonpatricio/aula-unifor-22112024/internal/errors"
	"github.com/edsonpatricio/aula-unifor-22112024/pkg/contracts/domain"
)

// Column names required in the header row, matched case-insensitively
const (
	ColName     = "name"
	ColTeam     = "team"
	ColPosition = "position"
	ColYear     = "year"
	ColSalary   = "salary"
)

// RequiredColumns lists the header names Load looks for
var RequiredColumns = []string{ColName, ColTeam, ColPosition, ColYear, ColSalary}

// ErrMissingColumn is wrapped when the header lacks a required column
var ErrMissingColumn = errors.New("missing required column")

const ctxCheckEvery = 1024

type loadConfig struct {
	delimiter rune
	sheet     string
	logger    *slog.Logger
}

// Option configures Load
type Option func(*loadConfig)

// WithDelimiter sets the field separator for delimited files
func WithDelimiter(r rune) Option {
	return func(c *loadConfig) { c.delimiter = r }
}

// WithSheet selects the worksheet of an .xlsx file; the first sheet is used by default
func WithSheet(name string) Option {
	return func(c *loadConfig) { c.sheet = name }
}

// WithLogger sets the logger used for load progress and dropped rows
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) { c.logger = logger }
}

func newLoadConfig(opts []Option) *loadConfig {
	cfg := &loadConfig{delimiter: ',', logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.logger = cfg.logger.With(slog.String("component", "dataset"))
	return cfg
}

// Load reads and cleans the salary table at path.
// Files ending in .xlsx or .xlsm are read as workbooks, anything else as delimited text.
func Load(ctx context.Context, path string, opts ...Option) (*Dataset, error) {
	cfg := newLoadConfig(opts)

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path, cfg.sheet)
	default:
		rows, err = readDelimitedFile(path, cfg.delimiter)
	}
	if err != nil {
		return nil, err
	}

	return fromRows(ctx, rows, path, cfg)
}

// LoadReader reads and cleans a delimited table from r
func LoadReader(ctx context.Context, r io.Reader, source string, opts ...Option) (*Dataset, error) {
	cfg := newLoadConfig(opts)
	rows, err := readDelimited(r, cfg.delimiter)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read table", err).WithContext("source", source)
	}
	return fromRows(ctx, rows, source, cfg)
}

func readDelimitedFile(path string, delimiter rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open input table", err).WithContext("path", path)
	}
	defer f.Close()

	rows, err := readDelimited(f, delimiter)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read input table", err).WithContext("path", path)
	}
	return rows, nil
}

func readDelimited(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets", nil).WithContext("path", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read worksheet", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}
	return rows, nil
}

// fromRows maps the header, builds a string-typed dataframe of the required
// columns and cleans it row by row.
func fromRows(ctx context.Context, rows [][]string, source string, cfg *loadConfig) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("input table has no header row", nil).WithContext("source", source)
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return nil, apperrors.NewParsingError("invalid header row", err).WithContext("source", source)
	}

	report := LoadReport{
		Source:   source,
		RowsRead: len(rows) - 1,
		Dropped:  emptyDropped(),
	}
	if report.RowsRead == 0 {
		cfg.logger.WarnContext(ctx, "input table has no data rows", slog.String("source", source))
		return newDataset(nil, report), nil
	}

	columns, err := requiredColumns(rows, index)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to build table", err).WithContext("source", source)
	}

	records := make([]domain.PlayerSeason, 0, report.RowsRead)
	for i := 0; i < report.RowsRead; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		res := cleanRow(
			columns[ColName][i],
			columns[ColTeam][i],
			columns[ColPosition][i],
			columns[ColYear][i],
			columns[ColSalary][i],
		)
		if res.reason != "" {
			report.Dropped[res.reason]++
			attrs := []any{
				slog.Int("row", i+2), // 1-based, after the header
				slog.String("reason", res.reason),
			}
			if res.err != nil {
				attrs = append(attrs, slog.String("error", res.err.Error()))
			}
			cfg.logger.DebugContext(ctx, "dropping row", attrs...)
			continue
		}
		if res.yearErr != nil {
			report.InvalidYear++
			cfg.logger.DebugContext(ctx, "keeping row without a year",
				slog.Int("row", i+2),
				slog.String("error", res.yearErr.Error()))
		}
		records = append(records, res.PlayerSeason)
	}
	report.RowsKept = len(records)

	cfg.logger.InfoContext(ctx, "salary table loaded",
		slog.String("source", source),
		slog.Int("rows_read", report.RowsRead),
		slog.Int("rows_kept", report.RowsKept),
		slog.Int("rows_dropped", report.TotalDropped()),
		slog.Int("rows_invalid_year", report.InvalidYear))

	return newDataset(records, report), nil
}

// headerIndex maps each required column to the first header cell with that name
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(RequiredColumns))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

// requiredColumns projects the raw rows onto the required columns and loads
// them into a dataframe with every column typed as string. Null markers come
// back as NaN elements and are returned as empty strings.
func requiredColumns(rows [][]string, index map[string]int) (map[string][]string, error) {
	records := make([][]string, 0, len(rows))
	records = append(records, RequiredColumns)
	for _, row := range rows[1:] {
		projected := make([]string, len(RequiredColumns))
		for j, col := range RequiredColumns {
			if idx := index[col]; idx < len(row) {
				projected[j] = row[idx]
			}
		}
		records = append(records, projected)
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nullMarkers),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	columns := make(map[string][]string, len(RequiredColumns))
	for _, col := range RequiredColumns {
		s := df.Col(col)
		if s.Err != nil {
			return nil, s.Err
		}
		values := s.Records()
		for i, isNaN := range s.IsNaN() {
			if isNaN {
				values[i] = ""
			}
		}
		columns[col] = values
	}
	return columns, nil
}
