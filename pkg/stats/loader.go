package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Loader reads the cancer deaths dataset into a Table.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads source, a local path or URL, into a Table. The first row is
// the header and must have the identifier columns plus one column per
// cancer type; the source header names are replaced by Columns().
func (l *Loader) Load(source string) (Table, error) {
	f, err := ReadFile(source)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(f)
}

// LoadFile parses already fetched content.
func (l *Loader) LoadFile(f *File) (Table, error) {
	var (
		t      Table
		rowNum int
		header bool
	)
	want := len(identifierColumns) + NumCancerTypes

	err := ExtractDataFromFile(f, l.logger, func(row []string) error {
		rowNum++

		if !header {
			if len(row) != want {
				return &LoadError{Source: f.Source, Row: rowNum,
					Err: fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(row), want)}
			}
			header = true
			return nil
		}

		if isBlank(row) {
			return nil
		}
		// Spreadsheet readers drop trailing empty cells.
		if len(row) < want {
			row = append(row, make([]string, want-len(row))...)
		}
		if len(row) != want {
			return &LoadError{Source: f.Source, Row: rowNum,
				Err: fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(row), want)}
		}

		r, err := parseRecord(row)
		if err != nil {
			return &LoadError{Source: f.Source, Row: rowNum, Err: err}
		}
		t = append(t, r)
		return nil
	})
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LoadError{Source: f.Source, Err: err}
	}
	if !header {
		return nil, &LoadError{Source: f.Source, Err: fmt.Errorf("%w: no header row", ErrSchemaMismatch)}
	}

	l.logger.Info("Loaded dataset", zap.String("source", f.Source), zap.Int("rows", len(t)))
	return t, nil
}

func parseRecord(row []string) (Record, error) {
	r := Record{
		Country: strings.TrimSpace(row[0]),
		Code:    strings.TrimSpace(row[1]),
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return r, fmt.Errorf("could not parse year %q", row[2])
	}
	r.Year = year

	offset := len(identifierColumns)
	for i := 0; i < NumCancerTypes; i++ {
		v := strings.TrimSpace(row[offset+i])
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return r, fmt.Errorf("could not parse %s value %q", CancerType(i), v)
		}
		r.Deaths[i] = f
	}
	return r, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
