package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch is returned when a source file does not have the
	// expected number of columns.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUnsupportedFormat is returned for files that are not CSV, XLS or XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrUndefinedProportion is returned when both values of a proportion are zero.
	ErrUndefinedProportion = errors.New("undefined proportion")
)

// LoadError reports a failure to read a dataset.
type LoadError struct {
	Source string
	Row    int // 1-based source row, 0 when not row specific
	Err    error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load %s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// UndefinedProportionError names the country whose two reference counts are both zero.
type UndefinedProportionError struct {
	Country string
	Year    int
}

func (e *UndefinedProportionError) Error() string {
	return fmt.Sprintf("%s (%d): %v, both values are zero", e.Country, e.Year, ErrUndefinedProportion)
}

func (e *UndefinedProportionError) Is(target error) bool {
	return target == ErrUndefinedProportion
}
