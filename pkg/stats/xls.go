package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"
)

// RowHandler receives every row of a file, header included. Returning an
// error stops the extraction.
type RowHandler func(r []string) error

func ExtractDataFromFile(f *File, logger *zap.Logger, handler RowHandler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch f.Format() {
	case ".csv":
		return ExtractDataFromCSV(f, logger, handler)
	case ".xlsx":
		return ExtractDataFromXLSX(f, logger, handler)
	case ".xls":
		return ExtractDataFromXLS(f, logger, handler)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f.Format())
}

func ExtractDataFromCSV(f *File, logger *zap.Logger, handler RowHandler) error {
	logger.Debug("Loading CSV data", zap.String("source", f.Source))

	// gota refuses a frame without data rows, hand such a header over as is.
	header, hasRows, err := peekCSV(f.Content)
	if err != nil {
		return fmt.Errorf("could not read CSV file: %w", err)
	}
	if !hasRows {
		if header == nil {
			return nil
		}
		return handler(header)
	}

	// Keep every cell as text, numbers are parsed by the caller.
	df := dataframe.ReadCSV(bytes.NewReader(f.Content),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return fmt.Errorf("could not read CSV file: %w", df.Err)
	}

	logger.Debug("CSV shape", zap.Int("rows", df.Nrow()), zap.Int("cols", df.Ncol()))

	for _, r := range df.Records() {
		if err := handler(r); err != nil {
			return err
		}
	}
	return nil
}

// peekCSV returns the first record and whether any record follows it.
func peekCSV(content []byte) ([]string, bool, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if _, err := r.Read(); err == io.EOF {
		return header, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return header, true, nil
}

func ExtractDataFromXLS(f *File, logger *zap.Logger, handler RowHandler) error {
	logger.Debug("Loading XLS data", zap.String("source", f.Source))

	wb, err := xls.OpenReader(bytes.NewReader(f.Content), "utf-8")
	if err != nil {
		return fmt.Errorf("could not read XLS file: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("XLS file has no sheets")
	}

	logger.Debug("XLS sheet", zap.String("name", sheet.Name), zap.Int("rows", int(sheet.MaxRow)+1))

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		if err := handler(cols); err != nil {
			return err
		}
	}
	return nil
}

func ExtractDataFromXLSX(f *File, logger *zap.Logger, handler RowHandler) error {
	logger.Debug("Loading XLSX data", zap.String("source", f.Source))

	wb, err := xlsx.OpenReader(bytes.NewReader(f.Content))
	if err != nil {
		return fmt.Errorf("could not read XLSX file: %w", err)
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("XLSX file has no sheets")
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("could not get rows for sheet %q: %w", defaultSheet, err)
	}

	logger.Debug("XLSX sheet", zap.String("name", defaultSheet), zap.Int("rows", len(rows)))

	for _, r := range rows {
		if err := handler(r); err != nil {
			return err
		}
	}
	return nil
}
