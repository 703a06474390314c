package stats

import (
	"fmt"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
)

// Sheet names of the summary workbook.
const (
	CohortSheet       = "Cohort"
	ComparisonSheet   = "Comparison"
	DistributionSheet = "Distribution"
)

// WriteWorkbook saves the derived tables of s as an XLSX file.
func WriteWorkbook(path string, s *Summary) error {
	wb, err := NewWorkbook(s)
	if err != nil {
		return err
	}
	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook %s: %w", path, err)
	}
	return nil
}

// NewWorkbook builds the summary workbook in memory.
func NewWorkbook(s *Summary) (*xlsx.File, error) {
	wb := xlsx.NewFile()
	wb.SetSheetName("Sheet1", CohortSheet)

	cohort := [][]interface{}{{"Country", "Code", "Year", "Total"}}
	for _, r := range s.Cohort {
		cohort = append(cohort, []interface{}{r.Country, r.Code, r.Year, r.Total})
	}
	if err := writeRows(wb, CohortSheet, cohort); err != nil {
		return nil, err
	}

	comparison := [][]interface{}{{
		"Country",
		s.Params.TypeA.String(), s.Params.TypeB.String(),
		s.Params.TypeA.String() + " %", s.Params.TypeB.String() + " %",
	}}
	for _, p := range s.Comparison {
		comparison = append(comparison, []interface{}{p.Country, p.ValueA, p.ValueB, Percent(p.ShareA), Percent(p.ShareB)})
	}
	wb.NewSheet(ComparisonSheet)
	if err := writeRows(wb, ComparisonSheet, comparison); err != nil {
		return nil, err
	}

	distribution := [][]interface{}{{"Cancer type", "Deaths", "%"}}
	total := s.Distribution.Sum()
	for i, v := range s.Distribution.Values {
		var pct float64
		if total > 0 {
			pct = Percent(v / total)
		}
		distribution = append(distribution, []interface{}{s.Distribution.Labels[i], v, pct})
	}
	wb.NewSheet(DistributionSheet)
	if err := writeRows(wb, DistributionSheet, distribution); err != nil {
		return nil, err
	}

	return wb, nil
}

func writeRows(wb *xlsx.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		axis, err := xlsx.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := wb.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("could not write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
