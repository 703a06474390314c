package stats

import (
	"sort"
)

// Table is an ordered list of records. Operations on a Table never modify
// it, they return a new Table.
type Table []Record

// CohortTable is a filtered Table with per-record totals.
type CohortTable []CohortRecord

// Cohort selects the records of a set of countries within a year range.
type Cohort struct {
	YearMin   int
	YearMax   int
	Countries []string
}

// Contains reports whether r belongs to the cohort.
func (c Cohort) Contains(r Record) bool {
	if r.Year < c.YearMin || r.Year > c.YearMax {
		return false
	}
	for _, name := range c.Countries {
		if r.Country == name {
			return true
		}
	}
	return false
}

// Info summarizes a loaded table.
type Info struct {
	Rows      int
	FirstYear int
	LastYear  int
	Countries int
}

func (t Table) Info() Info {
	info := Info{Rows: len(t)}
	countries := make(map[string]bool)

	for i, r := range t {
		if i == 0 || r.Year < info.FirstYear {
			info.FirstYear = r.Year
		}
		if i == 0 || r.Year > info.LastYear {
			info.LastYear = r.Year
		}
		countries[r.Country] = true
	}
	info.Countries = len(countries)
	return info
}

// FilterCohort keeps the records of t that belong to c, in input order.
func FilterCohort(t Table, c Cohort) Table {
	out := make(Table, 0)
	for _, r := range t {
		if c.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// WithTotal adds the sum of all cancer types to each record.
func WithTotal(t Table) CohortTable {
	out := make(CohortTable, len(t))
	for i, r := range t {
		out[i] = CohortRecord{Record: r, Total: r.Deaths.Sum()}
	}
	return out
}

// Year returns the records of a single year.
func (t Table) Year(year int) Table {
	out := make(Table, 0)
	for _, r := range t {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Year returns the records of a single year.
func (t CohortTable) Year(year int) CohortTable {
	out := make(CohortTable, 0)
	for _, r := range t {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// Records drops the totals.
func (t CohortTable) Records() Table {
	out := make(Table, len(t))
	for i, r := range t {
		out[i] = r.Record
	}
	return out
}

// GrandTotal sums each cancer type across all records of a snapshot.
// Built from a full-table snapshot this gives the global deaths per type.
func GrandTotal(snapshot Table) TypeTotals {
	var sums Deaths
	for _, r := range snapshot {
		for i, v := range r.Deaths {
			sums[i] += v
		}
	}

	totals := make(TypeTotals, NumCancerTypes)
	for i, v := range sums {
		totals[i] = TypeTotal{Label: CancerType(i).String(), Value: v}
	}
	return totals
}

// CountrySeries is the yearly total of one country.
type CountrySeries struct {
	Country string
	Years   []float64
	Totals  []float64
}

// Series groups the totals by country, countries in first-seen order and
// years ascending.
func (t CohortTable) Series() []CountrySeries {
	var out []CountrySeries
	index := make(map[string]int)

	for _, r := range t {
		i, ok := index[r.Country]
		if !ok {
			i = len(out)
			index[r.Country] = i
			out = append(out, CountrySeries{Country: r.Country})
		}
		out[i].Years = append(out[i].Years, float64(r.Year))
		out[i].Totals = append(out[i].Totals, r.Total)
	}

	for _, s := range out {
		sort.Sort(byYear(s))
	}
	return out
}

type byYear CountrySeries

func (s byYear) Len() int           { return len(s.Years) }
func (s byYear) Less(i, j int) bool { return s.Years[i] < s.Years[j] }
func (s byYear) Swap(i, j int) {
	s.Years[i], s.Years[j] = s.Years[j], s.Years[i]
	s.Totals[i], s.Totals[j] = s.Totals[j], s.Totals[i]
}
