package stats

import (
	"fmt"

	"go.uber.org/zap"
)

// Params holds every fixed value the analysis depends on.
type Params struct {
	Cohort Cohort

	// Year and pair of cancer types compared per cohort country.
	ComparisonYear int
	TypeA          CancerType
	TypeB          CancerType

	// Year of the global distribution and the cutoff below which cancer
	// types are grouped as Others.
	DistributionYear int
	Threshold        float64
}

// Summary is the derived data behind the charts.
type Summary struct {
	Params Params

	Cohort       CohortTable
	Series       []CountrySeries
	Comparison   []ProportionPair
	TypeTotals   TypeTotals
	Distribution GroupedDistribution
}

// Analyze derives all views from the full table. t is not modified.
func Analyze(t Table, p Params, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Summary{Params: p}

	s.Cohort = WithTotal(FilterCohort(t, p.Cohort))
	s.Series = s.Cohort.Series()
	if len(s.Cohort) == 0 {
		logger.Warn("Cohort is empty",
			zap.Int("yearMin", p.Cohort.YearMin),
			zap.Int("yearMax", p.Cohort.YearMax),
			zap.Strings("countries", p.Cohort.Countries))
	}

	comparison, err := Proportions(s.Cohort.Year(p.ComparisonYear), p.TypeA, p.TypeB)
	if err != nil {
		return nil, fmt.Errorf("compare %s and %s: %w", p.TypeA, p.TypeB, err)
	}
	s.Comparison = comparison

	s.TypeTotals = GrandTotal(t.Year(p.DistributionYear))
	s.Distribution = GroupByThreshold(s.TypeTotals, p.Threshold)

	logger.Debug("Analysis done",
		zap.Int("cohortRows", len(s.Cohort)),
		zap.Int("comparedCountries", len(s.Comparison)),
		zap.Int("distributionEntries", s.Distribution.Len()))

	return s, nil
}
