package stats

import "math"

// Proportions computes, for every record of snapshot, the share of cancer
// types a and b in their combined deaths. A record where both are zero
// yields an *UndefinedProportionError.
func Proportions(snapshot CohortTable, a, b CancerType) ([]ProportionPair, error) {
	pairs := make([]ProportionPair, 0, len(snapshot))

	for _, r := range snapshot {
		va, vb := r.Deaths[a], r.Deaths[b]
		sum := va + vb
		if sum == 0 {
			return nil, &UndefinedProportionError{Country: r.Country, Year: r.Year}
		}

		p := ProportionPair{
			Country: r.Country,
			ValueA:  va,
			ValueB:  vb,
			ShareA:  va / sum,
			ShareB:  vb / sum,
		}
		p.LabelYA = p.ShareA / 2
		p.LabelYB = p.ShareA + p.ShareB/2

		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Percent converts a share to a percentage rounded to one decimal.
func Percent(share float64) float64 {
	return math.Round(share*1000) / 10
}
