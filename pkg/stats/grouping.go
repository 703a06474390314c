package stats

// OthersLabel names the bucket of all cancer types below the threshold.
const OthersLabel = "Others"

// GroupByThreshold keeps every total at or above threshold as its own entry,
// in input order, and folds the rest into a final "Others" entry. The Others
// entry is always present, also when nothing was folded into it.
func GroupByThreshold(totals TypeTotals, threshold float64) GroupedDistribution {
	var (
		g   GroupedDistribution
		low float64
	)

	for _, t := range totals {
		if t.Value < threshold {
			low += t.Value
			continue
		}
		g.Values = append(g.Values, t.Value)
		g.Labels = append(g.Labels, t.Label)
	}

	g.Values = append(g.Values, low)
	g.Labels = append(g.Labels, OthersLabel)
	return g
}
