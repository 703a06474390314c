package stats

import (
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintReport writes the summary as plain text, numbers in English locale.
func PrintReport(w io.Writer, s *Summary) {
	p := message.NewPrinter(language.English)
	c := s.Params.Cohort

	// Years are passed as strings, the printer groups digits of numbers.
	p.Fprintf(w, "\nTotal Cancer Deaths of %d Countries (%s-%s):\n\n", len(c.Countries), year(c.YearMin), year(c.YearMax))
	for _, series := range s.Series {
		p.Fprintf(w, "%s\n", series.Country)
		for i, y := range series.Years {
			p.Fprintf(w, "  %4s  %12.f\n", year(int(y)), series.Totals[i])
		}
	}
	if len(s.Series) == 0 {
		p.Fprintln(w, "  (no data)")
	}

	p.Fprintf(w, "\n%s vs. %s (%s):\n\n", s.Params.TypeA, s.Params.TypeB, year(s.Params.ComparisonYear))
	for i, cp := range s.Comparison {
		p.Fprintf(w, "%02d. %-15s  --  %5.1f%% %10.f  /  %5.1f%% %10.f\n",
			i+1, cp.Country,
			Percent(cp.ShareA), cp.ValueA,
			Percent(cp.ShareB), cp.ValueB,
		)
	}

	total := s.Distribution.Sum()
	p.Fprintf(w, "\nGlobal Cancer Deaths (%s): %.f\n", year(s.Params.DistributionYear), total)
	p.Fprintf(w, "Grouped below %.f as %s:\n\n", s.Params.Threshold, OthersLabel)
	for i, v := range s.Distribution.Values {
		var pct float64
		if total > 0 {
			pct = Percent(v / total)
		}
		p.Fprintf(w, "%02d. %-35s  --  %5.1f%%  %12.f\n", i+1, s.Distribution.Labels[i], pct, v)
	}
}

func year(y int) string {
	return strconv.Itoa(y)
}
