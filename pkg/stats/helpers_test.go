package stats

func record(country string, year int, deaths map[CancerType]float64) Record {
	r := Record{Country: country, Code: country[:1], Year: year}
	for t, v := range deaths {
		r.Deaths[t] = v
	}
	return r
}

// recordWithTotal spreads total evenly over Liver and Kidney.
func recordWithTotal(country string, year int, total float64) Record {
	return record(country, year, map[CancerType]float64{Liver: total / 2, Kidney: total / 2})
}
