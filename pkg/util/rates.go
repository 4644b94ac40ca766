package util

import "math"

// NormalizeRate coerces a rate into decimal-fraction form. Upstream sources
// (spreadsheets, scraped quotes) frequently report 3.44 meaning 3.44%; any
// magnitude above 1 is treated as a percentage. Decimal fractions pass
// through unchanged.
func NormalizeRate(v float64) float64 {
	if math.Abs(v) > 1 {
		return v / 100
	}
	return v
}

// NormalizeRates applies NormalizeRate to every value of a rate map, in place
// on a fresh copy.
func NormalizeRates(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = NormalizeRate(v)
	}
	return out
}
