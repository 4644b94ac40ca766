package models

// DataSource identifies which layer of the reconciliation supplied a
// field-group.
type DataSource string

const (
	SourceOnline DataSource = "online"
	SourceExcel  DataSource = "excel"
	SourceConfig DataSource = "config"
)

// SOFRTenorPoint carries the treasury rate and the treasury-minus-SOFR spread
// for one tenor. Both values are decimal fractions.
type SOFRTenorPoint struct {
	TreasuryRate float64 `json:"treasury_rate" yaml:"treasury_rate"`
	TSOFRSpread  float64 `json:"t_sofr_spread" yaml:"t_sofr_spread"`
}

// MarketDataBundle holds every rate an analysis run may need. All rates are
// decimal fractions (0.05 = 5%), never percentage integers; conversion from
// percent happens at the ingestion boundary only. A bundle is built fresh per
// analysis request and never mutated afterwards.
//
// A bundle with nil or partially filled maps is a valid partial bundle; the
// reconciler layers partials on top of the static fallback.
type MarketDataBundle struct {
	// BenchmarkRates maps a benchmark code ("T", "G", "MS") to its rate.
	BenchmarkRates map[string]float64 `json:"benchmark_rates" yaml:"benchmark_rates"`
	// FundingRates maps a currency code to its funding rate, used for the
	// covered interest parity hedge.
	FundingRates map[string]float64 `json:"funding_rates" yaml:"funding_rates"`
	// FairCurves maps a composite CCY_SECTOR_RATING key to the fair local
	// yield for that profile.
	FairCurves map[string]float64 `json:"fair_curves" yaml:"fair_curves"`
	// SOFRSpreads maps an integer-year tenor key ("1", "5", "10") to its
	// treasury/SOFR point.
	SOFRSpreads map[string]SOFRTenorPoint `json:"sofr_spreads" yaml:"sofr_spreads"`
}

// IsEmpty reports whether the bundle carries no data in any field-group.
func (m MarketDataBundle) IsEmpty() bool {
	return len(m.BenchmarkRates) == 0 &&
		len(m.FundingRates) == 0 &&
		len(m.FairCurves) == 0 &&
		len(m.SOFRSpreads) == 0
}

// Attribution records, per field-group, which source won the reconciliation.
type Attribution struct {
	BenchmarkRates DataSource `json:"benchmark_rates"`
	FundingRates   DataSource `json:"funding_rates"`
	FairCurves     DataSource `json:"fair_curves"`
	SOFRSpreads    DataSource `json:"sofr_spreads"`
}
