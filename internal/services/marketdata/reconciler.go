// Package marketdata merges candidate market data sets into one consolidated
// bundle per analysis run.
package marketdata

import "BondRV/internal/domain/models"

// Reconcile combines up to three market data sources with fixed precedence:
// explicit request override ("online") > ingested file data ("excel") >
// static configuration fallback ("config").
//
// Field-groups are reconciled independently and merged key-by-key: a key
// present in a higher-precedence source always wins, but a group is never
// all-or-nothing, so a bundle may take benchmark rates from the file while
// falling back to static funding rates. Inputs are never mutated; the
// returned bundle owns fresh maps.
//
// Reconciliation itself has no recoverable errors: absent keys simply remain
// absent and surface later as missing-rate or missing-curve failures when a
// downstream computation needs them.
func Reconcile(override, file, fallback *models.MarketDataBundle) (models.MarketDataBundle, models.Attribution) {
	o := orEmpty(override)
	f := orEmpty(file)
	s := orEmpty(fallback)

	var out models.MarketDataBundle
	var attr models.Attribution

	out.BenchmarkRates, attr.BenchmarkRates = mergeGroup(o.BenchmarkRates, f.BenchmarkRates, s.BenchmarkRates)
	out.FundingRates, attr.FundingRates = mergeGroup(o.FundingRates, f.FundingRates, s.FundingRates)
	out.FairCurves, attr.FairCurves = mergeGroup(o.FairCurves, f.FairCurves, s.FairCurves)
	out.SOFRSpreads, attr.SOFRSpreads = mergeGroup(o.SOFRSpreads, f.SOFRSpreads, s.SOFRSpreads)

	return out, attr
}

// mergeGroup folds the three layers of one field-group, lowest precedence
// first, and attributes the group to the highest-precedence layer that
// contributed at least one key.
func mergeGroup[V any](override, file, fallback map[string]V) (map[string]V, models.DataSource) {
	out := make(map[string]V, len(fallback)+len(file)+len(override))
	for k, v := range fallback {
		out[k] = v
	}
	for k, v := range file {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}

	src := models.SourceConfig
	if len(file) > 0 {
		src = models.SourceExcel
	}
	if len(override) > 0 {
		src = models.SourceOnline
	}
	return out, src
}

func orEmpty(b *models.MarketDataBundle) models.MarketDataBundle {
	if b == nil {
		return models.MarketDataBundle{}
	}
	return *b
}
