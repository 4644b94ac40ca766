package gemini

import (
	"strings"

	"BondRV/internal/domain/models"
	"BondRV/pkg/util"
)

// marketDataPayload is the JSON shape both adapters ask the model for. Rates
// may come back as percentages; toBundle normalizes everything to decimal
// fractions, honoring the rule that percent conversion happens only at the
// ingestion boundary.
type marketDataPayload struct {
	BenchmarkRates  map[string]float64            `json:"benchmark_rates"`
	FundingRates    map[string]float64            `json:"funding_rates"`
	FairValueCurves map[string]map[string]float64 `json:"fair_value_curves"` // CCY_SECTOR -> rating -> yield
	SOFRSpreadData  map[string]sofrPayload        `json:"sofr_spread_data"`  // tenor -> point
	Sources         map[string]string             `json:"sources,omitempty"`
}

type sofrPayload struct {
	TreasuryRate float64 `json:"treasury_rate"`
	TSOFRSpread  float64 `json:"t_sofr_spread"`
}

func (p marketDataPayload) toBundle() models.MarketDataBundle {
	var md models.MarketDataBundle

	md.BenchmarkRates = util.NormalizeRates(upperKeys(p.BenchmarkRates))
	md.FundingRates = util.NormalizeRates(upperKeys(p.FundingRates))

	if len(p.FairValueCurves) > 0 {
		md.FairCurves = make(map[string]float64)
		for group, byRating := range p.FairValueCurves {
			for rating, y := range byRating {
				key := strings.ToUpper(group + "_" + rating)
				md.FairCurves[key] = util.NormalizeRate(y)
			}
		}
	}

	if len(p.SOFRSpreadData) > 0 {
		md.SOFRSpreads = make(map[string]models.SOFRTenorPoint, len(p.SOFRSpreadData))
		for tenor, pt := range p.SOFRSpreadData {
			md.SOFRSpreads[tenor] = models.SOFRTenorPoint{
				TreasuryRate: util.NormalizeRate(pt.TreasuryRate),
				TSOFRSpread:  util.NormalizeRate(pt.TSOFRSpread),
			}
		}
	}

	return md
}

func upperKeys(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[strings.ToUpper(k)] = v
	}
	return out
}
