// Package normalize contains the pure financial transforms that neutralize
// currency and coupon structure differences between bonds. Functions here are
// stateless and perform no I/O; all rates in and out are decimal fractions
// except where bps is explicit in the name.
package normalize

import (
	"strconv"

	"BondRV/internal/domain/models"
)

// BpsPerUnit converts between decimal fractions and basis points.
const BpsPerUnit = 10000.0

// TenorKey maps a tenor in years onto the integer-year key used by the SOFR
// spread table ("1", "5", "10"). Non-integral tenors truncate.
func TenorKey(tenor float64) string {
	return strconv.Itoa(int(tenor))
}

// SOFRSwapRate derives the SOFR swap rate for a tenor from the treasury rate
// and the treasury-minus-SOFR spread: S = T - (T - SOFR).
func SOFRSwapRate(tenor float64, sofr map[string]models.SOFRTenorPoint) (float64, error) {
	key := TenorKey(tenor)
	pt, ok := sofr[key]
	if !ok {
		return 0, &models.MissingRateError{Group: "sofr", Key: key}
	}
	return pt.TreasuryRate - pt.TSOFRSpread, nil
}

// LocalYield computes the bond's offered yield in its own currency.
//
// Fixed coupon: benchmark rate + quoted spread.
// Float coupon: SOFR swap rate for the bond's tenor + quoted spread, the
// quoted spread being interpreted directly as a spread over SOFR.
//
// A missing benchmark code or tenor key fails with MissingRateError; zero is
// never substituted for an absent rate.
func LocalYield(bond models.Bond, md models.MarketDataBundle) (float64, error) {
	code, bps, err := ParseSpread(bond.Spread)
	if err != nil {
		return 0, err
	}

	if models.NormalizeCouponType(string(bond.CouponType)) == models.CouponFloat {
		swap, err := SOFRSwapRate(bond.Tenor, md.SOFRSpreads)
		if err != nil {
			return 0, err
		}
		return swap + bps/BpsPerUnit, nil
	}

	rate, ok := md.BenchmarkRates[code]
	if !ok {
		return 0, &models.MissingRateError{Group: "benchmark", Key: code}
	}
	return rate + bps/BpsPerUnit, nil
}

// SOFREquivalentSpread converts a fixed bond's treasury spread into its
// floating-equivalent spread over SOFR: z = x + (T - S) = x + tSofrSpread.
// treasurySpreadBps is in basis points; the t-SOFR spread and the result are
// decimal fractions.
func SOFREquivalentSpread(treasurySpreadBps, tSofrSpread float64) float64 {
	return treasurySpreadBps/BpsPerUnit + tSofrSpread
}

// FixedEquivalent converts a floating-rate bond into its fixed-equivalent
// terms, anchored on the treasury spread of a comparable fixed bond (same
// currency, tenor, rating, sector). It returns the all-in fixed-equivalent
// yield and the bond's true spread over the SOFR swap rate.
func FixedEquivalent(baseSpreadBps, tenor float64, md models.MarketDataBundle) (yield, trueSpread float64, err error) {
	tRate, ok := md.BenchmarkRates["T"]
	if !ok {
		return 0, 0, &models.MissingRateError{Group: "benchmark", Key: "T"}
	}

	yield = tRate + baseSpreadBps/BpsPerUnit

	swap, err := SOFRSwapRate(tenor, md.SOFRSpreads)
	if err != nil {
		return 0, 0, err
	}
	return yield, yield - swap, nil
}

// USDHedgedYield hedges a local-currency yield back to USD via the linearized
// covered interest parity approximation: hedged = local + (rUSD - rCCY). The
// linearization ignores compounding and tenor mismatch; that is a documented
// simplification of this model, not a bug. USD yields pass through unchanged
// with zero hedge cost.
func USDHedgedYield(localYield float64, ccy string, funding map[string]float64) (hedged, fxCost float64, err error) {
	if ccy == "USD" {
		return localYield, 0, nil
	}

	rUSD, ok := funding["USD"]
	if !ok {
		return 0, 0, &models.MissingRateError{Group: "funding", Key: "USD"}
	}
	rCCY, ok := funding[ccy]
	if !ok {
		return 0, 0, &models.MissingRateError{Group: "funding", Key: ccy}
	}

	fxCost = rUSD - rCCY
	return localYield + fxCost, fxCost, nil
}
