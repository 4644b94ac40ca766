package usecase

import (
	"BondRV/internal/domain/models"
	"BondRV/internal/services/normalize"
)

// ReviewBonds computes the derived figures shown per bond on the market data
// review step: the SOFR swap rate for the bond's tenor, the SOFR-equivalent
// spread and yield, and for floaters the fixed-equivalent yield. A bond whose
// spread does not parse gets an error entry; figures missing their inputs
// stay nil rather than failing the review.
func ReviewBonds(bonds []models.Bond, md models.MarketDataBundle) []models.BondReview {
	reviews := make([]models.BondReview, 0, len(bonds))
	for _, bond := range bonds {
		reviews = append(reviews, reviewOne(bond, bonds, md))
	}
	return reviews
}

func reviewOne(bond models.Bond, batch []models.Bond, md models.MarketDataBundle) models.BondReview {
	code, bps, err := normalize.ParseSpread(bond.Spread)
	if err != nil {
		return models.BondReview{
			BondName: bond.Name,
			Err:      models.NewPerBondError(bond.Name, err),
		}
	}

	r := models.BondReview{BondName: bond.Name, Benchmark: code, SpreadBps: bps}

	swap, err := normalize.SOFRSwapRate(bond.Tenor, md.SOFRSpreads)
	if err != nil {
		// Every derived figure needs the tenor's SOFR point.
		return r
	}
	r.SOFRSwapRate = &swap

	if models.NormalizeCouponType(string(bond.CouponType)) == models.CouponFloat {
		fixedEq := swap + bps/normalize.BpsPerUnit
		r.FixedEquivalentYield = &fixedEq

		// A floater's SOFR-equivalent terms are anchored on the treasury
		// spread of a comparable fixed bond in the same batch.
		if comp, ok := comparableFixed(bond, batch); ok {
			if compCode, compBps, err := normalize.ParseSpread(comp.Spread); err == nil && compCode == "T" {
				if yield, trueSpread, err := normalize.FixedEquivalent(compBps, bond.Tenor, md); err == nil {
					r.SOFREquivalentSpread = &trueSpread
					r.SOFREquivalentYield = &yield
				}
			}
		}
		return r
	}

	if code == "T" {
		if pt, ok := md.SOFRSpreads[normalize.TenorKey(bond.Tenor)]; ok {
			z := normalize.SOFREquivalentSpread(bps, pt.TSOFRSpread)
			yield := swap + z
			r.SOFREquivalentSpread = &z
			r.SOFREquivalentYield = &yield
		}
	}
	return r
}

// comparableFixed finds a fixed bond in the batch with the same currency,
// tenor, rating, and sector.
func comparableFixed(bond models.Bond, batch []models.Bond) (models.Bond, bool) {
	for _, other := range batch {
		if other.Name == bond.Name {
			continue
		}
		if models.NormalizeCouponType(string(other.CouponType)) != models.CouponFixed {
			continue
		}
		if other.Currency == bond.Currency && other.Tenor == bond.Tenor &&
			other.Rating == bond.Rating && other.Sector == bond.Sector {
			return other, true
		}
	}
	return models.Bond{}, false
}
