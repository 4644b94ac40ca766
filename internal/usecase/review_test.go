package usecase

import (
	"math"
	"testing"

	"BondRV/internal/domain/models"
)

func TestReviewFixedTreasuryBond(t *testing.T) {
	bonds := []models.Bond{
		{Name: "ACME 2027", CouponType: "FIXED", Currency: "USD", Tenor: 1, Rating: "A", Sector: "TECH", Spread: "T+50bps"},
	}

	reviews := ReviewBonds(bonds, analysisBundle())
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}

	r := reviews[0]
	if r.Benchmark != "T" || r.SpreadBps != 50 {
		t.Fatalf("unexpected parsed spread: %+v", r)
	}
	// swap = 0.0344 - 0.0025 = 0.0319
	if r.SOFRSwapRate == nil || math.Abs(*r.SOFRSwapRate-0.0319) > 1e-9 {
		t.Fatalf("swap rate = %v; want 0.0319", r.SOFRSwapRate)
	}
	// z = 0.0050 + 0.0025 = 0.0075; yield = 0.0319 + 0.0075 = 0.0394
	if r.SOFREquivalentSpread == nil || math.Abs(*r.SOFREquivalentSpread-0.0075) > 1e-9 {
		t.Fatalf("sofr-equivalent spread = %v; want 0.0075", r.SOFREquivalentSpread)
	}
	if r.SOFREquivalentYield == nil || math.Abs(*r.SOFREquivalentYield-0.0394) > 1e-9 {
		t.Fatalf("sofr-equivalent yield = %v; want 0.0394", r.SOFREquivalentYield)
	}
	if r.FixedEquivalentYield != nil {
		t.Fatalf("fixed bond must not carry a fixed-equivalent yield")
	}
}

func TestReviewFloaterWithComparableFixed(t *testing.T) {
	bonds := []models.Bond{
		{Name: "ACME FRN", CouponType: "FLOAT", Currency: "USD", Tenor: 5, Rating: "A", Sector: "TECH", Spread: "SOFR+120bps"},
		{Name: "ACME 2030", CouponType: "FIXED", Currency: "USD", Tenor: 5, Rating: "A", Sector: "TECH", Spread: "T+50bps"},
	}

	reviews := ReviewBonds(bonds, analysisBundle())
	r := reviews[0]

	// swap = 0.0400 - 0.0030 = 0.0370; fixed equivalent = swap + 0.0120
	if r.FixedEquivalentYield == nil || math.Abs(*r.FixedEquivalentYield-0.0490) > 1e-9 {
		t.Fatalf("fixed-equivalent yield = %v; want 0.0490", r.FixedEquivalentYield)
	}
	// anchored on the comparable's T+50bps: yield = 0.0344 + 0.0050 = 0.0394,
	// spread over swap = 0.0394 - 0.0370 = 0.0024
	if r.SOFREquivalentYield == nil || math.Abs(*r.SOFREquivalentYield-0.0394) > 1e-9 {
		t.Fatalf("sofr-equivalent yield = %v; want 0.0394", r.SOFREquivalentYield)
	}
	if r.SOFREquivalentSpread == nil || math.Abs(*r.SOFREquivalentSpread-0.0024) > 1e-9 {
		t.Fatalf("sofr-equivalent spread = %v; want 0.0024", r.SOFREquivalentSpread)
	}
}

func TestReviewFloaterWithoutComparable(t *testing.T) {
	bonds := []models.Bond{
		{Name: "LONE FRN", CouponType: "FLOAT", Currency: "CAD", Tenor: 5, Rating: "BBB", Sector: "ENERGY", Spread: "SOFR+90bps"},
	}

	reviews := ReviewBonds(bonds, analysisBundle())
	r := reviews[0]

	if r.FixedEquivalentYield == nil || math.Abs(*r.FixedEquivalentYield-0.0460) > 1e-9 {
		t.Fatalf("fixed-equivalent yield = %v; want 0.0460", r.FixedEquivalentYield)
	}
	if r.SOFREquivalentSpread != nil || r.SOFREquivalentYield != nil {
		t.Fatalf("no comparable fixed bond: sofr-equivalent figures must stay nil")
	}
}

func TestReviewNonTreasuryFixedBond(t *testing.T) {
	bonds := []models.Bond{
		{Name: "MAPLE 2031", CouponType: "FIXED", Currency: "CAD", Tenor: 5, Rating: "A", Sector: "TECH", Spread: "G+47bps"},
	}

	reviews := ReviewBonds(bonds, analysisBundle())
	r := reviews[0]

	if r.SOFRSwapRate == nil {
		t.Fatalf("swap rate must be present for a known tenor")
	}
	if r.SOFREquivalentSpread != nil || r.SOFREquivalentYield != nil {
		t.Fatalf("non-treasury benchmark must not get sofr-equivalent figures")
	}
}

func TestReviewIsolatesFailures(t *testing.T) {
	bonds := []models.Bond{
		{Name: "BAD SPREAD", CouponType: "FIXED", Currency: "USD", Tenor: 5, Rating: "A", Sector: "TECH", Spread: "fifty over"},
		{Name: "NO TENOR", CouponType: "FIXED", Currency: "USD", Tenor: 7, Rating: "A", Sector: "TECH", Spread: "T+50bps"},
		{Name: "GOOD", CouponType: "FIXED", Currency: "USD", Tenor: 1, Rating: "A", Sector: "TECH", Spread: "T+50bps"},
	}

	reviews := ReviewBonds(bonds, analysisBundle())
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}

	if reviews[0].Err == nil || reviews[0].Err.Kind != models.KindMalformedSpread {
		t.Fatalf("expected malformed spread error, got %+v", reviews[0])
	}
	if reviews[1].Err != nil || reviews[1].SOFRSwapRate != nil {
		t.Fatalf("missing tenor must leave figures nil without an error: %+v", reviews[1])
	}
	if reviews[2].SOFREquivalentYield == nil {
		t.Fatalf("healthy bond must get its figures: %+v", reviews[2])
	}
}
