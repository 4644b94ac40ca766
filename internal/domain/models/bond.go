package models

import "strings"

// CouponType distinguishes fixed-coupon bonds from floating-rate notes.
type CouponType string

const (
	CouponFixed CouponType = "FIXED"
	CouponFloat CouponType = "FLOAT"
)

// NormalizeCouponType maps free-form user input ("Fixed", "float", ...) onto
// the canonical coupon type constants.
func NormalizeCouponType(s string) CouponType {
	return CouponType(strings.ToUpper(strings.TrimSpace(s)))
}

// Bond is one instrument submitted for a relative value run. Bonds are
// immutable once submitted; they live for a single analysis session.
type Bond struct {
	Name       string     `json:"bond_name"`
	CouponType CouponType `json:"cpn_type"`
	Currency   string     `json:"ccy"`
	Tenor      float64    `json:"tenor"` // years
	Rating     string     `json:"rating"`
	Sector     string     `json:"sector"`
	Spread     string     `json:"spread"` // e.g. "T+50bps", "S+25bps"
}

// CurveKey builds the composite fair-value curve key for a
// currency/sector/rating triple, e.g. "USD_TECH_A".
func CurveKey(ccy, sector, rating string) string {
	return strings.ToUpper(ccy + "_" + sector + "_" + rating)
}

// CurveKey returns the bond's own fair-value curve key.
func (b Bond) CurveKey() string {
	return CurveKey(b.Currency, b.Sector, b.Rating)
}
