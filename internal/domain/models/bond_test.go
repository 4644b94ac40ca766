package models

import "testing"

func TestNormalizeCouponType(t *testing.T) {
	cases := []struct {
		in   string
		want CouponType
	}{
		{"Fixed", CouponFixed},
		{"FIXED", CouponFixed},
		{" fixed ", CouponFixed},
		{"float", CouponFloat},
		{"Float", CouponFloat},
	}
	for _, c := range cases {
		if got := NormalizeCouponType(c.in); got != c.want {
			t.Fatalf("NormalizeCouponType(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}

func TestCurveKey(t *testing.T) {
	if got := CurveKey("usd", "Tech", "a"); got != "USD_TECH_A" {
		t.Fatalf("CurveKey = %q; want USD_TECH_A", got)
	}
	b := Bond{Currency: "CAD", Sector: "energy", Rating: "BBB"}
	if got := b.CurveKey(); got != "CAD_ENERGY_BBB" {
		t.Fatalf("bond CurveKey = %q; want CAD_ENERGY_BBB", got)
	}
}

func TestErrorKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&MissingRateError{Group: "benchmark", Key: "T"}, KindMissingRate},
		{&MissingCurveError{Key: "USD_TECH_A"}, KindMissingCurve},
		{&MalformedSpreadError{Spread: "bad"}, KindMalformedSpread},
	}
	for _, c := range cases {
		if got := ErrorKind(c.err); got != c.want {
			t.Fatalf("ErrorKind(%v) = %q; want %q", c.err, got, c.want)
		}
	}
}

func TestNewPerBondError(t *testing.T) {
	pe := NewPerBondError("ACME 2030", &MissingCurveError{Key: "USD_TECH_A"})
	if pe.BondName != "ACME 2030" || pe.Kind != KindMissingCurve {
		t.Fatalf("unexpected per-bond error: %+v", pe)
	}
	if pe.Message == "" {
		t.Fatalf("message must carry the underlying error text")
	}
}
