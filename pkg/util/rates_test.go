package util

import "testing"

func TestNormalizeRate(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.0344, 0.0344},
		{3.44, 0.0344},
		{5.0, 0.05},
		{0.99, 0.99},
		{1.0, 1.0},
		{-4.5, -0.045},
	}
	for _, c := range cases {
		if got := NormalizeRate(c.in); got != c.want {
			t.Fatalf("NormalizeRate(%v) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestNormalizeRates(t *testing.T) {
	in := map[string]float64{"USD": 5.0, "CAD": 0.045}
	out := NormalizeRates(in)
	if out["USD"] != 0.05 || out["CAD"] != 0.045 {
		t.Fatalf("unexpected output: %v", out)
	}
	if in["USD"] != 5.0 {
		t.Fatalf("input mutated: %v", in)
	}
	if NormalizeRates(nil) != nil {
		t.Fatalf("nil input must stay nil")
	}
}
