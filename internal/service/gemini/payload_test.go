package gemini

import (
	"math"
	"testing"
)

func TestToBundleNormalizesRates(t *testing.T) {
	p := marketDataPayload{
		BenchmarkRates: map[string]float64{"t": 3.44, "g": 0.0320},
		FundingRates:   map[string]float64{"usd": 5.0},
		FairValueCurves: map[string]map[string]float64{
			"usd_tech": {"a": 4.20},
		},
		SOFRSpreadData: map[string]sofrPayload{
			"1": {TreasuryRate: 3.44, TSOFRSpread: 0.0025},
		},
	}

	md := p.toBundle()

	if math.Abs(md.BenchmarkRates["T"]-0.0344) > 1e-9 {
		t.Fatalf("percent benchmark not normalized: %v", md.BenchmarkRates)
	}
	if md.BenchmarkRates["G"] != 0.0320 {
		t.Fatalf("decimal benchmark changed: %v", md.BenchmarkRates["G"])
	}
	if md.FundingRates["USD"] != 0.05 {
		t.Fatalf("funding not normalized: %v", md.FundingRates)
	}
	if math.Abs(md.FairCurves["USD_TECH_A"]-0.0420) > 1e-9 {
		t.Fatalf("curve key not flattened/normalized: %v", md.FairCurves)
	}
	pt := md.SOFRSpreads["1"]
	if math.Abs(pt.TreasuryRate-0.0344) > 1e-9 || pt.TSOFRSpread != 0.0025 {
		t.Fatalf("sofr point not normalized: %+v", pt)
	}
}

func TestToBundleEmptyGroupsStayAbsent(t *testing.T) {
	md := marketDataPayload{}.toBundle()
	if !md.IsEmpty() {
		t.Fatalf("empty payload must produce empty bundle: %+v", md)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Fatalf("stripFences(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}
