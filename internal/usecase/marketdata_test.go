package usecase

import (
	"context"
	"errors"
	"testing"

	"BondRV/internal/domain/models"
	domsvc "BondRV/internal/domain/service"
	xlogger "BondRV/pkg/logger"
)

type stubRealtime struct {
	snap *domsvc.RealtimeSnapshot
	err  error
}

func (s *stubRealtime) Fetch(context.Context, []models.Bond) (*domsvc.RealtimeSnapshot, error) {
	return s.snap, s.err
}

func TestResolveRealtimeWins(t *testing.T) {
	rt := &stubRealtime{snap: &domsvc.RealtimeSnapshot{
		Data: models.MarketDataBundle{
			BenchmarkRates: map[string]float64{"T": 0.0360},
		},
		Sources: map[string]string{"treasury_yields": "FRED"},
	}}
	r := NewMarketDataResolver(rt, analysisBundle(), nopMetrics{}, xlogger.Nop())

	bundle, attr, sources := r.Resolve(context.Background(), nil, nil, true)

	if bundle.BenchmarkRates["T"] != 0.0360 {
		t.Fatalf("realtime rate not applied: %v", bundle.BenchmarkRates["T"])
	}
	if attr.BenchmarkRates != models.SourceOnline {
		t.Fatalf("attribution = %v; want online", attr.BenchmarkRates)
	}
	if attr.FundingRates != models.SourceConfig {
		t.Fatalf("groups absent from the snapshot stay config: %v", attr.FundingRates)
	}
	if sources["treasury_yields"] != "FRED" {
		t.Fatalf("snapshot sources not returned: %v", sources)
	}
}

func TestResolveDegradesOnRealtimeFailure(t *testing.T) {
	rt := &stubRealtime{err: errors.New("upstream timeout")}
	r := NewMarketDataResolver(rt, analysisBundle(), nopMetrics{}, xlogger.Nop())

	bundle, attr, _ := r.Resolve(context.Background(), nil, nil, true)

	if bundle.BenchmarkRates["T"] != 0.0344 {
		t.Fatalf("expected config fallback after fetch failure: %v", bundle.BenchmarkRates["T"])
	}
	if attr.BenchmarkRates != models.SourceConfig {
		t.Fatalf("attribution = %v; want config", attr.BenchmarkRates)
	}
}

func TestResolveSkipsRealtimeWhenDisabled(t *testing.T) {
	rt := &stubRealtime{snap: &domsvc.RealtimeSnapshot{
		Data: models.MarketDataBundle{BenchmarkRates: map[string]float64{"T": 9.0}},
	}}
	r := NewMarketDataResolver(rt, analysisBundle(), nopMetrics{}, xlogger.Nop())

	bundle, _, _ := r.Resolve(context.Background(), nil, nil, false)

	if bundle.BenchmarkRates["T"] != 0.0344 {
		t.Fatalf("realtime must not run when disabled: %v", bundle.BenchmarkRates["T"])
	}
}

func TestResolveFileLayerBeatsConfig(t *testing.T) {
	r := NewMarketDataResolver(nil, analysisBundle(), nopMetrics{}, xlogger.Nop())
	file := &models.MarketDataBundle{
		FundingRates: map[string]float64{"USD": 0.0520},
	}

	bundle, attr, _ := r.Resolve(context.Background(), nil, file, true)

	if bundle.FundingRates["USD"] != 0.0520 {
		t.Fatalf("file funding rate not applied: %v", bundle.FundingRates["USD"])
	}
	if bundle.FundingRates["CAD"] != 0.0450 {
		t.Fatalf("config keys dropped: %v", bundle.FundingRates)
	}
	if attr.FundingRates != models.SourceExcel {
		t.Fatalf("attribution = %v; want excel", attr.FundingRates)
	}
}
