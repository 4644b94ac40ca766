package usecase

import (
	"context"
	"time"

	"BondRV/internal/domain/models"
	domrepo "BondRV/internal/domain/repository"
	domsvc "BondRV/internal/domain/service"
	"BondRV/internal/services/marketdata"
	xlogger "BondRV/pkg/logger"
)

// MarketDataResolver builds the consolidated bundle for one analysis run. It
// orchestrates the realtime adapter and the reconciler; the reconciliation
// itself stays pure.
type MarketDataResolver struct {
	realtime domsvc.RealtimeProvider
	fallback models.MarketDataBundle
	metrics  domrepo.Metrics
	logger   *xlogger.Logger
}

func NewMarketDataResolver(realtime domsvc.RealtimeProvider, fallback models.MarketDataBundle, metrics domrepo.Metrics, logger *xlogger.Logger) *MarketDataResolver {
	return &MarketDataResolver{realtime: realtime, fallback: fallback, metrics: metrics, logger: logger}
}

// Resolve reconciles the three candidate sources for a bond batch. When
// useRealtime is set and a realtime provider is wired, its snapshot becomes
// the top precedence layer; a failed fetch degrades to the remaining layers
// rather than failing the run — missing keys surface per-bond later.
func (r *MarketDataResolver) Resolve(ctx context.Context, bonds []models.Bond, fileData *models.MarketDataBundle, useRealtime bool) (models.MarketDataBundle, models.Attribution, map[string]string) {
	start := time.Now()

	var override *models.MarketDataBundle
	var sources map[string]string

	if useRealtime && r.realtime != nil {
		snap, err := r.realtime.Fetch(ctx, bonds)
		if err != nil {
			r.logger.Warn("realtime market data fetch failed; continuing with file/config layers", xlogger.Error(err))
		} else if snap != nil && !snap.Data.IsEmpty() {
			override = &snap.Data
			sources = snap.Sources
		}
	}

	fallback := r.fallback
	bundle, attr := marketdata.Reconcile(override, fileData, &fallback)

	r.metrics.RecordReconcileSource("benchmark_rates", string(attr.BenchmarkRates))
	r.metrics.RecordReconcileSource("funding_rates", string(attr.FundingRates))
	r.metrics.RecordReconcileSource("fair_curves", string(attr.FairCurves))
	r.metrics.RecordReconcileSource("sofr_spreads", string(attr.SOFRSpreads))
	r.metrics.RecordLatency("resolve_market_data", time.Since(start).Seconds())

	return bundle, attr, sources
}
