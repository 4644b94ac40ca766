package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"BondRV/internal/domain/models"
	domsvc "BondRV/internal/domain/service"
	"BondRV/internal/services/normalize"
	"BondRV/pkg/cache"
	xlogger "BondRV/pkg/logger"
)

// Realtime fetches current benchmark, funding, SOFR, and fair-curve data for
// a bond batch from named online sources via the Gemini API. Snapshots are
// cached so repeated review/analyze cycles over the same batch do not refetch.
type Realtime struct {
	client *Client
	cache  cache.Service
	ttl    time.Duration
	logger *xlogger.Logger
}

func NewRealtime(client *Client, c cache.Service, ttl time.Duration, logger *xlogger.Logger) *Realtime {
	return &Realtime{client: client, cache: c, ttl: ttl, logger: logger}
}

var _ domsvc.RealtimeProvider = (*Realtime)(nil)

// Fetch retrieves a partial bundle covering every currency, tenor, and curve
// profile present in bonds, plus per field-group source descriptions.
func (s *Realtime) Fetch(ctx context.Context, bonds []models.Bond) (*domsvc.RealtimeSnapshot, error) {
	ccys, tenors, curves := batchNeeds(bonds)
	key := cacheKey(ccys, tenors, curves)

	if s.cache != nil {
		if b, ok, err := s.cache.GetBytes(ctx, key); err == nil && ok {
			var snap domsvc.RealtimeSnapshot
			if err := json.Unmarshal(b, &snap); err == nil {
				s.logger.Debug("realtime snapshot served from cache", xlogger.String("key", key))
				return &snap, nil
			}
		}
	}

	var payload marketDataPayload
	if err := s.client.GenerateJSON(ctx, s.buildPrompt(ccys, tenors, curves), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch realtime market data: %w", err)
	}

	snap := &domsvc.RealtimeSnapshot{
		Data:    payload.toBundle(),
		Sources: payload.Sources,
	}
	if snap.Sources == nil {
		snap.Sources = defaultSources()
	}

	if s.cache != nil {
		if b, err := json.Marshal(snap); err == nil {
			_ = s.cache.SetBytes(ctx, key, b, s.ttl)
		}
	}

	s.logger.Info("realtime market data fetched",
		xlogger.Int("currencies", len(ccys)),
		xlogger.Int("tenors", len(tenors)),
		xlogger.Int("curves", len(curves)),
	)
	return snap, nil
}

// batchNeeds derives the currency, tenor, and curve-profile sets a bond batch
// requires. USD funding is always needed for the hedge leg.
func batchNeeds(bonds []models.Bond) (ccys, tenors, curves []string) {
	ccySet := map[string]struct{}{"USD": {}}
	tenorSet := map[string]struct{}{}
	curveSet := map[string]struct{}{}
	for _, b := range bonds {
		ccySet[strings.ToUpper(b.Currency)] = struct{}{}
		tenorSet[normalize.TenorKey(b.Tenor)] = struct{}{}
		curveSet[b.CurveKey()] = struct{}{}
	}
	return sortedKeys(ccySet), sortedKeys(tenorSet), sortedKeys(curveSet)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func cacheKey(ccys, tenors, curves []string) string {
	return "realtime:" + strings.Join(ccys, ",") + "|" + strings.Join(tenors, ",") + "|" + strings.Join(curves, ",")
}

func (s *Realtime) buildPrompt(ccys, tenors, curves []string) string {
	var sb strings.Builder
	sb.WriteString("You are a financial data extraction API. Fetch current market data from online sources and return ONLY JSON:\n")
	sb.WriteString(`{"benchmark_rates": {}, "funding_rates": {}, "fair_value_curves": {}, "sofr_spread_data": {}, "sources": {}}` + "\n\n")

	fmt.Fprintf(&sb, "1. benchmark_rates: 1-year government bond yields keyed by benchmark code (T for US Treasury, G for Canadian Government, MS for mid-swap). Sources: home.treasury.gov, fred.stlouisfed.org, tradingeconomics.com.\n")
	fmt.Fprintf(&sb, "2. funding_rates: 1-year interbank/money-market rates for %s (SOFR for USD, CORRA for CAD, EURIBOR for EUR). Sources: CME SOFR, tradingeconomics.com.\n", strings.Join(ccys, ", "))
	fmt.Fprintf(&sb, "3. sofr_spread_data: for tenors %s years, the US treasury rate and treasury-minus-SOFR spread per tenor. Sources: FRED, CME SOFR, Chatham Financial.\n", strings.Join(tenors, ", "))
	fmt.Fprintf(&sb, "4. fair_value_curves: fair yields grouped CCY_SECTOR -> rating for the profiles %s. Sources: Bloomberg BVAL, ICE BofA indices, FRED credit spreads.\n", strings.Join(curves, ", "))
	sb.WriteString("5. sources: map each of the four section names to a short description of where its values came from.\n")
	sb.WriteString("\nAll rates as decimal fractions (0.0344 for 3.44%).\n")
	return sb.String()
}

func defaultSources() map[string]string {
	return map[string]string{
		"benchmark_rates": "Treasury.gov / FRED / TradingEconomics.com",
		"funding_rates":   "CME SOFR / FRED / TradingEconomics.com",
		"fair_curves":     "Bloomberg BVAL / ICE BofA indices",
		"sofr_spreads":    "FRED / CME SOFR / Chatham Financial",
	}
}
