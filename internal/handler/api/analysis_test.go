package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"BondRV/internal/domain/models"
	"BondRV/internal/usecase"
	xlogger "BondRV/pkg/logger"

	"github.com/labstack/echo/v4"
)

type testMetrics struct{}

func (testMetrics) RecordAssessment(string)              {}
func (testMetrics) RecordBondError(string)               {}
func (testMetrics) RecordReconcileSource(string, string) {}
func (testMetrics) RecordLatency(string, float64)        {}

func fallbackBundle() models.MarketDataBundle {
	return models.MarketDataBundle{
		BenchmarkRates: map[string]float64{"T": 0.0344, "G": 0.0320},
		FundingRates:   map[string]float64{"USD": 0.0500, "CAD": 0.0450},
		SOFRSpreads: map[string]models.SOFRTenorPoint{
			"5": {TreasuryRate: 0.0400, TSOFRSpread: 0.0030},
		},
		FairCurves: map[string]float64{"USD_TECH_A": 0.0420},
	}
}

func newTestHandler() *AnalysisHandler {
	logger := xlogger.Nop()
	analyzer := usecase.NewAnalyzer(testMetrics{}, nil, logger)
	resolver := usecase.NewMarketDataResolver(nil, fallbackBundle(), testMetrics{}, logger)
	return NewAnalysisHandler(logger, analyzer, resolver, nil, map[string]string{"treasury_yields": "static"})
}

func doJSON(t *testing.T, h *AnalysisHandler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitBond(t *testing.T) {
	h := newTestHandler()
	rec := doJSON(t, h, "/api/bonds", `{
		"bond_name": "ACME 2030",
		"cpn_type": "Fixed",
		"ccy": "USD",
		"tenor": 5,
		"rating": "A",
		"sector": "TECH",
		"spread": "T+50bps"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data []models.Bond `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].CouponType != models.CouponFixed {
		t.Fatalf("unexpected bond payload: %+v", resp.Data)
	}
}

func TestSubmitBondRejectsMalformedSpread(t *testing.T) {
	h := newTestHandler()
	rec := doJSON(t, h, "/api/bonds", `{
		"bond_name": "BAD",
		"cpn_type": "Fixed",
		"ccy": "USD",
		"tenor": 5,
		"rating": "A",
		"sector": "TECH",
		"spread": "fifty over treasury"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestSubmitBondValidation(t *testing.T) {
	h := newTestHandler()
	rec := doJSON(t, h, "/api/bonds", `{"bond_name": "NO FIELDS"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestMarketDataReturnsAttribution(t *testing.T) {
	h := newTestHandler()
	rec := doJSON(t, h, "/api/marketdata", `{
		"bonds": [{
			"bond_name": "ACME 2030", "cpn_type": "Fixed", "ccy": "USD",
			"tenor": 5, "rating": "A", "sector": "TECH", "spread": "T+50bps"
		}]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.MarketDataResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Attribution.BenchmarkRates != models.SourceConfig {
		t.Fatalf("attribution = %v; want config", resp.Data.Attribution.BenchmarkRates)
	}
	if resp.Data.Sources["treasury_yields"] != "static" {
		t.Fatalf("config sources not surfaced: %v", resp.Data.Sources)
	}
	if len(resp.Data.Reviews) != 1 {
		t.Fatalf("expected one per-bond review, got %+v", resp.Data.Reviews)
	}
	review := resp.Data.Reviews[0]
	if review.SOFRSwapRate == nil || review.SOFREquivalentSpread == nil {
		t.Fatalf("treasury bond review missing derived figures: %+v", review)
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	h := newTestHandler()
	rec := doJSON(t, h, "/api/analyze", `{
		"bonds": [{
			"bond_name": "ACME 2030", "cpn_type": "Fixed", "ccy": "USD",
			"tenor": 5, "rating": "A", "sector": "TECH", "spread": "T+50bps"
		}]
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data models.AnalyzeResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Results) != 1 || resp.Data.Results[0].Result == nil {
		t.Fatalf("unexpected results: %+v", resp.Data.Results)
	}
	if resp.Data.Results[0].Result.Assessment != models.AssessmentRich {
		t.Fatalf("assessment = %q; want rich", resp.Data.Results[0].Result.Assessment)
	}
}

func TestAnalyzeRejectsDuplicateNames(t *testing.T) {
	h := newTestHandler()
	bond := `{"bond_name": "DUP", "cpn_type": "Fixed", "ccy": "USD", "tenor": 5, "rating": "A", "sector": "TECH", "spread": "T+50bps"}`
	rec := doJSON(t, h, "/api/analyze", `{"bonds": [`+bond+`,`+bond+`]}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}

func TestIngestRequiresFile(t *testing.T) {
	h := newTestHandler()
	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
}
