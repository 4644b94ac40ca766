package api

import (
	"fmt"
	"io"

	"BondRV/internal/domain/models"
	domsvc "BondRV/internal/domain/service"
	"BondRV/internal/services/normalize"
	"BondRV/internal/usecase"
	xhttp "BondRV/pkg/http"
	xlogger "BondRV/pkg/logger"

	"github.com/labstack/echo/v4"
)

// maxUploadBytes bounds spreadsheet uploads.
const maxUploadBytes = 10 << 20

// AnalysisHandler exposes the bond relative value workflow: manual entry,
// spreadsheet ingestion, market data review, and analysis.
type AnalysisHandler struct {
	logger        *xlogger.Logger
	analyzer      *usecase.Analyzer
	resolver      *usecase.MarketDataResolver
	ingestion     domsvc.IngestionAdapter
	configSources map[string]string
}

func NewAnalysisHandler(
	logger *xlogger.Logger,
	analyzer *usecase.Analyzer,
	resolver *usecase.MarketDataResolver,
	ingestion domsvc.IngestionAdapter,
	configSources map[string]string,
) *AnalysisHandler {
	return &AnalysisHandler{
		logger:        logger,
		analyzer:      analyzer,
		resolver:      resolver,
		ingestion:     ingestion,
		configSources: configSources,
	}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/bonds", h.SubmitBond)
	g.POST("/ingest", h.Ingest)
	g.POST("/marketdata", h.MarketData)
	g.POST("/analyze", h.Analyze)
}

// SubmitBond handles manual single-bond entry. The spread format is checked
// eagerly here so the user gets immediate feedback; batch analysis defers the
// same check to per-bond errors instead.
func (h *AnalysisHandler) SubmitBond(c echo.Context) error {
	req := &models.BondRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if _, _, err := normalize.ParseSpread(req.Spread); err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}

	bond := req.Bond()
	if bond.CouponType != models.CouponFixed && bond.CouponType != models.CouponFloat {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("cpn_type must be Fixed or Float, got %q", req.CpnType))
	}

	h.logger.Info("manual bond submitted",
		xlogger.String("bond", bond.Name),
		xlogger.String("spread", bond.Spread),
	)
	return xhttp.SuccessResponse(c, []models.Bond{bond})
}

// Ingest accepts a multipart spreadsheet upload and returns the extracted
// bonds and market data.
func (h *AnalysisHandler) Ingest(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("no 'file' part in the request"))
	}
	if fh.Size == 0 {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("uploaded file is empty"))
	}
	if fh.Size > maxUploadBytes {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("file exceeds %d bytes", maxUploadBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not open upload").WithError(err))
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not read upload").WithError(err))
	}

	result, err := h.ingestion.Parse(c.Request().Context(), fh.Filename, content)
	if err != nil {
		h.logger.Error("ingestion failed", xlogger.String("file", fh.Filename), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(fmt.Sprintf("could not parse %s", fh.Filename)).WithError(err))
	}

	return xhttp.SuccessResponse(c, models.IngestResponse{
		Bonds:      result.Bonds,
		MarketData: result.MarketData,
	})
}

// MarketData resolves the consolidated bundle for a bond batch so the user
// can review rates before running the analysis.
func (h *AnalysisHandler) MarketData(c echo.Context) error {
	req := &models.MarketDataRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	bonds := toBonds(req.Bonds)
	bundle, attr, sources := h.resolver.Resolve(c.Request().Context(), bonds, req.MarketData, req.Realtime())
	if sources == nil {
		sources = h.configSources
	}

	return xhttp.SuccessResponse(c, models.MarketDataResponse{
		MarketData:  bundle,
		Attribution: attr,
		Sources:     sources,
		Reviews:     usecase.ReviewBonds(bonds, bundle),
	})
}

// Analyze runs the relative value pipeline. The reviewed bundle from the
// market data step takes precedence as file-layer data; anything it misses
// falls back to static configuration. Per-bond failures come back inside the
// result list; only a structurally invalid batch fails the call.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	bonds := toBonds(req.Bonds)
	bundle, attr, _ := h.resolver.Resolve(c.Request().Context(), bonds, req.MarketData, false)

	results, err := h.analyzer.Analyze(c.Request().Context(), bonds, bundle, attr)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	}

	return xhttp.SuccessResponse(c, models.AnalyzeResponse{
		Results:     results,
		Attribution: attr,
	})
}

func toBonds(reqs []models.BondRequest) []models.Bond {
	bonds := make([]models.Bond, 0, len(reqs))
	for _, r := range reqs {
		bonds = append(bonds, r.Bond())
	}
	return bonds
}
