package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"BondRV/internal/domain/models"
	domsvc "BondRV/internal/domain/service"
	xlogger "BondRV/pkg/logger"
)

// textExcerptLimit bounds how much raw text of a CSV file is embedded in the
// prompt; anything larger is truncated rather than rejected so market data
// tables near the top still parse.
const textExcerptLimit = 20000

// Ingestion extracts bond records and market data tables from uploaded
// spreadsheets via the Gemini API.
type Ingestion struct {
	client *Client
	logger *xlogger.Logger
}

func NewIngestion(client *Client, logger *xlogger.Logger) *Ingestion {
	return &Ingestion{client: client, logger: logger}
}

var _ domsvc.IngestionAdapter = (*Ingestion)(nil)

type ingestionPayload struct {
	Bonds []struct {
		BondName string  `json:"bond_name"`
		CpnType  string  `json:"cpn_type"`
		CCY      string  `json:"ccy"`
		Tenor    float64 `json:"tenor"`
		Rating   string  `json:"rating"`
		Sector   string  `json:"sector"`
		Spread   string  `json:"spread"`
	} `json:"bonds"`
	marketDataPayload
}

// Parse sends the file to the model and maps the extracted records into
// domain shapes. CSV and plain text go inline in the prompt; binary
// spreadsheet formats are attached base64-encoded.
func (s *Ingestion) Parse(ctx context.Context, filename string, fileContent []byte) (*domsvc.IngestionResult, error) {
	prompt, attachment := s.buildRequest(filename, fileContent)

	var payload ingestionPayload
	if err := s.client.GenerateJSON(ctx, prompt, attachment, &payload); err != nil {
		return nil, fmt.Errorf("ingest %s: %w", filename, err)
	}

	bonds := make([]models.Bond, 0, len(payload.Bonds))
	for _, b := range payload.Bonds {
		bonds = append(bonds, models.Bond{
			Name:       b.BondName,
			CouponType: models.NormalizeCouponType(b.CpnType),
			Currency:   strings.ToUpper(b.CCY),
			Tenor:      b.Tenor,
			Rating:     strings.ToUpper(b.Rating),
			Sector:     strings.ToUpper(b.Sector),
			Spread:     b.Spread,
		})
	}

	result := &domsvc.IngestionResult{Bonds: bonds}
	if md := payload.toBundle(); !md.IsEmpty() {
		result.MarketData = &md
	}

	s.logger.Info("spreadsheet ingested",
		xlogger.String("file", filename),
		xlogger.Int("bonds", len(bonds)),
	)
	return result, nil
}

func (s *Ingestion) buildRequest(filename string, fileContent []byte) (string, *inlineData) {
	var sb strings.Builder
	sb.WriteString(`You are a financial data extraction API. Extract bond records and market data tables from the attached spreadsheet and return ONLY JSON with this shape:
{
  "bonds": [{"bond_name": "", "cpn_type": "Fixed|Float", "ccy": "USD", "tenor": 1, "rating": "A", "sector": "Tech", "spread": "T+50bps"}],
  "benchmark_rates": {"T": 0.0344},
  "funding_rates": {"USD": 0.05},
  "fair_value_curves": {"USD_TECH": {"A": 0.042}},
  "sofr_spread_data": {"1": {"treasury_rate": 0.0344, "t_sofr_spread": 0.0025}},
  "sources": {}
}
Rules: search ALL sheets; spreads must use the BENCHMARK+/-XXbps notation; rates as decimals where the file gives decimals, otherwise keep the file's percent values; return empty objects for sections the file does not contain.
`)

	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".txt") {
		text := string(fileContent)
		if len(text) > textExcerptLimit {
			cut := textExcerptLimit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
			text = text[:cut]
		}
		sb.WriteString("\nFILE CONTENT:\n")
		sb.WriteString(text)
		return sb.String(), nil
	}

	mime := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if strings.HasSuffix(lower, ".xls") {
		mime = "application/vnd.ms-excel"
	}
	return sb.String(), &inlineData{
		MimeType: mime,
		Data:     base64.StdEncoding.EncodeToString(fileContent),
	}
}
