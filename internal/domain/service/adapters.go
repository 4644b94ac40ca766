package service

import (
	"context"

	"BondRV/internal/domain/models"
)

// IngestionResult is what the ingestion adapter extracts from one uploaded
// spreadsheet: bond records plus any subset of market data field-groups the
// file carried.
type IngestionResult struct {
	Bonds      []models.Bond
	MarketData *models.MarketDataBundle
}

// IngestionAdapter turns an uploaded spreadsheet into structured records.
// Parsing internals (sheet handling, prompting) are the adapter's concern;
// the core only depends on the record shapes.
type IngestionAdapter interface {
	Parse(ctx context.Context, filename string, content []byte) (*IngestionResult, error)
}

// RealtimeSnapshot is a partial market data bundle fetched from live sources,
// with a free-text source description per field-group (e.g. "FRED",
// "CME SOFR") for display.
type RealtimeSnapshot struct {
	Data    models.MarketDataBundle
	Sources map[string]string
}

// RealtimeProvider fetches current benchmark, funding, SOFR, and curve data
// for the currencies and tenors a bond batch needs. Timeouts and cancellation
// are the provider's responsibility.
type RealtimeProvider interface {
	Fetch(ctx context.Context, bonds []models.Bond) (*RealtimeSnapshot, error)
}
