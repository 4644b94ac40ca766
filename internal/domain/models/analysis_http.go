package models

// Requests and responses for the analysis HTTP endpoints. Defined in domain
// for consistency and reuse.

// BondRequest is one bond as submitted manually or carried between workflow
// steps. Tenor arrives in years; spread in the CODE+/-Nbps notation.
type BondRequest struct {
	BondName string  `json:"bond_name" form:"bondName" validate:"required"`
	CpnType  string  `json:"cpn_type" form:"cpnType" default:"Fixed" validate:"required"`
	CCY      string  `json:"ccy" form:"ccy" validate:"required,alpha,len=3"`
	Tenor    float64 `json:"tenor" form:"tenor" validate:"required,gt=0"`
	Rating   string  `json:"rating" form:"rating" validate:"required"`
	Sector   string  `json:"sector" form:"sector" validate:"required"`
	Spread   string  `json:"spread" form:"spread" validate:"required"`
}

// Bond converts the request into the immutable domain record.
func (r BondRequest) Bond() Bond {
	return Bond{
		Name:       r.BondName,
		CouponType: NormalizeCouponType(r.CpnType),
		Currency:   r.CCY,
		Tenor:      r.Tenor,
		Rating:     r.Rating,
		Sector:     r.Sector,
		Spread:     r.Spread,
	}
}

// MarketDataRequest asks for a consolidated market data bundle for review
// before analysis. MarketData carries whatever field-groups the uploaded file
// supplied; UseRealtime selects the online fetch as the top precedence layer.
type MarketDataRequest struct {
	Bonds []BondRequest `json:"bonds" validate:"required,min=1,dive"`
	// UseRealtime is a pointer so an explicit false survives defaulting.
	UseRealtime *bool             `json:"use_realtime,omitempty" default:"true"`
	MarketData  *MarketDataBundle `json:"market_data,omitempty"`
}

// Realtime reports whether the online fetch should run; absent means yes.
func (r MarketDataRequest) Realtime() bool {
	return r.UseRealtime == nil || *r.UseRealtime
}

// MarketDataResponse returns the reconciled bundle together with per
// field-group attribution, free-text source descriptions, and the per-bond
// derived figures shown on the review step.
type MarketDataResponse struct {
	MarketData  MarketDataBundle  `json:"market_data"`
	Attribution Attribution       `json:"attribution"`
	Sources     map[string]string `json:"sources,omitempty"`
	Reviews     []BondReview      `json:"reviews"`
}

// BondReview carries the derived figures for one bond on the market data
// review step. Yields and spreads are decimal fractions except SpreadBps.
// Pointer fields are nil when the figure does not apply to the bond or its
// inputs are missing from the bundle.
type BondReview struct {
	BondName  string  `json:"bond_name"`
	Benchmark string  `json:"benchmark,omitempty"`
	SpreadBps float64 `json:"spread_bps"`
	// SOFRSwapRate is the swap rate for the bond's tenor.
	SOFRSwapRate *float64 `json:"sofr_swap_rate,omitempty"`
	// SOFREquivalentSpread is the bond's spread restated over SOFR; for a
	// floater it is anchored on a comparable treasury-quoted fixed bond.
	SOFREquivalentSpread *float64 `json:"sofr_equivalent_spread,omitempty"`
	// SOFREquivalentYield is the all-in yield implied by that spread.
	SOFREquivalentYield *float64 `json:"sofr_equivalent_yield,omitempty"`
	// FixedEquivalentYield restates a floater's coupon as a fixed yield.
	FixedEquivalentYield *float64      `json:"fixed_equivalent_yield,omitempty"`
	Err                  *PerBondError `json:"error,omitempty"`
}

// AnalyzeRequest runs the relative value pipeline over a batch of bonds.
// MarketData is the (typically user-reviewed) bundle from the market data
// step; missing field-groups fall back to static configuration.
type AnalyzeRequest struct {
	Bonds      []BondRequest     `json:"bonds" validate:"required,min=1,dive"`
	MarketData *MarketDataBundle `json:"market_data,omitempty"`
}

// AnalyzeResponse is the ordered per-bond outcome list.
type AnalyzeResponse struct {
	Results     []BondOutcome `json:"results"`
	Attribution Attribution   `json:"attribution"`
}

// IngestResponse is what the ingestion adapter extracted from an uploaded
// spreadsheet: bond records plus any market data field-groups found in it.
type IngestResponse struct {
	Bonds      []Bond            `json:"bonds"`
	MarketData *MarketDataBundle `json:"market_data,omitempty"`
}
