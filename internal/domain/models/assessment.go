package models

// Assessment is the rich/cheap/fair label assigned to a bond.
type Assessment string

const (
	AssessmentCheap Assessment = "Cheap (BUY)"
	AssessmentFair  Assessment = "Fair (HOLD)"
	AssessmentRich  Assessment = "Rich (PASS)"
)

// AssessmentResult is the per-bond output of a successful analysis. Yields are
// decimal fractions except the explicitly *_bps fields.
type AssessmentResult struct {
	BondName           string      `json:"bond_name"`
	Currency           string      `json:"ccy"`
	Rating             string      `json:"rating"`
	Sector             string      `json:"sector"`
	OfferedSpread      string      `json:"offered_spread"`
	OfferedLocalYield  float64     `json:"offered_local_yield"`
	OfferedHedgedYield float64     `json:"offered_hedged_yield"`
	FairHedgedYield    float64     `json:"fair_hedged_yield"`
	ExcessYieldBps     float64     `json:"excess_yield_bps"`
	FXHedgeCostBps     float64     `json:"fx_hedge_cost_bps"`
	Assessment         Assessment  `json:"assessment"`
	Sources            Attribution `json:"sources"`
}

// PerBondError is a failure local to one bond. It never aborts the batch.
type PerBondError struct {
	BondName string `json:"bond_name"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

// BondOutcome is the result-or-error sum for one bond in a batch. Exactly one
// of Result and Err is set.
type BondOutcome struct {
	Result *AssessmentResult `json:"result,omitempty"`
	Err    *PerBondError     `json:"error,omitempty"`
}
