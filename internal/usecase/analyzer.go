package usecase

import (
	"context"
	"fmt"
	"time"

	"BondRV/internal/domain/models"
	domrepo "BondRV/internal/domain/repository"
	"BondRV/internal/services/normalize"
	xlogger "BondRV/pkg/logger"
)

// Decision thresholds in basis points. Excess yield strictly above the cheap
// threshold is a buy, strictly below the rich threshold a pass; the band
// between them, inclusive of the bounds, is fair.
const (
	cheapThresholdBps = 5.0
	richThresholdBps  = -5.0
)

// Classify maps an excess yield in basis points onto the assessment label.
func Classify(excessYieldBps float64) models.Assessment {
	switch {
	case excessYieldBps > cheapThresholdBps:
		return models.AssessmentCheap
	case excessYieldBps < richThresholdBps:
		return models.AssessmentRich
	default:
		return models.AssessmentFair
	}
}

// Analyzer runs the relative value pipeline over a batch of bonds: resolve
// the fair curve entry, normalize the offered yield to USD-hedged terms,
// hedge the fair yield the same way, and classify the difference.
type Analyzer struct {
	metrics   domrepo.Metrics
	publisher domrepo.Publisher
	logger    *xlogger.Logger
}

func NewAnalyzer(metrics domrepo.Metrics, publisher domrepo.Publisher, logger *xlogger.Logger) *Analyzer {
	return &Analyzer{metrics: metrics, publisher: publisher, logger: logger}
}

// Analyze processes the batch. Bonds are independent: one bond's failure is
// recorded as a per-bond error and never blocks the others. The only
// batch-fatal condition is a structurally invalid bond list (duplicate
// names), which fails before any per-bond work starts.
//
// The returned slice preserves input order and holds exactly one outcome per
// bond.
func (a *Analyzer) Analyze(ctx context.Context, bonds []models.Bond, md models.MarketDataBundle, attr models.Attribution) ([]models.BondOutcome, error) {
	start := time.Now()

	seen := make(map[string]struct{}, len(bonds))
	for _, b := range bonds {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("duplicate bond name %q in batch", b.Name)
		}
		seen[b.Name] = struct{}{}
	}

	outcomes := make([]models.BondOutcome, 0, len(bonds))
	for _, bond := range bonds {
		res, err := a.analyzeOne(bond, md, attr)
		if err != nil {
			perBond := models.NewPerBondError(bond.Name, err)
			a.metrics.RecordBondError(perBond.Kind)
			a.logger.Warn("bond analysis failed",
				xlogger.String("bond", bond.Name),
				xlogger.String("kind", perBond.Kind),
				xlogger.Error(err),
			)
			outcomes = append(outcomes, models.BondOutcome{Err: perBond})
			continue
		}

		a.metrics.RecordAssessment(string(res.Assessment))
		outcomes = append(outcomes, models.BondOutcome{Result: res})
	}

	a.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	a.publish(ctx, outcomes)
	return outcomes, nil
}

func (a *Analyzer) analyzeOne(bond models.Bond, md models.MarketDataBundle, attr models.Attribution) (*models.AssessmentResult, error) {
	curveKey := bond.CurveKey()
	fairLocal, ok := md.FairCurves[curveKey]
	if !ok {
		return nil, &models.MissingCurveError{Key: curveKey}
	}

	localYield, err := normalize.LocalYield(bond, md)
	if err != nil {
		return nil, err
	}

	offeredHedged, fxCost, err := normalize.USDHedgedYield(localYield, bond.Currency, md.FundingRates)
	if err != nil {
		return nil, err
	}

	// The curve entry is a local benchmark yield for the bond's currency;
	// hedge it through the same transform before comparing.
	fairHedged, _, err := normalize.USDHedgedYield(fairLocal, bond.Currency, md.FundingRates)
	if err != nil {
		return nil, err
	}

	excessBps := (offeredHedged - fairHedged) * normalize.BpsPerUnit

	return &models.AssessmentResult{
		BondName:           bond.Name,
		Currency:           bond.Currency,
		Rating:             bond.Rating,
		Sector:             bond.Sector,
		OfferedSpread:      bond.Spread,
		OfferedLocalYield:  localYield,
		OfferedHedgedYield: offeredHedged,
		FairHedgedYield:    fairHedged,
		ExcessYieldBps:     excessBps,
		FXHedgeCostBps:     fxCost * normalize.BpsPerUnit,
		Assessment:         Classify(excessBps),
		Sources:            attr,
	}, nil
}

// publish emits successful assessments to the event stream when a publisher
// is configured. Publish failures are logged, never surfaced to the caller.
func (a *Analyzer) publish(ctx context.Context, outcomes []models.BondOutcome) {
	if a.publisher == nil {
		return
	}
	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		if err := a.publisher.Publish(ctx, o.Result.BondName, o.Result); err != nil {
			a.logger.Warn("assessment publish failed",
				xlogger.String("bond", o.Result.BondName),
				xlogger.Error(err),
			)
		}
	}
}
