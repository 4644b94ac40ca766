package models

import (
	"errors"
	"fmt"
)

// Error kinds reported in PerBondError.Kind.
const (
	KindMissingRate     = "MissingRateError"
	KindMissingCurve    = "MissingCurveError"
	KindMalformedSpread = "MalformedSpreadError"
	KindInternal        = "InternalError"
)

// MissingRateError indicates a benchmark, funding, or SOFR rate required by a
// computation is absent from the resolved bundle. The engine never substitutes
// zero for a missing rate.
type MissingRateError struct {
	Group string // "benchmark" | "funding" | "sofr"
	Key   string
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("%s rate not found for key %q", e.Group, e.Key)
}

// MissingCurveError indicates no fair-value curve entry exists for a bond's
// currency/sector/rating triple.
type MissingCurveError struct {
	Key string
}

func (e *MissingCurveError) Error() string {
	return fmt.Sprintf("fair value curve not found for %q", e.Key)
}

// MalformedSpreadError indicates a spread specification that does not parse as
// CODE+/-Nbps.
type MalformedSpreadError struct {
	Spread string
}

func (e *MalformedSpreadError) Error() string {
	return fmt.Sprintf("invalid spread format %q: expected 'BENCHMARK+/-XXbps' (e.g. 'T+50bps', 'S+25bps')", e.Spread)
}

// ErrorKind classifies an error into one of the per-bond error kinds.
func ErrorKind(err error) string {
	var rate *MissingRateError
	if errors.As(err, &rate) {
		return KindMissingRate
	}
	var curve *MissingCurveError
	if errors.As(err, &curve) {
		return KindMissingCurve
	}
	var spread *MalformedSpreadError
	if errors.As(err, &spread) {
		return KindMalformedSpread
	}
	return KindInternal
}

// NewPerBondError wraps an error into the per-bond error record.
func NewPerBondError(bondName string, err error) *PerBondError {
	return &PerBondError{
		BondName: bondName,
		Kind:     ErrorKind(err),
		Message:  err.Error(),
	}
}
