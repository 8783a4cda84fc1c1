package types

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// Estimation is an externally produced fair value estimate with a confidence
// weight. Confidence is nominally in [0, 1]; out-of-range values are clamped
// at point of use rather than rejected.
type Estimation struct {
	Price      optional.Option[decimal.Decimal]
	Confidence optional.Option[decimal.Decimal]
}

// IsValid reports whether the estimation is usable. An estimation without a
// price, without a confidence, or with a confidence of zero or less carries no
// information.
func (e *Estimation) IsValid() bool {
	if e.Price.IsNone() || e.Confidence.IsNone() {
		return false
	}

	return e.Confidence.Unwrap().IsPositive()
}

// ClampedConfidence returns the confidence clamped to [0, 1].
func (e *Estimation) ClampedConfidence() decimal.Decimal {
	confidence := e.Confidence.TakeOr(decimal.Zero)

	if confidence.IsNegative() {
		return decimal.Zero
	}

	one := decimal.New(1, 0)
	if confidence.GreaterThan(one) {
		return one
	}

	return confidence
}
