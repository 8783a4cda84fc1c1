package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/pkg/errors"
	"github.com/shopspring/decimal"
)

// Request carries the per-cycle trading parameters for one (site, instrument)
// pair. It is built fresh each cycle by the scheduler and never mutated by the
// pipeline.
type Request struct {
	// Site is the venue identifier, e.g. "bitflyer".
	Site string `validate:"required"`
	// Instrument is the traded product on the venue, e.g. "BTC_JPY".
	Instrument string `validate:"required"`
	// CurrentTime is the wall clock time the cycle started.
	CurrentTime time.Time
	// TargetTime is the point in time market data lookups are keyed on.
	TargetTime time.Time `validate:"required"`
	// TradingSpread is the discount/premium applied to the weighed price.
	TradingSpread optional.Option[decimal.Decimal]
	// TradingExposure is the fraction of balance/position risked per cycle.
	TradingExposure optional.Option[decimal.Decimal]
	// TradingSplit is the ladder depth. Values below one are treated as one.
	TradingSplit int64 `validate:"gte=1"`
	// FundingCurrency is the quote currency used to buy the instrument.
	FundingCurrency string
}

// Key strips the trading parameters and returns the market data lookup key.
func (r *Request) Key() Key {
	return Key{
		Site:       r.Site,
		Instrument: r.Instrument,
		Timestamp:  r.TargetTime,
	}
}

// Validate reports whether the request carries everything a trading cycle
// needs. Site, instrument, target time, spread, exposure and split must all be
// present.
func (r *Request) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request", err)
	}

	if r.TradingSpread.IsNone() {
		return errors.New(errors.ErrCodeMissingParameter, "request is missing a trading spread")
	}

	if r.TradingExposure.IsNone() {
		return errors.New(errors.ErrCodeMissingParameter, "request is missing a trading exposure")
	}

	return nil
}
