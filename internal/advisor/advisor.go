// Package advisor turns a fair value estimate and the live quote into a
// concrete limit price and size per side. Missing market inputs degrade to "no
// action" on the affected side; the advisor never returns an error.
package advisor

import (
	"context"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/market"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// epsilon is the smallest price nudge used to keep proposed orders strictly
// inside the book.
var epsilon = decimal.New(1, -12)

// Advisor computes Advice from an Estimation and the current market state.
type Advisor struct {
	logger *logger.Logger
}

// NewAdvisor creates an Advisor.
func NewAdvisor(log *logger.Logger) *Advisor {
	return &Advisor{
		logger: log,
	}
}

// Advise computes the buy and sell proposals for one cycle. An invalid request
// or estimation yields an empty Advice.
func (a *Advisor) Advise(ctx context.Context, mkt market.Context, request *types.Request, estimation *types.Estimation) types.Advice {
	if request == nil || request.Validate() != nil || estimation == nil || !estimation.IsValid() {
		return types.Advice{}
	}

	key := request.Key()
	spread := request.TradingSpread.Unwrap()
	exposure := request.TradingExposure.Unwrap()

	buyPrice := a.buyPrice(ctx, mkt, key, estimation, spread)
	sellPrice := a.sellPrice(ctx, mkt, key, estimation, spread)
	buySize := a.buySize(ctx, mkt, key, buyPrice, exposure)
	sellSize := a.sellSize(ctx, mkt, key, exposure)

	advice := types.Advice{
		BuyLimitPrice:  buyPrice,
		BuyLimitSize:   buySize,
		SellLimitPrice: sellPrice,
		SellLimitSize:  sellSize,
	}

	a.logger.Debug("advice computed",
		zap.String("site", request.Site),
		zap.String("instrument", request.Instrument),
		zap.String("buy_price", describe(buyPrice)),
		zap.String("buy_size", describe(buySize)),
		zap.String("sell_price", describe(sellPrice)),
		zap.String("sell_size", describe(sellSize)),
	)

	return advice
}

// buyPrice blends the market mid with the estimate by confidence, caps the
// result strictly below the best ask, applies the spread discount and rounds
// down to tick.
func (a *Advisor) buyPrice(ctx context.Context, mkt market.Context, key types.Key, estimation *types.Estimation, spread decimal.Decimal) optional.Option[decimal.Decimal] {
	mid := read(mkt.MidPrice)(ctx, key)
	ask := read(mkt.BestAskPrice)(ctx, key)

	if mid.IsNone() || ask.IsNone() {
		return optional.None[decimal.Decimal]()
	}

	weighed := weigh(mid.Unwrap(), estimation)

	ceiling := ask.Unwrap().Sub(epsilon)
	if weighed.GreaterThan(ceiling) {
		weighed = ceiling
	}

	one := decimal.New(1, 0)
	adjusted := weighed.Mul(one.Sub(spread))

	rounded, err := mkt.RoundTickSize(ctx, key, adjusted, types.RoundDown)
	if err != nil {
		return optional.None[decimal.Decimal]()
	}

	return rounded
}

// sellPrice is the mirror image: floored strictly above the best bid, spread
// applied as a premium, rounded up to tick.
func (a *Advisor) sellPrice(ctx context.Context, mkt market.Context, key types.Key, estimation *types.Estimation, spread decimal.Decimal) optional.Option[decimal.Decimal] {
	mid := read(mkt.MidPrice)(ctx, key)
	bid := read(mkt.BestBidPrice)(ctx, key)

	if mid.IsNone() || bid.IsNone() {
		return optional.None[decimal.Decimal]()
	}

	weighed := weigh(mid.Unwrap(), estimation)

	floor := bid.Unwrap().Add(epsilon)
	if weighed.LessThan(floor) {
		weighed = floor
	}

	one := decimal.New(1, 0)
	adjusted := weighed.Mul(one.Add(spread))

	rounded, err := mkt.RoundTickSize(ctx, key, adjusted, types.RoundUp)
	if err != nil {
		return optional.None[decimal.Decimal]()
	}

	return rounded
}

// buySize converts the funding balance into an instrument size at the buy
// price, scaled by exposure and rounded down to lot.
func (a *Advisor) buySize(ctx context.Context, mkt market.Context, key types.Key, buyPrice optional.Option[decimal.Decimal], exposure decimal.Decimal) optional.Option[decimal.Decimal] {
	if buyPrice.IsNone() || buyPrice.Unwrap().IsZero() {
		return optional.None[decimal.Decimal]()
	}

	funding := read(mkt.FundingPosition)(ctx, key)
	if funding.IsNone() {
		return optional.Some(decimal.Zero)
	}

	raw := funding.Unwrap().Div(buyPrice.Unwrap()).Mul(exposure)

	rounded, err := mkt.RoundLotSize(ctx, key, raw, types.RoundDown)
	if err != nil || rounded.IsNone() {
		return optional.Some(decimal.Zero)
	}

	return rounded
}

// sellSize scales the instrument position by exposure and rounds the
// magnitude down to lot, preserving the sign of the position.
func (a *Advisor) sellSize(ctx context.Context, mkt market.Context, key types.Key, exposure decimal.Decimal) optional.Option[decimal.Decimal] {
	position := read(mkt.InstrumentPosition)(ctx, key)
	if position.IsNone() || position.Unwrap().IsZero() {
		return optional.Some(decimal.Zero)
	}

	raw := position.Unwrap().Mul(exposure)

	rounded, err := mkt.RoundLotSize(ctx, key, raw.Abs(), types.RoundDown)
	if err != nil || rounded.IsNone() {
		return optional.Some(decimal.Zero)
	}

	if raw.IsNegative() {
		return optional.Some(rounded.Unwrap().Neg())
	}

	return rounded
}

// weigh interpolates between the market mid and the estimate: confidence zero
// trusts the market, confidence one trusts the model.
func weigh(mid decimal.Decimal, estimation *types.Estimation) decimal.Decimal {
	confidence := estimation.ClampedConfidence()
	estimate := estimation.Price.Unwrap()

	one := decimal.New(1, 0)

	return mid.Mul(one.Sub(confidence)).Add(estimate.Mul(confidence))
}

// read adapts a Context getter into a soft-failing lookup: an error is folded
// into None.
func read(get func(context.Context, types.Key) (optional.Option[decimal.Decimal], error)) func(context.Context, types.Key) optional.Option[decimal.Decimal] {
	return func(ctx context.Context, key types.Key) optional.Option[decimal.Decimal] {
		value, err := get(ctx, key)
		if err != nil {
			return optional.None[decimal.Decimal]()
		}

		return value
	}
}

// describe renders an optional decimal for logging.
func describe(value optional.Option[decimal.Decimal]) string {
	if value.IsNone() {
		return "none"
	}

	return value.Unwrap().String()
}
