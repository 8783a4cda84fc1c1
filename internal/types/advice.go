package types

import (
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// Advice is the advisor's proposal for one cycle: a limit price and size per
// side. An absent or zero size means "do nothing on that side". Sizes are
// magnitudes; the side is carried by the field, not the sign. Advice lives for
// one cycle and is never persisted.
type Advice struct {
	BuyLimitPrice  optional.Option[decimal.Decimal]
	BuyLimitSize   optional.Option[decimal.Decimal]
	SellLimitPrice optional.Option[decimal.Decimal]
	SellLimitSize  optional.Option[decimal.Decimal]
}

// HasBuy reports whether the advice proposes a buy order.
func (a *Advice) HasBuy() bool {
	return a.BuyLimitPrice.IsSome() && a.BuyLimitSize.IsSome() && !a.BuyLimitSize.Unwrap().IsZero()
}

// HasSell reports whether the advice proposes a sell order.
func (a *Advice) HasSell() bool {
	return a.SellLimitPrice.IsSome() && a.SellLimitSize.IsSome() && !a.SellLimitSize.Unwrap().IsZero()
}
