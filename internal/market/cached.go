package market

import (
	"context"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/cache"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
)

// CachedContext wraps a raw venue Context with the memoization layer. Every
// read goes through the cache; a failing underlying call surfaces as None (or
// an empty collection) with a nil error, so venue flakiness never escapes as
// an error to the pipeline. Writes and rounding calls pass straight through to
// the venue, though rounding errors are absorbed the same way.
type CachedContext struct {
	underlying Context
	cache      *cache.Cache
}

// NewCachedContext wraps the given venue Context with the given cache.
func NewCachedContext(underlying Context, c *cache.Cache) *CachedContext {
	return &CachedContext{
		underlying: underlying,
		cache:      c,
	}
}

// BestAskPrice implements Context.
func (c *CachedContext) BestAskPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagBestAskPrice, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.BestAskPrice(ctx, key)
	}), nil
}

// BestBidPrice implements Context.
func (c *CachedContext) BestBidPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagBestBidPrice, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.BestBidPrice(ctx, key)
	}), nil
}

// BestAskSize implements Context.
func (c *CachedContext) BestAskSize(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagBestAskSize, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.BestAskSize(ctx, key)
	}), nil
}

// BestBidSize implements Context.
func (c *CachedContext) BestBidSize(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagBestBidSize, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.BestBidSize(ctx, key)
	}), nil
}

// MidPrice implements Context.
func (c *CachedContext) MidPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagMidPrice, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.MidPrice(ctx, key)
	}), nil
}

// LastPrice implements Context.
func (c *CachedContext) LastPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagLastPrice, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.LastPrice(ctx, key)
	}), nil
}

// AskPrices implements Context.
func (c *CachedContext) AskPrices(ctx context.Context, key types.Key) (optional.Option[[]types.BookLevel], error) {
	return cache.Single(ctx, c.cache, cache.TagAskPrices, key, "", func(ctx context.Context) (optional.Option[[]types.BookLevel], error) {
		return c.underlying.AskPrices(ctx, key)
	}), nil
}

// BidPrices implements Context.
func (c *CachedContext) BidPrices(ctx context.Context, key types.Key) (optional.Option[[]types.BookLevel], error) {
	return cache.Single(ctx, c.cache, cache.TagBidPrices, key, "", func(ctx context.Context) (optional.Option[[]types.BookLevel], error) {
		return c.underlying.BidPrices(ctx, key)
	}), nil
}

// InstrumentPosition implements Context.
func (c *CachedContext) InstrumentPosition(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagInstrumentPosition, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.InstrumentPosition(ctx, key)
	}), nil
}

// FundingPosition implements Context.
func (c *CachedContext) FundingPosition(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagFundingPosition, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.FundingPosition(ctx, key)
	}), nil
}

// RoundLotSize implements Context. Rounding is pure so it is not cached, but a
// venue failure is still absorbed as None.
func (c *CachedContext) RoundLotSize(ctx context.Context, key types.Key, value decimal.Decimal, mode types.RoundingMode) (optional.Option[decimal.Decimal], error) {
	rounded, err := c.underlying.RoundLotSize(ctx, key, value, mode)
	if err != nil {
		return optional.None[decimal.Decimal](), nil
	}

	return rounded, nil
}

// RoundTickSize implements Context.
func (c *CachedContext) RoundTickSize(ctx context.Context, key types.Key, value decimal.Decimal, mode types.RoundingMode) (optional.Option[decimal.Decimal], error) {
	rounded, err := c.underlying.RoundTickSize(ctx, key, value, mode)
	if err != nil {
		return optional.None[decimal.Decimal](), nil
	}

	return rounded, nil
}

// CommissionRate implements Context.
func (c *CachedContext) CommissionRate(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error) {
	return cache.Single(ctx, c.cache, cache.TagCommissionRate, key, "", func(ctx context.Context) (optional.Option[decimal.Decimal], error) {
		return c.underlying.CommissionRate(ctx, key)
	}), nil
}

// FindOrder implements Context.
func (c *CachedContext) FindOrder(ctx context.Context, key types.Key, id string) (optional.Option[types.Order], error) {
	return cache.Single(ctx, c.cache, cache.TagOrder, key, id, func(ctx context.Context) (optional.Option[types.Order], error) {
		return c.underlying.FindOrder(ctx, key, id)
	}), nil
}

// ListActiveOrders implements Context.
func (c *CachedContext) ListActiveOrders(ctx context.Context, key types.Key) ([]types.Order, error) {
	return cache.List(ctx, c.cache, cache.TagActiveOrders, key, "", func(ctx context.Context) ([]types.Order, error) {
		return c.underlying.ListActiveOrders(ctx, key)
	}), nil
}

// ListExecutions implements Context.
func (c *CachedContext) ListExecutions(ctx context.Context, key types.Key) ([]types.Execution, error) {
	return cache.List(ctx, c.cache, cache.TagExecutions, key, "", func(ctx context.Context) ([]types.Execution, error) {
		return c.underlying.ListExecutions(ctx, key)
	}), nil
}

// CreateOrder implements Context. Writes are never cached.
func (c *CachedContext) CreateOrder(ctx context.Context, key types.Key, instruction *types.CreateInstruction) (optional.Option[string], error) {
	return c.underlying.CreateOrder(ctx, key, instruction)
}

// CancelOrder implements Context. Writes are never cached.
func (c *CachedContext) CancelOrder(ctx context.Context, key types.Key, instruction *types.CancelInstruction) (optional.Option[string], error) {
	return c.underlying.CancelOrder(ctx, key, instruction)
}
