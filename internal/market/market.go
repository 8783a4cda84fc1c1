// Package market defines the venue adapter contract the pipeline trades
// through. One Context implementation exists per venue; each translates the
// venue's wire format into the common model. Every read returns an Option so
// "unknown/unavailable" is representable without an exception path; errors
// carry transport failures and are absorbed by the cached wrapper.
package market

import (
	"context"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
)

// Context is the uniform read/write interface over one venue.
//
// All methods may return None or an error to signal that the venue could not
// answer; callers must treat both as a soft failure, never a crash. Venue-side
// signing or nonce state must be serialized by the implementation itself; the
// pipeline issues calls without assuming venue thread safety.
type Context interface {
	// BestAskPrice returns the lowest resting sell price.
	BestAskPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// BestBidPrice returns the highest resting buy price.
	BestBidPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// BestAskSize returns the size resting at the best ask.
	BestAskSize(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// BestBidSize returns the size resting at the best bid.
	BestBidSize(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// MidPrice returns the midpoint between best bid and best ask.
	MidPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// LastPrice returns the price of the most recent trade.
	LastPrice(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// AskPrices returns the sell side of the book, best first.
	AskPrices(ctx context.Context, key types.Key) (optional.Option[[]types.BookLevel], error)
	// BidPrices returns the buy side of the book, best first.
	BidPrices(ctx context.Context, key types.Key) (optional.Option[[]types.BookLevel], error)

	// InstrumentPosition returns the signed position held in the instrument.
	InstrumentPosition(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)
	// FundingPosition returns the balance available in the funding currency.
	FundingPosition(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)

	// RoundLotSize rounds value to the venue's lot size in the given direction.
	RoundLotSize(ctx context.Context, key types.Key, value decimal.Decimal, mode types.RoundingMode) (optional.Option[decimal.Decimal], error)
	// RoundTickSize rounds value to the venue's tick size in the given direction.
	RoundTickSize(ctx context.Context, key types.Key, value decimal.Decimal, mode types.RoundingMode) (optional.Option[decimal.Decimal], error)
	// CommissionRate returns the venue's taker commission rate.
	CommissionRate(ctx context.Context, key types.Key) (optional.Option[decimal.Decimal], error)

	// FindOrder returns the order with the given venue id, if the venue knows it.
	FindOrder(ctx context.Context, key types.Key, id string) (optional.Option[types.Order], error)
	// ListActiveOrders returns all currently active orders for the instrument.
	ListActiveOrders(ctx context.Context, key types.Key) ([]types.Order, error)
	// ListExecutions returns recent fills for the instrument.
	ListExecutions(ctx context.Context, key types.Key) ([]types.Execution, error)
	// CreateOrder places a limit order and returns the venue-assigned id.
	CreateOrder(ctx context.Context, key types.Key, instruction *types.CreateInstruction) (optional.Option[string], error)
	// CancelOrder cancels the referenced order and returns the venue-assigned id.
	CancelOrder(ctx context.Context, key types.Key, instruction *types.CancelInstruction) (optional.Option[string], error)
}
