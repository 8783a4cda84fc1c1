// Package instructor converts Advice and the venue's live order book into a
// minimal, netted list of create and cancel instructions. Sizes are split into
// laddered slices; proposed orders that already rest on the book are elided
// together with their would-be cancels.
package instructor

import (
	"context"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/logger"
	"github.com/rxtech-lab/argo-maker/internal/market"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// epsilon nudges a tick-aligned price off its level so that directional
// rounding lands on the adjacent tick.
var epsilon = decimal.New(1, -12)

// Instructor generates instructions from Advice.
type Instructor struct {
	logger *logger.Logger
}

// NewInstructor creates an Instructor.
func NewInstructor(log *logger.Logger) *Instructor {
	return &Instructor{
		logger: log,
	}
}

// cancelCandidate pairs a candidate cancel with the live order it targets so
// the netting pass can compare price and remaining quantity.
type cancelCandidate struct {
	instruction *types.CancelInstruction
	order       types.Order
}

// Instruct produces the cycle's instruction list: unmatched cancels first,
// then unmatched creates. Invalid input yields an empty list.
func (i *Instructor) Instruct(ctx context.Context, mkt market.Context, request *types.Request, advice *types.Advice) []types.Instruction {
	if request == nil || request.Validate() != nil || advice == nil {
		return nil
	}

	key := request.Key()

	cancels := i.cancelCandidates(ctx, mkt, key)
	creates := i.createCandidates(ctx, mkt, key, request, advice)
	cancels, creates = net(cancels, creates)

	instructions := make([]types.Instruction, 0, len(cancels)+len(creates))
	for _, candidate := range cancels {
		instructions = append(instructions, candidate.instruction)
	}

	for _, create := range creates {
		instructions = append(instructions, create)
	}

	i.logger.Debug("instructions generated",
		zap.String("site", request.Site),
		zap.String("instrument", request.Instrument),
		zap.Int("cancels", len(cancels)),
		zap.Int("creates", len(creates)),
	)

	return instructions
}

// cancelCandidates lists every active order as a candidate cancel.
func (i *Instructor) cancelCandidates(ctx context.Context, mkt market.Context, key types.Key) []cancelCandidate {
	orders, err := mkt.ListActiveOrders(ctx, key)
	if err != nil {
		return nil
	}

	candidates := make([]cancelCandidate, 0, len(orders))

	for _, order := range orders {
		if !order.Active || order.Id == "" {
			continue
		}

		candidates = append(candidates, cancelCandidate{
			instruction: types.NewCancelInstruction(order.Id),
			order:       order,
		})
	}

	return candidates
}

// createCandidates splits each advised side into laddered slices.
func (i *Instructor) createCandidates(ctx context.Context, mkt market.Context, key types.Key, request *types.Request, advice *types.Advice) []*types.CreateInstruction {
	var creates []*types.CreateInstruction

	split := request.TradingSplit
	if split < 1 {
		split = 1
	}

	if advice.HasBuy() && advice.BuyLimitSize.Unwrap().IsPositive() {
		sizes := i.splitSize(ctx, mkt, key, advice.BuyLimitSize.Unwrap(), split)
		prices := i.ladderPrices(ctx, mkt, key, advice.BuyLimitPrice.Unwrap(), len(sizes), types.RoundDown)

		for idx, size := range sizes {
			creates = append(creates, types.NewCreateInstruction(prices[idx], size))
		}
	}

	if advice.HasSell() && advice.SellLimitSize.Unwrap().IsPositive() {
		sizes := i.splitSize(ctx, mkt, key, advice.SellLimitSize.Unwrap(), split)
		prices := i.ladderPrices(ctx, mkt, key, advice.SellLimitPrice.Unwrap(), len(sizes), types.RoundUp)

		for idx, size := range sizes {
			creates = append(creates, types.NewCreateInstruction(prices[idx], size.Neg()))
		}
	}

	return creates
}

// splitSize divides total into up to split slices of lot-aligned size. Each
// slice is the rounded-down even share; the remainder is front-loaded one lot
// at a time onto the earliest slices, so the sum of slices is as close to
// total as lot granularity allows. Slices that round to zero are dropped.
func (i *Instructor) splitSize(ctx context.Context, mkt market.Context, key types.Key, total decimal.Decimal, split int64) []decimal.Decimal {
	unit := roundOrNone(mkt.RoundLotSize)(ctx, key, epsilon, types.RoundUp)
	if unit.IsNone() || !unit.Unwrap().IsPositive() {
		return nil
	}

	share := total.Div(decimal.NewFromInt(split))

	floor := roundOrNone(mkt.RoundLotSize)(ctx, key, share, types.RoundDown)
	if floor.IsNone() {
		return nil
	}

	lot := unit.Unwrap()
	base := floor.Unwrap()
	residual := total.Sub(base.Mul(decimal.NewFromInt(split)))

	sizes := make([]decimal.Decimal, 0, split)

	for n := int64(0); n < split; n++ {
		size := base

		if residual.GreaterThanOrEqual(lot) {
			size = size.Add(lot)
			residual = residual.Sub(lot)
		}

		if size.IsZero() {
			continue
		}

		sizes = append(sizes, size)
	}

	return sizes
}

// ladderPrices walks count prices outward from base, one tick per step. Buys
// step down, sells step up; every step is re-rounded so each slice is
// independently tick-valid. If a step fails to round the previous price is
// reused.
func (i *Instructor) ladderPrices(ctx context.Context, mkt market.Context, key types.Key, base decimal.Decimal, count int, mode types.RoundingMode) []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, count)
	price := base

	for n := 0; n < count; n++ {
		prices = append(prices, price)

		var stepped decimal.Decimal
		if mode == types.RoundDown {
			stepped = price.Sub(epsilon)
		} else {
			stepped = price.Add(epsilon)
		}

		next := roundOrNone(mkt.RoundTickSize)(ctx, key, stepped, mode)
		if next.IsSome() {
			price = next.Unwrap()
		}
	}

	return prices
}

// net elides create/cancel pairs that would have no market effect: a create
// whose price and signed size exactly match a live order's price and
// remaining quantity is already correctly resting. One best-effort pass; ties
// break by encounter order.
func net(cancels []cancelCandidate, creates []*types.CreateInstruction) ([]cancelCandidate, []*types.CreateInstruction) {
	keptCreates := make([]*types.CreateInstruction, 0, len(creates))

	for _, create := range creates {
		matched := false

		for idx, cancel := range cancels {
			if cancel.order.OrderPrice.Equal(create.Price) && cancel.order.RemainingQuantity.Equal(create.Size) {
				cancels = append(cancels[:idx], cancels[idx+1:]...)
				matched = true

				break
			}
		}

		if !matched {
			keptCreates = append(keptCreates, create)
		}
	}

	return cancels, keptCreates
}

// roundOrNone adapts a Context rounding call into a soft-failing lookup.
func roundOrNone(round func(context.Context, types.Key, decimal.Decimal, types.RoundingMode) (optional.Option[decimal.Decimal], error)) func(context.Context, types.Key, decimal.Decimal, types.RoundingMode) optional.Option[decimal.Decimal] {
	return func(ctx context.Context, key types.Key, value decimal.Decimal, mode types.RoundingMode) optional.Option[decimal.Decimal] {
		rounded, err := round(ctx, key, value, mode)
		if err != nil {
			return optional.None[decimal.Decimal]()
		}

		return rounded
	}
}
