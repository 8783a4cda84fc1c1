// Package paper provides an in-memory venue for dry runs and tests. It serves
// a configurable order book snapshot, tracks orders it is asked to create or
// cancel, and never talks to a network.
package paper

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-maker/internal/types"
	"github.com/shopspring/decimal"
)

// Config seeds the paper venue's book and account state.
type Config struct {
	BestBid        decimal.Decimal
	BestAsk        decimal.Decimal
	BestBidSize    decimal.Decimal
	BestAskSize    decimal.Decimal
	LastPrice      decimal.Decimal
	TickSize       decimal.Decimal
	LotSize        decimal.Decimal
	CommissionRate decimal.Decimal
	FundingBalance decimal.Decimal
	Position       decimal.Decimal
	Depth          int
}

// Venue is a thread-safe in-memory market.Context implementation.
type Venue struct {
	mu     sync.RWMutex
	config Config
	orders map[string]types.Order
	fills  []types.Execution
}

// NewVenue creates a paper venue with the given initial state.
func NewVenue(config Config) *Venue {
	if config.Depth <= 0 {
		config.Depth = 5
	}

	return &Venue{
		config: config,
		orders: make(map[string]types.Order),
	}
}

// SetBook replaces the served quote.
func (v *Venue) SetBook(bid decimal.Decimal, ask decimal.Decimal, last decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.BestBid = bid
	v.config.BestAsk = ask
	v.config.LastPrice = last
}

// SetFunding replaces the funding balance.
func (v *Venue) SetFunding(balance decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.FundingBalance = balance
}

// SetPosition replaces the instrument position.
func (v *Venue) SetPosition(position decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.config.Position = position
}

// BestAskPrice implements market.Context.
func (v *Venue) BestAskPrice(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.BestAsk), nil
}

// BestBidPrice implements market.Context.
func (v *Venue) BestBidPrice(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.BestBid), nil
}

// BestAskSize implements market.Context.
func (v *Venue) BestAskSize(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.BestAskSize), nil
}

// BestBidSize implements market.Context.
func (v *Venue) BestBidSize(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.BestBidSize), nil
}

// MidPrice implements market.Context.
func (v *Venue) MidPrice(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	two := decimal.New(2, 0)

	return optional.Some(v.config.BestBid.Add(v.config.BestAsk).Div(two)), nil
}

// LastPrice implements market.Context.
func (v *Venue) LastPrice(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.LastPrice), nil
}

// AskPrices implements market.Context. Levels fan outward from the best ask
// one tick at a time.
func (v *Venue) AskPrices(_ context.Context, _ types.Key) (optional.Option[[]types.BookLevel], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.ladder(v.config.BestAsk, v.config.BestAskSize, v.config.TickSize)), nil
}

// BidPrices implements market.Context.
func (v *Venue) BidPrices(_ context.Context, _ types.Key) (optional.Option[[]types.BookLevel], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.ladder(v.config.BestBid, v.config.BestBidSize, v.config.TickSize.Neg())), nil
}

func (v *Venue) ladder(best decimal.Decimal, size decimal.Decimal, step decimal.Decimal) []types.BookLevel {
	levels := make([]types.BookLevel, 0, v.config.Depth)
	price := best

	for n := 0; n < v.config.Depth; n++ {
		levels = append(levels, types.BookLevel{Price: price, Size: size})
		price = price.Add(step)
	}

	return levels
}

// InstrumentPosition implements market.Context.
func (v *Venue) InstrumentPosition(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.Position), nil
}

// FundingPosition implements market.Context.
func (v *Venue) FundingPosition(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.FundingBalance), nil
}

// RoundLotSize implements market.Context. Rounding is towards zero for
// RoundDown and away from zero for RoundUp.
func (v *Venue) RoundLotSize(_ context.Context, _ types.Key, value decimal.Decimal, mode types.RoundingMode) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return round(value, v.config.LotSize, mode), nil
}

// RoundTickSize implements market.Context.
func (v *Venue) RoundTickSize(_ context.Context, _ types.Key, value decimal.Decimal, mode types.RoundingMode) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return round(value, v.config.TickSize, mode), nil
}

func round(value decimal.Decimal, increment decimal.Decimal, mode types.RoundingMode) optional.Option[decimal.Decimal] {
	if !increment.IsPositive() {
		return optional.None[decimal.Decimal]()
	}

	units := value.Abs().Div(increment)

	if mode == types.RoundUp {
		units = units.Ceil()
	} else {
		units = units.Floor()
	}

	rounded := units.Mul(increment)
	if value.IsNegative() {
		rounded = rounded.Neg()
	}

	return optional.Some(rounded)
}

// CommissionRate implements market.Context.
func (v *Venue) CommissionRate(_ context.Context, _ types.Key) (optional.Option[decimal.Decimal], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return optional.Some(v.config.CommissionRate), nil
}

// FindOrder implements market.Context.
func (v *Venue) FindOrder(_ context.Context, _ types.Key, id string) (optional.Option[types.Order], error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	order, ok := v.orders[id]
	if !ok {
		return optional.None[types.Order](), nil
	}

	return optional.Some(order), nil
}

// ListActiveOrders implements market.Context.
func (v *Venue) ListActiveOrders(_ context.Context, key types.Key) ([]types.Order, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var active []types.Order

	for _, order := range v.orders {
		if order.Active && order.Instrument == key.Instrument {
			active = append(active, order)
		}
	}

	return active, nil
}

// ListExecutions implements market.Context. The paper venue does not simulate
// matching, so fills only appear when injected by tests.
func (v *Venue) ListExecutions(_ context.Context, _ types.Key) ([]types.Execution, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return append([]types.Execution(nil), v.fills...), nil
}

// InjectExecution adds a synthetic fill to the execution log.
func (v *Venue) InjectExecution(fill types.Execution) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fills = append(v.fills, fill)
}

// CreateOrder implements market.Context.
func (v *Venue) CreateOrder(_ context.Context, key types.Key, instruction *types.CreateInstruction) (optional.Option[string], error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := uuid.NewString()

	v.orders[id] = types.Order{
		Id:                id,
		Instrument:        key.Instrument,
		Active:            true,
		OrderPrice:        instruction.Price,
		OrderQuantity:     instruction.Size,
		FilledQuantity:    decimal.Zero,
		RemainingQuantity: instruction.Size,
	}

	return optional.Some(id), nil
}

// CancelOrder implements market.Context. Cancelling an unknown order fails
// softly with None.
func (v *Venue) CancelOrder(_ context.Context, _ types.Key, instruction *types.CancelInstruction) (optional.Option[string], error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	order, ok := v.orders[instruction.OrderID]
	if !ok {
		return optional.None[string](), nil
	}

	order.Active = false
	v.orders[instruction.OrderID] = order

	return optional.Some(order.Id), nil
}
