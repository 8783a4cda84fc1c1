package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a venue-observed order snapshot. Quantities are signed by side:
// positive buys, negative sells. The pipeline only ever reads and compares
// orders; it never mutates them.
type Order struct {
	Id                string
	Instrument        string
	Active            bool
	OrderPrice        decimal.Decimal
	OrderQuantity     decimal.Decimal
	FilledQuantity    decimal.Decimal
	RemainingQuantity decimal.Decimal
}

// Execution is a single venue-observed fill against an order.
type Execution struct {
	Id      string
	OrderId string
	Time    time.Time
	Price   decimal.Decimal
	Size    decimal.Decimal
}

// RoundingMode selects the direction a venue rounds prices and sizes.
type RoundingMode string

const (
	// RoundDown rounds towards zero to the nearest venue increment.
	RoundDown RoundingMode = "DOWN"
	// RoundUp rounds away from zero to the nearest venue increment.
	RoundUp RoundingMode = "UP"
)

// BookLevel is one price level of an order book side.
type BookLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}
