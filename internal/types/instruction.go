package types

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Instruction is one order management action to perform against a venue:
// either create a new limit order or cancel an existing one. Every instance
// carries a synthetic unique id so that value-equal instructions remain
// distinct line items across maps and result sets.
type Instruction interface {
	// ID returns the synthetic identity of this instruction instance.
	ID() string

	sealed()
}

// CreateInstruction instructs the venue to create a limit order. The sign of
// Size encodes the side: positive buys, negative sells.
type CreateInstruction struct {
	id    string
	Price decimal.Decimal
	Size  decimal.Decimal
}

// NewCreateInstruction creates a CreateInstruction with a fresh identity.
func NewCreateInstruction(price decimal.Decimal, size decimal.Decimal) *CreateInstruction {
	return &CreateInstruction{
		id:    uuid.NewString(),
		Price: price,
		Size:  size,
	}
}

// ID implements Instruction.
func (i *CreateInstruction) ID() string {
	return i.id
}

func (i *CreateInstruction) sealed() {}

// CancelInstruction instructs the venue to cancel the order with the given
// venue-assigned id.
type CancelInstruction struct {
	id      string
	OrderID string
}

// NewCancelInstruction creates a CancelInstruction with a fresh identity.
func NewCancelInstruction(orderID string) *CancelInstruction {
	return &CancelInstruction{
		id:      uuid.NewString(),
		OrderID: orderID,
	}
}

// ID implements Instruction.
func (i *CancelInstruction) ID() string {
	return i.id
}

func (i *CancelInstruction) sealed() {}
