package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderOutcome is the terminal resolution of an order request.
type OrderOutcome int

const (
	OrderDeclined OrderOutcome = iota
	OrderPlaced
	OrderPlacedMax
)

// String method for OrderOutcome enum
func (o OrderOutcome) String() string {
	switch o {
	case OrderDeclined:
		return "Declined"
	case OrderPlaced:
		return "Ordered"
	case OrderPlacedMax:
		return "OrderedMax"
	default:
		return "Unknown"
	}
}

// OrderRequest is the transient input to order validation. It exists only
// within one validation invocation and is never persisted.
type OrderRequest struct {
	ItemName  string
	Requested int
	Available int
}

// OrderResolution is the outcome of running an OrderRequest through the
// order validator. Quantity is the quantity actually ordered (zero when
// declined); Value is Quantity times the item's unit price when one is known,
// zero otherwise. Placing an order never decrements stock.
type OrderResolution struct {
	ItemName string
	Outcome  OrderOutcome
	Quantity int
	Reason   string
	Value    decimal.Decimal
}

// NewOrderRequest creates a validated OrderRequest.
func NewOrderRequest(itemName string, requested, available int) (*OrderRequest, error) {
	if itemName == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if available < 0 {
		return nil, fmt.Errorf("available total cannot be negative, got %d", available)
	}
	return &OrderRequest{
		ItemName:  itemName,
		Requested: requested,
		Available: available,
	}, nil
}
