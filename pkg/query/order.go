package query

import (
	"fmt"

	"github.com/shopspring/decimal"

	"stockroom/pkg/domain/entities"
)

// OrderState is the current state of an order validation.
type OrderState int

const (
	// AwaitingQuantity expects the requested quantity via RequestQuantity.
	AwaitingQuantity OrderState = iota
	// OfferMax means the request exceeded availability; AcceptMax decides
	// between ordering the maximum and declining.
	OfferMax
	// Resolved is terminal; the resolution is available via Resolution.
	Resolved
)

// String method for OrderState enum
func (s OrderState) String() string {
	switch s {
	case AwaitingQuantity:
		return "AwaitingQuantity"
	case OfferMax:
		return "OfferMax"
	case Resolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// Decline reasons reported in the terminal resolution.
const (
	ReasonNothingOrdered   = "nothing ordered"
	ReasonDeclinedMaxOffer = "declined max offer"
)

// OrderValidator runs one order request through the quantity validation
// state machine. It receives already-parsed integers; input re-prompting
// lives in the interaction layer. Resolving an order never mutates stock.
type OrderValidator struct {
	itemName   string
	available  int
	unitPrice  decimal.Decimal
	state      OrderState
	resolution entities.OrderResolution
}

// NewOrderValidator starts a validation for itemName with the given
// available total.
func NewOrderValidator(itemName string, available int) *OrderValidator {
	return &OrderValidator{
		itemName:  itemName,
		available: available,
		state:     AwaitingQuantity,
	}
}

// WithUnitPrice attaches a unit price so accepted orders carry a value.
func (v *OrderValidator) WithUnitPrice(price decimal.Decimal) *OrderValidator {
	v.unitPrice = price
	return v
}

// State returns the validator's current state.
func (v *OrderValidator) State() OrderState {
	return v.state
}

// Available returns the available total the validator was started with.
func (v *OrderValidator) Available() int {
	return v.available
}

// RequestQuantity feeds the requested quantity into the machine. A
// non-positive quantity declines terminally, a quantity within availability
// orders terminally, and a quantity above availability moves to OfferMax.
func (v *OrderValidator) RequestQuantity(quantity int) (OrderState, error) {
	if v.state != AwaitingQuantity {
		return v.state, fmt.Errorf("quantity already received in state %s", v.state)
	}

	switch {
	case quantity <= 0:
		v.resolve(entities.OrderDeclined, 0, ReasonNothingOrdered)
	case quantity <= v.available:
		v.resolve(entities.OrderPlaced, quantity, "")
	default:
		v.state = OfferMax
	}
	return v.state, nil
}

// AcceptMax answers the offer-max question. Accepting orders the full
// available total; refusing declines terminally.
func (v *OrderValidator) AcceptMax(accept bool) (OrderState, error) {
	if v.state != OfferMax {
		return v.state, fmt.Errorf("no max offer pending in state %s", v.state)
	}

	if accept {
		v.resolve(entities.OrderPlacedMax, v.available, "")
	} else {
		v.resolve(entities.OrderDeclined, 0, ReasonDeclinedMaxOffer)
	}
	return v.state, nil
}

// Resolution returns the terminal resolution. The second return value is
// false until the machine reaches Resolved.
func (v *OrderValidator) Resolution() (entities.OrderResolution, bool) {
	if v.state != Resolved {
		return entities.OrderResolution{}, false
	}
	return v.resolution, true
}

func (v *OrderValidator) resolve(outcome entities.OrderOutcome, quantity int, reason string) {
	value := decimal.Zero
	if quantity > 0 && !v.unitPrice.IsZero() {
		value = v.unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	}

	v.resolution = entities.OrderResolution{
		ItemName: v.itemName,
		Outcome:  outcome,
		Quantity: quantity,
		Reason:   reason,
		Value:    value,
	}
	v.state = Resolved
}
