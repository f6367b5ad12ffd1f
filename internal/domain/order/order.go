package order

import (
	"fmt"
	"time"

	"simvia/internal/shared/id"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item is one purchased line: a product, optionally a plan variant, and the
// eSIM activations fabricated for it (one set per quantity unit).
type Item struct {
	ProductID   uint
	VariantID   *uint
	Quantity    int
	UnitPrice   float64
	Activations []Activation
}

// Order is a customer purchase. Orders created through checkout are locked:
// no later mutation is accepted, matching the storefront's append-only order
// history.
type Order struct {
	id                  uint
	number              string
	customerEmail       string
	amount              float64
	currency            string
	status              Status
	createdFromCheckout bool
	items               []Item
	createdAt           time.Time
	updatedAt           time.Time
}

func NewCheckoutOrder(customerEmail string, items []Item) (*Order, error) {
	if customerEmail == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order requires at least one item")
	}

	amount := 0.0
	for i, item := range items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("item %d: product is required", i)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("item %d: quantity must be at least 1", i)
		}
		amount += item.UnitPrice * float64(item.Quantity)
	}

	now := time.Now()
	return &Order{
		number:              id.MustGenerateWithPrefix(id.PrefixOrder, id.DefaultLength),
		customerEmail:       customerEmail,
		amount:              amount,
		currency:            "USD",
		status:              StatusProcessing,
		createdFromCheckout: true,
		items:               items,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func ReconstructOrder(orderID uint, number, customerEmail string, amount float64,
	currency string, status Status, createdFromCheckout bool, items []Item,
	createdAt, updatedAt time.Time) (*Order, error) {

	if orderID == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	return &Order{
		id:                  orderID,
		number:              number,
		customerEmail:       customerEmail,
		amount:              amount,
		currency:            currency,
		status:              status,
		createdFromCheckout: createdFromCheckout,
		items:               items,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (o *Order) ID() uint                  { return o.id }
func (o *Order) Number() string            { return o.number }
func (o *Order) CustomerEmail() string     { return o.customerEmail }
func (o *Order) Amount() float64           { return o.amount }
func (o *Order) Currency() string          { return o.currency }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CreatedFromCheckout() bool { return o.createdFromCheckout }
func (o *Order) Items() []Item             { return o.items }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

func (o *Order) SetID(orderID uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID already set")
	}
	o.id = orderID
	return nil
}

// ErrOrderLocked rejects mutation of checkout-created orders.
var ErrOrderLocked = fmt.Errorf("orders created from checkout cannot be modified")

// ChangeStatus transitions the order. Checkout orders are immutable.
func (o *Order) ChangeStatus(status Status) error {
	if o.createdFromCheckout {
		return ErrOrderLocked
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid order status: %s", status)
	}
	o.status = status
	o.updatedAt = time.Now()
	return nil
}
