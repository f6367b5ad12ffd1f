package order

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutOrder(t *testing.T) {
	variantID := uint(5)
	o, err := NewCheckoutOrder("traveler@example.com", []Item{
		{ProductID: 1, VariantID: &variantID, Quantity: 2, UnitPrice: 12},
		{ProductID: 2, Quantity: 1, UnitPrice: 9.5},
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(o.Number(), "ord_"))
	assert.Equal(t, 33.5, o.Amount())
	assert.Equal(t, "USD", o.Currency())
	assert.Equal(t, StatusProcessing, o.Status())
	assert.True(t, o.CreatedFromCheckout())
}

func TestNewCheckoutOrder_Validation(t *testing.T) {
	_, err := NewCheckoutOrder("", []Item{{ProductID: 1, Quantity: 1}})
	assert.ErrorContains(t, err, "email is required")

	_, err = NewCheckoutOrder("a@b.c", nil)
	assert.ErrorContains(t, err, "at least one item")

	_, err = NewCheckoutOrder("a@b.c", []Item{{ProductID: 0, Quantity: 1}})
	assert.ErrorContains(t, err, "product is required")

	_, err = NewCheckoutOrder("a@b.c", []Item{{ProductID: 1, Quantity: 0}})
	assert.ErrorContains(t, err, "quantity")
}

func TestOrder_ChangeStatus_LockedForCheckoutOrders(t *testing.T) {
	o, err := NewCheckoutOrder("traveler@example.com", []Item{{ProductID: 1, Quantity: 1, UnitPrice: 10}})
	require.NoError(t, err)

	err = o.ChangeStatus(StatusCompleted)
	assert.ErrorIs(t, err, ErrOrderLocked)
	assert.Equal(t, StatusProcessing, o.Status())
}

func TestOrder_ChangeStatus_AdminOrder(t *testing.T) {
	o, err := ReconstructOrder(3, "ord_abc", "ops@example.com", 10, "USD",
		StatusProcessing, false, []Item{{ProductID: 1, Quantity: 1, UnitPrice: 10}},
		time.Now(), time.Now())
	require.NoError(t, err)

	require.NoError(t, o.ChangeStatus(StatusCompleted))
	assert.Equal(t, StatusCompleted, o.Status())

	err = o.ChangeStatus(Status("refunded"))
	assert.ErrorContains(t, err, "invalid order status")
}
