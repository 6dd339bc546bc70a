package order_test

import (
	"testing"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Ceramic Mug", 349.0, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func makeOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		makeItems(t),
		order.PaymentMethodUPI,
		698.0,
		"Asha Rao",
		"asha@example.com",
		"+91-9000000000",
		"leave at the gate",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPlaced, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.TypeStandard, o.OrderType())
		assert.Nil(t, o.ParentOrderID())
		assert.False(t, o.ReturningToProvider())
		assert.Nil(t, o.ShippedAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, "Asha Rao", o.CustomerName())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID
		o, err := order.NewOrder(invalidID, kernel.NewUUID(), makeItems(t),
			order.PaymentMethodCard, 100, "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil,
			order.PaymentMethodCard, 100, "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should fail with negative total", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t),
			order.PaymentMethodCard, -1, "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unknown payment method", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), makeItems(t),
			order.PaymentMethodUnknown, 100, "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_FulfillmentLifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := makeOrder(t)
		shipped := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
		delivered := shipped.Add(48 * time.Hour)

		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.MarkShipped(shipped))
		require.NoError(t, o.MarkDelivered(delivered))

		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.ShippedAt())
		assert.Equal(t, shipped, *o.ShippedAt())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, delivered, *o.DeliveredAt())
	})

	t.Run("cannot deliver before shipping", func(t *testing.T) {
		o := makeOrder(t)
		require.Error(t, o.MarkDelivered(time.Now()))
		assert.Equal(t, order.StatusPlaced, o.Status())
	})
}

func TestOrder_Cancellation(t *testing.T) {
	t.Run("placed order can be cancelled", func(t *testing.T) {
		o := makeOrder(t)

		assert.True(t, o.CanCancel())
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("processing order cannot be cancelled", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.StartProcessing())

		assert.False(t, o.CanCancel())
		assert.ErrorIs(t, o.Cancel(), order.ErrCancellationNotAllowed)
		assert.Equal(t, order.StatusProcessing, o.Status())
	})

	t.Run("returning order cannot be cancelled even while placed", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.MarkReturningToProvider())

		assert.False(t, o.CanCancel())
		assert.ErrorIs(t, o.Cancel(), order.ErrCancellationNotAllowed)
	})
}

func TestOrder_ReturningToProvider(t *testing.T) {
	t.Run("shipped order can be flagged", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.MarkShipped(time.Now()))

		require.NoError(t, o.MarkReturningToProvider())
		assert.True(t, o.ReturningToProvider())
	})

	t.Run("delivered order cannot be flagged", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.StartProcessing())
		require.NoError(t, o.MarkShipped(time.Now()))
		require.NoError(t, o.MarkDelivered(time.Now()))

		require.Error(t, o.MarkReturningToProvider())
		assert.False(t, o.ReturningToProvider())
	})
}

func TestOrder_Payment(t *testing.T) {
	t.Run("pending payment can be captured then refunded", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.MarkPaid())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())

		require.NoError(t, o.MarkRefunded())
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("unpaid order cannot be refunded", func(t *testing.T) {
		o := makeOrder(t)
		require.Error(t, o.MarkRefunded())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("cannot capture twice", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.MarkPaid())
		require.Error(t, o.MarkPaid())
	})
}

func TestNewReplacementOrder(t *testing.T) {
	t.Run("clones items at zero amount with parent linkage", func(t *testing.T) {
		parent := makeOrder(t)
		replacementID := kernel.NewUUID()

		replacement, err := order.NewReplacementOrder(replacementID, parent, false)

		require.NoError(t, err)
		assert.Equal(t, order.TypeReplacement, replacement.OrderType())
		assert.Zero(t, replacement.TotalAmount())
		require.NotNil(t, replacement.ParentOrderID())
		assert.True(t, replacement.ParentOrderID().IsEqual(parent.ID()))
		assert.Equal(t, order.StatusPlaced, replacement.Status())
		assert.Equal(t, parent.Items(), replacement.Items())
		assert.True(t, replacement.UserID().IsEqual(parent.UserID()))
	})

	t.Run("warranty complaints produce warranty replacements", func(t *testing.T) {
		parent := makeOrder(t)

		replacement, err := order.NewReplacementOrder(kernel.NewUUID(), parent, true)

		require.NoError(t, err)
		assert.Equal(t, order.TypeWarrantyReplacement, replacement.OrderType())
		assert.True(t, replacement.OrderType().IsReplacement())
	})

	t.Run("fails for unconstructed parent", func(t *testing.T) {
		var parent order.Order
		_, err := order.NewReplacementOrder(kernel.NewUUID(), &parent, false)
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		shipped := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, userID,
			order.TypeStandard, nil,
			order.StatusShipped, order.PaymentPaid, order.PaymentMethodCOD,
			1200.0, makeItems(t),
			true,
			"Asha Rao", "asha@example.com", "+91-9000000000",
			"",
			&shipped, nil,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusShipped, o.Status())
		assert.True(t, o.ReturningToProvider())
		assert.True(t, o.PaymentMethod().IsCOD())
	})

	t.Run("replacement without parent linkage is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			order.TypeReplacement, nil,
			order.StatusPlaced, order.PaymentPending, order.PaymentMethodUPI,
			0, makeItems(t),
			false, "", "", "", "", nil, nil,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parent order id")
	})
}
