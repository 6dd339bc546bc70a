package order

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New(
		"Order must be created via NewOrder, NewReplacementOrder, or RestoreOrder")

	// ErrCancellationNotAllowed is returned when an order cannot be cancelled,
	// either because it entered fulfillment or because a failed delivery is
	// already returning it to the provider.
	ErrCancellationNotAllowed = errors.New(
		"order can only be cancelled while placed and not returning to provider")
)

// Order represents a customer order. It is the aggregate root that carries the
// fulfillment status, the payment state, the delivery signals consumed by the
// status projection, and the linkage created by replacement remedies.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Must have at least one item
//   - Status transitions follow the fulfillment state machine
//   - Cancellation requires status placed and returningToProvider false
//   - Replacement orders have zero total and a permanent parent linkage
//   - Payment status only moves pending -> paid -> refunded
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	orderType     Type
	parentOrderID *kernel.UUID

	status        Status
	paymentStatus PaymentStatus
	paymentMethod PaymentMethod
	totalAmount   float64
	items         []Item

	returningToProvider bool
	customerName        string
	customerEmail       string
	customerPhone       string
	deliveryNotes       string
	shippedAt           *time.Time
	deliveredAt         *time.Time

	isConstructed bool
}

// NewOrder creates a standard checkout order in placed status with pending payment.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: the customer who placed the order
//   - items: purchased lines (at least one)
//   - paymentMethod: how the customer pays
//   - totalAmount: the charged total (must not be negative)
//   - customerName, customerEmail, customerPhone: contact details captured at checkout
//   - deliveryNotes: free-form instructions for the courier (may be empty)
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	paymentMethod PaymentMethod,
	totalAmount float64,
	customerName, customerEmail, customerPhone string,
	deliveryNotes string,
) (*Order, error) {
	o := &Order{
		orderType:     TypeStandard,
		status:        StatusPlaced,
		paymentStatus: PaymentPending,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		deliveryNotes: deliveryNotes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// NewReplacementOrder creates a zero-amount clone of the parent order's items,
// linked to the parent. It is used by the complaint resolution flow after a
// verified complaint's goods have been picked up.
//
// The replacement starts in placed status so it runs through the normal
// fulfillment pipeline. Warranty complaints produce TypeWarrantyReplacement,
// all other complaint types produce TypeReplacement.
func NewReplacementOrder(id kernel.UUID, parent *Order, warranty bool) (*Order, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}

	replacementType := TypeReplacement
	if warranty {
		replacementType = TypeWarrantyReplacement
	}

	parentID := parent.id
	o := &Order{
		orderType:     replacementType,
		parentOrderID: &parentID,
		status:        StatusPlaced,
		paymentStatus: PaymentPending,
		customerName:  parent.customerName,
		customerEmail: parent.customerEmail,
		customerPhone: parent.customerPhone,
		deliveryNotes: parent.deliveryNotes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(parent.userID),
		o.setItems(parent.Items()),
		o.setPaymentMethod(parent.paymentMethod),
		o.setTotalAmount(0),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without replaying the
// lifecycle. All state values must already be valid.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	orderType Type,
	parentOrderID *kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod PaymentMethod,
	totalAmount float64,
	items []Item,
	returningToProvider bool,
	customerName, customerEmail, customerPhone string,
	deliveryNotes string,
	shippedAt, deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		returningToProvider: returningToProvider,
		customerName:        customerName,
		customerEmail:       customerEmail,
		customerPhone:       customerPhone,
		deliveryNotes:       deliveryNotes,
		shippedAt:           shippedAt,
		deliveredAt:         deliveredAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setType(orderType),
		o.setParentOrderID(parentOrderID),
		o.setStatus(status),
		o.setPaymentStatus(paymentStatus),
		o.setPaymentMethod(paymentMethod),
		o.setTotalAmount(totalAmount),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who owns the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// OrderType returns whether the order is standard or a replacement.
func (o *Order) OrderType() Type {
	return o.orderType
}

// ParentOrderID returns the original order a replacement was created for.
// Returns nil for standard orders.
func (o *Order) ParentOrderID() *kernel.UUID {
	return o.parentOrderID
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentMethod returns how the customer pays for the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// TotalAmount returns the charged total. Zero for replacement orders.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ReturningToProvider reports whether a conclusively failed delivery is
// sending the order back to the provider.
func (o *Order) ReturningToProvider() bool {
	return o.returningToProvider
}

// CustomerName returns the contact name captured at checkout.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the contact email captured at checkout.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the contact phone captured at checkout.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryNotes returns the courier instructions captured at checkout.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// ShippedAt returns when the order left the warehouse, nil if not shipped.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the order reached the customer, nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// MarkPaid records a captured payment.
//
// Valid only while the payment status is pending.
func (o *Order) MarkPaid() error {
	if o.paymentStatus != PaymentPending {
		return errs.NewInvalidTransitionError("paymentStatus", o.paymentStatus.String(), PaymentPaid.String())
	}
	o.paymentStatus = PaymentPaid
	return nil
}

// MarkRefunded records that the captured payment was returned to the customer.
// Called by the resolution flow when a refund request is fulfilled.
func (o *Order) MarkRefunded() error {
	newStatus, err := o.paymentStatus.Refund()
	if err != nil {
		return err
	}
	o.paymentStatus = newStatus
	return nil
}

// StartProcessing moves the order into fulfillment.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkShipped records that the order left the warehouse at the given time.
func (o *Order) MarkShipped(at time.Time) error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.shippedAt = &at
	return nil
}

// MarkDelivered records that the order reached the customer at the given time.
func (o *Order) MarkDelivered(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// CanCancel reports whether the order is still eligible for cancellation:
// it must be in placed status and not returning to the provider.
func (o *Order) CanCancel() bool {
	return o.status == StatusPlaced && !o.returningToProvider
}

// Cancel cancels the order.
//
// Returns ErrCancellationNotAllowed when the order entered fulfillment or a
// failed delivery already flagged it as returning to the provider.
func (o *Order) Cancel() error {
	if !o.CanCancel() {
		return ErrCancellationNotAllowed
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkReturningToProvider flags the order as going back to the provider after
// delivery failed conclusively. The flag is permanent and cannot be applied to
// orders that already reached the customer.
func (o *Order) MarkReturningToProvider() error {
	if o.status == StatusDelivered {
		return errs.NewInvalidTransitionError("returningToProvider", o.status.String(), "returning")
	}
	o.returningToProvider = true
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setParentOrderID(parentOrderID *kernel.UUID) error {
	if parentOrderID == nil {
		if o.orderType.IsReplacement() {
			return errs.NewValueIsRequiredError("parent order id")
		}
		return nil
	}

	if err := parentOrderID.Validate(); err != nil {
		return err
	}
	id := *parentOrderID
	o.parentOrderID = &id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("total amount is negative")
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
