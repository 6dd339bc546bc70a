// Package notification defines the customer-notification intents emitted by
// the complaint resolution flow. An intent is an outbox record: it is written
// in the same transaction as the case state change that caused it, and
// delivered asynchronously on a best-effort basis. Delivery failures never
// affect the case state.
package notification

import (
	"errors"
	"fmt"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"
)

// Type identifies the customer communication an intent stands for.
type Type int

const (
	// TypeUnknown represents an invalid or undefined notification type.
	TypeUnknown Type = iota

	// TypeComplaintApproved tells the customer their complaint was verified.
	TypeComplaintApproved

	// TypeComplaintRejected tells the customer their complaint was not verified.
	TypeComplaintRejected

	// TypePickupScheduled tells the customer when the goods will be collected.
	TypePickupScheduled

	// TypePickupCompleted confirms the goods were collected.
	TypePickupCompleted

	// TypeReplacementCreated tells the customer a replacement order is on its way.
	TypeReplacementCreated
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:            "unknown",
		TypeComplaintApproved:  "complaint_approved",
		TypeComplaintRejected:  "complaint_rejected",
		TypePickupScheduled:    "pickup_scheduled",
		TypePickupCompleted:    "pickup_completed",
		TypeReplacementCreated: "replacement_created",
	}
}

// TypeFromString parses the persisted string representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notification type is invalid",
		fmt.Errorf("%q is not a valid notification type", s),
	)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type is invalid",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// String returns the persisted name of the notification type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// DeliveryState tracks the outbox lifecycle of an intent.
type DeliveryState int

const (
	// DeliveryUnknown represents an invalid or undefined delivery state.
	DeliveryUnknown DeliveryState = iota

	// DeliveryPending means the intent has not been handed to a transport yet.
	DeliveryPending

	// DeliverySent means a transport accepted the intent.
	DeliverySent

	// DeliveryFailed means all delivery attempts were exhausted.
	DeliveryFailed
)

func getDeliveryStateStrings() map[DeliveryState]string {
	return map[DeliveryState]string{
		DeliveryUnknown: "unknown",
		DeliveryPending: "pending",
		DeliverySent:    "sent",
		DeliveryFailed:  "failed",
	}
}

// DeliveryStateFromString parses the persisted string representation.
func DeliveryStateFromString(s string) (DeliveryState, error) {
	for state, str := range getDeliveryStateStrings() {
		if state != DeliveryUnknown && str == s {
			return state, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery state is invalid",
		fmt.Errorf("%q is not a valid delivery state", s),
	)
}

// Validate checks if the DeliveryState value is valid.
func (s DeliveryState) Validate() error {
	if s != DeliveryPending && s != DeliverySent && s != DeliveryFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery state is invalid",
			fmt.Errorf("%d is not a valid delivery state", s),
		)
	}
	return nil
}

// String returns the persisted name of the delivery state.
func (s DeliveryState) String() string {
	if str, ok := getDeliveryStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ErrIntentIsNotConstructed is returned when an Intent instance was not
// created through NewIntent or RestoreIntent.
var ErrIntentIsNotConstructed = errors.New(
	"Intent must be created via NewIntent or RestoreIntent")

// Intent is one pending customer notification. It carries everything a
// transport needs: the case and order it concerns, the customer contact
// captured at checkout, and type-specific payload values.
type Intent struct {
	id            kernel.UUID
	complaintID   kernel.UUID
	orderID       kernel.UUID
	userID        kernel.UUID
	intentType    Type
	customerName  string
	customerEmail string
	additional    map[string]string
	state         DeliveryState
	attempts      int
	createdAt     time.Time
	sentAt        *time.Time

	isConstructed bool
}

// NewIntent creates a pending notification intent.
// additional may be nil; it is copied when provided.
func NewIntent(
	id kernel.UUID,
	complaintID kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	intentType Type,
	customerName, customerEmail string,
	additional map[string]string,
	createdAt time.Time,
) (*Intent, error) {
	i := &Intent{
		customerName:  customerName,
		customerEmail: customerEmail,
		state:         DeliveryPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setComplaintID(complaintID),
		i.setOrderID(orderID),
		i.setUserID(userID),
		i.setType(intentType),
	); err != nil {
		return nil, err
	}

	i.additional = make(map[string]string, len(additional))
	for k, v := range additional {
		i.additional[k] = v
	}

	return i, nil
}

// RestoreIntent reconstructs an intent from persistence.
func RestoreIntent(
	id kernel.UUID,
	complaintID kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	intentType Type,
	customerName, customerEmail string,
	additional map[string]string,
	state DeliveryState,
	attempts int,
	createdAt time.Time,
	sentAt *time.Time,
) (*Intent, error) {
	i := &Intent{
		customerName:  customerName,
		customerEmail: customerEmail,
		attempts:      attempts,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setID(id),
		i.setComplaintID(complaintID),
		i.setOrderID(orderID),
		i.setUserID(userID),
		i.setType(intentType),
		i.setState(state),
	); err != nil {
		return nil, err
	}

	i.additional = make(map[string]string, len(additional))
	for k, v := range additional {
		i.additional[k] = v
	}

	return i, nil
}

// Validate ensures the Intent was created via a factory method.
func (i *Intent) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIntentIsNotConstructed
	}
	return nil
}

// ID returns the intent's unique identifier.
func (i *Intent) ID() kernel.UUID {
	return i.id
}

// ComplaintID returns the complaint case the intent concerns.
func (i *Intent) ComplaintID() kernel.UUID {
	return i.complaintID
}

// OrderID returns the order the intent concerns.
func (i *Intent) OrderID() kernel.UUID {
	return i.orderID
}

// UserID returns the customer to notify.
func (i *Intent) UserID() kernel.UUID {
	return i.userID
}

// IntentType returns which communication this intent stands for.
func (i *Intent) IntentType() Type {
	return i.intentType
}

// CustomerName returns the contact name for the notification.
func (i *Intent) CustomerName() string {
	return i.customerName
}

// CustomerEmail returns the contact email for the notification.
func (i *Intent) CustomerEmail() string {
	return i.customerEmail
}

// AdditionalData returns a copy of the type-specific payload values.
func (i *Intent) AdditionalData() map[string]string {
	data := make(map[string]string, len(i.additional))
	for k, v := range i.additional {
		data[k] = v
	}
	return data
}

// State returns the outbox delivery state.
func (i *Intent) State() DeliveryState {
	return i.state
}

// Attempts returns how many delivery attempts have been made.
func (i *Intent) Attempts() int {
	return i.attempts
}

// CreatedAt returns when the intent was written.
func (i *Intent) CreatedAt() time.Time {
	return i.createdAt
}

// SentAt returns when a transport accepted the intent, nil if not sent.
func (i *Intent) SentAt() *time.Time {
	return i.sentAt
}

// MarkSent records that a transport accepted the intent at the given time.
func (i *Intent) MarkSent(at time.Time) error {
	if i.state != DeliveryPending {
		return errs.NewInvalidTransitionError("deliveryState", i.state.String(), DeliverySent.String())
	}
	i.state = DeliverySent
	i.attempts++
	i.sentAt = &at
	return nil
}

// RecordFailure counts a failed delivery attempt. Once maxAttempts is reached
// the intent moves to DeliveryFailed and is no longer retried.
func (i *Intent) RecordFailure(maxAttempts int) error {
	if i.state != DeliveryPending {
		return errs.NewInvalidTransitionError("deliveryState", i.state.String(), DeliveryFailed.String())
	}

	i.attempts++
	if i.attempts >= maxAttempts {
		i.state = DeliveryFailed
	}
	return nil
}

func (i *Intent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Intent) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	i.complaintID = complaintID
	return nil
}

func (i *Intent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Intent) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	i.userID = userID
	return nil
}

func (i *Intent) setType(intentType Type) error {
	if err := intentType.Validate(); err != nil {
		return err
	}
	i.intentType = intentType
	return nil
}

func (i *Intent) setState(state DeliveryState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	i.state = state
	return nil
}
