package complaint

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/coupon"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/refund"
	"aftersales/internal/pkg/errs"
)

// ErrComplaintIsNotConstructed is returned when a Complaint instance was not
// created through NewComplaint or RestoreComplaint.
var ErrComplaintIsNotConstructed = errors.New(
	"Complaint must be created via NewComplaint or RestoreComplaint")

// Complaint is the aggregate root for a post-delivery complaint case. It owns
// the investigation verdict, the pickup sub-flow for physical returns, and the
// single remedy (refund or replacement) granted after verification.
//
// Complaint follows these invariants:
//   - Must have a valid unique identifier, order, owner and description
//   - The verdict moves investigating -> resolved_true | resolved_false, once
//   - Pickup moves none -> scheduled -> picked_up, strictly forward
//   - At most one remedy is ever granted; a granted remedy never changes
//   - A replacement remedy requires the original goods to be picked up
//   - A refund remedy requires pickup only for complaint types that return goods
//   - The version increments on every persisted change (optimistic locking)
type Complaint struct {
	id            kernel.UUID
	orderID       kernel.UUID
	userID        kernel.UUID
	complaintType ComplaintType

	description    string
	evidenceImages []string

	investigationStatus InvestigationStatus
	adminNotes          string

	couponCode            string
	couponDiscountPercent int

	pickupStatus      PickupStatus
	pickupScheduledAt *time.Time
	pickupCompletedAt *time.Time

	resolutionType     ResolutionType
	refundMethod       string
	refundStatus       refund.Status
	replacementOrderID *kernel.UUID

	version   int
	createdAt time.Time

	isConstructed bool
}

// NewComplaint files a new complaint case in investigating status.
//
// Parameters:
//   - id: unique identifier for the complaint
//   - orderID: the order the complaint is about
//   - userID: the customer filing the complaint
//   - complaintType: the category of the complaint
//   - description: the customer's account of the problem (required)
//   - evidenceImages: uploaded photo URLs (may be empty)
//   - createdAt: filing time
func NewComplaint(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	complaintType ComplaintType,
	description string,
	evidenceImages []string,
	createdAt time.Time,
) (*Complaint, error) {
	c := &Complaint{
		investigationStatus: Investigating,
		pickupStatus:        PickupNone,
		resolutionType:      ResolutionNone,
		version:             1,
		createdAt:           createdAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setUserID(userID),
		c.setComplaintType(complaintType),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	c.setEvidenceImages(evidenceImages)
	return c, nil
}

// RestoreComplaint reconstructs a complaint from persistence without replaying
// the case history. All state values must already be valid.
func RestoreComplaint(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	complaintType ComplaintType,
	description string,
	evidenceImages []string,
	investigationStatus InvestigationStatus,
	adminNotes string,
	couponCode string,
	couponDiscountPercent int,
	pickupStatus PickupStatus,
	pickupScheduledAt, pickupCompletedAt *time.Time,
	resolutionType ResolutionType,
	refundMethod string,
	refundStatus refund.Status,
	replacementOrderID *kernel.UUID,
	version int,
	createdAt time.Time,
) (*Complaint, error) {
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("complaint version")
	}

	c := &Complaint{
		adminNotes:            adminNotes,
		couponCode:            couponCode,
		couponDiscountPercent: couponDiscountPercent,
		pickupScheduledAt:     pickupScheduledAt,
		pickupCompletedAt:     pickupCompletedAt,
		refundMethod:          refundMethod,
		refundStatus:          refundStatus,
		version:               version,
		createdAt:             createdAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setUserID(userID),
		c.setComplaintType(complaintType),
		c.setDescription(description),
		c.setInvestigationStatus(investigationStatus),
		c.setPickupStatus(pickupStatus),
		c.setResolutionType(resolutionType),
		c.setReplacementOrderID(replacementOrderID),
	); err != nil {
		return nil, err
	}

	c.setEvidenceImages(evidenceImages)
	return c, nil
}

// Validate ensures the Complaint instance was properly constructed through a factory method.
func (c *Complaint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrComplaintIsNotConstructed
	}
	return nil
}

// IsEqual compares two complaints by their unique identifiers.
func (c *Complaint) IsEqual(other *Complaint) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the complaint's unique identifier.
func (c *Complaint) ID() kernel.UUID {
	return c.id
}

// OrderID returns the identifier of the order the complaint is about.
func (c *Complaint) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the customer who filed the complaint.
func (c *Complaint) UserID() kernel.UUID {
	return c.userID
}

// ComplaintType returns the complaint category.
func (c *Complaint) ComplaintType() ComplaintType {
	return c.complaintType
}

// Description returns the customer's account of the problem.
func (c *Complaint) Description() string {
	return c.description
}

// EvidenceImages returns a copy of the uploaded photo URLs.
func (c *Complaint) EvidenceImages() []string {
	images := make([]string, len(c.evidenceImages))
	copy(images, c.evidenceImages)
	return images
}

// InvestigationStatus returns the current verdict state.
func (c *Complaint) InvestigationStatus() InvestigationStatus {
	return c.investigationStatus
}

// AdminNotes returns the notes recorded with the verdict.
func (c *Complaint) AdminNotes() string {
	return c.adminNotes
}

// CouponCode returns the apology coupon code issued on approval, empty if none.
func (c *Complaint) CouponCode() string {
	return c.couponCode
}

// CouponDiscountPercent returns the percentage discount of the issued coupon.
func (c *Complaint) CouponDiscountPercent() int {
	return c.couponDiscountPercent
}

// PickupStatus returns the state of the return-pickup sub-flow.
func (c *Complaint) PickupStatus() PickupStatus {
	return c.pickupStatus
}

// PickupScheduledAt returns the arranged pickup date, nil if none.
func (c *Complaint) PickupScheduledAt() *time.Time {
	return c.pickupScheduledAt
}

// PickupCompletedAt returns when the item was collected, nil if not yet.
func (c *Complaint) PickupCompletedAt() *time.Time {
	return c.pickupCompletedAt
}

// ResolutionType returns which remedy was granted, ResolutionNone if none yet.
func (c *Complaint) ResolutionType() ResolutionType {
	return c.resolutionType
}

// RefundMethod returns the payout channel chosen for a refund remedy.
func (c *Complaint) RefundMethod() string {
	return c.refundMethod
}

// RefundStatus returns the state of the refund remedy.
func (c *Complaint) RefundStatus() refund.Status {
	return c.refundStatus
}

// ReplacementOrderID returns the order created by a replacement remedy,
// nil if none.
func (c *Complaint) ReplacementOrderID() *kernel.UUID {
	return c.replacementOrderID
}

// Version returns the optimistic-lock version of the aggregate.
func (c *Complaint) Version() int {
	return c.version
}

// CreatedAt returns when the complaint was filed.
func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

// Approve records the verdict that the complaint is genuine and attaches the
// apology coupon issued to the customer.
//
// Valid only while the complaint is under investigation.
func (c *Complaint) Approve(apologyCoupon *coupon.Coupon, notes string) error {
	if c.investigationStatus != Investigating {
		return errs.NewInvalidTransitionError(
			"investigationStatus", c.investigationStatus.String(), ResolvedTrue.String())
	}
	if err := apologyCoupon.Validate(); err != nil {
		return err
	}

	c.investigationStatus = ResolvedTrue
	c.adminNotes = notes
	c.couponCode = apologyCoupon.Code()
	c.couponDiscountPercent = apologyCoupon.DiscountPercent()
	return nil
}

// Reject records the verdict that the complaint could not be verified.
// The case is closed; no pickup or remedy can follow.
//
// Valid only while the complaint is under investigation.
func (c *Complaint) Reject(notes string) error {
	if c.investigationStatus != Investigating {
		return errs.NewInvalidTransitionError(
			"investigationStatus", c.investigationStatus.String(), ResolvedFalse.String())
	}

	c.investigationStatus = ResolvedFalse
	c.adminNotes = notes
	return nil
}

// SchedulePickup arranges collection of the original goods on the given date.
//
// Requires an approved complaint of a type that returns goods. Scheduling a
// pickup twice is a conflict, not a transition error.
func (c *Complaint) SchedulePickup(date time.Time) error {
	if c.pickupStatus == PickupScheduled || c.pickupStatus == PickedUp {
		return errs.NewConflictError("pickup", c.id.String())
	}
	if c.investigationStatus != ResolvedTrue {
		return errs.NewInvalidTransitionError(
			"pickupStatus", c.pickupStatus.String(), PickupScheduled.String())
	}
	if !c.complaintType.RequiresPickup() {
		return errs.NewInvalidTransitionError(
			"pickupStatus", c.pickupStatus.String(), PickupScheduled.String())
	}

	c.pickupStatus = PickupScheduled
	c.pickupScheduledAt = &date
	return nil
}

// MarkPickedUp records that the courier collected the item at the given time.
//
// Requires a scheduled pickup. Completing a pickup twice is a conflict.
func (c *Complaint) MarkPickedUp(at time.Time) error {
	if c.pickupStatus == PickedUp {
		return errs.NewConflictError("pickup", c.id.String())
	}
	if c.pickupStatus != PickupScheduled {
		return errs.NewInvalidTransitionError(
			"pickupStatus", c.pickupStatus.String(), PickedUp.String())
	}

	c.pickupStatus = PickedUp
	c.pickupCompletedAt = &at
	return nil
}

// CanChooseRemedy reports whether the case is ready for a remedy: the verdict
// must be resolved_true, no remedy granted yet, and for complaint types that
// return goods the pickup must be complete.
func (c *Complaint) CanChooseRemedy() bool {
	if c.investigationStatus != ResolvedTrue || c.resolutionType != ResolutionNone {
		return false
	}
	if c.complaintType.RequiresPickup() && c.pickupStatus != PickedUp {
		return false
	}
	return true
}

// AttachReplacement grants the replacement remedy and links the newly created
// replacement order.
//
// A second remedy of any kind is a conflict. Replacements are only possible
// for complaint types that return goods, after pickup is complete.
func (c *Complaint) AttachReplacement(replacementOrderID kernel.UUID) error {
	if c.resolutionType != ResolutionNone || c.replacementOrderID != nil {
		return errs.NewConflictError("resolution", c.id.String())
	}
	if c.investigationStatus != ResolvedTrue || !c.complaintType.RequiresPickup() ||
		c.pickupStatus != PickedUp {
		return errs.NewInvalidTransitionError(
			"resolutionType", c.resolutionType.String(), ResolutionReplacement.String())
	}
	if err := replacementOrderID.Validate(); err != nil {
		return err
	}

	c.resolutionType = ResolutionReplacement
	id := replacementOrderID
	c.replacementOrderID = &id
	return nil
}

// ChooseRefund grants the refund remedy through the given payout channel.
// The refund starts pending; MarkRefundProcessed records the payout.
//
// A second remedy of any kind is a conflict. Complaint types that return
// goods require the pickup to be complete first.
func (c *Complaint) ChooseRefund(method string) error {
	if c.resolutionType != ResolutionNone {
		return errs.NewConflictError("resolution", c.id.String())
	}
	if !c.CanChooseRemedy() {
		return errs.NewInvalidTransitionError(
			"resolutionType", c.resolutionType.String(), ResolutionRefund.String())
	}
	if method == "" {
		return errs.NewValueIsRequiredError("refund method")
	}

	c.resolutionType = ResolutionRefund
	c.refundMethod = method
	c.refundStatus = refund.StatusPending
	return nil
}

// MarkRefundProcessed records that the refund payout went through.
func (c *Complaint) MarkRefundProcessed() error {
	if c.resolutionType != ResolutionRefund {
		return errs.NewInvalidTransitionError(
			"refundStatus", c.refundStatus.String(), refund.StatusProcessed.String())
	}
	newStatus, err := c.refundStatus.Process()
	if err != nil {
		return err
	}
	c.refundStatus = newStatus
	return nil
}

// BumpVersion advances the optimistic-lock version. Repositories call it
// right before persisting a modified aggregate.
func (c *Complaint) BumpVersion() {
	c.version++
}

func (c *Complaint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Complaint) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Complaint) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Complaint) setComplaintType(complaintType ComplaintType) error {
	if err := complaintType.Validate(); err != nil {
		return err
	}
	c.complaintType = complaintType
	return nil
}

func (c *Complaint) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("complaint description")
	}
	c.description = description
	return nil
}

func (c *Complaint) setEvidenceImages(images []string) {
	c.evidenceImages = make([]string, len(images))
	copy(c.evidenceImages, images)
}

func (c *Complaint) setInvestigationStatus(status InvestigationStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.investigationStatus = status
	return nil
}

func (c *Complaint) setPickupStatus(status PickupStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.pickupStatus = status
	return nil
}

func (c *Complaint) setResolutionType(resolutionType ResolutionType) error {
	if err := resolutionType.Validate(); err != nil {
		return err
	}
	c.resolutionType = resolutionType
	return nil
}

func (c *Complaint) setReplacementOrderID(replacementOrderID *kernel.UUID) error {
	if replacementOrderID == nil {
		return nil
	}
	if err := replacementOrderID.Validate(); err != nil {
		return err
	}
	id := *replacementOrderID
	c.replacementOrderID = &id
	return nil
}
