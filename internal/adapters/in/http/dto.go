package http

import "time"

// Error is the body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FileComplaintRequest is the body for opening a complaint case.
type FileComplaintRequest struct {
	OrderID        string   `json:"orderId"`
	UserID         string   `json:"userId"`
	ComplaintType  string   `json:"type"`
	Description    string   `json:"description"`
	EvidenceImages []string `json:"evidenceImages"`
}

// FileComplaintResponse returns the identifier assigned to the new case.
type FileComplaintResponse struct {
	ComplaintID string `json:"complaintId"`
}

// VerdictRequest carries the admin notes recorded with an approve or
// reject decision.
type VerdictRequest struct {
	AdminNotes string `json:"adminNotes"`
}

// SchedulePickupRequest carries the date the damaged item will be
// collected from the customer.
type SchedulePickupRequest struct {
	PickupDate time.Time `json:"pickupDate"`
}

// ProcessRefundRequest selects how the refund is to be paid out.
type ProcessRefundRequest struct {
	RefundMethod string `json:"refundMethod"`
}

// ProcessRefundResponse returns the identifier of the created refund request.
type ProcessRefundResponse struct {
	RefundRequestID string `json:"refundRequestId"`
}

// CreateReplacementOrderResponse returns the identifier of the order created
// at no charge to replace the faulty one.
type CreateReplacementOrderResponse struct {
	ReplacementOrderID string `json:"replacementOrderId"`
}

// RecordDeliveryAttemptRequest carries the date a new delivery attempt is
// scheduled for.
type RecordDeliveryAttemptRequest struct {
	ScheduledDate time.Time `json:"scheduledDate"`
}

// RecordDeliveryAttemptResponse returns the sequence number assigned to the
// new attempt.
type RecordDeliveryAttemptResponse struct {
	AttemptNumber int `json:"attemptNumber"`
}

// MarkAttemptOutcomeRequest records how a delivery attempt ended.
type MarkAttemptOutcomeRequest struct {
	Outcome          string `json:"outcome"`
	FailureReason    string `json:"failureReason"`
	ReturnToProvider bool   `json:"returnToProvider"`
}

// ComplaintResponse is the full view of a single complaint case.
type ComplaintResponse struct {
	ComplaintID    string   `json:"complaintId"`
	OrderID        string   `json:"orderId"`
	UserID         string   `json:"userId"`
	ComplaintType  string   `json:"type"`
	Description    string   `json:"description"`
	EvidenceImages []string `json:"evidenceImages"`

	InvestigationStatus string `json:"investigationStatus"`
	AdminNotes          string `json:"adminNotes,omitempty"`

	CouponCode            string `json:"couponCode,omitempty"`
	CouponDiscountPercent int    `json:"couponDiscountPercent,omitempty"`

	PickupStatus      string     `json:"pickupStatus"`
	PickupScheduledAt *time.Time `json:"pickupScheduledAt,omitempty"`
	PickupCompletedAt *time.Time `json:"pickupCompletedAt,omitempty"`

	ResolutionType     string `json:"resolutionType"`
	RefundMethod       string `json:"refundMethod,omitempty"`
	RefundStatus       string `json:"refundStatus,omitempty"`
	ReplacementOrderID string `json:"replacementOrderId,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// ComplaintSummaryResponse is one row of the admin worklist.
type ComplaintSummaryResponse struct {
	ComplaintID   string    `json:"complaintId"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	ComplaintType string    `json:"type"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderStatusResponse is the customer-facing view of an order, including the
// projected status line and the delivery attempt history.
type OrderStatusResponse struct {
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`

	StatusText string `json:"statusText"`
	Severity   string `json:"severity"`
	Action     string `json:"action,omitempty"`

	Attempts []DeliveryAttemptView `json:"attempts"`
}

// DeliveryAttemptView is one delivery attempt in the order status view.
type DeliveryAttemptView struct {
	AttemptNumber int       `json:"attemptNumber"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failureReason,omitempty"`
}
