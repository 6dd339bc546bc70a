package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/core/domain/model/shipment"
	"aftersales/internal/core/domain/services"
	"aftersales/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler builds the customer-facing status view for an
// order. The order and its delivery attempts are rehydrated from the database
// and run through the status projection, so the view always reflects the same
// precedence rules the rest of the system uses.
//
// Example:
//
//	handler := NewGetOrderStatusQueryHandler(db)
//	query, _ := NewGetOrderStatusQuery(orderID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order status: %v", err)
//	    return err
//	}
type GetOrderStatusQueryHandler struct {
	db        *gorm.DB
	projector services.StatusProjector
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{
		db:        db,
		projector: services.NewStatusProjector(),
	}
}

// Handle executes the query for a single order. Returns an object-not-found
// error when no order with the requested ID exists.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	o, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	attempts, err := h.loadAttempts(ctx, query.OrderID())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	descriptor, err := h.projector.Project(o, attempts)
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response := GetOrderStatusQueryResponse{
		OrderID:       o.ID(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		PaymentMethod: o.PaymentMethod().String(),
		StatusText:    descriptor.Text,
		Severity:      string(descriptor.Severity),
		Action:        string(descriptor.Action),
		Attempts:      make([]DeliveryAttemptResponse, 0, len(attempts)),
	}

	for _, attempt := range attempts {
		response.Attempts = append(response.Attempts, DeliveryAttemptResponse{
			AttemptNumber: attempt.AttemptNumber(),
			ScheduledDate: attempt.ScheduledDate(),
			Status:        attempt.Status().String(),
			FailureReason: attempt.FailureReason(),
		})
	}

	return response, nil
}

func (h GetOrderStatusQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.Order, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			order_type,
			parent_order_id,
			status,
			payment_status,
			payment_method,
			total_amount,
			returning_to_provider,
			customer_name,
			customer_email,
			customer_phone,
			delivery_notes,
			shipped_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		rawID               uuid.UUID
		rawUserID           uuid.UUID
		orderTypeStr        string
		rawParentID         uuid.NullUUID
		statusStr           string
		paymentStatusStr    string
		paymentMethodStr    string
		totalAmount         float64
		returningToProvider bool
		customerName        string
		customerEmail       string
		customerPhone       string
		deliveryNotes       string
		shippedAt           sql.NullTime
		deliveredAt         sql.NullTime
	)

	err := row.Scan(
		&rawID,
		&rawUserID,
		&orderTypeStr,
		&rawParentID,
		&statusStr,
		&paymentStatusStr,
		&paymentMethodStr,
		&totalAmount,
		&returningToProvider,
		&customerName,
		&customerEmail,
		&customerPhone,
		&deliveryNotes,
		&shippedAt,
		&deliveredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID)
	}
	if err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(rawUserID[:])
	if err != nil {
		return nil, err
	}

	var parentOrderID *kernel.UUID
	if rawParentID.Valid {
		parentID, parentErr := kernel.UUIDFromBytes(rawParentID.UUID[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentOrderID = &parentID
	}

	orderType, err := order.TypeFromString(orderTypeStr)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(statusStr)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(paymentStatusStr)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.PaymentMethodFromString(paymentMethodStr)
	if err != nil {
		return nil, err
	}

	items, err := h.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		orderType,
		parentOrderID,
		status,
		paymentStatus,
		paymentMethod,
		totalAmount,
		items,
		returningToProvider,
		customerName,
		customerEmail,
		customerPhone,
		deliveryNotes,
		timePtr(shippedAt),
		timePtr(deliveredAt),
	)
}

func (h GetOrderStatusQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]order.Item, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]order.Item, 0)

	for rows.Next() {
		var (
			rawProductID uuid.UUID
			name         string
			price        float64
			quantity     int
		)

		if err = rows.Scan(&rawProductID, &name, &price, &quantity); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(rawProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(productID, name, price, quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderStatusQueryHandler) loadAttempts(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*shipment.Attempt, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			attempt_number,
			scheduled_date,
			status,
			failure_reason
		FROM delivery_attempts
		WHERE order_id = ?
		ORDER BY attempt_number
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := make([]*shipment.Attempt, 0)

	for rows.Next() {
		var (
			attemptNumber int
			scheduledDate time.Time
			statusStr     string
			failureReason string
		)

		if err = rows.Scan(&attemptNumber, &scheduledDate, &statusStr, &failureReason); err != nil {
			return nil, err
		}

		status, statusErr := shipment.AttemptStatusFromString(statusStr)
		if statusErr != nil {
			return nil, statusErr
		}

		attempt, restoreErr := shipment.RestoreAttempt(
			orderID,
			attemptNumber,
			scheduledDate,
			status,
			failureReason,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		attempts = append(attempts, attempt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
