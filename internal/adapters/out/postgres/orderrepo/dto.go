// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by user and parent order.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderType           string     `gorm:"type:varchar(32);not null"`
	ParentOrderID       *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"type:varchar(32);not null"`
	PaymentStatus       string     `gorm:"type:varchar(32);not null"`
	PaymentMethod       string     `gorm:"type:varchar(32);not null"`
	TotalAmount         float64    `gorm:"type:numeric(12,2);not null"`
	ReturningToProvider bool       `gorm:"not null"`
	CustomerName        string     `gorm:"type:varchar(255);not null"`
	CustomerEmail       string     `gorm:"type:varchar(255);not null"`
	CustomerPhone       string     `gorm:"type:varchar(64);not null"`
	DeliveryNotes       string     `gorm:"type:text;not null"`
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	Items               []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
// Links to the order via foreign key; items never change after the order is placed.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
	Quantity  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including line items and the optional parent order link.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var parentOrderID *uuid.UUID
	if id := aggregate.ParentOrderID(); id != nil {
		raw := id.Bytes()
		parentOrderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ID().Bytes(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                  orderID,
		UserID:              aggregate.UserID().Bytes(),
		OrderType:           aggregate.OrderType().String(),
		ParentOrderID:       parentOrderID,
		Status:              aggregate.Status().String(),
		PaymentStatus:       aggregate.PaymentStatus().String(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		TotalAmount:         aggregate.TotalAmount(),
		ReturningToProvider: aggregate.ReturningToProvider(),
		CustomerName:        aggregate.CustomerName(),
		CustomerEmail:       aggregate.CustomerEmail(),
		CustomerPhone:       aggregate.CustomerPhone(),
		DeliveryNotes:       aggregate.DeliveryNotes(),
		ShippedAt:           aggregate.ShippedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		Items:               items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var parentOrderID *kernel.UUID
	if dto.ParentOrderID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentOrderID)[:])
		if parentErr != nil {
			return nil, parentErr
		}

		parentOrderID = &pID
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		orderType,
		parentOrderID,
		status,
		paymentStatus,
		paymentMethod,
		dto.TotalAmount,
		items,
		dto.ReturningToProvider,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.CustomerPhone,
		dto.DeliveryNotes,
		dto.ShippedAt,
		dto.DeliveredAt,
	)
}

// itemToDomain converts a line item DTO to its domain value object.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Name, dto.Price, dto.Quantity)
}
