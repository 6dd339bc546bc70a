// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"aftersales/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ComplaintRepoFactory provides access to complaint repository within a transaction.
	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// AttemptRepoFactory provides access to delivery attempt repository within a transaction.
	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	// CouponRepoFactory provides access to coupon repository within a transaction.
	CouponRepoFactory interface {
		CouponRepository() ports.CouponRepository
	}

	// RefundRepoFactory provides access to refund repository within a transaction.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// OutboxFactory provides access to the notification outbox within a transaction.
	OutboxFactory interface {
		NotificationOutbox() ports.NotificationOutbox
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AttemptUoW manages transactions for the delivery attempt log.
	// The order repository is included because an attempt outcome can move
	// the order itself (delivered, returning to provider).
	AttemptUoW interface {
		TxManager
		OrderRepoFactory
		AttemptRepoFactory
	}

	// AttemptUoWFactory creates new attempt unit of work instances.
	AttemptUoWFactory interface {
		Create() AttemptUoW
	}

	// ComplaintUoW manages transactions for complaint case operations that
	// touch the complaint, its order, and the notification outbox.
	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
		OrderRepoFactory
		OutboxFactory
	}

	// ComplaintUoWFactory creates new complaint unit of work instances.
	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}

	// ResolutionUoW manages transactions for remedy operations, which span
	// the complaint, the order, coupons, refunds, and the outbox.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   complaintRepo := uow.ComplaintRepository()
	//   refundRepo := uow.RefundRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ResolutionUoW interface {
		TxManager
		ComplaintRepoFactory
		OrderRepoFactory
		CouponRepoFactory
		RefundRepoFactory
		OutboxFactory
	}

	// ResolutionUoWFactory creates new resolution unit of work instances.
	ResolutionUoWFactory interface {
		Create() ResolutionUoW
	}

	// OutboxUoW manages transactions for draining the notification outbox.
	OutboxUoW interface {
		TxManager
		OutboxFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
