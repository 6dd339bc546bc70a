// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the after-sales system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StatusProjector: A domain service that projects an order and its delivery
//     attempts into the single customer-facing status line
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
