// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command follows the same pattern: validation, serialized transaction
// management, persistence and, once committed, publication of a change event.
package commands

import (
	"orderboard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// OrderUoW manages a transaction over the order record store.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW = ports.UnitOfWork

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory = ports.UnitOfWorkFactory
)
