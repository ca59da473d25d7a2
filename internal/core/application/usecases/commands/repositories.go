// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and (for the two notifying transitions) event publication after
// a successful commit.
package commands

import (
	"context"

	"github.com/ayobami7/click-and-collect-notif/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across repository calls: transitions are
	// all-or-nothing, with no partial mutation left behind on failure.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CollectionRepoFactory provides access to the collection repository
	// within a transaction.
	CollectionRepoFactory interface {
		CollectionRepository() ports.CollectionRepository
	}

	// CollectionUoW manages transactions for collection operations.
	CollectionUoW interface {
		TxManager
		CollectionRepoFactory
	}

	// CollectionUoWFactory creates new unit of work instances. Each command
	// execution gets its own instance, keeping concurrent operations
	// isolated from one another.
	CollectionUoWFactory interface {
		Create() CollectionUoW
	}
)
