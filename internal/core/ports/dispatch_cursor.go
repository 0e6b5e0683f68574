package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
)

// DispatchCursor is the persisted round-robin position of a store.
type DispatchCursor interface {
	// Reserve atomically advances the store's cursor by n and returns the
	// position before the advance. Concurrent callers get disjoint ranges.
	Reserve(ctx context.Context, storeID kernel.UUID, n int64) (int64, error)
}
