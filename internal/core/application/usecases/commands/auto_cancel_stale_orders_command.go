package commands

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// DefaultStaleAfter is how long an order may wait in PENDING before it is reaped.
const DefaultStaleAfter = 30 * time.Minute

var ErrAutoCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"AutoCancelStaleOrdersCommand must be created via NewAutoCancelStaleOrdersCommand constructor",
)

// AutoCancelStaleOrdersCommand cancels the store's orders that have sat in
// PENDING for longer than staleAfter.
type AutoCancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	storeID    kernel.UUID
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewAutoCancelStaleOrdersCommand uses DefaultStaleAfter when staleAfter is zero.
func NewAutoCancelStaleOrdersCommand(storeID kernel.UUID, staleAfter time.Duration) (AutoCancelStaleOrdersCommand, error) {
	if staleAfter == 0 {
		staleAfter = DefaultStaleAfter
	}

	cmd := AutoCancelStaleOrdersCommand{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}

	var rangeErr error
	if staleAfter < 0 {
		rangeErr = errs.NewValueIsOutOfRangeError("stale after", staleAfter, time.Duration(0), "unbounded")
	}

	if err := errors.Join(
		validateID("store id", storeID, &cmd.storeID),
		rangeErr,
	); err != nil {
		return AutoCancelStaleOrdersCommand{}, err
	}

	return cmd, nil
}

func (c AutoCancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAutoCancelStaleOrdersCommandIsNotConstructed)
}

func (c AutoCancelStaleOrdersCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c AutoCancelStaleOrdersCommand) StaleAfter() time.Duration {
	return c.staleAfter
}
