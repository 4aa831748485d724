package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrPurgeStaleOrdersCommandIsNotConstructed = errors.New(
	"PurgeStaleOrdersCommand must be created via NewPurgeStaleOrdersCommand constructor",
)

// PurgeStaleOrdersCommand removes cancelled orders that have not been
// touched within the retention window. Cancelled orders keep their audit
// value for a while, then become noise; this is the cleanup.
type PurgeStaleOrdersCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleOrdersCommand creates a purge command. The retention window
// must be positive.
func NewPurgeStaleOrdersCommand(retention time.Duration) (PurgeStaleOrdersCommand, error) {
	if retention <= 0 {
		return PurgeStaleOrdersCommand{}, errs.NewValueIsInvalidError("retention")
	}

	return PurgeStaleOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Retention returns how long cancelled orders are kept before purging.
func (c PurgeStaleOrdersCommand) Retention() time.Duration {
	return c.retention
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleOrdersCommandIsNotConstructed)
}
