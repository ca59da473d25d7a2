package commands

import (
	"errors"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
	"github.com/ayobami7/click-and-collect-notif/internal/pkg/guard"
)

var ErrPurgeExpiredCollectionsCommandIsNotConstructed = errors.New(
	"PurgeExpiredCollectionsCommand must be created via NewPurgeExpiredCollectionsCommand constructor",
)

// PurgeExpiredCollectionsCommand removes terminal (Collected or Cancelled)
// records whose last update is older than the retention window. Issued by
// the retention job, not by any external caller.
type PurgeExpiredCollectionsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeExpiredCollectionsCommand creates a purge command with the given
// retention window. The window must be positive.
func NewPurgeExpiredCollectionsCommand(retention time.Duration) (PurgeExpiredCollectionsCommand, error) {
	if retention <= 0 {
		return PurgeExpiredCollectionsCommand{}, errs.NewValueIsInvalidError("retention")
	}

	return PurgeExpiredCollectionsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredCollectionsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredCollectionsCommandIsNotConstructed)
}

// Retention returns how long terminal records are kept after their last
// update.
func (c PurgeExpiredCollectionsCommand) Retention() time.Duration {
	return c.retention
}
