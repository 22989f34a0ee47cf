// Package mapping persists suggested mappings per provider account with
// optimistic versioning. The engine itself never writes here; the caller
// persists the mapping it gets back from reconciliation.
package mapping

import (
	"context"
	"errors"

	"github.com/nhle/mailbox-taxonomy/internal/model"
)

// ErrVersionConflict is returned by Put when the stored version no longer
// matches the version the caller read. The caller re-reads and retries.
var ErrVersionConflict = errors.New("mapping version conflict")

// Store is the key-value persistence contract for suggested mappings.
// Get returns the stored mapping and its version, or (nil, 0, nil) when no
// mapping exists for the account. Put writes the mapping only when version
// matches the currently stored one; a first write passes version 0.
type Store interface {
	Get(ctx context.Context, accountID string) (model.SuggestedMapping, int64, error)
	Put(ctx context.Context, accountID string, mapping model.SuggestedMapping, version int64) error
}
