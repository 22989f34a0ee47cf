package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhle/mailbox-taxonomy/internal/model"
)

// UnavailableError indicates the provider could not be reached or rejected
// the credential. Discovery treats it as fatal: no partial results are
// returned when the provider is unavailable.
type UnavailableError struct {
	ProviderType Type
	Message      string
	Err          error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("provider unavailable (%s): %s", e.ProviderType, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err (or any error in its chain) is an
// UnavailableError.
func IsUnavailable(err error) bool {
	var unavailErr *UnavailableError
	return errors.As(err, &unavailErr)
}

// Type identifies the kind of mailbox provider integration.
type Type string

const (
	TypeIMAP Type = "imap"
)

// Item is the raw organizational unit a provider reports before
// normalization: a label, folder, or category.
type Item struct {
	// ID is the provider's identifier for the item. Providers without a
	// separate id concept use the full display name.
	ID string

	// Name is the full display name, hierarchy encoded with the
	// provider's delimiter.
	Name string

	// Kind reports whether the item is provider-owned or user-created.
	Kind model.ItemKind

	// Color is the item's display color as a hex string, empty when the
	// provider has no color concept.
	Color string

	// MessageTotal and UnseenTotal are usage counters, zero when the
	// provider did not report them.
	MessageTotal uint32
	UnseenTotal  uint32
}

// Client defines the contract every mailbox provider integration must
// implement. All methods are blocking; timeouts and cancellation are the
// client's responsibility via the supplied context.
type Client interface {
	// Type returns the provider type identifier.
	Type() Type

	// Delimiter returns the hierarchy delimiter the provider uses in
	// display names (e.g. "/").
	Delimiter() string

	// ListItems enumerates every organizational item in the account.
	// Implementations must exhaust provider-side pagination before
	// returning. Connectivity and auth failures are reported as
	// *UnavailableError.
	ListItems(ctx context.Context) ([]Item, error)

	// FindItemByExactName returns the item whose full display name
	// matches exactly, or nil when no such item exists.
	FindItemByExactName(ctx context.Context, name string) (*Item, error)

	// CreateItem creates an item under the given full display name.
	// colorHex may be empty; providers without color support ignore it.
	CreateItem(ctx context.Context, name, colorHex string) (*Item, error)
}
