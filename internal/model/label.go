package model

// ItemKind distinguishes provider-owned mailboxes from user-created ones.
type ItemKind string

const (
	// KindSystem marks items owned by the provider (special-use folders,
	// non-selectable namespace containers). System items are excluded
	// from matching and provisioning.
	KindSystem ItemKind = "system"

	// KindUser marks items created by the account owner.
	KindUser ItemKind = "user"
)

// DiscoveredItem is one existing organizational unit (label, folder, or
// category) read live from the mailbox provider. Items are built fresh on
// every discovery call and never mutated afterwards.
type DiscoveredItem struct {
	// ID is the opaque provider identifier, unique within an account.
	ID string `json:"id"`

	// Name is the raw display name as returned by the provider. It may
	// encode hierarchy via the provider's delimiter (e.g. "Team/Sales").
	Name string `json:"name"`

	// Path holds the trimmed segments of Name split on the provider
	// delimiter. Always non-empty for a valid item.
	Path []string `json:"path"`

	// Color is the display color as a hex string, or empty when the
	// provider reports none.
	Color string `json:"color,omitempty"`

	// Kind reports whether the item is provider-owned or user-created.
	Kind ItemKind `json:"kind"`

	// MessageTotal and UnseenTotal are usage counters reported by the
	// provider. Informational only; they never affect matching.
	MessageTotal uint32 `json:"message_total"`
	UnseenTotal  uint32 `json:"unseen_total"`
}

// TaxonomyNode is one node of the tree built from a set of DiscoveredItems.
// Children are keyed by segment name. Items holds every discovered item
// whose path terminates exactly at this node; providers can report duplicate
// display names with distinct ids, so this is a list rather than a single
// value.
type TaxonomyNode struct {
	// Name is the path segment this node represents.
	Name string `json:"name"`

	// FullPath holds the segments from the tree root to this node.
	// Invariant: FullPath[len(FullPath)-1] == Name.
	FullPath []string `json:"full_path"`

	// Children maps segment name to child node.
	Children map[string]*TaxonomyNode `json:"children,omitempty"`

	// Items are the discovered items terminating at this node.
	Items []DiscoveredItem `json:"items,omitempty"`
}
