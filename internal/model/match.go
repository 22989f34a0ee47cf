package model

// Classification describes how closely a canonical entry matched a
// discovered item.
type Classification string

const (
	MatchExact   Classification = "exact"
	MatchPartial Classification = "partial"
	MatchNone    Classification = "none"
)

// Confidence thresholds shared by scoring and suggestion derivation.
const (
	// ExactThreshold is the minimum confidence for an exact classification.
	ExactThreshold = 0.9

	// PartialThreshold is the minimum confidence for a partial
	// classification.
	PartialThreshold = 0.6

	// ConfirmThreshold is the minimum confidence at which a partial match
	// is suggested for reuse with user confirmation.
	ConfirmThreshold = 0.7
)

// MatchResult is the outcome of comparing one CanonicalEntry against the
// full discovered item set.
type MatchResult struct {
	// CanonicalKey references the canonical entry that was matched.
	CanonicalKey string `json:"canonical_key"`

	// Classification is exact, partial, or none.
	Classification Classification `json:"classification"`

	// Confidence is the match score in [0,1].
	Confidence float64 `json:"confidence"`

	// MatchedItem is the best-scoring discovered item, or nil when
	// Classification is MatchNone.
	MatchedItem *DiscoveredItem `json:"matched_item,omitempty"`
}

// Action says what the caller should do for one canonical entry.
type Action string

const (
	// ActionReuse maps the entry onto an existing item as-is.
	ActionReuse Action = "reuse"

	// ActionReuseWithConfirmation maps the entry onto an existing item
	// but asks the user to confirm first.
	ActionReuseWithConfirmation Action = "reuse_with_confirmation"

	// ActionCreate provisions a new item in the provider.
	ActionCreate Action = "create"
)

// MappingEntry records the decided action for one canonical key.
type MappingEntry struct {
	Action Action `json:"action"`

	// ExistingItemID is set for reuse actions only.
	ExistingItemID string `json:"existing_item_id,omitempty"`

	Path     []string `json:"path"`
	Color    string   `json:"color,omitempty"`
	Priority int      `json:"priority"`
}

// SuggestedMapping associates every canonical key with its action record.
// Built once per reconciliation, then treated as immutable.
type SuggestedMapping map[string]MappingEntry
