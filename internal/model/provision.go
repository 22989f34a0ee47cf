package model

// CreateEntry describes one item the caller has decided to materialize in
// the provider, ordinarily the create subset of a SuggestedMapping.
type CreateEntry struct {
	// Key is the canonical key the entry was derived from, carried
	// through for reporting.
	Key string `json:"key"`

	Path        []string `json:"path"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ProvisionedItem records a successful create.
type ProvisionedItem struct {
	Key string `json:"key"`

	// Name is the full display name the item was created under.
	Name string `json:"name"`

	// ItemID is the provider id of the new item.
	ItemID string `json:"item_id"`
}

// SkippedItem records an entry that already existed at provisioning time.
type SkippedItem struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// FailedItem records an entry whose create call errored.
type FailedItem struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ProvisionResult buckets per-entry outcomes so the caller can report
// successes and retry only the failed subset.
type ProvisionResult struct {
	Created []ProvisionedItem `json:"created"`
	Skipped []SkippedItem     `json:"skipped"`
	Failed  []FailedItem      `json:"failed"`
}
