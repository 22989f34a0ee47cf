package model

// CanonicalEntry is one required taxonomy item from business configuration.
// Keys are stable identifiers owned by the business taxonomy, never derived
// from user data.
type CanonicalEntry struct {
	// Key uniquely identifies this entry within its taxonomy set.
	Key string `mapstructure:"key" yaml:"key" json:"key"`

	// Path is the target hierarchy in the provider, one segment per level.
	Path []string `mapstructure:"path" yaml:"path" json:"path"`

	// Color is the display color to apply when creating the item,
	// as a "#RRGGBB" hex string.
	Color string `mapstructure:"color" yaml:"color" json:"color,omitempty"`

	// Description explains what the entry is for.
	Description string `mapstructure:"description" yaml:"description" json:"description,omitempty"`

	// Priority orders create suggestions; lower is more important.
	Priority int `mapstructure:"priority" yaml:"priority" json:"priority"`

	// Examples are alternate display strings used only to aid matching.
	Examples []string `mapstructure:"examples" yaml:"examples" json:"examples,omitempty"`
}
