// Package taxonomy supplies the canonical mailbox taxonomies the engine
// reconciles against: built-in per-business-type sets plus YAML overrides.
// Sets are ordered; downstream tie-breaking depends on input order.
package taxonomy

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/nhle/mailbox-taxonomy/internal/model"
)

// ValidationError reports a malformed canonical taxonomy. It is a caller
// configuration error and fails fast, before any matching happens.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid canonical entry %q: %s", e.Key, e.Reason)
}

// Validate checks that every entry has a key and a non-empty path and that
// no key repeats.
func Validate(entries []model.CanonicalEntry) error {
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Key == "" {
			return &ValidationError{Key: entry.Key, Reason: "missing key"}
		}
		if seen[entry.Key] {
			return &ValidationError{Key: entry.Key, Reason: "duplicate key"}
		}
		seen[entry.Key] = true

		if len(entry.Path) == 0 {
			return &ValidationError{Key: entry.Key, Reason: "missing path"}
		}
		for _, seg := range entry.Path {
			if seg == "" {
				return &ValidationError{
					Key:    entry.Key,
					Reason: "empty path segment",
				}
			}
		}
	}
	return nil
}

// LoadFile reads an ordered canonical taxonomy from a YAML file of the form:
//
//	entries:
//	  - key: SALES
//	    path: [Sales]
//	    color: "#16A765"
//	    priority: 1
//	    examples: [sales, leads]
func LoadFile(path string) ([]model.CanonicalEntry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return nil, fmt.Errorf("taxonomy file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("reading taxonomy %s: %w", path, err)
	}

	var file struct {
		Entries []model.CanonicalEntry `mapstructure:"entries"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parsing taxonomy %s: %w", path, err)
	}

	if err := Validate(file.Entries); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}

	return file.Entries, nil
}

// ForBusiness returns a copy of the built-in canonical set for the given
// business type, or an error when no such set ships with the engine.
func ForBusiness(businessType string) ([]model.CanonicalEntry, error) {
	set, ok := builtin[businessType]
	if !ok {
		return nil, fmt.Errorf("no built-in taxonomy for business type %q", businessType)
	}
	out := make([]model.CanonicalEntry, len(set))
	copy(out, set)
	return out, nil
}

// Load resolves the taxonomy from config: the file override when set,
// otherwise the built-in set for the configured business type.
func Load(cfg model.TaxonomyConfig) ([]model.CanonicalEntry, error) {
	if cfg.File != "" {
		return LoadFile(cfg.File)
	}
	return ForBusiness(cfg.BusinessType)
}
