package reconcile

import (
	"fmt"
	"sort"

	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/taxonomy"
)

// Suggestions groups the per-entry decisions into the three actionable
// buckets the caller presents to the user.
type Suggestions struct {
	// Reuse holds exact matches that can be adopted as-is.
	Reuse []model.MatchResult

	// Confirm holds partial matches confident enough to reuse, pending
	// user confirmation.
	Confirm []model.MatchResult

	// Create holds the canonical entries with no acceptable match,
	// ordered by ascending priority (ties keep taxonomy input order).
	Create []model.CanonicalEntry
}

// SuggestionResult is the full output of one reconciliation run.
type SuggestionResult struct {
	// Matches holds one MatchResult per canonical entry, in taxonomy
	// input order.
	Matches []model.MatchResult

	// Suggestions buckets the matches into actions.
	Suggestions Suggestions

	// Mapping is the per-key action record the caller persists and
	// hands to the provisioner.
	Mapping model.SuggestedMapping

	// SharedMatches lists discovered item ids claimed by more than one
	// canonical key, in taxonomy input order. Matching is a greedy
	// per-entry best pick, not a global assignment, so two entries can
	// legitimately select the same item; the conflict is flagged here
	// rather than auto-resolved.
	SharedMatches map[string][]string
}

// Suggest compares every canonical entry against the discovered item set
// and derives the suggested mapping. It performs no I/O and is fully
// deterministic: identical inputs always produce an identical result.
//
// The canonical taxonomy must be valid (unique keys, non-empty paths);
// a malformed taxonomy is a caller configuration error reported before any
// matching happens.
func Suggest(
	items []model.DiscoveredItem,
	entries []model.CanonicalEntry,
) (*SuggestionResult, error) {
	if err := taxonomy.Validate(entries); err != nil {
		return nil, fmt.Errorf("canonical taxonomy: %w", err)
	}

	result := &SuggestionResult{
		Mapping:       make(model.SuggestedMapping, len(entries)),
		SharedMatches: make(map[string][]string),
	}

	claims := make(map[string][]string)

	for _, entry := range entries {
		match := matchEntry(entry, items)
		result.Matches = append(result.Matches, match)

		if match.MatchedItem != nil {
			claims[match.MatchedItem.ID] = append(
				claims[match.MatchedItem.ID], entry.Key,
			)
		}

		switch {
		case match.Classification == model.MatchExact:
			result.Suggestions.Reuse = append(
				result.Suggestions.Reuse, match,
			)
			result.Mapping[entry.Key] = model.MappingEntry{
				Action:         model.ActionReuse,
				ExistingItemID: match.MatchedItem.ID,
				Path:           entry.Path,
				Color:          entry.Color,
				Priority:       entry.Priority,
			}

		case match.Classification == model.MatchPartial &&
			match.Confidence >= model.ConfirmThreshold:
			result.Suggestions.Confirm = append(
				result.Suggestions.Confirm, match,
			)
			result.Mapping[entry.Key] = model.MappingEntry{
				Action:         model.ActionReuseWithConfirmation,
				ExistingItemID: match.MatchedItem.ID,
				Path:           entry.Path,
				Color:          entry.Color,
				Priority:       entry.Priority,
			}

		default:
			result.Suggestions.Create = append(
				result.Suggestions.Create, entry,
			)
			result.Mapping[entry.Key] = model.MappingEntry{
				Action:   model.ActionCreate,
				Path:     entry.Path,
				Color:    entry.Color,
				Priority: entry.Priority,
			}
		}
	}

	// Lower priority first; stable sort keeps input order on ties.
	sort.SliceStable(result.Suggestions.Create, func(i, j int) bool {
		return result.Suggestions.Create[i].Priority <
			result.Suggestions.Create[j].Priority
	})

	for itemID, keys := range claims {
		if len(keys) > 1 {
			result.SharedMatches[itemID] = keys
		}
	}

	return result, nil
}

// matchEntry scores entry against every item and keeps the single best.
// Items are scanned in input order and only a strictly higher score
// replaces the candidate, so ties resolve to the earliest item and the
// result stays deterministic.
func matchEntry(
	entry model.CanonicalEntry,
	items []model.DiscoveredItem,
) model.MatchResult {
	best := model.MatchResult{
		CanonicalKey:   entry.Key,
		Classification: model.MatchNone,
	}

	for i := range items {
		s := score(entry, items[i])
		if s > best.Confidence {
			best.Confidence = s
			best.MatchedItem = &items[i]
		}
	}

	best.Classification = classify(best.Confidence)
	if best.Classification == model.MatchNone {
		best.MatchedItem = nil
	}

	return best
}

// CreateEntries extracts the create subset of a suggested mapping in the
// provisioner's input shape, ordered by ascending priority with ties
// broken by the supplied taxonomy order.
func CreateEntries(
	mapping model.SuggestedMapping,
	entries []model.CanonicalEntry,
) []model.CreateEntry {
	var out []model.CreateEntry
	for _, entry := range entries {
		rec, ok := mapping[entry.Key]
		if !ok || rec.Action != model.ActionCreate {
			continue
		}
		out = append(out, model.CreateEntry{
			Key:         entry.Key,
			Path:        rec.Path,
			Color:       rec.Color,
			Description: entry.Description,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return mapping[out[i].Key].Priority < mapping[out[j].Key].Priority
	})

	return out
}
