package reconcile

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/nhle/mailbox-taxonomy/internal/model"
)

// Fixed scores for the ordered matching rules. The first rule that fires
// wins; later rules are never consulted.
const (
	scoreExact      = 1.0
	scoreNameHasKey = 0.8
	scoreKeyHasName = 0.7
	scoreExampleHit = 0.6
	similarityFloor = 0.5
)

// normalize lowercases s and strips every non-alphanumeric rune, so that
// "Google Reviews", "google-reviews", and "GoogleReviews" all compare
// equal. Canonical keys and item names are normalized identically.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// score runs the rule pipeline for one canonical entry against one
// discovered item and returns the winning rule's score, or 0 when no rule
// fires. Each rule is a pure function of the normalized inputs.
func score(entry model.CanonicalEntry, item model.DiscoveredItem) float64 {
	key := normalize(entry.Key)
	name := normalize(item.Name)
	if key == "" || name == "" {
		return 0
	}

	if s, ok := ruleExact(key, name); ok {
		return s
	}
	if s, ok := ruleContains(key, name); ok {
		return s
	}
	if s, ok := ruleExamples(name, entry.Examples); ok {
		return s
	}
	return ruleSimilarity(key, name)
}

// ruleExact fires on normalized equality.
func ruleExact(key, name string) (float64, bool) {
	if key == name {
		return scoreExact, true
	}
	return 0, false
}

// ruleContains fires when one normalized string contains the other. The
// item-contains-key direction scores higher than key-contains-item.
func ruleContains(key, name string) (float64, bool) {
	if strings.Contains(name, key) {
		return scoreNameHasKey, true
	}
	if strings.Contains(key, name) {
		return scoreKeyHasName, true
	}
	return 0, false
}

// ruleExamples fires when the normalized item name shares a substring with
// any of the entry's normalized example strings, in either direction.
func ruleExamples(name string, examples []string) (float64, bool) {
	for _, ex := range examples {
		nex := normalize(ex)
		if nex == "" {
			continue
		}
		if strings.Contains(name, nex) || strings.Contains(nex, name) {
			return scoreExampleHit, true
		}
	}
	return 0, false
}

// ruleSimilarity computes a normalized edit-distance similarity:
// (maxLen - distance) / maxLen. A similarity at or below the floor scores
// zero.
func ruleSimilarity(key, name string) float64 {
	maxLen := len([]rune(key))
	if n := len([]rune(name)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 0
	}

	dist := levenshtein.ComputeDistance(key, name)
	similarity := float64(maxLen-dist) / float64(maxLen)
	if similarity > similarityFloor {
		return similarity
	}
	return 0
}

// classify maps a confidence score onto exact / partial / none.
func classify(confidence float64) model.Classification {
	switch {
	case confidence >= model.ExactThreshold:
		return model.MatchExact
	case confidence >= model.PartialThreshold:
		return model.MatchPartial
	default:
		return model.MatchNone
	}
}
