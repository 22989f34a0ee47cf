package discovery

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/provider"
)

// MalformedItem reports one provider item whose display name could not be
// parsed into a valid path. Malformed items are skipped, never fatal.
type MalformedItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Result is the outcome of one discovery call: the normalized user items,
// the taxonomy tree built from them, and any items that were skipped.
type Result struct {
	Items     []model.DiscoveredItem
	Taxonomy  *model.TaxonomyNode
	Malformed []MalformedItem
}

// Discoverer enumerates and normalizes a provider account's organizational
// items.
type Discoverer struct {
	client provider.Client
	logger *zap.Logger
}

// New creates a Discoverer. A nil logger disables logging.
func New(client provider.Client, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{client: client, logger: logger}
}

// Discover lists the account's items, drops provider-owned ones, parses
// each remaining item into a normalized record, and aggregates the records
// into a taxonomy tree. Items are built fresh on every call.
//
// A provider failure is all-or-nothing: no partial results are returned,
// so the caller never reconciles against stale state. Individual items
// with unparseable names are skipped and reported in Result.Malformed.
func (d *Discoverer) Discover(ctx context.Context) (*Result, error) {
	raw, err := d.client.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering items: %w", err)
	}

	delim := d.client.Delimiter()
	result := &Result{}

	for _, r := range raw {
		if r.Kind == model.KindSystem {
			continue
		}

		item, err := normalizeItem(r, delim)
		if err != nil {
			result.Malformed = append(result.Malformed, MalformedItem{
				ID:     r.ID,
				Name:   r.Name,
				Reason: err.Error(),
			})
			d.logger.Warn("skipping malformed item",
				zap.String("id", r.ID),
				zap.String("name", r.Name),
				zap.Error(err),
			)
			continue
		}

		result.Items = append(result.Items, item)
	}

	result.Taxonomy = BuildTaxonomy(result.Items)

	d.logger.Debug("discovery complete",
		zap.Int("items", len(result.Items)),
		zap.Int("malformed", len(result.Malformed)),
	)

	return result, nil
}

// normalizeItem parses a raw provider item into a DiscoveredItem by
// splitting its name on the provider delimiter and trimming each segment.
// A segment that is empty after trimming makes the whole item malformed.
func normalizeItem(
	raw provider.Item, delim string,
) (model.DiscoveredItem, error) {
	segments := strings.Split(raw.Name, delim)

	path := make([]string, 0, len(segments))
	for i, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			return model.DiscoveredItem{}, fmt.Errorf(
				"empty path segment at position %d in %q", i, raw.Name,
			)
		}
		path = append(path, trimmed)
	}

	return model.DiscoveredItem{
		ID:           raw.ID,
		Name:         raw.Name,
		Path:         path,
		Color:        raw.Color,
		Kind:         raw.Kind,
		MessageTotal: raw.MessageTotal,
		UnseenTotal:  raw.UnseenTotal,
	}, nil
}

// BuildTaxonomy aggregates discovered items into a tree keyed by shared
// path prefixes. The returned root is synthetic: its Name is empty and its
// children are the top-level segments. Items whose paths end at the same
// node all attach there; duplicate display names with distinct ids are
// preserved.
func BuildTaxonomy(items []model.DiscoveredItem) *model.TaxonomyNode {
	root := &model.TaxonomyNode{
		Children: make(map[string]*model.TaxonomyNode),
	}

	for _, item := range items {
		node := root
		for _, seg := range item.Path {
			child, ok := node.Children[seg]
			if !ok {
				child = &model.TaxonomyNode{
					Name:     seg,
					FullPath: append(append([]string{}, node.FullPath...), seg),
					Children: make(map[string]*model.TaxonomyNode),
				}
				node.Children[seg] = child
			}
			node = child
		}
		node.Items = append(node.Items, item)
	}

	return root
}
