package provision

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/provider"
)

// colorPattern accepts only the strict 6-hex-digit #RRGGBB form.
var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Provisioner creates missing taxonomy entries in the provider.
type Provisioner struct {
	client provider.Client
	logger *zap.Logger
}

// New creates a Provisioner. A nil logger disables logging.
func New(client provider.Client, logger *zap.Logger) *Provisioner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provisioner{client: client, logger: logger}
}

// Provision creates the given entries in the provider, parents before
// children, and reports every outcome in one of three buckets.
//
// Entries are processed sequentially in ascending path depth so a parent
// exists before any child under it is attempted. Each entry is re-checked
// live against the provider just before creation: an item that already
// exists under the exact display name is skipped, which keeps a second run
// on unchanged provider state all-skipped and guards against concurrent
// changes between reconciliation and provisioning. The re-check is a
// best-effort safeguard, not a transactional one.
//
// A failed create is isolated to its entry; the remaining entries still
// run, and the caller retries only the failed bucket.
func (p *Provisioner) Provision(
	ctx context.Context,
	entries []model.CreateEntry,
) *model.ProvisionResult {
	ordered := make([]model.CreateEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Path) < len(ordered[j].Path)
	})

	delim := p.client.Delimiter()
	result := &model.ProvisionResult{}

	for _, entry := range ordered {
		name := strings.Join(entry.Path, delim)

		existing, err := p.client.FindItemByExactName(ctx, name)
		if err != nil {
			result.Failed = append(result.Failed, model.FailedItem{
				Key:   entry.Key,
				Name:  name,
				Error: err.Error(),
			})
			p.logger.Warn("existence check failed",
				zap.String("key", entry.Key),
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}

		if existing != nil {
			result.Skipped = append(result.Skipped, model.SkippedItem{
				Key:    entry.Key,
				Name:   name,
				ItemID: existing.ID,
				Reason: "already_exists",
			})
			p.logger.Debug("item already exists",
				zap.String("key", entry.Key),
				zap.String("name", name),
			)
			continue
		}

		created, err := p.client.CreateItem(ctx, name, validColor(entry.Color))
		if err != nil {
			result.Failed = append(result.Failed, model.FailedItem{
				Key:   entry.Key,
				Name:  name,
				Error: err.Error(),
			})
			p.logger.Warn("create failed",
				zap.String("key", entry.Key),
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}

		result.Created = append(result.Created, model.ProvisionedItem{
			Key:    entry.Key,
			Name:   name,
			ItemID: created.ID,
		})
		p.logger.Debug("item created",
			zap.String("key", entry.Key),
			zap.String("name", name),
			zap.String("item_id", created.ID),
		)
	}

	return result
}

// validColor returns the color when it is a strict #RRGGBB hex string, and
// an empty string otherwise. Invalid colors are omitted from the create
// call rather than rejected.
func validColor(color string) string {
	if colorPattern.MatchString(color) {
		return color
	}
	return ""
}
