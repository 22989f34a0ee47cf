// Package engine ties discovery, reconciliation, and provisioning into the
// on-demand flow the onboarding caller drives: discover the account's
// existing mailbox organization, suggest a mapping onto the canonical
// taxonomy, then provision whatever the caller decided to create. The three
// steps run strictly sequentially; reconciliation needs a complete
// discovery snapshot and provisioning needs parent-before-child creation.
package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/mailbox-taxonomy/internal/credential"
	"github.com/nhle/mailbox-taxonomy/internal/discovery"
	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/provider"
	"github.com/nhle/mailbox-taxonomy/internal/provider/email"
	"github.com/nhle/mailbox-taxonomy/internal/provision"
	"github.com/nhle/mailbox-taxonomy/internal/reconcile"
)

// Engine exposes the subsystem's three entry points over one provider
// client. It holds no state between invocations; two engines for different
// accounts share nothing.
type Engine struct {
	client      provider.Client
	discoverer  *discovery.Discoverer
	provisioner *provision.Provisioner
	logger      *zap.Logger
}

// New creates an Engine over the given provider client. A nil logger
// disables logging.
func New(client provider.Client, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		client:      client,
		discoverer:  discovery.New(client, logger),
		provisioner: provision.New(client, logger),
		logger:      logger,
	}
}

// NewFromConfig builds an Engine from provider configuration, reading the
// account secret from the system keyring under the configured username.
func NewFromConfig(cfg model.ProviderConfig, logger *zap.Logger) (*Engine, error) {
	if cfg.Type != string(provider.TypeIMAP) {
		return nil, fmt.Errorf("unsupported provider type %q", cfg.Type)
	}

	password, err := credential.Get(cfg.Username)
	if err != nil {
		return nil, fmt.Errorf("loading credential for %s: %w", cfg.Username, err)
	}

	client := email.NewClient(cfg.Host, cfg.Port, cfg.Username, password, cfg.TLS)
	return New(client, logger), nil
}

// Discover enumerates and normalizes the account's existing organizational
// items. See discovery.Discoverer.Discover.
func (e *Engine) Discover(ctx context.Context) (*discovery.Result, error) {
	return e.discoverer.Discover(ctx)
}

// Suggest reconciles a discovery result against the canonical taxonomy.
// Pure: no I/O, deterministic for identical inputs.
func (e *Engine) Suggest(
	disc *discovery.Result,
	entries []model.CanonicalEntry,
) (*reconcile.SuggestionResult, error) {
	return reconcile.Suggest(disc.Items, entries)
}

// Provision creates the given entries in the provider, parents first, and
// buckets per-entry outcomes. See provision.Provisioner.Provision.
func (e *Engine) Provision(
	ctx context.Context,
	entries []model.CreateEntry,
) *model.ProvisionResult {
	return e.provisioner.Provision(ctx, entries)
}

// Plan chains Discover and Suggest for the common case where the caller
// wants a mapping proposal in one call. The caller still owns confirmation
// of reuse_with_confirmation entries and persistence of the mapping.
func (e *Engine) Plan(
	ctx context.Context,
	entries []model.CanonicalEntry,
) (*discovery.Result, *reconcile.SuggestionResult, error) {
	disc, err := e.Discover(ctx)
	if err != nil {
		return nil, nil, err
	}

	suggestion, err := e.Suggest(disc, entries)
	if err != nil {
		return nil, nil, err
	}

	e.logger.Debug("plan complete",
		zap.Int("reuse", len(suggestion.Suggestions.Reuse)),
		zap.Int("confirm", len(suggestion.Suggestions.Confirm)),
		zap.Int("create", len(suggestion.Suggestions.Create)),
	)

	return disc, suggestion, nil
}
