package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/provider"
)

// Client implements provider.Client over IMAP using go-imap v2.
// Mailboxes are the provider's organizational items; the full mailbox name
// doubles as the item id since IMAP has no separate identifier.
type Client struct {
	host     string
	port     string
	username string
	password string
	tls      bool

	// delim is the hierarchy delimiter. It defaults to "/" and is
	// refreshed from the server's LIST responses; the engine runs
	// sequentially, so no locking is needed.
	delim string
}

// NewClient creates a new IMAP provider client configuration.
func NewClient(host, port, username, password string, tls bool) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		tls:      tls,
		delim:    "/",
	}
}

// Type returns the provider type identifier.
func (c *Client) Type() provider.Type {
	return provider.TypeIMAP
}

// Delimiter returns the hierarchy delimiter reported by the server, or "/"
// before the first successful listing.
func (c *Client) Delimiter() string {
	return c.delim
}

// connect establishes a connection to the IMAP server, authenticates, and
// returns the connected client. The caller is responsible for calling
// Logout on the returned client. Connection and authentication failures are
// both reported as *provider.UnavailableError: discovery must be
// all-or-nothing, so neither class yields partial results.
func (c *Client) connect(
	_ context.Context,
) (*imapclient.Client, error) {
	addr := c.host + ":" + c.port

	var client *imapclient.Client
	var err error

	if c.tls {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialStartTLS(addr, nil)
	}
	if err != nil {
		return nil, &provider.UnavailableError{
			ProviderType: provider.TypeIMAP,
			Message:      fmt.Sprintf("connecting to %s: %v", addr, err),
			Err:          err,
		}
	}

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, &provider.UnavailableError{
			ProviderType: provider.TypeIMAP,
			Message: fmt.Sprintf(
				"authentication failed for %s: %v", c.username, err,
			),
			Err: err,
		}
	}

	return client, nil
}

// ListItems enumerates every mailbox in the account with message counters.
// The LIST command streams all matching mailboxes for one invocation, so
// draining the response exhausts the full set.
func (c *Client) ListItems(
	ctx context.Context,
) ([]provider.Item, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	listCmd := client.List("", "*", &imap.ListOptions{
		ReturnStatus: &imap.StatusOptions{
			NumMessages: true,
			NumUnseen:   true,
		},
	})

	boxes, err := listCmd.Collect()
	if err != nil {
		return nil, &provider.UnavailableError{
			ProviderType: provider.TypeIMAP,
			Message:      fmt.Sprintf("listing mailboxes: %v", err),
			Err:          err,
		}
	}

	items := make([]provider.Item, 0, len(boxes))
	for _, box := range boxes {
		if box.Delim != 0 {
			c.delim = string(box.Delim)
		}
		items = append(items, itemFromListData(box))
	}

	return items, nil
}

// FindItemByExactName returns the mailbox whose full name matches exactly,
// or nil when no such mailbox exists.
func (c *Client) FindItemByExactName(
	ctx context.Context, name string,
) (*provider.Item, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	listCmd := client.List("", name, nil)
	boxes, err := listCmd.Collect()
	if err != nil {
		return nil, fmt.Errorf("looking up mailbox %q: %w", name, err)
	}

	for _, box := range boxes {
		if box.Mailbox != name {
			continue
		}
		if box.Delim != 0 {
			c.delim = string(box.Delim)
		}
		item := itemFromListData(box)
		return &item, nil
	}

	return nil, nil
}

// CreateItem creates a mailbox under the given full name. IMAP has no color
// attribute, so colorHex is accepted and ignored.
func (c *Client) CreateItem(
	ctx context.Context, name, _ string,
) (*provider.Item, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if err := client.Create(name, nil).Wait(); err != nil {
		return nil, fmt.Errorf("creating mailbox %q: %w", name, err)
	}

	return &provider.Item{
		ID:   name,
		Name: name,
		Kind: model.KindUser,
	}, nil
}

// systemAttrs are the mailbox attributes that mark a provider-owned
// mailbox.
var systemAttrs = map[imap.MailboxAttr]bool{
	imap.MailboxAttrNoSelect: true,
	imap.MailboxAttrAll:      true,
	imap.MailboxAttrArchive:  true,
	imap.MailboxAttrDrafts:   true,
	imap.MailboxAttrFlagged:  true,
	imap.MailboxAttrJunk:     true,
	imap.MailboxAttrSent:     true,
	imap.MailboxAttrTrash:    true,
}

// itemFromListData converts one LIST response into a provider.Item.
func itemFromListData(box *imap.ListData) provider.Item {
	item := provider.Item{
		ID:   box.Mailbox,
		Name: box.Mailbox,
		Kind: classifyMailbox(box),
	}

	if box.Status != nil {
		if box.Status.NumMessages != nil {
			item.MessageTotal = *box.Status.NumMessages
		}
		if box.Status.NumUnseen != nil {
			item.UnseenTotal = *box.Status.NumUnseen
		}
	}

	return item
}

// classifyMailbox decides whether a mailbox is provider-owned. Special-use
// mailboxes, non-selectable containers, INBOX, and the Gmail namespace are
// system; everything else is user-created.
func classifyMailbox(box *imap.ListData) model.ItemKind {
	for _, attr := range box.Attrs {
		if systemAttrs[attr] {
			return model.KindSystem
		}
	}

	if strings.EqualFold(box.Mailbox, "INBOX") {
		return model.KindSystem
	}
	if strings.HasPrefix(box.Mailbox, "[Gmail]") {
		return model.KindSystem
	}

	return model.KindUser
}
