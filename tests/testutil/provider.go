package testutil

import (
	"context"
	"strconv"
	"strings"

	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/provider"
)

// CreatedItem records one CreateItem call against the fake provider,
// including the color the caller passed through.
type CreatedItem struct {
	Name  string
	Color string
}

// FakeProvider is an in-memory provider.Client for tests. Items live in a
// slice in insertion order; creates append to it, so a created item is
// found by later existence checks.
type FakeProvider struct {
	Items []provider.Item

	// Delim is the hierarchy delimiter, "/" when empty.
	Delim string

	// ListErr, FindErr, and CreateErr, when set, are returned by the
	// corresponding method.
	ListErr   error
	FindErr   error
	CreateErr error

	// FailCreates lists full display names whose create call should
	// error.
	FailCreates map[string]error

	// Created records every successful CreateItem call in order.
	Created []CreatedItem

	nextID int
}

var _ provider.Client = (*FakeProvider)(nil)

// Type returns a fixed provider type for tests.
func (f *FakeProvider) Type() provider.Type { return "fake" }

// Delimiter returns the configured delimiter, defaulting to "/".
func (f *FakeProvider) Delimiter() string {
	if f.Delim == "" {
		return "/"
	}
	return f.Delim
}

// ListItems returns a copy of the current item set.
func (f *FakeProvider) ListItems(
	_ context.Context,
) ([]provider.Item, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]provider.Item, len(f.Items))
	copy(out, f.Items)
	return out, nil
}

// FindItemByExactName returns the first item whose name matches exactly.
func (f *FakeProvider) FindItemByExactName(
	_ context.Context, name string,
) (*provider.Item, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	for i := range f.Items {
		if f.Items[i].Name == name {
			item := f.Items[i]
			return &item, nil
		}
	}
	return nil, nil
}

// CreateItem appends a new user item and records the call.
func (f *FakeProvider) CreateItem(
	_ context.Context, name, colorHex string,
) (*provider.Item, error) {
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if err, ok := f.FailCreates[name]; ok {
		return nil, err
	}

	f.nextID++
	item := provider.Item{
		ID:    "fake-" + strconv.Itoa(f.nextID),
		Name:  name,
		Kind:  model.KindUser,
		Color: colorHex,
	}
	f.Items = append(f.Items, item)
	f.Created = append(f.Created, CreatedItem{Name: name, Color: colorHex})
	return &item, nil
}

// UserItem builds a user-kind provider item whose id is derived from the
// name, for concise test setup.
func UserItem(name string) provider.Item {
	return provider.Item{
		ID:   "id-" + strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		Name: name,
		Kind: model.KindUser,
	}
}

// SystemItem builds a system-kind provider item.
func SystemItem(name string) provider.Item {
	return provider.Item{
		ID:   "sys-" + strings.ToLower(name),
		Name: name,
		Kind: model.KindSystem,
	}
}
