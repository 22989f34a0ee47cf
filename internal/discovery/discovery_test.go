package discovery_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nhle/mailbox-taxonomy/internal/discovery"
	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/internal/provider"
	"github.com/nhle/mailbox-taxonomy/tests/testutil"
)

func TestDiscoverFiltersSystemItems(t *testing.T) {
	fake := &testutil.FakeProvider{
		Items: []provider.Item{
			testutil.SystemItem("INBOX"),
			testutil.SystemItem("[Gmail]/All Mail"),
			testutil.UserItem("Sales"),
		},
	}

	result, err := discovery.New(fake, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if len(result.Items) != 1 {
		t.Fatalf("expected 1 user item, got %d", len(result.Items))
	}
	if result.Items[0].Name != "Sales" {
		t.Fatalf("expected Sales, got %q", result.Items[0].Name)
	}
}

func TestDiscoverNormalizesPaths(t *testing.T) {
	fake := &testutil.FakeProvider{
		Items: []provider.Item{
			testutil.UserItem("Team / Sales "),
		},
	}

	result, err := discovery.New(fake, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"Team", "Sales"}
	if !reflect.DeepEqual(result.Items[0].Path, want) {
		t.Fatalf("expected trimmed path %v, got %v", want, result.Items[0].Path)
	}
}

func TestDiscoverSkipsMalformedItems(t *testing.T) {
	fake := &testutil.FakeProvider{
		Items: []provider.Item{
			testutil.UserItem("Team//Sales"),
			testutil.UserItem("Billing"),
		},
	}

	result, err := discovery.New(fake, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	if len(result.Items) != 1 || result.Items[0].Name != "Billing" {
		t.Fatalf("expected only Billing to survive, got %+v", result.Items)
	}
	if len(result.Malformed) != 1 || result.Malformed[0].Name != "Team//Sales" {
		t.Fatalf("expected Team//Sales reported malformed, got %+v", result.Malformed)
	}
}

func TestDiscoverProviderFailureIsFatal(t *testing.T) {
	listErr := &provider.UnavailableError{
		ProviderType: "fake",
		Message:      "connection refused",
	}
	fake := &testutil.FakeProvider{ListErr: listErr}

	result, err := discovery.New(fake, nil).Discover(context.Background())
	if err == nil {
		t.Fatal("expected error when provider is unavailable")
	}
	if !provider.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no partial results, got %+v", result)
	}
}

func TestDiscoverCountersCarriedThrough(t *testing.T) {
	item := testutil.UserItem("Sales")
	item.MessageTotal = 42
	item.UnseenTotal = 7
	fake := &testutil.FakeProvider{Items: []provider.Item{item}}

	result, err := discovery.New(fake, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	got := result.Items[0]
	if got.MessageTotal != 42 || got.UnseenTotal != 7 {
		t.Fatalf("expected counters 42/7, got %d/%d", got.MessageTotal, got.UnseenTotal)
	}
}

func TestBuildTaxonomyPrefixInvariant(t *testing.T) {
	items := []model.DiscoveredItem{
		{ID: "1", Name: "Team/Sales", Path: []string{"Team", "Sales"}},
		{ID: "2", Name: "Team/Support", Path: []string{"Team", "Support"}},
		{ID: "3", Name: "Billing", Path: []string{"Billing"}},
	}

	root := discovery.BuildTaxonomy(items)

	var walk func(parent, node *model.TaxonomyNode)
	walk = func(parent, node *model.TaxonomyNode) {
		if len(node.FullPath) != len(parent.FullPath)+1 {
			t.Fatalf("node %q: full path %v is not one segment deeper than parent %v",
				node.Name, node.FullPath, parent.FullPath)
		}
		if !reflect.DeepEqual(node.FullPath[:len(parent.FullPath)], parent.FullPath) {
			t.Fatalf("node %q: full path %v does not extend parent %v",
				node.Name, node.FullPath, parent.FullPath)
		}
		if node.FullPath[len(node.FullPath)-1] != node.Name {
			t.Fatalf("node %q: last segment of %v is not the node name",
				node.Name, node.FullPath)
		}
		for _, child := range node.Children {
			walk(node, child)
		}
	}
	for _, child := range root.Children {
		walk(root, child)
	}

	sales := root.Children["Team"].Children["Sales"]
	if len(sales.Items) != 1 || sales.Items[0].ID != "1" {
		t.Fatalf("expected item 1 at Team/Sales, got %+v", sales.Items)
	}
}

func TestBuildTaxonomyDuplicateNamesShareNode(t *testing.T) {
	items := []model.DiscoveredItem{
		{ID: "1", Name: "Sales", Path: []string{"Sales"}},
		{ID: "2", Name: "Sales", Path: []string{"Sales"}},
	}

	root := discovery.BuildTaxonomy(items)

	node := root.Children["Sales"]
	if node == nil {
		t.Fatal("expected Sales node")
	}
	if len(node.Items) != 2 {
		t.Fatalf("expected both duplicates attached, got %d items", len(node.Items))
	}
}

func TestBuildTaxonomyIntermediateNodesCreated(t *testing.T) {
	items := []model.DiscoveredItem{
		{ID: "1", Name: "Team/Sales/EMEA", Path: []string{"Team", "Sales", "EMEA"}},
	}

	root := discovery.BuildTaxonomy(items)

	team := root.Children["Team"]
	if team == nil {
		t.Fatal("expected intermediate Team node")
	}
	if len(team.Items) != 0 {
		t.Fatalf("intermediate node must hold no items, got %+v", team.Items)
	}
	leaf := team.Children["Sales"].Children["EMEA"]
	if len(leaf.Items) != 1 {
		t.Fatalf("expected item at leaf, got %+v", leaf.Items)
	}
}

var errBoom = errors.New("boom")

func TestDiscoverWrapsListError(t *testing.T) {
	fake := &testutil.FakeProvider{ListErr: errBoom}

	_, err := discovery.New(fake, nil).Discover(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped list error, got %v", err)
	}
}
