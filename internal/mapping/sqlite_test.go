package mapping_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nhle/mailbox-taxonomy/internal/mapping"
	"github.com/nhle/mailbox-taxonomy/internal/model"
	"github.com/nhle/mailbox-taxonomy/tests/testutil"
)

func sampleMapping() model.SuggestedMapping {
	return model.SuggestedMapping{
		"SALES": {
			Action:         model.ActionReuse,
			ExistingItemID: "l1",
			Path:           []string{"Sales"},
			Priority:       1,
		},
		"URGENT": {
			Action:   model.ActionCreate,
			Path:     []string{"Urgent"},
			Color:    "#FB4C2F",
			Priority: 2,
		},
	}
}

func TestGetMissingAccount(t *testing.T) {
	s := testutil.NewTestStore(t)

	m, version, err := s.Get(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m != nil || version != 0 {
		t.Fatalf("expected (nil, 0) for unknown account, got (%v, %d)", m, version)
	}
}

func TestPutThenGetRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "acct-1", sampleMapping(), 0); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, version, err := s.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected version 1 after first write, got %d", version)
	}
	if !reflect.DeepEqual(got, sampleMapping()) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, sampleMapping())
	}
}

func TestPutFirstWriteRequiresVersionZero(t *testing.T) {
	s := testutil.NewTestStore(t)

	err := s.Put(context.Background(), "acct-1", sampleMapping(), 3)
	if !errors.Is(err, mapping.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestPutStaleVersionRejected(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "acct-1", sampleMapping(), 0); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// A concurrent writer with the version it read (0) loses.
	err := s.Put(ctx, "acct-1", sampleMapping(), 0)
	if !errors.Is(err, mapping.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestPutIncrementsVersion(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "acct-1", sampleMapping(), 0); err != nil {
		t.Fatalf("first Put: %v", err)
	}

	updated := sampleMapping()
	urgent := updated["URGENT"]
	urgent.Action = model.ActionReuse
	urgent.ExistingItemID = "l2"
	updated["URGENT"] = urgent

	if err := s.Put(ctx, "acct-1", updated, 1); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got, version, err := s.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if version != 2 {
		t.Fatalf("expected version 2, got %d", version)
	}
	if got["URGENT"].ExistingItemID != "l2" {
		t.Fatalf("expected updated mapping, got %+v", got["URGENT"])
	}
}

func TestAccountsAreIndependent(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "acct-1", sampleMapping(), 0); err != nil {
		t.Fatalf("Put acct-1: %v", err)
	}
	if err := s.Put(ctx, "acct-2", sampleMapping(), 0); err != nil {
		t.Fatalf("Put acct-2: %v", err)
	}

	_, v1, err := s.Get(ctx, "acct-1")
	if err != nil {
		t.Fatalf("Get acct-1: %v", err)
	}
	_, v2, err := s.Get(ctx, "acct-2")
	if err != nil {
		t.Fatalf("Get acct-2: %v", err)
	}
	if v1 != 1 || v2 != 1 {
		t.Fatalf("expected independent versions 1/1, got %d/%d", v1, v2)
	}
}
