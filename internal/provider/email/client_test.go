package email

import (
	"testing"

	"github.com/emersion/go-imap/v2"

	"github.com/nhle/mailbox-taxonomy/internal/model"
)

func TestClassifyMailbox(t *testing.T) {
	cases := []struct {
		name string
		box  imap.ListData
		want model.ItemKind
	}{
		{
			name: "plain user mailbox",
			box:  imap.ListData{Mailbox: "Clients/Acme"},
			want: model.KindUser,
		},
		{
			name: "inbox",
			box:  imap.ListData{Mailbox: "INBOX"},
			want: model.KindSystem,
		},
		{
			name: "inbox case insensitive",
			box:  imap.ListData{Mailbox: "inbox"},
			want: model.KindSystem,
		},
		{
			name: "special-use trash",
			box: imap.ListData{
				Mailbox: "Deleted",
				Attrs:   []imap.MailboxAttr{imap.MailboxAttrTrash},
			},
			want: model.KindSystem,
		},
		{
			name: "noselect container",
			box: imap.ListData{
				Mailbox: "Shared",
				Attrs:   []imap.MailboxAttr{imap.MailboxAttrNoSelect},
			},
			want: model.KindSystem,
		},
		{
			name: "gmail namespace",
			box:  imap.ListData{Mailbox: "[Gmail]/All Mail"},
			want: model.KindSystem,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classifyMailbox(&c.box); got != c.want {
				t.Fatalf("classifyMailbox(%q) = %q, want %q", c.box.Mailbox, got, c.want)
			}
		})
	}
}

func TestItemFromListDataCounters(t *testing.T) {
	messages := uint32(12)
	unseen := uint32(3)
	box := &imap.ListData{
		Mailbox: "Sales",
		Status: &imap.StatusData{
			Mailbox:     "Sales",
			NumMessages: &messages,
			NumUnseen:   &unseen,
		},
	}

	item := itemFromListData(box)

	if item.ID != "Sales" || item.Name != "Sales" {
		t.Fatalf("expected mailbox name as id and name, got %+v", item)
	}
	if item.MessageTotal != 12 || item.UnseenTotal != 3 {
		t.Fatalf("expected counters 12/3, got %d/%d", item.MessageTotal, item.UnseenTotal)
	}
	if item.Kind != model.KindUser {
		t.Fatalf("expected user kind, got %q", item.Kind)
	}
}

func TestItemFromListDataNoStatus(t *testing.T) {
	item := itemFromListData(&imap.ListData{Mailbox: "Archive2024"})

	if item.MessageTotal != 0 || item.UnseenTotal != 0 {
		t.Fatalf("expected zero counters without status, got %+v", item)
	}
}
