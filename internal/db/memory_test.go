package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/incidentdesk/backend/internal/fixtures"
	"github.com/incidentdesk/backend/internal/models"
)

func TestMemoryStoreCreateAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore(fixtures.DefaultSeedTickets())
	created, err := s.CreateTicket(context.Background(), models.Ticket{Title: "Printer jam", Priority: models.PriorityLow})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "INC-003" {
		t.Fatalf("expected INC-003, got %s", created.ID)
	}
	if created.Status != models.StatusOpen || created.CreatedAt.IsZero() {
		t.Fatalf("expected open status and timestamps, got %+v", created)
	}
}

func TestMemoryStoreListFiltersAndSorts(t *testing.T) {
	s := NewMemoryStore(fixtures.DefaultSeedTickets())
	ctx := context.Background()

	all, _ := s.ListTickets(ctx, TicketFilter{Status: "all"})
	if len(all) != 2 || all[0].ID != "INC-001" {
		t.Fatalf("expected newest first (INC-001), got %+v", all)
	}

	open, _ := s.ListTickets(ctx, TicketFilter{Status: models.StatusOpen})
	if len(open) != 1 || open[0].ID != "INC-001" {
		t.Fatalf("expected only INC-001 open, got %+v", open)
	}

	network, _ := s.ListTickets(ctx, TicketFilter{Team: models.TeamNetwork, Priority: models.PriorityMedium})
	if len(network) != 1 || network[0].ID != "INC-002" {
		t.Fatalf("expected INC-002, got %+v", network)
	}

	none, _ := s.ListTickets(ctx, TicketFilter{Priority: models.PriorityCritical})
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", none)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	s := NewMemoryStore(fixtures.DefaultSeedTickets())
	fixed := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	status := models.StatusResolved
	assignee := "Ana"
	updated, err := s.UpdateTicket(context.Background(), "INC-001", TicketPatch{Status: &status, AssignedTo: &assignee})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != status || updated.AssignedTo != assignee || !updated.UpdatedAt.Equal(fixed) {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Title != "Email server not responding" {
		t.Fatalf("untouched fields must be kept, got %q", updated.Title)
	}

	got, _ := s.GetTicket(context.Background(), "INC-001")
	if got.Status != status {
		t.Fatalf("update not persisted")
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore(nil)
	if _, err := s.GetTicket(context.Background(), "INC-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateTicket(context.Background(), "INC-404", TicketPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreSeedIsCopied(t *testing.T) {
	seed := fixtures.DefaultSeedTickets()
	s := NewMemoryStore(seed)
	seed[0].Title = "mutated"
	got, _ := s.GetTicket(context.Background(), "INC-001")
	if got.Title == "mutated" {
		t.Fatalf("store must not alias the seed slice")
	}
}

func TestMemoryStoreCreateSkipsSeededIDs(t *testing.T) {
	s := NewMemoryStore([]models.Ticket{{ID: "INC-002", Title: "seed"}})
	created, err := s.CreateTicket(context.Background(), models.Ticket{Title: "new"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "INC-003" {
		t.Fatalf("expected INC-003 after seeded INC-002, got %s", created.ID)
	}
	got, _ := s.GetTicket(context.Background(), "INC-002")
	if got.Title != "seed" {
		t.Fatalf("seed ticket must be untouched, got %q", got.Title)
	}
}

func TestMemoryStoreUpdateIgnoresBlankFields(t *testing.T) {
	s := NewMemoryStore(fixtures.DefaultSeedTickets())
	blank := ""
	spaces := "   "
	status := models.StatusClosed
	updated, err := s.UpdateTicket(context.Background(), "INC-001", TicketPatch{Title: &blank, Team: &spaces, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Email server not responding" || updated.Team != models.TeamInfrastructure {
		t.Fatalf("blank patch fields must leave values unchanged, got %+v", updated)
	}
	if updated.Status != status {
		t.Fatalf("expected status %s, got %s", status, updated.Status)
	}
}

func TestNextTicketID(t *testing.T) {
	cases := []struct {
		ids  []string
		want string
	}{
		{nil, "INC-001"},
		{[]string{"INC-001", "INC-002"}, "INC-003"},
		{[]string{"INC-007", "INC-001"}, "INC-008"},
		{[]string{"legacy-9", "INC-", "INC-x2", "INC-004"}, "INC-005"},
		{[]string{"INC-1000"}, "INC-1001"},
	}
	for _, tc := range cases {
		if got := nextTicketID(tc.ids); got != tc.want {
			t.Fatalf("%v: expected %s, got %s", tc.ids, tc.want, got)
		}
	}
}
