package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/incidentdesk/backend/internal/models"
)

var ErrNotFound = errors.New("ticket not found")

// TicketStore persists tickets. The service works against either the
// in-memory store or Postgres.
type TicketStore interface {
	Ping(ctx context.Context) error
	CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error)
	GetTicket(ctx context.Context, id string) (models.Ticket, error)
	ListTickets(ctx context.Context, filter TicketFilter) ([]models.Ticket, error)
	UpdateTicket(ctx context.Context, id string, patch TicketPatch) (models.Ticket, error)
	Close()
}

// TicketFilter narrows ListTickets. Empty or "all" means no filter.
type TicketFilter struct {
	Status   string
	Team     string
	Priority string
}

func (f TicketFilter) match(t models.Ticket) bool {
	return matchField(f.Status, t.Status) && matchField(f.Team, t.Team) && matchField(f.Priority, t.Priority)
}

func activeFilter(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "all")
}

func matchField(want, got string) bool {
	if !activeFilter(want) {
		return true
	}
	return want == got
}

// TicketPatch holds the fields of an update. Nil or blank fields are left
// unchanged.
type TicketPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in-progress resolved closed"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	Team        *string `json:"team,omitempty"`
	Category    *string `json:"category,omitempty"`
}

func (p TicketPatch) apply(t models.Ticket, now time.Time) models.Ticket {
	set := func(dst *string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			*dst = *v
		}
	}
	set(&t.Title, p.Title)
	set(&t.Description, p.Description)
	set(&t.Priority, p.Priority)
	set(&t.Status, p.Status)
	set(&t.AssignedTo, p.AssignedTo)
	set(&t.Team, p.Team)
	set(&t.Category, p.Category)
	t.UpdatedAt = now
	return t
}

const ticketIDPrefix = "INC-"

func ticketID(n int) string {
	return fmt.Sprintf("%s%03d", ticketIDPrefix, n)
}

// ticketNumber parses the numeric suffix of an INC-nnn id.
func ticketNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, ticketIDPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// nextTicketID returns the id after the highest INC-nnn in ids, so seeds
// with gaps or out-of-order ids never collide with new tickets.
func nextTicketID(ids []string) string {
	highest := 0
	for _, id := range ids {
		if n, ok := ticketNumber(id); ok && n > highest {
			highest = n
		}
	}
	return ticketID(highest + 1)
}
