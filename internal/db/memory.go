package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/incidentdesk/backend/internal/models"
)

// MemoryStore keeps tickets in process memory; contents reset on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	tickets []models.Ticket
	now     func() time.Time
}

func NewMemoryStore(seed []models.Ticket) *MemoryStore {
	tickets := make([]models.Ticket, len(seed))
	copy(tickets, seed)
	return &MemoryStore{tickets: tickets, now: func() time.Time { return time.Now().UTC() }}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() {}

func (s *MemoryStore) CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	ids := make([]string, len(s.tickets))
	for i, existing := range s.tickets {
		ids[i] = existing.ID
	}
	t.ID = nextTicketID(ids)
	if t.Status == "" {
		t.Status = models.StatusOpen
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tickets = append(s.tickets, t)
	return t, nil
}

func (s *MemoryStore) GetTicket(ctx context.Context, id string) (models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, ErrNotFound
}

func (s *MemoryStore) ListTickets(ctx context.Context, filter TicketFilter) ([]models.Ticket, error) {
	s.mu.RLock()
	out := []models.Ticket{}
	for _, t := range s.tickets {
		if filter.match(t) {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateTicket(ctx context.Context, id string, patch TicketPatch) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tickets {
		if t.ID == id {
			s.tickets[i] = patch.apply(t, s.now())
			return s.tickets[i], nil
		}
	}
	return models.Ticket{}, ErrNotFound
}
