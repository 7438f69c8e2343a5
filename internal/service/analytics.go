package service

import (
	"context"

	"github.com/incidentdesk/backend/internal/db"
	"github.com/incidentdesk/backend/internal/models"
)

type Analytics struct {
	TotalTickets int            `json:"totalTickets"`
	OpenTickets  int            `json:"openTickets"`
	InProgress   int            `json:"inProgress"`
	Resolved     int            `json:"resolved"`
	HighPriority int            `json:"highPriority"`
	ByStatus     map[string]int `json:"byStatus"`
	ByPriority   map[string]int `json:"byPriority"`
	ByTeam       map[string]int `json:"byTeam"`
}

// Summarize counts the stored tickets by status, priority and team.
func Summarize(tickets []models.Ticket) Analytics {
	a := Analytics{
		ByStatus:   map[string]int{},
		ByPriority: map[string]int{},
		ByTeam:     map[string]int{},
	}
	for _, t := range tickets {
		a.TotalTickets++
		a.ByStatus[t.Status]++
		a.ByPriority[t.Priority]++
		a.ByTeam[t.Team]++
		switch t.Status {
		case models.StatusOpen:
			a.OpenTickets++
		case models.StatusInProgress:
			a.InProgress++
		case models.StatusResolved, models.StatusClosed:
			a.Resolved++
		}
		if t.Priority == models.PriorityHigh || t.Priority == models.PriorityCritical {
			a.HighPriority++
		}
	}
	return a
}

func (s TicketService) Analytics(ctx context.Context) (Analytics, error) {
	tickets, err := s.Store.ListTickets(ctx, db.TicketFilter{})
	if err != nil {
		return Analytics{}, err
	}
	return Summarize(tickets), nil
}
