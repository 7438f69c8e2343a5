package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/incidentdesk/backend/internal/db"
	"github.com/incidentdesk/backend/internal/models"
)

var ErrInvalidTicket = errors.New("invalid ticket")

// NewTicket is the input for TicketService.Create.
type NewTicket struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high critical"`
	Category    string `json:"category" validate:"required"`
	ReportedBy  string `json:"reportedBy" validate:"required"`
}

type CreatedTicket struct {
	Ticket        models.Ticket            `json:"ticket"`
	KBSuggestions []models.RelevanceResult `json:"kbSuggestions"`
}

type TicketService struct {
	Store     db.TicketStore
	KB        *RelevanceScorer
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func (s TicketService) validate(v any) error {
	val := s.Validator
	if val == nil {
		val = validator.New()
	}
	if err := val.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	return nil
}

// Create routes the ticket to a team and stores it. The top KB suggestion
// decides the team when one passes the relevance threshold; otherwise the
// ticket category does.
func (s TicketService) Create(ctx context.Context, in NewTicket) (CreatedTicket, error) {
	if err := s.validate(in); err != nil {
		return CreatedTicket{}, err
	}

	suggestions := []models.RelevanceResult{}
	team := TeamForCategory(in.Category)
	if s.KB != nil {
		kb := s.KB.Suggest(in.Title, in.Description, in.Category)
		suggestions = kb.Suggestions
		if len(suggestions) > 0 {
			team = TeamForKBCategory(suggestions[0].Category)
		}
	}

	t, err := s.Store.CreateTicket(ctx, models.Ticket{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      models.StatusOpen,
		Team:        team,
		Category:    in.Category,
		ReportedBy:  in.ReportedBy,
	})
	if err != nil {
		return CreatedTicket{}, fmt.Errorf("create ticket: %w", err)
	}
	s.Logger.Info().Str("ticket_id", t.ID).Str("team", team).Int("kb_matches", len(suggestions)).Msg("ticket created")
	return CreatedTicket{Ticket: t, KBSuggestions: suggestions}, nil
}

func (s TicketService) Get(ctx context.Context, id string) (models.Ticket, error) {
	return s.Store.GetTicket(ctx, id)
}

func (s TicketService) List(ctx context.Context, filter db.TicketFilter) ([]models.Ticket, error) {
	return s.Store.ListTickets(ctx, filter)
}

func (s TicketService) Update(ctx context.Context, id string, patch db.TicketPatch) (models.Ticket, error) {
	if err := s.validate(patch); err != nil {
		return models.Ticket{}, err
	}
	t, err := s.Store.UpdateTicket(ctx, id, patch)
	if err != nil {
		return models.Ticket{}, err
	}
	s.Logger.Info().Str("ticket_id", id).Str("status", t.Status).Msg("ticket updated")
	return t, nil
}
