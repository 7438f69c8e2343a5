package fixtures

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/incidentdesk/backend/internal/models"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Set is the read-only corpus the scorers and the ticket store start from.
type Set struct {
	KBDocuments       []models.KBDocument    `yaml:"kb_documents"`
	HistoricalTickets []models.TicketSummary `yaml:"historical_tickets"`
	SeedTickets       []models.Ticket        `yaml:"seed_tickets"`
}

func Default() Set {
	return Set{
		KBDocuments:       DefaultKBDocuments(),
		HistoricalTickets: DefaultHistoricalTickets(),
		SeedTickets:       DefaultSeedTickets(),
	}
}

// Load reads a YAML fixture file. Sections missing from the file keep their
// built-in defaults. An empty path returns Default().
func Load(path string) (Set, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Set, error) {
	var raw Set
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Set{}, fmt.Errorf("parse fixtures: %w", err)
	}

	set := Default()
	if raw.KBDocuments != nil {
		set.KBDocuments = raw.KBDocuments
	}
	if raw.HistoricalTickets != nil {
		set.HistoricalTickets = raw.HistoricalTickets
	}
	if raw.SeedTickets != nil {
		set.SeedTickets = raw.SeedTickets
	}
	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

func (s Set) Validate() error {
	seen := map[string]struct{}{}
	for i, d := range s.KBDocuments {
		if strings.TrimSpace(d.ID) == "" || strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("%w: kb document #%d needs id and title", ErrInvalidFixture, i+1)
		}
		if _, ok := seen[d.ID]; ok {
			return fmt.Errorf("%w: duplicate kb document %s", ErrInvalidFixture, d.ID)
		}
		seen[d.ID] = struct{}{}
	}

	seen = map[string]struct{}{}
	for i, t := range s.HistoricalTickets {
		if strings.TrimSpace(t.TicketID) == "" {
			return fmt.Errorf("%w: historical ticket #%d needs ticket_id", ErrInvalidFixture, i+1)
		}
		if _, ok := seen[t.TicketID]; ok {
			return fmt.Errorf("%w: duplicate historical ticket %s", ErrInvalidFixture, t.TicketID)
		}
		seen[t.TicketID] = struct{}{}
	}

	seen = map[string]struct{}{}
	for i, t := range s.SeedTickets {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("%w: seed ticket #%d needs id", ErrInvalidFixture, i+1)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: duplicate seed ticket %s", ErrInvalidFixture, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
