package ai

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/service"
	"github.com/incidentdesk/backend/internal/utils"
)

const maxSimilarIncidents = 15

var (
	urgentKeywords   = []string{"critical", "urgent", "down", "failed", "error", "broken", "emergency"}
	negativeKeywords = []string{"problem", "issue", "cannot", "unable", "not working", "crash"}
)

// IncidentCounter produces the simulated similarIncidents value.
type IncidentCounter func(req models.AnalysisRequest) int

// RandomIncidents draws from [1,15] using r. A nil r is seeded from the clock.
func RandomIncidents(r *rand.Rand) IncidentCounter {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	var mu sync.Mutex
	return func(models.AnalysisRequest) int {
		mu.Lock()
		defer mu.Unlock()
		return r.Intn(maxSimilarIncidents) + 1
	}
}

// HashedIncidents derives a stable value in [1,15] from the ticket text.
func HashedIncidents() IncidentCounter {
	return func(req models.AnalysisRequest) int {
		return utils.HashBucket(req.TicketTitle+"\n"+req.TicketDescription, maxSimilarIncidents) + 1
	}
}

// FixedIncidents always reports n.
func FixedIncidents(n int) IncidentCounter {
	return func(models.AnalysisRequest) int { return n }
}

// HeuristicAdapter is the keyword classifier used when no remote analyzer is
// configured or the remote one fails.
type HeuristicAdapter struct {
	Incidents IncidentCounter
}

func (h HeuristicAdapter) AnalyzeTicket(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	text := strings.ToLower(req.TicketTitle + " " + req.TicketDescription)

	sentiment, urgency := models.SentimentNeutral, 0.3
	switch {
	case containsAny(text, urgentKeywords):
		sentiment, urgency = models.SentimentUrgent, 0.9
	case containsAny(text, negativeKeywords):
		sentiment, urgency = models.SentimentNegative, 0.6
	}

	team := service.TeamForCategory(req.Category)
	insights := []string{
		fmt.Sprintf("Category: %s suggests %s team involvement", req.Category, team),
		fmt.Sprintf("Urgency level: %d%% based on content analysis", int(math.Round(urgency*100))),
	}
	if sentiment == models.SentimentUrgent {
		insights = append(insights, "Contains urgent keywords - immediate attention needed")
	} else {
		insights = append(insights, "Standard resolution process applicable")
	}

	incidents := h.Incidents
	if incidents == nil {
		incidents = RandomIncidents(nil)
	}

	return models.AnalysisResult{
		Sentiment:               sentiment,
		SuggestedPriority:       PriorityForUrgency(urgency),
		UrgencyScore:            urgency,
		SuggestedTeam:           team,
		KeyInsights:             insights,
		EstimatedResolutionTime: ResolutionTimeForUrgency(urgency),
		SimilarIncidents:        incidents(req),
	}, nil
}

func PriorityForUrgency(urgency float64) string {
	switch {
	case urgency > 0.8:
		return models.PriorityCritical
	case urgency > 0.6:
		return models.PriorityHigh
	case urgency < 0.4:
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

func ResolutionTimeForUrgency(urgency float64) string {
	switch {
	case urgency > 0.8:
		return "2-4 hours"
	case urgency > 0.6:
		return "4-8 hours"
	case urgency > 0.4:
		return "1-2 days"
	default:
		return "2-5 days"
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
