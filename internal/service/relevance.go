package service

import (
	"sort"
	"strings"

	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/utils"
)

const (
	relevanceThreshold = 0.1
	maxSuggestions     = 5
	minWordLen         = 2

	titleMatchWeight   = 0.3
	tagMatchWeight     = 0.2
	contentMatchWeight = 0.1
	matchRatioWeight   = 0.5
)

type KBSuggestions struct {
	Suggestions     []models.RelevanceResult `json:"suggestions"`
	RecommendedTeam string                   `json:"recommendedTeam"`
	Confidence      float64                  `json:"confidence"`
}

// RelevanceScorer ranks a fixed KB corpus against ticket text.
type RelevanceScorer struct {
	docs []models.KBDocument
}

func NewRelevanceScorer(docs []models.KBDocument) *RelevanceScorer {
	return &RelevanceScorer{docs: docs}
}

func (s *RelevanceScorer) Documents() []models.KBDocument {
	return s.docs
}

// TicketText joins the fields a ticket is scored on.
func TicketText(title, description, category string) string {
	return title + " " + description + " " + category
}

// RelevanceScore scores ticketText against doc. Ticket words are matched by
// substring against the document's title, body and tags; title hits weigh
// most, then tag hits, then body hits.
func RelevanceScore(ticketText string, doc models.KBDocument) float64 {
	words := utils.Fields(ticketText)
	docText := strings.ToLower(doc.Title + " " + doc.Content + " " + strings.Join(doc.Tags, " "))
	title := strings.ToLower(doc.Title)
	tags := make([]string, len(doc.Tags))
	for i, tag := range doc.Tags {
		tags[i] = strings.ToLower(tag)
	}

	var score float64
	matches := 0
	for _, w := range words {
		if utils.RuneLen(w) <= minWordLen || !strings.Contains(docText, w) {
			continue
		}
		matches++
		switch {
		case strings.Contains(title, w):
			score += titleMatchWeight
		case anyContains(tags, w):
			score += tagMatchWeight
		default:
			score += contentMatchWeight
		}
	}

	matchRatio := float64(matches) / float64(max(len(words), 1))
	return utils.Clamp01((score + matchRatio*matchRatioWeight) / 2)
}

// Suggest scores every document, keeps those above the relevance threshold
// and returns at most five, best first, with the team the top hit routes to.
func (s *RelevanceScorer) Suggest(title, description, category string) KBSuggestions {
	text := TicketText(title, description, category)

	scored := make([]models.RelevanceResult, 0, len(s.docs))
	for _, doc := range s.docs {
		score := RelevanceScore(text, doc)
		if score > relevanceThreshold {
			scored = append(scored, models.RelevanceResult{KBDocument: doc, RelevanceScore: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}

	out := KBSuggestions{
		Suggestions:     scored,
		RecommendedTeam: models.TeamGeneralSupport,
	}
	if len(scored) > 0 {
		out.RecommendedTeam = TeamForKBCategory(scored[0].Category)
		out.Confidence = scored[0].RelevanceScore
	}
	return out
}

func anyContains(values []string, sub string) bool {
	for _, v := range values {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}
