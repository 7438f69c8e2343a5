package service

import (
	"fmt"
	"sort"

	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/utils"
)

const (
	NewTicketID = "NEW"

	candidateThreshold = 0.3
	clusterThreshold   = 0.5
	mergeThreshold     = 0.8
	escalateThreshold  = 0.7
	// Clusters hold the new ticket and one historical ticket, so this size
	// rule cannot fire from Check. It is kept so create_kb stays reachable
	// once clusters grow.
	createKBClusterSize = 3

	keywordMinLen     = 3
	maxCommonKeywords = 5
	maxSimilarTickets = 5
)

type SimilarityReport struct {
	DuplicateProbability float64                 `json:"duplicateProbability"`
	SimilarTickets       []models.SimilarityPair `json:"similarTickets"`
	Clusters             []models.Cluster        `json:"clusters"`
	Insights             []string                `json:"insights"`
	Recommendations      []string                `json:"recommendations"`
}

// SimilarityEngine detects near-duplicates of a new ticket in a fixed
// historical sample and groups them into actionable clusters.
type SimilarityEngine struct {
	history []models.TicketSummary
}

func NewSimilarityEngine(history []models.TicketSummary) *SimilarityEngine {
	return &SimilarityEngine{history: history}
}

func (e *SimilarityEngine) History() []models.TicketSummary {
	return e.history
}

func ticketBody(t models.TicketSummary) string {
	return t.Title + " " + t.Description
}

// Jaccard is |A∩B| / |A∪B| over the word sets of a and b. Two texts with no
// qualifying words score 0.
func Jaccard(a, b string) float64 {
	return jaccardSets(utils.TermSet(a, minWordLen), utils.TermSet(b, minWordLen))
}

func jaccardSets(a, b map[string]struct{}) float64 {
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// SuggestAction picks the cluster action for the similarity that formed it.
func SuggestAction(similarity float64, members int) string {
	switch {
	case similarity > mergeThreshold:
		return models.ActionMerge
	case similarity > escalateThreshold:
		return models.ActionEscalate
	case members > createKBClusterSize:
		return models.ActionCreateKB
	default:
		return models.ActionMonitor
	}
}

// CommonKeywords returns up to five words longer than three characters that
// appear in both tickets, in the order they first occur in historical.
func CommonKeywords(incoming, historical models.TicketSummary) []string {
	inIncoming := utils.TermSet(ticketBody(incoming), keywordMinLen)
	seen := map[string]struct{}{}
	out := []string{}
	for _, w := range utils.Terms(ticketBody(historical), keywordMinLen) {
		if _, ok := inIncoming[w]; !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) == maxCommonKeywords {
			break
		}
	}
	return out
}

// Check compares incoming against the history. Candidates above 0.3 are
// reported; those at or above 0.5 each seed a two-member cluster, greedily in
// descending similarity order.
func (e *SimilarityEngine) Check(incoming models.TicketSummary) SimilarityReport {
	if incoming.TicketID == "" {
		incoming.TicketID = NewTicketID
	}
	incomingTerms := utils.TermSet(ticketBody(incoming), minWordLen)

	similar := []models.SimilarityPair{}
	for _, t := range e.history {
		score := utils.Clamp01(jaccardSets(incomingTerms, utils.TermSet(ticketBody(t), minWordLen)))
		if score > candidateThreshold {
			similar = append(similar, models.SimilarityPair{Ticket: t, Similarity: score})
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})

	clusters := []models.Cluster{}
	processed := map[string]struct{}{}
	for _, pair := range similar {
		if _, ok := processed[pair.Ticket.TicketID]; ok || pair.Similarity < clusterThreshold {
			continue
		}
		if pair.Ticket.TicketID == incoming.TicketID {
			continue
		}
		members := []string{incoming.TicketID, pair.Ticket.TicketID}
		clusters = append(clusters, models.Cluster{
			ClusterID:       fmt.Sprintf("CLUSTER-%d", len(clusters)+1),
			Tickets:         members,
			CommonKeywords:  CommonKeywords(incoming, pair.Ticket),
			SuggestedAction: SuggestAction(pair.Similarity, len(members)),
			Confidence:      pair.Similarity,
		})
		processed[pair.Ticket.TicketID] = struct{}{}
	}

	report := SimilarityReport{
		SimilarTickets: similar,
		Clusters:       clusters,
	}
	if len(similar) > 0 {
		report.DuplicateProbability = similar[0].Similarity
	}
	report.Insights = similarityInsights(report)
	report.Recommendations = similarityRecommendations(report)
	if len(report.SimilarTickets) > maxSimilarTickets {
		report.SimilarTickets = report.SimilarTickets[:maxSimilarTickets]
	}
	return report
}

func similarityInsights(r SimilarityReport) []string {
	out := []string{}
	if r.DuplicateProbability > mergeThreshold {
		out = append(out, "High probability of duplicate ticket detected")
	} else if r.DuplicateProbability > 0.6 {
		out = append(out, "Similar tickets found - consider merging or escalating")
	}
	if len(r.Clusters) > 0 {
		out = append(out, fmt.Sprintf("Found %d related ticket cluster(s)", len(r.Clusters)))
	}
	if len(r.SimilarTickets) == 0 {
		out = append(out, "New unique issue - consider creating KB article after resolution")
	}
	return out
}

func similarityRecommendations(r SimilarityReport) []string {
	out := []string{}
	if r.DuplicateProbability > mergeThreshold {
		out = append(out, "Consider closing as duplicate and linking to existing ticket")
	}
	if hasAction(r.Clusters, models.ActionEscalate) {
		out = append(out, "Escalate to senior team - pattern indicates systemic issue")
	}
	if hasAction(r.Clusters, models.ActionCreateKB) {
		out = append(out, "Create knowledge base article - recurring issue detected")
	}
	if len(r.SimilarTickets) > 2 {
		out = append(out, "Review historical resolution patterns for faster resolution")
	}
	return out
}

func hasAction(clusters []models.Cluster, action string) bool {
	for _, c := range clusters {
		if c.SuggestedAction == action {
			return true
		}
	}
	return false
}
