package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/utils"
)

const systemPrompt = "You are an expert IT incident analyst. Provide accurate, structured analysis of IT tickets in JSON format."

// BuildPrompt renders the user prompt sent to remote analyzers.
func BuildPrompt(req models.AnalysisRequest) string {
	reporter := strings.TrimSpace(req.ReportedBy)
	if reporter == "" {
		reporter = "Unknown"
	}
	var b strings.Builder
	b.WriteString("Analyze this IT incident ticket and provide structured insights:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", req.TicketTitle)
	fmt.Fprintf(&b, "Description: %s\n", req.TicketDescription)
	fmt.Fprintf(&b, "Category: %s\n", req.Category)
	fmt.Fprintf(&b, "Reported By: %s\n\n", reporter)
	b.WriteString("Reply with a single JSON object with these fields:\n")
	b.WriteString("1. sentiment (positive/neutral/negative/urgent)\n")
	b.WriteString("2. suggestedPriority (low/medium/high/critical)\n")
	b.WriteString("3. urgencyScore (0.0 to 1.0)\n")
	fmt.Fprintf(&b, "4. suggestedTeam (%s)\n", strings.Join(knownTeams, "/"))
	b.WriteString("5. keyInsights (array of 3-5 important observations)\n")
	b.WriteString("6. estimatedResolutionTime (realistic time estimate)\n\n")
	b.WriteString("Focus on technical accuracy and business impact assessment.")
	return b.String()
}

var knownTeams = []string{
	models.TeamInfrastructure,
	models.TeamNetwork,
	models.TeamApplicationSupport,
	models.TeamSecurity,
	models.TeamHardwareSupport,
	models.TeamGeneralSupport,
}

type remoteReply struct {
	Sentiment               string   `json:"sentiment"`
	SuggestedPriority       string   `json:"suggestedPriority"`
	UrgencyScore            *float64 `json:"urgencyScore"`
	SuggestedTeam           string   `json:"suggestedTeam"`
	KeyInsights             []string `json:"keyInsights"`
	EstimatedResolutionTime string   `json:"estimatedResolutionTime"`
}

// ParseReply extracts an analysis from a model reply. The JSON object may be
// wrapped in prose or a code fence. Missing or out-of-range fields fall back
// to neutral defaults; SimilarIncidents is left for the caller.
func ParseReply(text string) (models.AnalysisResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return models.AnalysisResult{}, ErrMalformedReply
	}
	var r remoteReply
	if err := json.Unmarshal([]byte(text[start:end+1]), &r); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	res := models.AnalysisResult{
		Sentiment:               oneOf(strings.ToLower(r.Sentiment), models.SentimentNeutral, models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative, models.SentimentUrgent),
		SuggestedPriority:       oneOf(strings.ToLower(r.SuggestedPriority), models.PriorityMedium, models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical),
		UrgencyScore:            0.5,
		SuggestedTeam:           oneOf(r.SuggestedTeam, models.TeamGeneralSupport, knownTeams...),
		KeyInsights:             r.KeyInsights,
		EstimatedResolutionTime: strings.TrimSpace(r.EstimatedResolutionTime),
	}
	if r.UrgencyScore != nil {
		res.UrgencyScore = utils.Clamp01(*r.UrgencyScore)
	}
	if len(res.KeyInsights) == 0 {
		res.KeyInsights = []string{"Analysis completed"}
	}
	if res.EstimatedResolutionTime == "" {
		res.EstimatedResolutionTime = "1-2 days"
	}
	return res, nil
}

func oneOf(v, fallback string, allowed ...string) string {
	for _, a := range allowed {
		if strings.EqualFold(strings.TrimSpace(v), a) {
			return a
		}
	}
	return fallback
}
