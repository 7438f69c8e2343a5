package service

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/incidentdesk/backend/internal/fixtures"
	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/utils"
)

func summary(id, title string) models.TicketSummary {
	return models.TicketSummary{TicketID: id, Title: title}
}

func TestJaccardSymmetricAndBounded(t *testing.T) {
	faker := gofakeit.New(7)
	for i := 0; i < 300; i++ {
		a := faker.Sentence(faker.Number(0, 12))
		b := faker.Sentence(faker.Number(0, 12))
		ab, ba := Jaccard(a, b), Jaccard(b, a)
		if ab != ba {
			t.Fatalf("asymmetric jaccard for %q / %q: %v vs %v", a, b, ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("jaccard out of range: %v", ab)
		}
		self := Jaccard(a, a)
		if len(utils.TermSet(a, 2)) > 0 && self != 1 {
			t.Fatalf("expected self similarity 1 for %q, got %v", a, self)
		}
		if len(utils.TermSet(a, 2)) == 0 && self != 0 {
			t.Fatalf("expected 0 for degenerate %q, got %v", a, self)
		}
	}
}

func TestJaccardEmptyIsZero(t *testing.T) {
	if got := Jaccard("", ""); got != 0 || math.IsNaN(got) {
		t.Fatalf("expected 0 for empty texts, got %v", got)
	}
	if got := Jaccard("to be or", "an it is"); got != 0 {
		t.Fatalf("expected 0 for texts without qualifying words, got %v", got)
	}
}

func TestJaccardKnownValue(t *testing.T) {
	if got := Jaccard("alpha bravo charlie", "bravo charlie delta"); !approx(got, 0.5) {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestCheckEmailRecurrence(t *testing.T) {
	engine := NewSimilarityEngine(fixtures.DefaultHistoricalTickets())
	report := engine.Check(models.TicketSummary{
		Title:       "Email service down again",
		Description: "Email server unreachable for all users",
		Category:    models.CategoryEmail,
	})
	if report.DuplicateProbability <= 0.3 {
		t.Fatalf("expected duplicate probability above 0.3, got %v", report.DuplicateProbability)
	}
	if len(report.SimilarTickets) != 2 {
		t.Fatalf("expected INC-001 and INC-003, got %+v", report.SimilarTickets)
	}
	if report.SimilarTickets[0].Ticket.TicketID != "INC-001" || report.SimilarTickets[1].Ticket.TicketID != "INC-003" {
		t.Fatalf("unexpected similar tickets: %+v", report.SimilarTickets)
	}
	if len(report.Clusters) != 0 {
		t.Fatalf("similarities below 0.5 must not form clusters, got %+v", report.Clusters)
	}
	if report.Insights == nil || report.Recommendations == nil {
		t.Fatalf("insights and recommendations should be empty lists, not nil")
	}
}

func TestCheckExactDuplicate(t *testing.T) {
	history := fixtures.DefaultHistoricalTickets()
	engine := NewSimilarityEngine(history)
	report := engine.Check(models.TicketSummary{Title: history[0].Title, Description: history[0].Description})

	if report.DuplicateProbability != 1 {
		t.Fatalf("expected probability 1, got %v", report.DuplicateProbability)
	}
	if len(report.Clusters) != 1 {
		t.Fatalf("expected one cluster, got %+v", report.Clusters)
	}
	c := report.Clusters[0]
	if c.ClusterID != "CLUSTER-1" || c.SuggestedAction != models.ActionMerge || c.Confidence != 1 {
		t.Fatalf("unexpected cluster: %+v", c)
	}
	if !reflect.DeepEqual(c.Tickets, []string{NewTicketID, "INC-001"}) {
		t.Fatalf("expected new ticket first, got %v", c.Tickets)
	}
	wantKeywords := []string{"email", "server", "responding", "users", "unable"}
	if !reflect.DeepEqual(c.CommonKeywords, wantKeywords) {
		t.Fatalf("unexpected keywords: %v", c.CommonKeywords)
	}
	wantInsights := []string{"High probability of duplicate ticket detected", "Found 1 related ticket cluster(s)"}
	if !reflect.DeepEqual(report.Insights, wantInsights) {
		t.Fatalf("unexpected insights: %v", report.Insights)
	}
	wantRecs := []string{"Consider closing as duplicate and linking to existing ticket"}
	if !reflect.DeepEqual(report.Recommendations, wantRecs) {
		t.Fatalf("unexpected recommendations: %v", report.Recommendations)
	}
}

func TestCheckActionBands(t *testing.T) {
	cases := []struct {
		name     string
		history  string
		incoming string
		action   string
		cluster  bool
	}{
		// 5 of 6 shared words: 0.833.
		{"merge", "alpha bravo charlie delta echo foxtrot", "alpha bravo charlie delta echo", models.ActionMerge, true},
		// exactly 0.8 is not a merge.
		{"boundary", "alpha bravo charlie delta echo", "alpha bravo charlie delta", models.ActionEscalate, true},
		{"escalate", "alpha bravo charlie delta", "alpha bravo charlie", models.ActionEscalate, true},
		{"monitor", "alpha bravo charlie delta echo", "alpha bravo charlie", models.ActionMonitor, true},
		{"exactly half", "alpha bravo charlie delta", "alpha bravo", models.ActionMonitor, true},
		{"candidate only", "alpha bravo charlie delta echo", "alpha bravo", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewSimilarityEngine([]models.TicketSummary{summary("H-1", tc.history)})
			report := engine.Check(summary("", tc.incoming))
			if !tc.cluster {
				if len(report.Clusters) != 0 {
					t.Fatalf("expected no cluster, got %+v", report.Clusters)
				}
				if len(report.SimilarTickets) != 1 {
					t.Fatalf("expected one candidate, got %+v", report.SimilarTickets)
				}
				return
			}
			if len(report.Clusters) != 1 {
				t.Fatalf("expected one cluster, got %+v", report.Clusters)
			}
			if got := report.Clusters[0].SuggestedAction; got != tc.action {
				t.Fatalf("expected %s, got %s (similarity %v)", tc.action, got, report.Clusters[0].Confidence)
			}
		})
	}
}

func TestSuggestActionBoundaries(t *testing.T) {
	cases := []struct {
		similarity float64
		members    int
		want       string
	}{
		{0.8, 2, models.ActionEscalate},
		{math.Nextafter(0.8, 1), 2, models.ActionMerge},
		{1, 2, models.ActionMerge},
		{0.7, 2, models.ActionMonitor},
		{math.Nextafter(0.7, 1), 2, models.ActionEscalate},
		{0.6, 3, models.ActionMonitor},
		{0.6, 4, models.ActionCreateKB},
		{0.9, 4, models.ActionMerge},
	}
	for _, tc := range cases {
		if got := SuggestAction(tc.similarity, tc.members); got != tc.want {
			t.Fatalf("SuggestAction(%v, %d) = %s, want %s", tc.similarity, tc.members, got, tc.want)
		}
	}
}

func TestCheckEscalationRecommendation(t *testing.T) {
	engine := NewSimilarityEngine([]models.TicketSummary{summary("H-1", "alpha bravo charlie delta")})
	report := engine.Check(summary("", "alpha bravo charlie"))
	found := false
	for _, r := range report.Recommendations {
		if r == "Escalate to senior team - pattern indicates systemic issue" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected escalation recommendation, got %v", report.Recommendations)
	}
	if report.Insights[0] != "Similar tickets found - consider merging or escalating" {
		t.Fatalf("expected similar-tickets insight, got %v", report.Insights)
	}
}

func TestCheckGreedyClusteringOrder(t *testing.T) {
	history := []models.TicketSummary{
		summary("H-LOW", "alpha bravo charlie delta echo"),
		summary("H-HIGH", "alpha bravo charlie"),
		summary("H-MID", "alpha bravo charlie delta"),
		summary("H-NONE", "zulu yankee xray"),
	}
	report := NewSimilarityEngine(history).Check(summary("", "alpha bravo charlie"))
	var ids []string
	for _, c := range report.Clusters {
		ids = append(ids, c.Tickets[1])
	}
	if !reflect.DeepEqual(ids, []string{"H-HIGH", "H-MID", "H-LOW"}) {
		t.Fatalf("expected clusters in similarity order, got %v", ids)
	}
	for i, c := range report.Clusters {
		if c.ClusterID != fmt.Sprintf("CLUSTER-%d", i+1) {
			t.Fatalf("unexpected cluster id %s at %d", c.ClusterID, i)
		}
	}
	if len(report.Recommendations) == 0 || report.Recommendations[len(report.Recommendations)-1] != "Review historical resolution patterns for faster resolution" {
		t.Fatalf("expected historical review recommendation, got %v", report.Recommendations)
	}
}

func TestCheckNoDuplicateMembers(t *testing.T) {
	history := []models.TicketSummary{
		summary("H-1", "alpha bravo charlie"),
		summary("H-1", "alpha bravo charlie"),
		summary(NewTicketID, "alpha bravo charlie"),
	}
	report := NewSimilarityEngine(history).Check(summary("", "alpha bravo charlie"))
	if len(report.Clusters) != 1 {
		t.Fatalf("expected a single cluster, got %+v", report.Clusters)
	}
	seen := map[string]bool{}
	for _, id := range report.Clusters[0].Tickets {
		if seen[id] {
			t.Fatalf("duplicate member %s", id)
		}
		seen[id] = true
	}
}

func TestCheckCapsSimilarTickets(t *testing.T) {
	var history []models.TicketSummary
	for i := 0; i < 7; i++ {
		history = append(history, summary(fmt.Sprintf("H-%d", i), "printer jammed again"))
	}
	report := NewSimilarityEngine(history).Check(summary("", "printer jammed again"))
	if len(report.SimilarTickets) != 5 {
		t.Fatalf("expected 5 similar tickets, got %d", len(report.SimilarTickets))
	}
	if len(report.Clusters) != 7 {
		t.Fatalf("expected every duplicate to form a cluster, got %d", len(report.Clusters))
	}
}

func TestCheckUniqueIssue(t *testing.T) {
	report := NewSimilarityEngine(fixtures.DefaultHistoricalTickets()).Check(summary("", "Badge reader offline in lobby"))
	if report.DuplicateProbability != 0 {
		t.Fatalf("expected 0 probability, got %v", report.DuplicateProbability)
	}
	if !reflect.DeepEqual(report.Insights, []string{"New unique issue - consider creating KB article after resolution"}) {
		t.Fatalf("unexpected insights: %v", report.Insights)
	}
}

func TestCommonKeywordsOrderFollowsHistorical(t *testing.T) {
	incoming := summary("", "router switch firewall gateway")
	historical := summary("H", "gateway firewall down, router ok, switch fine, gateway again")
	got := CommonKeywords(incoming, historical)
	want := []string{"gateway", "firewall", "router", "switch"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCommonKeywordsLimit(t *testing.T) {
	text := "alpha bravo charlie delta echo foxtrot golf"
	got := CommonKeywords(summary("", text), summary("H", text))
	if len(got) != 5 {
		t.Fatalf("expected 5 keywords, got %v", got)
	}
	for _, w := range got {
		if len(w) <= 3 {
			t.Fatalf("keyword %q too short", w)
		}
	}
}

func TestCheckIdempotent(t *testing.T) {
	engine := NewSimilarityEngine(fixtures.DefaultHistoricalTickets())
	in := models.TicketSummary{Title: "Email server not responding", Description: "Users cannot access email"}
	if !reflect.DeepEqual(engine.Check(in), engine.Check(in)) {
		t.Fatalf("expected identical reports")
	}
}
