package models

import "time"

const (
	CategoryEmail       = "Email"
	CategoryNetwork     = "Network"
	CategoryApplication = "Application"
	CategoryHardware    = "Hardware"
	CategorySecurity    = "Security"
	CategoryGeneral     = "General"
)

const (
	TeamInfrastructure     = "Infrastructure"
	TeamNetwork            = "Network"
	TeamApplicationSupport = "Application Support"
	TeamSecurity           = "Security"
	TeamHardwareSupport    = "Hardware Support"
	TeamGeneralSupport     = "General Support"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
	SentimentUrgent   = "urgent"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	ActionMerge    = "merge"
	ActionEscalate = "escalate"
	ActionCreateKB = "create_kb"
	ActionMonitor  = "monitor"
)

type KBDocument struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Content     string    `json:"content" yaml:"content"`
	Category    string    `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	LastUpdated time.Time `json:"lastUpdated" yaml:"last_updated"`
}

type RelevanceResult struct {
	KBDocument
	RelevanceScore float64 `json:"relevanceScore"`
}

type TicketSummary struct {
	TicketID    string    `json:"ticketId" yaml:"ticket_id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
}

type SimilarityPair struct {
	Ticket     TicketSummary `json:"ticket"`
	Similarity float64       `json:"similarity"`
}

type Cluster struct {
	ClusterID       string   `json:"clusterId"`
	Tickets         []string `json:"tickets"`
	CommonKeywords  []string `json:"commonKeywords"`
	SuggestedAction string   `json:"suggestedAction"`
	Confidence      float64  `json:"confidence"`
}

type AnalysisRequest struct {
	TicketTitle       string `json:"ticketTitle" validate:"required"`
	TicketDescription string `json:"ticketDescription" validate:"required"`
	Category          string `json:"category" validate:"required"`
	ReportedBy        string `json:"reportedBy,omitempty"`
}

type AnalysisResult struct {
	Sentiment               string   `json:"sentiment"`
	SuggestedPriority       string   `json:"suggestedPriority"`
	UrgencyScore            float64  `json:"urgencyScore"`
	SuggestedTeam           string   `json:"suggestedTeam"`
	KeyInsights             []string `json:"keyInsights"`
	EstimatedResolutionTime string   `json:"estimatedResolutionTime"`
	// SimilarIncidents is simulated, not counted from real data.
	SimilarIncidents int `json:"similarIncidents"`
}

type Ticket struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Priority    string    `json:"priority" yaml:"priority"`
	Status      string    `json:"status" yaml:"status"`
	AssignedTo  string    `json:"assignedTo,omitempty" yaml:"assigned_to"`
	Team        string    `json:"team" yaml:"team"`
	Category    string    `json:"category" yaml:"category"`
	ReportedBy  string    `json:"reportedBy" yaml:"reported_by"`
	CreatedAt   time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updated_at"`
}
