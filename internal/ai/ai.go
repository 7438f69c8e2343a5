package ai

import (
	"context"
	"errors"

	"github.com/incidentdesk/backend/internal/models"
)

var (
	// ErrNoRemote is returned by remote adapters that lack a credential or endpoint.
	ErrNoRemote = errors.New("remote analyzer not configured")
	// ErrMalformedReply is returned when a remote reply has no usable JSON object.
	ErrMalformedReply = errors.New("malformed analyzer reply")
)

// Adapter classifies a ticket into sentiment, priority, team and
// resolution-time buckets.
type Adapter interface {
	AnalyzeTicket(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
}
