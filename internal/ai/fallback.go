package ai

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/incidentdesk/backend/internal/models"
)

var errRateBudget = errors.New("remote analyzer budget exhausted")

// FallbackAdapter tries Remote once and answers from Local on any failure.
// It never returns the remote error.
type FallbackAdapter struct {
	Remote    Adapter
	Local     Adapter
	Limiter   *rate.Limiter
	Timeout   time.Duration
	Incidents IncidentCounter
	Logger    zerolog.Logger
}

func (f FallbackAdapter) AnalyzeTicket(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if f.Remote == nil {
		return f.Local.AnalyzeTicket(ctx, req)
	}

	res, err := f.tryRemote(ctx, req)
	if err != nil {
		f.Logger.Warn().Err(err).Str("title", req.TicketTitle).Msg("remote analysis failed, using heuristic fallback")
		return f.Local.AnalyzeTicket(ctx, req)
	}
	if f.Incidents != nil {
		res.SimilarIncidents = f.Incidents(req)
	}
	return res, nil
}

func (f FallbackAdapter) tryRemote(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	if f.Limiter != nil && !f.Limiter.Allow() {
		return models.AnalysisResult{}, errRateBudget
	}
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	return f.Remote.AnalyzeTicket(ctx, req)
}
