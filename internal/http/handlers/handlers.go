package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/incidentdesk/backend/internal/ai"
	"github.com/incidentdesk/backend/internal/db"
	"github.com/incidentdesk/backend/internal/service"
)

type Handler struct {
	Store      db.TicketStore
	Tickets    service.TicketService
	KB         *service.RelevanceScorer
	Similarity *service.SimilarityEngine
	Analyzer   ai.Adapter
	// AIPowered reports a configured remote analyzer, even when a given
	// request ends up on the heuristic fallback.
	AIPowered bool
	Validator *validator.Validate
	Logger    zerolog.Logger
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Ticket store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind decodes the JSON body into req and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return false
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing required fields", err.Error())
		return false
	}
	return true
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
