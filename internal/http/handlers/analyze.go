package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/backend/internal/models"
)

// @Summary Ticket analysis capabilities
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/analyze-ticket [get]
func (h *Handler) AnalyzeInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Advanced Ticket Analysis API",
		"features": []string{
			"Sentiment Analysis",
			"Priority Suggestion",
			"Team Routing",
			"Resolution Time Estimation",
			"Key Insights Extraction",
		},
		"aiEnabled": h.AIPowered,
	})
}

// @Summary Classify a ticket
// @Tags analysis
// @Accept json
// @Produce json
// @Param payload body models.AnalysisRequest true "Ticket"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/analyze-ticket [post]
func (h *Handler) AnalyzeTicket(c *gin.Context) {
	var req models.AnalysisRequest
	if !h.bind(c, &req) {
		return
	}
	analysis, err := h.Analyzer.AnalyzeTicket(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error().Err(err).Msg("ticket analysis failed")
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Analysis failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analysis":  analysis,
		"aiPowered": h.AIPowered,
		"timestamp": timestamp(),
	})
}
