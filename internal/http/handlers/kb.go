package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type KBSuggestionRequest struct {
	TicketTitle       string `json:"ticketTitle" validate:"required"`
	TicketDescription string `json:"ticketDescription" validate:"required"`
	Category          string `json:"category"`
}

// @Summary KB suggestion capabilities
// @Tags kb
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/kb-suggestions [get]
func (h *Handler) KBSuggestionsInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "KB Suggestion API",
		"endpoints": gin.H{
			"POST": "Submit ticket data to get KB suggestions",
		},
		"documents": len(h.KB.Documents()),
		"samplePayload": KBSuggestionRequest{
			TicketTitle:       "Email server not responding",
			TicketDescription: "Users unable to access email. Server appears to be down.",
			Category:          "Email",
		},
	})
}

// @Summary Suggest KB articles for a ticket
// @Tags kb
// @Accept json
// @Produce json
// @Param payload body KBSuggestionRequest true "Ticket text"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/kb-suggestions [post]
func (h *Handler) KBSuggestions(c *gin.Context) {
	var req KBSuggestionRequest
	if !h.bind(c, &req) {
		return
	}
	res := h.KB.Suggest(req.TicketTitle, req.TicketDescription, req.Category)
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"suggestions":     res.Suggestions,
		"recommendedTeam": res.RecommendedTeam,
		"confidence":      res.Confidence,
	})
}
