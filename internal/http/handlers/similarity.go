package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/backend/internal/models"
	"github.com/incidentdesk/backend/internal/service"
)

type SimilarityRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"`
}

// @Summary Similarity check capabilities
// @Tags similarity
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/similarity-check [get]
func (h *Handler) SimilarityInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Smart Ticket Clustering API",
		"features": []string{
			"Duplicate Detection",
			"Similarity Analysis",
			"Ticket Clustering",
			"Pattern Recognition",
			"Automated Recommendations",
		},
		"algorithms":        []string{"Jaccard Similarity", "Keyword Extraction", "Clustering Analysis"},
		"historicalTickets": len(h.Similarity.History()),
	})
}

// @Summary Detect duplicates and clusters for a new ticket
// @Tags similarity
// @Accept json
// @Produce json
// @Param payload body SimilarityRequest true "New ticket"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/similarity-check [post]
func (h *Handler) SimilarityCheck(c *gin.Context) {
	var req SimilarityRequest
	if !h.bind(c, &req) {
		return
	}
	category := req.Category
	if category == "" {
		category = models.CategoryGeneral
	}
	report := h.Similarity.Check(models.TicketSummary{
		TicketID:    service.NewTicketID,
		Title:       req.Title,
		Description: req.Description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	})
	c.JSON(http.StatusOK, gin.H{
		"success":              true,
		"duplicateProbability": report.DuplicateProbability,
		"similarTickets":       report.SimilarTickets,
		"clusters":             report.Clusters,
		"insights":             report.Insights,
		"recommendations":      report.Recommendations,
		"timestamp":            timestamp(),
	})
}
