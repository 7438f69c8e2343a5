package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incidentdesk/backend/internal/db"
	"github.com/incidentdesk/backend/internal/service"
)

// @Summary List tickets
// @Tags tickets
// @Produce json
// @Param status query string false "Status filter or all"
// @Param team query string false "Team filter or all"
// @Param priority query string false "Priority filter or all"
// @Success 200 {object} map[string]any
// @Router /api/tickets [get]
func (h *Handler) TicketsList(c *gin.Context) {
	filter := db.TicketFilter{
		Status:   c.Query("status"),
		Team:     c.Query("team"),
		Priority: c.Query("priority"),
	}
	items, err := h.Tickets.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list tickets", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "tickets": items, "total": len(items)})
}

// @Summary Get a ticket
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/tickets/{id} [get]
func (h *Handler) TicketDetails(c *gin.Context) {
	t, err := h.Tickets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.ticketError(c, err, "Failed to get ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ticket": t})
}

// @Summary Create a ticket
// @Description Routes the ticket to a team using KB suggestions, falling back to the category.
// @Tags tickets
// @Accept json
// @Produce json
// @Param payload body service.NewTicket true "Ticket"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/tickets [post]
func (h *Handler) TicketCreate(c *gin.Context) {
	var req service.NewTicket
	if !h.bind(c, &req) {
		return
	}
	out, err := h.Tickets.Create(c.Request.Context(), req)
	if err != nil {
		h.ticketError(c, err, "Failed to create ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"ticket":        out.Ticket,
		"kbSuggestions": out.KBSuggestions,
		"message":       "Ticket created successfully",
	})
}

// @Summary Update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param payload body db.TicketPatch true "Fields to change"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/tickets/{id} [put]
func (h *Handler) TicketUpdate(c *gin.Context) {
	var patch db.TicketPatch
	if !h.bind(c, &patch) {
		return
	}
	t, err := h.Tickets.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.ticketError(c, err, "Failed to update ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ticket": t, "message": "Ticket updated successfully"})
}

// @Summary Ticket analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	a, err := h.Tickets.Analytics(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to compute analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": a, "lastUpdated": timestamp()})
}

func (h *Handler) ticketError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Ticket not found", nil)
	case errors.Is(err, service.ErrInvalidTicket):
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
	default:
		h.Logger.Error().Err(err).Msg(message)
		writeError(c, http.StatusInternalServerError, "STORE_ERROR", message, err.Error())
	}
}
