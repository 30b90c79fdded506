package handlers

import (
	"net/http"

	"crickbox/services/booking"

	"github.com/gin-gonic/gin"
)

// SelectionHandler exposes the selection session state machine.
type SelectionHandler struct {
	Svc booking.SelectionService
}

func NewSelectionHandler(svc booking.SelectionService) *SelectionHandler {
	return &SelectionHandler{Svc: svc}
}

// StartSelection opens a fresh empty session for a venue quarter-date.
func (h *SelectionHandler) StartSelection(c *gin.Context) {
	var input struct {
		VenueID   string `json:"venueId" binding:"required"`
		QuarterID string `json:"quarterId" binding:"required"`
		Date      string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.Start(c.Request.Context(), input.VenueID, input.QuarterID, input.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleSlot applies the toggle rule to one slot and returns the updated
// session with its recomputed price.
func (h *SelectionHandler) ToggleSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SlotID *int `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Svc.Toggle(c.Request.Context(), sessionID, *input.SlotID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSelection returns the current session state.
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ClearSelection discards the session.
func (h *SelectionHandler) ClearSelection(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), c.Param("sessionID")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
