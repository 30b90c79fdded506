package handlers

import (
	"net/http"
	"time"

	blockedRepo "crickbox/database/repository/blocked"
	bookingRepo "crickbox/database/repository/booking"
	venueRepo "crickbox/database/repository/venue"
	"crickbox/models"
	"crickbox/services/booking"
	"crickbox/utils"

	"github.com/gin-gonic/gin"
)

// SlotHandler serves the day grid and raw snapshots.
type SlotHandler struct {
	BookingRepo bookingRepo.BookingRepository
	BlockedRepo blockedRepo.BlockedRepository
	VenueRepo   venueRepo.VenueRepository
}

func NewSlotHandler(b bookingRepo.BookingRepository, bl blockedRepo.BlockedRepository, v venueRepo.VenueRepository) *SlotHandler {
	return &SlotHandler{BookingRepo: b, BlockedRepo: bl, VenueRepo: v}
}

// GetDayGrid returns the classified 24-slot grid for a venue quarter-date.
// Query params: date (YYYY-MM-DD, required), quarter (required).
func (h *SlotHandler) GetDayGrid(c *gin.Context) {
	venueID := c.Param("venueID")
	date := c.Query("date")
	quarterID := c.Query("quarter")
	if date == "" || quarterID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing parameters", "date and quarter query parameters are required")
		return
	}
	if _, err := h.VenueRepo.GetQuarter(c.Request.Context(), venueID, quarterID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "quarter not found", err.Error())
		return
	}

	booked, err := h.BookingRepo.BookedGroups(c.Request.Context(), venueID, date)
	if err != nil {
		abortWithError(c, booking.NewNetworkError(err.Error()))
		return
	}
	blocked, err := h.BlockedRepo.BlockedGroups(c.Request.Context(), venueID, date)
	if err != nil {
		abortWithError(c, booking.NewNetworkError(err.Error()))
		return
	}

	grid, err := booking.DayAvailability(date, quarterID, booked, blocked, nil, time.Now().UTC())
	if err != nil {
		abortWithError(c, booking.NewValidationError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"venueId": venueID,
		"quarter": quarterID,
		"date":    date,
		"slots":   grid,
	})
}

// GetSnapshot returns the wholesale booking/block state for a venue-date,
// the document clients re-fetch on every channel event.
func (h *SlotHandler) GetSnapshot(c *gin.Context) {
	venueID := c.Param("venueID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing parameters", "date query parameter is required")
		return
	}

	booked, err := h.BookingRepo.BookedGroups(c.Request.Context(), venueID, date)
	if err != nil {
		abortWithError(c, booking.NewNetworkError(err.Error()))
		return
	}
	blocked, err := h.BlockedRepo.BlockedGroups(c.Request.Context(), venueID, date)
	if err != nil {
		abortWithError(c, booking.NewNetworkError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, models.Snapshot{Booked: booked, Blocked: blocked})
}
