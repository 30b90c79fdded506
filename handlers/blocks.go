package handlers

import (
	"net/http"
	"time"

	blockedRepo "crickbox/database/repository/blocked"
	venueRepo "crickbox/database/repository/venue"
	"crickbox/models"
	"crickbox/services/booking"
	"crickbox/services/realtime"
	"crickbox/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BlockHandler manages manual availability blocks for venue staff.
type BlockHandler struct {
	BlockedRepo blockedRepo.BlockedRepository
	VenueRepo   venueRepo.VenueRepository
	Hub         booking.EventPublisher
}

func NewBlockHandler(b blockedRepo.BlockedRepository, v venueRepo.VenueRepository, hub booking.EventPublisher) *BlockHandler {
	return &BlockHandler{BlockedRepo: b, VenueRepo: v, Hub: hub}
}

// CreateBlock records a block interval and invalidates the venue channel.
// startSlot/endSlot are hours; endSlot <= startSlot means the block wraps
// past midnight.
func (h *BlockHandler) CreateBlock(c *gin.Context) {
	venueID := c.Param("venueID")
	var input struct {
		QuarterID string `json:"quarterId" binding:"required"`
		Date      string `json:"date" binding:"required"`
		StartSlot *int   `json:"startSlot" binding:"required"`
		EndSlot   *int   `json:"endSlot" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quarter, err := h.VenueRepo.GetQuarter(c.Request.Context(), venueID, input.QuarterID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "quarter not found", err.Error())
		return
	}

	start, _, err := booking.SlotInterval(input.Date, *input.StartSlot)
	if err != nil {
		abortWithError(c, booking.NewValidationError(err.Error()))
		return
	}
	if *input.EndSlot < 0 || *input.EndSlot > 23 {
		abortWithError(c, booking.NewValidationError("endSlot out of range"))
		return
	}
	// end stored on the same calendar date; a wrapped interval keeps
	// end <= start and the resolver normalizes at classification time
	day := start.Truncate(24 * time.Hour)
	end := day.Add(time.Duration(*input.EndSlot) * time.Hour)

	block := &models.Blocked{
		BlockID:       uuid.New().String(),
		VenueID:       venueID,
		QuarterID:     input.QuarterID,
		QuarterName:   quarter.Name,
		Date:          input.Date,
		StartDateTime: start,
		EndDateTime:   end,
		Reason:        input.Reason,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.BlockedRepo.Create(c.Request.Context(), block); err != nil {
		abortWithError(c, booking.NewNetworkError(err.Error()))
		return
	}

	if err := h.Hub.Publish(c.Request.Context(), venueID, realtime.EventSlotBlocked); err != nil {
		utils.GetLogger().Warn("failed to publish slot-blocked",
			zap.String("venueID", venueID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, block)
}

// DeleteBlock removes a block and invalidates the venue channel.
func (h *BlockHandler) DeleteBlock(c *gin.Context) {
	venueID := c.Param("venueID")
	block, err := h.BlockedRepo.Delete(c.Request.Context(), venueID, c.Param("blockID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "block not found", err.Error())
		return
	}

	if err := h.Hub.Publish(c.Request.Context(), venueID, realtime.EventSlotUnblocked); err != nil {
		utils.GetLogger().Warn("failed to publish slot-unblocked",
			zap.String("venueID", venueID), zap.Error(err))
	}
	c.JSON(http.StatusOK, block)
}
