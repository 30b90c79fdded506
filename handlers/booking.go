package handlers

import (
	"net/http"

	"crickbox/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the two-phase booking flow.
type BookingHandler struct {
	Orchestrator booking.BookingOrchestrator
}

func NewBookingHandler(o booking.BookingOrchestrator) *BookingHandler {
	return &BookingHandler{Orchestrator: o}
}

// SubmitBooking validates and creates a hold. Online holds get handoff
// material in the response; offline holds are confirmed immediately.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req booking.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	result, err := h.Orchestrator.Submit(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// RetryPayment re-issues handoff material for an unpaid online hold.
func (h *BookingHandler) RetryPayment(c *gin.Context) {
	payload, err := h.Orchestrator.InitiatePayment(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
