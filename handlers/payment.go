package handlers

import (
	"net/http"

	"crickbox/services/booking"
	"crickbox/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the staged gateway handoff and the return leg.
type PaymentHandler struct {
	Orchestrator booking.BookingOrchestrator
}

func NewPaymentHandler(o booking.BookingOrchestrator) *PaymentHandler {
	return &PaymentHandler{Orchestrator: o}
}

// HandoffPage walks the staged redirect sequence and finishes by serving
// the auto-submitting gateway form. Closing the connection before the
// auto-submit stage cancels the request context and the form is never sent.
func (h *PaymentHandler) HandoffPage(c *gin.Context) {
	bookingID := c.Param("bookingID")
	payload, err := h.Orchestrator.InitiatePayment(c.Request.Context(), bookingID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	logger := utils.GetLogger()
	runner := booking.HandoffRunner{
		OnStage: func(stage booking.HandoffStage) {
			logger.Info("payment handoff stage",
				zap.String("bookingID", bookingID), zap.String("stage", string(stage)))
		},
	}
	if err := runner.Run(c.Request.Context()); err != nil {
		logger.Info("payment handoff cancelled",
			zap.String("bookingID", bookingID), zap.Error(err))
		return
	}

	page, err := booking.RenderAutoSubmitForm(*payload)
	if err != nil {
		abortWithError(c, booking.NewPaymentInitError(err.Error()))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// PaymentReturn handles the processor's redirect back: success marks the
// hold paid, failure leaves it pending for the retry flow.
func (h *PaymentHandler) PaymentReturn(c *gin.Context) {
	bookingID := c.PostForm("bookingId")
	if bookingID == "" {
		bookingID = c.Query("bookingId")
	}
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingId is required"})
		return
	}
	success := c.PostForm("status") == "success" || c.Query("status") == "success"

	b, err := h.Orchestrator.ConfirmPayment(c.Request.Context(), bookingID, success)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking": b,
		"paid":    success,
	})
}
