package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetDayGridHandler  gin.HandlerFunc
	GetSnapshotHandler gin.HandlerFunc

	// Selection endpoints
	StartSelectionHandler gin.HandlerFunc
	ToggleSlotHandler     gin.HandlerFunc
	GetSelectionHandler   gin.HandlerFunc
	ClearSelectionHandler gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler gin.HandlerFunc
	RetryPaymentHandler  gin.HandlerFunc

	// Payment endpoints
	HandoffPageHandler   gin.HandlerFunc
	PaymentReturnHandler gin.HandlerFunc

	// Block endpoints
	CreateBlockHandler gin.HandlerFunc
	DeleteBlockHandler gin.HandlerFunc

	// Realtime endpoint (plain http, bridged in routes)
	WebSocketHandler http.HandlerFunc
}
