package routes

import (
	"crickbox/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterVenueRoutes registers availability and block endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("/:venueID/slots", hb.GetDayGridHandler)
		api.GET("/:venueID/snapshot", hb.GetSnapshotHandler)

		api.POST("/:venueID/blocks", hb.CreateBlockHandler)
		api.DELETE("/:venueID/blocks/:blockID", hb.DeleteBlockHandler)
	}
}

// RegisterSelectionRoutes registers selection session endpoints.
func RegisterSelectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/selection")
	{
		api.POST("", hb.StartSelectionHandler)
		api.GET("/:sessionID", hb.GetSelectionHandler)
		api.POST("/:sessionID/toggle", hb.ToggleSlotHandler)
		api.DELETE("/:sessionID", hb.ClearSelectionHandler)
	}
}

// RegisterBookingRoutes registers booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.SubmitBookingHandler)
		api.POST("/:bookingID/payment", hb.RetryPaymentHandler)
	}
	pay := r.Group("/api/payments")
	{
		pay.GET("/:bookingID/handoff", hb.HandoffPageHandler)
		pay.POST("/return", hb.PaymentReturnHandler)
	}
}

// RegisterRealtimeRoutes registers the venue event stream.
func RegisterRealtimeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/ws", func(c *gin.Context) {
		hb.WebSocketHandler(c.Writer, c.Request)
	})
}

// RegisterRoutes wires every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterVenueRoutes(r, hb)
	RegisterSelectionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRealtimeRoutes(r, hb)
}
