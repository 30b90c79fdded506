package handlers

import (
	"net/http"

	"crickbox/services/booking"

	"github.com/gin-gonic/gin"
)

// statusFor maps the engine error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch booking.ErrorCode(err) {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeConflict:
		return http.StatusConflict
	case booking.CodeNetwork, booking.CodePaymentInit:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"error": err.Error(),
		"code":  booking.ErrorCode(err),
	})
}
