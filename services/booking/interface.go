package booking

import (
	"context"

	"crickbox/models"
)

// SelectionService manages a user's in-progress contiguous slot selection.
type SelectionService interface {
	Start(ctx context.Context, venueID, quarterID, date string) (*models.SelectionSession, error)
	Toggle(ctx context.Context, sessionID string, slotID int) (*models.SelectionSession, error)
	Get(ctx context.Context, sessionID string) (*models.SelectionSession, error)
	Clear(ctx context.Context, sessionID string) error
}

// BookingOrchestrator drives the two-phase hold-then-pay flow.
type BookingOrchestrator interface {
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	InitiatePayment(ctx context.Context, bookingID string) (*models.HandoffPayload, error)
	ConfirmPayment(ctx context.Context, bookingID string, success bool) (*models.Booking, error)
}

// PaymentGateway initiates a payment for a hold and returns the redirect
// material for the auto-submit form.
type PaymentGateway interface {
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.HandoffPayload, error)
}

// EventPublisher pushes invalidation events onto a venue's channel.
type EventPublisher interface {
	Publish(ctx context.Context, venueID, event string) error
}

// TaskQueue enqueues deferred work (notification dispatch).
type TaskQueue interface {
	EnqueueBookingNotice(ctx context.Context, b models.Booking) error
}
