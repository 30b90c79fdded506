package notification

import (
	"context"
	"fmt"
	"time"

	"crickbox/models"
	"crickbox/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// NotificationService dispatches customer-facing messages about bookings.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, b models.Booking) error
}

// DefaultNotificationService writes outbox documents that the delivery
// pipeline drains. Delivery itself happens out of process.
type DefaultNotificationService struct {
	Coll *mongo.Collection
}

func NewNotificationService(db *mongo.Database) *DefaultNotificationService {
	return &DefaultNotificationService{Coll: db.Collection("notifications")}
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, b models.Booking) error {
	msg := fmt.Sprintf("Your booking for %s on %s (%02d:00, %d hr) is confirmed. Amount: %.2f.",
		b.QuarterName, b.Date, b.StartDateTime.Hour(), b.Duration, b.Amount)

	doc := models.Notification{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		Channel:   "whatsapp",
		Recipient: b.ContactNumber,
		Message:   msg,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.Coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to queue booking confirmation: %w", err)
	}
	utils.GetLogger().Info("booking confirmation queued",
		zap.String("bookingID", b.ID), zap.String("recipient", b.ContactNumber))
	return nil
}
