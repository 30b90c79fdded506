package models

import "time"

// Notification is an outbox record for a message to be delivered to the
// customer about their booking.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Channel   string    `bson:"channel" json:"channel"`
	Recipient string    `bson:"recipient" json:"recipient"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
