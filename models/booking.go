package models

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Booking represents a booking record, including provisional holds awaiting
// payment (status confirmed, paymentStatus pending).
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	VenueID       string    `bson:"venue_id" json:"venueId"`
	QuarterID     string    `bson:"quarter_id" json:"quarterId"`
	QuarterName   string    `bson:"quarter_name" json:"quarterName"`
	Date          string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartDateTime time.Time `bson:"start_date_time" json:"startDateTime"`
	EndDateTime   time.Time `bson:"end_date_time" json:"endDateTime"`
	Duration      int       `bson:"duration" json:"duration"` // hours
	Status        string    `bson:"status" json:"status"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	IsOffline     bool      `bson:"is_offline" json:"isOffline"`
	ContactNumber string    `bson:"contact_number" json:"contactNumber"`
	Amount        float64   `bson:"amount" json:"amount"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// Snapshot converts the booking to its snapshot entry shape.
func (b Booking) Snapshot() BookedSlot {
	return BookedSlot{
		BookingID:     b.ID,
		StartDateTime: b.StartDateTime,
		EndDateTime:   b.EndDateTime,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		IsOffline:     b.IsOffline,
		User:          b.ContactNumber,
	}
}
