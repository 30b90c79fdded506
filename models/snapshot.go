package models

import "time"

// BookedSlot is one booking entry in a snapshot group.
type BookedSlot struct {
	BookingID     string    `json:"bookingId"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	IsOffline     bool      `json:"isOffline"`
	User          string    `json:"user,omitempty"`
}

// Blocking reports whether this entry makes its interval unavailable to
// others. An unpaid online hold does not block.
func (s BookedSlot) Blocking() bool {
	return s.Status == BookingConfirmed && (s.PaymentStatus == PaymentPaid || s.IsOffline)
}

// BookedGroup groups a quarter's bookings for one venue-date snapshot.
type BookedGroup struct {
	QuarterID   string       `json:"quarterId"`
	QuarterName string       `json:"quarterName"`
	Slots       []BookedSlot `json:"slots"`
}

// BlockedSlot is one block entry in a snapshot group.
type BlockedSlot struct {
	BlockID       string    `json:"blockId"`
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	Reason        string    `json:"reason,omitempty"`
}

// BlockedGroup groups a quarter's blocks for one venue-date snapshot.
type BlockedGroup struct {
	QuarterID   string        `json:"quarterId"`
	QuarterName string        `json:"quarterName"`
	Slots       []BlockedSlot `json:"slots"`
}

// Snapshot is the wholesale booking/block state for a venue-date. Snapshots
// are fetched and replaced whole; invalidation never patches.
type Snapshot struct {
	Booked  []BookedGroup  `json:"booked"`
	Blocked []BlockedGroup `json:"blocked"`
}
