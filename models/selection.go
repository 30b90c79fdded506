package models

import "time"

// SelectionSession holds a user's in-progress slot selection for one
// quarter-date. Slots is always a contiguous ascending run, or empty.
type SelectionSession struct {
	SessionID string    `json:"sessionId"`
	VenueID   string    `json:"venueId"`
	QuarterID string    `json:"quarterId"`
	Date      string    `json:"date"`
	Slots     []int     `json:"slots"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}
