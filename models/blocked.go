package models

import "time"

// Blocked marks a quarter interval as unavailable for booking. The interval
// may wrap past midnight, in which case EndDateTime <= StartDateTime and the
// resolver normalizes by adding 24h before overlap testing.
type Blocked struct {
	BlockID       string    `bson:"block_id" json:"blockId"`
	VenueID       string    `bson:"venue_id" json:"venueId"`
	QuarterID     string    `bson:"quarter_id" json:"quarterId"`
	QuarterName   string    `bson:"quarter_name" json:"quarterName"`
	Date          string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartDateTime time.Time `bson:"start_date_time" json:"startDateTime"`
	EndDateTime   time.Time `bson:"end_date_time" json:"endDateTime"`
	Reason        string    `bson:"reason" json:"reason"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
