package models

// Segment tags a slot with its display band of the day.
type Segment string

const (
	SegmentEarly     Segment = "Early"     // [0,6)
	SegmentMorning   Segment = "Morning"   // [6,12)
	SegmentAfternoon Segment = "Afternoon" // [12,17)
	SegmentEvening   Segment = "Evening"   // [17,21)
	SegmentNight     Segment = "Night"     // [21,24)
)

// SlotStatus is the derived classification of a slot. It is recomputed on
// every evaluation and never stored.
type SlotStatus string

const (
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
	SlotPast      SlotStatus = "past"
	SlotSelected  SlotStatus = "selected"
	SlotAvailable SlotStatus = "available"
)

// TimeSlot is one hour of the canonical 24-slot day. Date-agnostic; a
// concrete date is bound by the caller at classification time.
type TimeSlot struct {
	ID      int     `json:"id"` // hour of day, 0-23
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Segment Segment `json:"segment"`
}

// ClassifiedSlot is a TimeSlot with its status for a concrete quarter-date.
type ClassifiedSlot struct {
	TimeSlot
	Status SlotStatus `json:"status"`
}
