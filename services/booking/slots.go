package booking

import (
	"fmt"
	"time"

	"crickbox/models"
)

// DaySlots builds the canonical 24 hourly slots of a day. The result is
// date-agnostic; callers bind a concrete date with SlotInterval.
func DaySlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, 24)
	for h := 0; h < 24; h++ {
		slots = append(slots, models.TimeSlot{
			ID:      h,
			Start:   fmt.Sprintf("%02d:00", h),
			End:     fmt.Sprintf("%02d:00", (h+1)%24),
			Segment: SegmentFor(h),
		})
	}
	return slots
}

// SegmentFor returns the display segment for an hour of the day.
func SegmentFor(hour int) models.Segment {
	switch {
	case hour >= 6 && hour < 12:
		return models.SegmentMorning
	case hour >= 12 && hour < 17:
		return models.SegmentAfternoon
	case hour >= 17 && hour < 21:
		return models.SegmentEvening
	case hour >= 21:
		return models.SegmentNight
	default:
		return models.SegmentEarly
	}
}

// SlotInterval binds slot id (hour 0-23) to a concrete date and returns its
// half-open [start, end) interval in UTC.
func SlotInterval(date string, id int) (time.Time, time.Time, error) {
	if id < 0 || id > 23 {
		return time.Time{}, time.Time{}, fmt.Errorf("slot id %d out of range", id)
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start := day.Add(time.Duration(id) * time.Hour)
	return start, start.Add(time.Hour), nil
}
