package booking

import (
	"time"

	"crickbox/models"
)

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// blockInterval returns a block's interval with midnight wrap normalized:
// when the stored end is not after the start, the block runs into the next
// day and 24h is added before testing.
func blockInterval(b models.BlockedSlot) Interval {
	end := b.EndDateTime
	if !end.After(b.StartDateTime) {
		end = end.Add(24 * time.Hour)
	}
	return Interval{Start: b.StartDateTime, End: end}
}

// Classify derives the status of one slot for a concrete quarter-date from
// the booking/block snapshot and the current time. Precedence when several
// conditions hold: Booked/Blocked > Past > Selected > Available, so a past
// slot that was booked still reads as booked.
func Classify(
	slotID int,
	date string,
	quarterID string,
	booked []models.BookedGroup,
	blocked []models.BlockedGroup,
	selected []int,
	now time.Time,
) (models.SlotStatus, error) {
	start, end, err := SlotInterval(date, slotID)
	if err != nil {
		return "", err
	}
	slot := Interval{Start: start, End: end}

	for _, group := range booked {
		if group.QuarterID != quarterID {
			continue
		}
		for _, entry := range group.Slots {
			if !entry.Blocking() {
				continue
			}
			if Overlaps(slot, Interval{Start: entry.StartDateTime, End: entry.EndDateTime}) {
				return models.SlotBooked, nil
			}
		}
	}

	for _, group := range blocked {
		if group.QuarterID != quarterID {
			continue
		}
		for _, entry := range group.Slots {
			if Overlaps(slot, blockInterval(entry)) {
				return models.SlotBlocked, nil
			}
		}
	}

	if start.Before(now) {
		return models.SlotPast, nil
	}

	for _, id := range selected {
		if id == slotID {
			return models.SlotSelected, nil
		}
	}

	return models.SlotAvailable, nil
}

// DayAvailability classifies the full 24-slot grid for a quarter-date.
func DayAvailability(
	date string,
	quarterID string,
	booked []models.BookedGroup,
	blocked []models.BlockedGroup,
	selected []int,
	now time.Time,
) ([]models.ClassifiedSlot, error) {
	slots := DaySlots()
	out := make([]models.ClassifiedSlot, 0, len(slots))
	for _, ts := range slots {
		status, err := Classify(ts.ID, date, quarterID, booked, blocked, selected, now)
		if err != nil {
			return nil, err
		}
		out = append(out, models.ClassifiedSlot{TimeSlot: ts, Status: status})
	}
	return out, nil
}

// Selectable reports whether a slot may be toggled into a selection.
func Selectable(status models.SlotStatus) bool {
	return status == models.SlotAvailable || status == models.SlotSelected
}
