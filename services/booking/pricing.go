package booking

import (
	"time"

	"crickbox/models"
)

// Quote computes the price for booking `duration` contiguous hours of a
// quarter on `date`. An exact-duration override wins over the hourly
// calculation; otherwise weekend bookings use the weekend rate when one is
// configured.
func Quote(q models.Quarter, date string, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	for _, dr := range q.DurationRates {
		if dr.Duration == duration {
			return dr.Price
		}
	}
	rate := q.HourlyRate
	if isWeekend(date) && q.WeekendRate > 0 {
		rate = q.WeekendRate
	}
	return float64(duration) * rate
}

func isWeekend(date string) bool {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return false
	}
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
