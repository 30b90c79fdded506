package booking

import (
	"testing"

	"crickbox/models"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	quarter := models.Quarter{
		ID:          "q1",
		Name:        "Quarter A",
		HourlyRate:  800,
		WeekendRate: 1000,
		DurationRates: []models.DurationRate{
			{Duration: 3, Price: 2000},
		},
	}

	// 2026-09-01 is a Tuesday, 2026-09-05 a Saturday
	t.Run("weekday uses hourly rate", func(t *testing.T) {
		assert.Equal(t, 1600.0, Quote(quarter, "2026-09-01", 2))
	})

	t.Run("weekend uses weekend rate", func(t *testing.T) {
		assert.Equal(t, 2000.0, Quote(quarter, "2026-09-05", 2))
	})

	t.Run("exact duration override wins even on weekends", func(t *testing.T) {
		assert.Equal(t, 2000.0, Quote(quarter, "2026-09-01", 3))
		assert.Equal(t, 2000.0, Quote(quarter, "2026-09-05", 3))
	})

	t.Run("no weekend rate falls back to hourly", func(t *testing.T) {
		plain := models.Quarter{ID: "q2", HourlyRate: 500}
		assert.Equal(t, 1000.0, Quote(plain, "2026-09-05", 2))
	})

	t.Run("zero duration prices at zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Quote(quarter, "2026-09-01", 0))
	})
}
