package models

// DurationRate is a fixed price for an exact booking length, overriding the
// hourly calculation when the duration matches.
type DurationRate struct {
	Duration int     `bson:"duration" json:"duration"` // hours
	Price    float64 `bson:"price" json:"price"`
}

// Quarter is an independently-scheduled bookable sub-unit of a venue with
// its own slot timeline and rates.
type Quarter struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	HourlyRate    float64        `bson:"hourly_rate" json:"hourlyRate"`
	WeekendRate   float64        `bson:"weekend_rate,omitempty" json:"weekendRate,omitempty"`
	DurationRates []DurationRate `bson:"duration_rates,omitempty" json:"durationRates,omitempty"`
}

// Venue is the top-level bookable entity (a cricket box).
type Venue struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Address  string    `bson:"address,omitempty" json:"address,omitempty"`
	Quarters []Quarter `bson:"quarters" json:"quarters"`
}
