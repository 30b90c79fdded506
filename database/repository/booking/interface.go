package bookingRepo

import (
	"context"
	"errors"
	"time"

	"crickbox/models"
)

// ErrSlotConflict is returned when a hold cannot be created because the
// interval is already taken by a blocking booking or a block.
var ErrSlotConflict = errors.New("selected slots are no longer available")

// BookingRepository persists booking records. CreateHold is the single
// authority for conflict arbitration: client-side classification is advisory
// only and is re-checked here inside a transaction.
type BookingRepository interface {
	CreateHold(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id string) (*models.Booking, error)
	CancelStaleHolds(ctx context.Context, before time.Time) (int64, error)
	BookedGroups(ctx context.Context, venueID, date string) ([]models.BookedGroup, error)
}
