package blockedRepo

import (
	"context"

	"crickbox/models"
)

// BlockedRepository persists manual block intervals.
type BlockedRepository interface {
	Create(ctx context.Context, b *models.Blocked) error
	Delete(ctx context.Context, venueID, blockID string) (*models.Blocked, error)
	BlockedGroups(ctx context.Context, venueID, date string) ([]models.BlockedGroup, error)
}
