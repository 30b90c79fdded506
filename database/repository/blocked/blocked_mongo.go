package blockedRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"crickbox/database"
	"crickbox/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBlockedRepo is the MongoDB-backed block repository.
type MongoBlockedRepo struct {
	coll *mongo.Collection
}

func NewMongoBlockedRepo() *MongoBlockedRepo {
	return &MongoBlockedRepo{coll: database.DB().Collection("blocks")}
}

func (repo *MongoBlockedRepo) Create(ctx context.Context, b *models.Blocked) error {
	if _, err := repo.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}
	return nil
}

// Delete removes a block, scoped to its venue so a block cannot be removed
// through another venue's URL.
func (repo *MongoBlockedRepo) Delete(ctx context.Context, venueID, blockID string) (*models.Blocked, error) {
	res := repo.coll.FindOneAndDelete(ctx, bson.M{"block_id": blockID, "venue_id": venueID})
	var b models.Blocked
	if err := res.Decode(&b); err != nil {
		return nil, fmt.Errorf("block %s not found for venue %s: %w", blockID, venueID, err)
	}
	return &b, nil
}

// BlockedGroups returns blocks for a venue-date grouped by quarter. Blocks
// recorded on the previous day are included so midnight-wrapping intervals
// shade the morning of the requested date.
func (repo *MongoBlockedRepo) BlockedGroups(ctx context.Context, venueID, date string) ([]models.BlockedGroup, error) {
	dates := bson.A{date}
	if day, err := time.ParseInLocation("2006-01-02", date, time.UTC); err == nil {
		dates = append(dates, day.AddDate(0, 0, -1).Format("2006-01-02"))
	}
	cursor, err := repo.coll.Find(ctx, bson.M{
		"venue_id": venueID,
		"date":     bson.M{"$in": dates},
	})
	if err != nil {
		return nil, fmt.Errorf("block snapshot query failed for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.Blocked
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("block snapshot decode failed: %w", err)
	}

	byQuarter := make(map[string]*models.BlockedGroup)
	for _, b := range blocks {
		group, ok := byQuarter[b.QuarterID]
		if !ok {
			group = &models.BlockedGroup{QuarterID: b.QuarterID, QuarterName: b.QuarterName}
			byQuarter[b.QuarterID] = group
		}
		group.Slots = append(group.Slots, models.BlockedSlot{
			BlockID:       b.BlockID,
			StartDateTime: b.StartDateTime,
			EndDateTime:   b.EndDateTime,
			Reason:        b.Reason,
		})
	}

	groups := make([]models.BlockedGroup, 0, len(byQuarter))
	for _, g := range byQuarter {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].QuarterID < groups[j].QuarterID })
	return groups, nil
}
