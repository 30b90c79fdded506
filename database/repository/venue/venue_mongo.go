package venueRepo

import (
	"context"
	"fmt"

	"crickbox/database"
	"crickbox/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// VenueRepository reads venue and quarter data. Venue CRUD itself lives
// outside the engine; only the reads the resolver and pricing need.
type VenueRepository interface {
	GetVenue(ctx context.Context, venueID string) (*models.Venue, error)
	GetQuarter(ctx context.Context, venueID, quarterID string) (*models.Quarter, error)
}

// MongoVenueRepo is the MongoDB-backed venue repository.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

func NewMongoVenueRepo() *MongoVenueRepo {
	return &MongoVenueRepo{coll: database.DB().Collection("venues")}
}

func (repo *MongoVenueRepo) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	var v models.Venue
	if err := repo.coll.FindOne(ctx, bson.M{"id": venueID}).Decode(&v); err != nil {
		return nil, fmt.Errorf("venue %s not found: %w", venueID, err)
	}
	return &v, nil
}

func (repo *MongoVenueRepo) GetQuarter(ctx context.Context, venueID, quarterID string) (*models.Quarter, error) {
	v, err := repo.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	for i := range v.Quarters {
		if v.Quarters[i].ID == quarterID {
			return &v.Quarters[i], nil
		}
	}
	return nil, fmt.Errorf("quarter %s not found in venue %s", quarterID, venueID)
}
