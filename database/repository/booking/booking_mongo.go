package bookingRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"crickbox/database"
	"crickbox/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo is the MongoDB-backed booking repository.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	blockColl   *mongo.Collection
}

func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.DB()
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		blockColl:   db.Collection("blocks"),
	}
}

// CreateHold inserts a booking after re-checking, inside a transaction, that
// no blocking booking (confirmed and paid-or-offline) and no block overlaps
// the requested interval. Unpaid online holds do not block each other; the
// first to pay wins and the expiry worker reaps the rest.
func (repo *MongoBookingRepo) CreateHold(ctx context.Context, b *models.Booking) error {
	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"quarter_id": b.QuarterID,
			"status":     models.BookingConfirmed,
			"$or": bson.A{
				bson.M{"payment_status": models.PaymentPaid},
				bson.M{"is_offline": true},
			},
			"start_date_time": bson.M{"$lt": b.EndDateTime},
			"end_date_time":   bson.M{"$gt": b.StartDateTime},
		}
		n, err := repo.bookingColl.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotConflict
		}

		blocks, err := repo.candidateBlocks(sc, b.QuarterID, b.Date)
		if err != nil {
			return fmt.Errorf("block re-check failed: %w", err)
		}
		for _, blk := range blocks {
			end := blk.EndDateTime
			if !end.After(blk.StartDateTime) {
				end = end.Add(24 * time.Hour) // midnight wrap
			}
			if blk.StartDateTime.Before(b.EndDateTime) && end.After(b.StartDateTime) {
				return ErrSlotConflict
			}
		}

		if _, err := repo.bookingColl.InsertOne(sc, b); err != nil {
			return fmt.Errorf("insert hold failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}

// candidateBlocks fetches blocks that could shade the given date, including
// previous-day blocks that wrap past midnight.
func (repo *MongoBookingRepo) candidateBlocks(ctx context.Context, quarterID, date string) ([]models.Blocked, error) {
	dates := bson.A{date}
	if day, err := time.ParseInLocation("2006-01-02", date, time.UTC); err == nil {
		dates = append(dates, day.AddDate(0, 0, -1).Format("2006-01-02"))
	}
	cursor, err := repo.blockColl.Find(ctx, bson.M{
		"quarter_id": quarterID,
		"date":       bson.M{"$in": dates},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.Blocked
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, fmt.Errorf("booking %s not found: %w", id, err)
	}
	return &b, nil
}

func (repo *MongoBookingRepo) MarkPaid(ctx context.Context, id string) (*models.Booking, error) {
	after := options.After
	res := repo.bookingColl.FindOneAndUpdate(ctx,
		bson.M{"id": id, "status": models.BookingConfirmed},
		bson.M{"$set": bson.M{"payment_status": models.PaymentPaid}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	)
	var b models.Booking
	if err := res.Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	return &b, nil
}

// CancelStaleHolds cancels online holds still unpaid past the expiry window.
func (repo *MongoBookingRepo) CancelStaleHolds(ctx context.Context, before time.Time) (int64, error) {
	res, err := repo.bookingColl.UpdateMany(ctx,
		bson.M{
			"status":         models.BookingConfirmed,
			"payment_status": models.PaymentPending,
			"is_offline":     false,
			"created_at":     bson.M{"$lt": before},
		},
		bson.M{"$set": bson.M{"status": models.BookingCancelled}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale holds: %w", err)
	}
	return res.ModifiedCount, nil
}

// BookedGroups returns all non-cancelled bookings for a venue-date grouped
// by quarter, the wholesale snapshot shape the resolver consumes.
func (repo *MongoBookingRepo) BookedGroups(ctx context.Context, venueID, date string) ([]models.BookedGroup, error) {
	cursor, err := repo.bookingColl.Find(ctx, bson.M{
		"venue_id": venueID,
		"date":     date,
		"status":   bson.M{"$ne": models.BookingCancelled},
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot query failed for venue %s: %w", venueID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("snapshot decode failed: %w", err)
	}

	byQuarter := make(map[string]*models.BookedGroup)
	for _, b := range bookings {
		group, ok := byQuarter[b.QuarterID]
		if !ok {
			group = &models.BookedGroup{QuarterID: b.QuarterID, QuarterName: b.QuarterName}
			byQuarter[b.QuarterID] = group
		}
		group.Slots = append(group.Slots, b.Snapshot())
	}

	groups := make([]models.BookedGroup, 0, len(byQuarter))
	for _, g := range byQuarter {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].QuarterID < groups[j].QuarterID })
	return groups, nil
}
