package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"crickbox/models"
)

type fakeVenueRepo struct {
	venue models.Venue
}

func (f *fakeVenueRepo) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	if venueID != f.venue.ID {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	return &f.venue, nil
}

func (f *fakeVenueRepo) GetQuarter(ctx context.Context, venueID, quarterID string) (*models.Quarter, error) {
	v, err := f.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	for i := range v.Quarters {
		if v.Quarters[i].ID == quarterID {
			return &v.Quarters[i], nil
		}
	}
	return nil, fmt.Errorf("quarter %s not found", quarterID)
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	booked   []models.BookedGroup
	holds    []*models.Booking
	holdErr  error
	barrier  chan struct{} // when set, CreateHold blocks until closed
	created  int
	markPaid []string
}

func (f *fakeBookingRepo) CreateHold(ctx context.Context, b *models.Booking) error {
	if f.barrier != nil {
		<-f.barrier
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	if f.holdErr != nil {
		return f.holdErr
	}
	f.holds = append(f.holds, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.holds {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", id)
}

func (f *fakeBookingRepo) MarkPaid(ctx context.Context, id string) (*models.Booking, error) {
	b, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	b.PaymentStatus = models.PaymentPaid
	f.markPaid = append(f.markPaid, id)
	return b, nil
}

func (f *fakeBookingRepo) CancelStaleHolds(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepo) BookedGroups(ctx context.Context, venueID, date string) ([]models.BookedGroup, error) {
	return f.booked, nil
}

type fakeBlockedRepo struct {
	blocked []models.BlockedGroup
}

func (f *fakeBlockedRepo) Create(ctx context.Context, b *models.Blocked) error { return nil }

func (f *fakeBlockedRepo) Delete(ctx context.Context, venueID, blockID string) (*models.Blocked, error) {
	return nil, fmt.Errorf("block %s not found for venue %s", blockID, venueID)
}

func (f *fakeBlockedRepo) BlockedGroups(ctx context.Context, venueID, date string) ([]models.BlockedGroup, error) {
	return f.blocked, nil
}

type fakeSelectionService struct {
	mu      sync.Mutex
	cleared []string
}

func (f *fakeSelectionService) Start(ctx context.Context, venueID, quarterID, date string) (*models.SelectionSession, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeSelectionService) Toggle(ctx context.Context, sessionID string, slotID int) (*models.SelectionSession, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeSelectionService) Get(ctx context.Context, sessionID string) (*models.SelectionSession, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeSelectionService) Clear(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, sessionID)
	return nil
}

type fakeGateway struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeGateway) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.HandoffPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.HandoffPayload{
		SPURL:      "https://pay.example.com/submit",
		EncData:    "sealed",
		ClientCode: "CB001",
		BookingID:  req.BookingID,
	}, nil
}

type fakeHub struct {
	mu     sync.Mutex
	events []string
}

func (f *fakeHub) Publish(ctx context.Context, venueID, event string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, venueID+":"+event)
	return nil
}

type fakeQueue struct {
	mu      sync.Mutex
	notices []string
}

func (f *fakeQueue) EnqueueBookingNotice(ctx context.Context, b models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, b.ID)
	return nil
}
