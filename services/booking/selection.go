package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	blockedRepo "crickbox/database/repository/blocked"
	bookingRepo "crickbox/database/repository/booking"
	venueRepo "crickbox/database/repository/venue"
	"crickbox/models"
	"crickbox/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApplyToggle applies the selection toggle rule to a sorted contiguous run.
// The rule alone guarantees contiguity, no separate validation pass exists:
//   - id already in the run: remove it (possibly back to empty);
//   - empty run: start a new run {id};
//   - id adjacent to either end: extend the run;
//   - anything else: restart the run as {id}.
func ApplyToggle(run []int, id int) []int {
	for i, v := range run {
		if v == id {
			next := make([]int, 0, len(run)-1)
			next = append(next, run[:i]...)
			return append(next, run[i+1:]...)
		}
	}
	if len(run) == 0 {
		return []int{id}
	}
	first, last := run[0], run[len(run)-1]
	switch id {
	case first - 1:
		return append([]int{id}, run...)
	case last + 1:
		next := make([]int, 0, len(run)+1)
		next = append(next, run...)
		return append(next, id)
	default:
		return []int{id}
	}
}

// DefaultSelectionService keeps selection sessions in Redis, one JSON
// document per session, replaced wholesale on every mutation.
type DefaultSelectionService struct {
	Cache       *redis.Client
	VenueRepo   venueRepo.VenueRepository
	BookingRepo bookingRepo.BookingRepository
	BlockedRepo blockedRepo.BlockedRepository
	TTL         time.Duration
	Now         func() time.Time
}

func (s *DefaultSelectionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultSelectionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 30 * time.Minute
}

func sessionKey(id string) string { return "selection:" + id }

// Start creates a fresh empty session for a quarter-date. A date or quarter
// change always starts over; selections never migrate.
func (s *DefaultSelectionService) Start(ctx context.Context, venueID, quarterID, date string) (*models.SelectionSession, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, time.UTC); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q", date))
	}
	if _, err := s.VenueRepo.GetQuarter(ctx, venueID, quarterID); err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown quarter: %v", err))
	}

	session := &models.SelectionSession{
		SessionID: uuid.New().String(),
		VenueID:   venueID,
		QuarterID: quarterID,
		Date:      date,
		Slots:     []int{},
		CreatedAt: s.now(),
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Toggle classifies the slot against a fresh snapshot and applies the
// toggle rule. Toggling a disabled slot (booked, blocked or past) is a
// no-op and returns the session unchanged. Every successful toggle
// recomputes the price.
func (s *DefaultSelectionService) Toggle(ctx context.Context, sessionID string, slotID int) (*models.SelectionSession, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	booked, err := s.BookingRepo.BookedGroups(ctx, session.VenueID, session.Date)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to fetch booking snapshot: %v", err))
	}
	blocked, err := s.BlockedRepo.BlockedGroups(ctx, session.VenueID, session.Date)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to fetch block snapshot: %v", err))
	}

	status, err := Classify(slotID, session.Date, session.QuarterID, booked, blocked, session.Slots, s.now())
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	if !Selectable(status) {
		utils.GetLogger().Debug("toggle ignored for disabled slot",
			zap.String("sessionID", sessionID), zap.Int("slot", slotID), zap.String("status", string(status)))
		return session, nil
	}

	session.Slots = ApplyToggle(session.Slots, slotID)

	quarter, err := s.VenueRepo.GetQuarter(ctx, session.VenueID, session.QuarterID)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to load quarter rates: %v", err))
	}
	session.Price = Quote(*quarter, session.Date, len(session.Slots))

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSelectionService) Get(ctx context.Context, sessionID string) (*models.SelectionSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, NewValidationError("selection session not found or expired")
	}
	var session models.SelectionSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse selection session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *DefaultSelectionService) Clear(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *DefaultSelectionService) save(ctx context.Context, session *models.SelectionSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal selection session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store selection session: %w", err)
	}
	return nil
}
