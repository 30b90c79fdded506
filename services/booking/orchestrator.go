package booking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	bookingRepo "crickbox/database/repository/booking"
	venueRepo "crickbox/database/repository/venue"
	"crickbox/models"
	"crickbox/services/realtime"
	"crickbox/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var contactPattern = regexp.MustCompile(`^\d{10}$`)

// SubmitRequest carries a finalized selection into the two-phase flow.
type SubmitRequest struct {
	SessionID     string `json:"sessionId,omitempty"`
	VenueID       string `json:"venueId"`
	QuarterID     string `json:"quarterId"`
	Date          string `json:"date"`
	Slots         []int  `json:"slots"`
	ContactNumber string `json:"contactNumber"`
	IsOffline     bool   `json:"isOffline"`
}

// SubmitResult is the outcome of a successful submission. Handoff is set
// only for online holds.
type SubmitResult struct {
	Booking *models.Booking        `json:"booking"`
	Handoff *models.HandoffPayload `json:"handoff,omitempty"`
}

// DefaultBookingOrchestrator implements the hold-then-pay flow: validate,
// create the hold transactionally, then either initiate payment (online) or
// confirm immediately (offline walk-ins).
type DefaultBookingOrchestrator struct {
	Repo      bookingRepo.BookingRepository
	VenueRepo venueRepo.VenueRepository
	Selection SelectionService
	Gateway   PaymentGateway
	Hub       EventPublisher
	Queue     TaskQueue
	Now       func() time.Time

	inflight sync.Map // guard against duplicate submits per selection
}

func (o *DefaultBookingOrchestrator) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

func (req SubmitRequest) validate() error {
	if req.QuarterID == "" {
		return NewValidationError("please select a quarter before booking")
	}
	if len(req.Slots) == 0 {
		return NewValidationError("please select at least one slot")
	}
	if !isContiguousRun(req.Slots) {
		return NewValidationError("selected slots must form a single contiguous run")
	}
	if !contactPattern.MatchString(req.ContactNumber) {
		return NewValidationError("contact number must be exactly 10 digits")
	}
	if _, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC); err != nil {
		return NewValidationError(fmt.Sprintf("invalid booking date %q", req.Date))
	}
	return nil
}

func isContiguousRun(ids []int) bool {
	for i, id := range ids {
		if id < 0 || id > 23 {
			return false
		}
		if i > 0 && id != ids[i-1]+1 {
			return false
		}
	}
	return true
}

// Submit runs the two-phase flow. All preconditions are checked before any
// repository or gateway call. No rollback is attempted on failure after the
// hold exists; orphaned unpaid holds are reaped by the expiry worker.
func (o *DefaultBookingOrchestrator) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	logger := utils.GetLogger()

	if err := req.validate(); err != nil {
		return nil, err
	}

	guardKey := req.SessionID
	if guardKey == "" {
		guardKey = fmt.Sprintf("%s|%s|%s|%s", req.VenueID, req.QuarterID, req.Date, req.ContactNumber)
	}
	if _, busy := o.inflight.LoadOrStore(guardKey, struct{}{}); busy {
		return nil, NewValidationError("a submission for this selection is already in progress")
	}
	defer o.inflight.Delete(guardKey)

	quarter, err := o.VenueRepo.GetQuarter(ctx, req.VenueID, req.QuarterID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown quarter: %v", err))
	}

	start, _, err := SlotInterval(req.Date, req.Slots[0])
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	now := o.now()
	if start.Before(now) {
		return nil, NewValidationError("the selected slots have already started")
	}

	duration := len(req.Slots)
	booking := &models.Booking{
		ID:            uuid.New().String(),
		VenueID:       req.VenueID,
		QuarterID:     req.QuarterID,
		QuarterName:   quarter.Name,
		Date:          req.Date,
		StartDateTime: start,
		EndDateTime:   start.Add(time.Duration(duration) * time.Hour),
		Duration:      duration,
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPending,
		IsOffline:     req.IsOffline,
		ContactNumber: req.ContactNumber,
		Amount:        Quote(*quarter, req.Date, duration),
		CreatedAt:     now,
	}
	if req.IsOffline {
		// walk-in path: settled at the venue, no gateway round-trip
		booking.PaymentStatus = models.PaymentPaid
	}

	if err := o.Repo.CreateHold(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotConflict) {
			return nil, NewConflictError(err.Error())
		}
		return nil, NewNetworkError(fmt.Sprintf("failed to create hold: %v", err))
	}
	logger.Info("hold created",
		zap.String("bookingID", booking.ID),
		zap.String("quarterID", booking.QuarterID),
		zap.Bool("offline", booking.IsOffline))

	if req.IsOffline {
		o.clearSelection(ctx, req.SessionID)
		o.publish(ctx, req.VenueID, realtime.EventNewBooking)
		o.enqueueNotice(ctx, *booking)
		return &SubmitResult{Booking: booking}, nil
	}

	payload, err := o.Gateway.InitiatePayment(ctx, models.PaymentRequest{
		BookingID:     booking.ID,
		Amount:        booking.Amount,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		return nil, err
	}
	o.clearSelection(ctx, req.SessionID)
	return &SubmitResult{Booking: booking, Handoff: payload}, nil
}

// InitiatePayment re-issues handoff material for an existing unpaid online
// hold, the retry flow after a gateway failure.
func (o *DefaultBookingOrchestrator) InitiatePayment(ctx context.Context, bookingID string) (*models.HandoffPayload, error) {
	b, err := o.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("booking not found: %v", err))
	}
	if b.IsOffline {
		return nil, NewValidationError("offline bookings have no payment step")
	}
	if b.Status != models.BookingConfirmed || b.PaymentStatus == models.PaymentPaid {
		return nil, NewValidationError("booking is not awaiting payment")
	}
	return o.Gateway.InitiatePayment(ctx, models.PaymentRequest{
		BookingID:     b.ID,
		Amount:        b.Amount,
		ContactNumber: b.ContactNumber,
	})
}

// ConfirmPayment handles the gateway return. On success the hold becomes a
// blocking booking and the venue channel is invalidated; on failure the
// hold stays pending so the user can follow the retry flow with the same
// booking id.
func (o *DefaultBookingOrchestrator) ConfirmPayment(ctx context.Context, bookingID string, success bool) (*models.Booking, error) {
	if !success {
		b, err := o.Repo.GetByID(ctx, bookingID)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("booking not found: %v", err))
		}
		utils.GetLogger().Warn("payment failed at gateway", zap.String("bookingID", bookingID))
		return b, nil
	}

	b, err := o.Repo.MarkPaid(ctx, bookingID)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to record payment: %v", err))
	}
	o.publish(ctx, b.VenueID, realtime.EventNewBooking)
	o.enqueueNotice(ctx, *b)
	return b, nil
}

func (o *DefaultBookingOrchestrator) clearSelection(ctx context.Context, sessionID string) {
	if sessionID == "" || o.Selection == nil {
		return
	}
	if err := o.Selection.Clear(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to clear selection session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func (o *DefaultBookingOrchestrator) publish(ctx context.Context, venueID, event string) {
	if o.Hub == nil {
		return
	}
	if err := o.Hub.Publish(ctx, venueID, event); err != nil {
		utils.GetLogger().Warn("failed to publish venue event",
			zap.String("venueID", venueID), zap.String("event", event), zap.Error(err))
	}
}

func (o *DefaultBookingOrchestrator) enqueueNotice(ctx context.Context, b models.Booking) {
	if o.Queue == nil {
		return
	}
	if err := o.Queue.EnqueueBookingNotice(ctx, b); err != nil {
		utils.GetLogger().Warn("failed to enqueue booking notice",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
