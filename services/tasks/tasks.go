package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"crickbox/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingNotify = "booking:notify"
	TypeExpireHolds   = "holds:expire"
)

// BookingNotifyPayload is the task body for a confirmation message.
type BookingNotifyPayload struct {
	Booking models.Booking `json:"booking"`
}

func NewBookingNotifyTask(b models.Booking) (*asynq.Task, error) {
	payload, err := json.Marshal(BookingNotifyPayload{Booking: b})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notify payload: %w", err)
	}
	return asynq.NewTask(TypeBookingNotify, payload), nil
}

func NewExpireHoldsTask() *asynq.Task {
	return asynq.NewTask(TypeExpireHolds, nil)
}

// Queue enqueues deferred work onto the asynq backend.
type Queue struct {
	Client *asynq.Client
}

func NewQueue(client *asynq.Client) *Queue {
	return &Queue{Client: client}
}

func (q *Queue) EnqueueBookingNotice(ctx context.Context, b models.Booking) error {
	task, err := NewBookingNotifyTask(b)
	if err != nil {
		return err
	}
	if _, err := q.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue booking notice: %w", err)
	}
	return nil
}
