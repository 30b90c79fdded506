package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crickbox/config"
	bookingRepo "crickbox/database/repository/booking"
	"crickbox/services/notification"
	"crickbox/services/tasks"

	"github.com/hibiken/asynq"
)

// InitBookingWorker runs the async worker in background: it dispatches
// booking confirmation messages and periodically reaps stale unpaid holds.
func InitBookingWorker(notifSvc notification.NotificationService, repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotify, handleBookingNotify(notifSvc))
	mux.HandleFunc(tasks.TypeExpireHolds, handleExpireHolds(repo))

	client := asynq.NewClient(redisOpts)
	go scheduleHoldExpiry(client)

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingNotify(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BookingNotify] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[BookingNotify] 📨 Sending confirmation for booking %s → %s", p.Booking.ID, p.Booking.ContactNumber)
		return notifSvc.SendBookingConfirmation(ctx, p.Booking)
	}
}

// handleExpireHolds cancels online holds that never completed payment so
// their slots return to the availability pool.
func handleExpireHolds(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().UTC().Add(-time.Duration(config.AppConfig.HoldExpiryMin) * time.Minute)
		cancelled, err := repo.CancelStaleHolds(ctx, cutoff)
		if err != nil {
			log.Printf("[ExpireHolds] 🔴 Failed to cancel stale holds: %v", err)
			return err
		}
		if cancelled > 0 {
			log.Printf("[ExpireHolds] ♻️ Cancelled %d stale unpaid holds", cancelled)
		}
		return nil
	}
}

type expiryEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

func scheduleHoldExpiry(client *asynq.Client) {
	runHoldExpiryLoop(client, 5*time.Minute, nil)
}

// runHoldExpiryLoop sweeps immediately, then on every tick. The immediate
// sweep catches holds that went stale while the process was down.
func runHoldExpiryLoop(e expiryEnqueuer, interval time.Duration, stop <-chan struct{}) {
	sweep := func() {
		if _, err := e.Enqueue(tasks.NewExpireHoldsTask()); err != nil {
			log.Printf("[ExpireHolds] ❌ Failed to enqueue expiry sweep: %v", err)
		}
	}
	sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sweep()
		case <-stop:
			return
		}
	}
}
