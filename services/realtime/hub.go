package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Venue channel events. Events are invalidation signals only; subscribers
// re-fetch the full snapshot rather than patching local state.
const (
	EventNewBooking    = "new-booking"
	EventSlotBlocked   = "slot-blocked"
	EventSlotUnblocked = "slot-unblocked"
)

// Event is the envelope published on a venue channel.
type Event struct {
	Venue string `json:"venue"`
	Name  string `json:"name"`
}

// ChannelFor returns the pub/sub channel name for a venue.
func ChannelFor(venueID string) string {
	return "venue-" + venueID
}

// Hub fans venue events out to subscribers. Subscribe returns the event
// stream plus a leave function that must be called to release the
// subscription.
type Hub interface {
	Publish(ctx context.Context, venueID, event string) error
	Subscribe(ctx context.Context, venueID string) (<-chan Event, func(), error)
}

// RedisHub implements Hub over Redis pub/sub so events reach every server
// instance, not just the one that handled the mutation.
type RedisHub struct {
	Client *redis.Client
	Logger *zap.Logger
}

func NewRedisHub(client *redis.Client, logger *zap.Logger) *RedisHub {
	return &RedisHub{Client: client, Logger: logger}
}

func (h *RedisHub) Publish(ctx context.Context, venueID, event string) error {
	payload, err := json.Marshal(Event{Venue: venueID, Name: event})
	if err != nil {
		return fmt.Errorf("failed to marshal venue event: %w", err)
	}
	if err := h.Client.Publish(ctx, ChannelFor(venueID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", ChannelFor(venueID), err)
	}
	return nil
}

func (h *RedisHub) Subscribe(ctx context.Context, venueID string) (<-chan Event, func(), error) {
	sub := h.Client.Subscribe(ctx, ChannelFor(venueID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", ChannelFor(venueID), err)
	}

	out := make(chan Event, 8)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				h.Logger.Warn("dropping malformed venue event",
					zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			select {
			case out <- ev:
			default:
				// events carry no payload beyond their name, so a slow
				// subscriber can safely miss one; the next snapshot fetch
				// catches it up
				h.Logger.Debug("subscriber lagging, event dropped",
					zap.String("venueID", venueID), zap.String("event", ev.Name))
			}
		}
	}()

	leave := func() {
		if err := sub.Close(); err != nil {
			h.Logger.Warn("failed to close venue subscription",
				zap.String("venueID", venueID), zap.Error(err))
		}
	}
	return out, leave, nil
}
