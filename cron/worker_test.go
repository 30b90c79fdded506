package cron

import (
	"testing"
	"time"

	"crickbox/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

type stubEnqueuer struct {
	types chan string
}

func (s *stubEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	s.types <- task.Type()
	return nil, nil
}

func TestHoldExpirySweepsImmediately(t *testing.T) {
	enq := &stubEnqueuer{types: make(chan string, 1)}
	stop := make(chan struct{})
	defer close(stop)

	// interval far beyond the test horizon: anything received came from the
	// startup sweep, not a tick
	go runHoldExpiryLoop(enq, time.Hour, stop)

	select {
	case typ := <-enq.types:
		assert.Equal(t, tasks.TypeExpireHolds, typ)
	case <-time.After(time.Second):
		t.Fatal("no expiry sweep enqueued on startup")
	}
}
