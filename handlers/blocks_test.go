package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"crickbox/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlockedRepo struct {
	mu     sync.Mutex
	blocks []*models.Blocked
}

func (s *stubBlockedRepo) Create(ctx context.Context, b *models.Blocked) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks = append(s.blocks, b)
	return nil
}

func (s *stubBlockedRepo) Delete(ctx context.Context, venueID, blockID string) (*models.Blocked, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.blocks {
		if b.BlockID == blockID && b.VenueID == venueID {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return b, nil
		}
	}
	return nil, fmt.Errorf("block %s not found for venue %s", blockID, venueID)
}

func (s *stubBlockedRepo) BlockedGroups(ctx context.Context, venueID, date string) ([]models.BlockedGroup, error) {
	return nil, nil
}

type stubVenueRepo struct {
	venue models.Venue
}

func (s *stubVenueRepo) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	if venueID != s.venue.ID {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	return &s.venue, nil
}

func (s *stubVenueRepo) GetQuarter(ctx context.Context, venueID, quarterID string) (*models.Quarter, error) {
	v, err := s.GetVenue(ctx, venueID)
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

type stubHub struct {
	mu     sync.Mutex
	events []string
}

func (s *stubHub) Publish(ctx context.Context, venueID, event string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, venueID+":"+event)
	return nil
}

func newBlockRouter(repo *stubBlockedRepo, hub *stubHub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	venues := &stubVenueRepo{venue: models.Venue{
		ID:       "v1",
		Quarters: []models.Quarter{{ID: "q1", Name: "Quarter A", HourlyRate: 800}},
	}}
	handler := NewBlockHandler(repo, venues, hub)

	r := gin.New()
	r.DELETE("/api/venues/:venueID/blocks/:blockID", handler.DeleteBlock)
	return r
}

func TestDeleteBlockScopedToVenue(t *testing.T) {
	repo := &stubBlockedRepo{blocks: []*models.Blocked{{
		BlockID:   "blk-1",
		VenueID:   "v1",
		QuarterID: "q1",
		Date:      "2026-09-01",
	}}}
	hub := &stubHub{}
	router := newBlockRouter(repo, hub)

	t.Run("another venue's URL cannot remove the block", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/venues/v2/blocks/blk-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, hub.events, "no event may reach any channel")
		require.Len(t, repo.blocks, 1, "block must survive")
	})

	t.Run("owning venue removes the block and invalidates its channel", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/venues/v1/blocks/blk-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"v1:slot-unblocked"}, hub.events)
		assert.Empty(t, repo.blocks)
	})
}
