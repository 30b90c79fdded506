package booking

import (
	"math/rand"
	"testing"
	"time"

	"crickbox/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourUTC(date string, h int) time.Time {
	day, _ := time.ParseInLocation("2006-01-02", date, time.UTC)
	return day.Add(time.Duration(h) * time.Hour)
}

func TestOverlaps(t *testing.T) {
	a := Interval{Start: hourUTC("2026-09-01", 10), End: hourUTC("2026-09-01", 12)}

	t.Run("self overlap", func(t *testing.T) {
		assert.True(t, Overlaps(a, a))
	})

	t.Run("back to back intervals do not overlap", func(t *testing.T) {
		b := Interval{Start: hourUTC("2026-09-01", 12), End: hourUTC("2026-09-01", 14)}
		assert.False(t, Overlaps(a, b))
		assert.False(t, Overlaps(b, a))
	})

	t.Run("partial overlap is symmetric", func(t *testing.T) {
		b := Interval{Start: hourUTC("2026-09-01", 11), End: hourUTC("2026-09-01", 13)}
		assert.True(t, Overlaps(a, b))
		assert.True(t, Overlaps(b, a))
	})

	t.Run("symmetry holds for random intervals", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			s1, s2 := rng.Intn(48), rng.Intn(48)
			x := Interval{Start: hourUTC("2026-09-01", s1), End: hourUTC("2026-09-01", s1+1+rng.Intn(6))}
			y := Interval{Start: hourUTC("2026-09-01", s2), End: hourUTC("2026-09-01", s2+1+rng.Intn(6))}
			assert.Equal(t, Overlaps(x, y), Overlaps(y, x))
		}
	})
}

func TestClassify(t *testing.T) {
	const date = "2026-09-01"
	const quarter = "q1"
	now := hourUTC(date, 8)

	paidBooking := models.BookedGroup{
		QuarterID: quarter,
		Slots: []models.BookedSlot{{
			BookingID:     "b1",
			StartDateTime: hourUTC(date, 10),
			EndDateTime:   hourUTC(date, 12),
			Status:        models.BookingConfirmed,
			PaymentStatus: models.PaymentPaid,
		}},
	}

	t.Run("booking from 10 to 12 marks slots 10 and 11 booked", func(t *testing.T) {
		for _, id := range []int{10, 11} {
			status, err := Classify(id, date, quarter, []models.BookedGroup{paidBooking}, nil, nil, now)
			require.NoError(t, err)
			assert.Equal(t, models.SlotBooked, status, "slot %d", id)
		}
		status, err := Classify(12, date, quarter, []models.BookedGroup{paidBooking}, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotAvailable, status, "slot 12 starts where the booking ends")
	})

	t.Run("unpaid online hold does not block", func(t *testing.T) {
		pending := paidBooking
		pending.Slots = []models.BookedSlot{{
			BookingID:     "b2",
			StartDateTime: hourUTC(date, 10),
			EndDateTime:   hourUTC(date, 12),
			Status:        models.BookingConfirmed,
			PaymentStatus: models.PaymentPending,
		}}
		status, err := Classify(10, date, quarter, []models.BookedGroup{pending}, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotAvailable, status)
	})

	t.Run("offline unpaid booking blocks", func(t *testing.T) {
		offline := paidBooking
		offline.Slots = []models.BookedSlot{{
			BookingID:     "b3",
			StartDateTime: hourUTC(date, 10),
			EndDateTime:   hourUTC(date, 12),
			Status:        models.BookingConfirmed,
			PaymentStatus: models.PaymentPending,
			IsOffline:     true,
		}}
		status, err := Classify(10, date, quarter, []models.BookedGroup{offline}, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotBooked, status)
	})

	t.Run("bookings in another quarter do not block", func(t *testing.T) {
		other := paidBooking
		other.QuarterID = "q2"
		status, err := Classify(10, date, quarter, []models.BookedGroup{other}, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotAvailable, status)
	})

	t.Run("booked wins over past", func(t *testing.T) {
		late := hourUTC(date, 15)
		status, err := Classify(10, date, quarter, []models.BookedGroup{paidBooking}, nil, nil, late)
		require.NoError(t, err)
		assert.Equal(t, models.SlotBooked, status)
	})

	t.Run("past slot without booking reads past", func(t *testing.T) {
		status, err := Classify(7, date, quarter, nil, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotPast, status)
	})

	t.Run("selected slot reads selected", func(t *testing.T) {
		status, err := Classify(14, date, quarter, nil, nil, []int{14, 15}, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotSelected, status)
	})
}

func TestClassifyMidnightWrapBlock(t *testing.T) {
	const quarter = "q1"
	// block recorded on 2026-09-01 from 22:00 to 02:00; the stored end is
	// 02:00 on the same date, which is before the start
	wrapBlock := models.BlockedGroup{
		QuarterID: quarter,
		Slots: []models.BlockedSlot{{
			BlockID:       "blk1",
			StartDateTime: hourUTC("2026-09-01", 22),
			EndDateTime:   hourUTC("2026-09-01", 2),
		}},
	}
	now := hourUTC("2026-09-01", 6)

	t.Run("late slots on the block date are blocked", func(t *testing.T) {
		for _, id := range []int{22, 23} {
			status, err := Classify(id, "2026-09-01", quarter, nil, []models.BlockedGroup{wrapBlock}, nil, now)
			require.NoError(t, err)
			assert.Equal(t, models.SlotBlocked, status, "slot %d", id)
		}
	})

	t.Run("early slots on the following date are blocked", func(t *testing.T) {
		for _, id := range []int{0, 1} {
			status, err := Classify(id, "2026-09-02", quarter, nil, []models.BlockedGroup{wrapBlock}, nil, now)
			require.NoError(t, err)
			assert.Equal(t, models.SlotBlocked, status, "slot %d", id)
		}
	})

	t.Run("slot after the wrapped end is open", func(t *testing.T) {
		status, err := Classify(2, "2026-09-02", quarter, nil, []models.BlockedGroup{wrapBlock}, nil, now)
		require.NoError(t, err)
		assert.Equal(t, models.SlotAvailable, status)
	})
}

func TestDayAvailability(t *testing.T) {
	const date = "2026-09-01"
	now := hourUTC(date, 0)

	grid, err := DayAvailability(date, "q1", nil, nil, nil, now)
	require.NoError(t, err)
	require.Len(t, grid, 24)

	for i, slot := range grid {
		assert.Equal(t, i, slot.ID)
		assert.Equal(t, models.SlotAvailable, slot.Status)
	}
	assert.Equal(t, models.SegmentEarly, grid[0].Segment)
	assert.Equal(t, models.SegmentMorning, grid[6].Segment)
	assert.Equal(t, models.SegmentAfternoon, grid[12].Segment)
	assert.Equal(t, models.SegmentEvening, grid[17].Segment)
	assert.Equal(t, models.SegmentNight, grid[21].Segment)
}

func TestSlotInterval(t *testing.T) {
	start, end, err := SlotInterval("2026-09-01", 23)
	require.NoError(t, err)
	assert.Equal(t, hourUTC("2026-09-01", 23), start)
	assert.Equal(t, hourUTC("2026-09-02", 0), end)

	_, _, err = SlotInterval("2026-09-01", 24)
	assert.Error(t, err)
	_, _, err = SlotInterval("not-a-date", 5)
	assert.Error(t, err)
}
