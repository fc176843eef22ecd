//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"lastbite-client/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// 2026-03-02 is a Monday.
func onDay(day time.Weekday, hour, minute int) time.Time {
	base := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	offset := (int(day) - int(time.Monday) + 7) % 7
	return base.AddDate(0, 0, offset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestParseWindow(t *testing.T) {
	t.Run("accepts full and short day names", func(t *testing.T) {
		_, err := schedule.ParseWindow([]string{"monday", "Tue", "WEDNESDAY"}, "09:00", "22:00")
		require.NoError(t, err)
	})

	t.Run("rejects empty working days", func(t *testing.T) {
		_, err := schedule.ParseWindow(nil, "09:00", "22:00")
		require.ErrorIs(t, err, schedule.ErrNoWorkingDays)
	})

	t.Run("rejects unknown weekday", func(t *testing.T) {
		_, err := schedule.ParseWindow([]string{"Mondayish"}, "09:00", "22:00")
		require.ErrorIs(t, err, schedule.ErrUnknownWeekday)
	})

	t.Run("rejects inverted hours", func(t *testing.T) {
		_, err := schedule.ParseWindow(weekdays, "22:00", "09:00")
		require.ErrorIs(t, err, schedule.ErrInvalidHours)
	})

	t.Run("rejects malformed hours", func(t *testing.T) {
		_, err := schedule.ParseWindow(weekdays, "morning", "22:00")
		require.ErrorIs(t, err, schedule.ErrInvalidHours)
	})
}

func TestClassify(t *testing.T) {
	w, err := schedule.ParseWindow(weekdays, "09:00", "22:00")
	require.NoError(t, err)

	cases := []struct {
		name   string
		at     time.Time
		expect schedule.Status
	}{
		{name: "saturday is closed today", at: onDay(time.Saturday, 10, 0), expect: schedule.StatusClosedToday},
		{name: "monday before opening", at: onDay(time.Monday, 8, 59), expect: schedule.StatusNotYetOpen},
		{name: "monday at opening", at: onDay(time.Monday, 9, 0), expect: schedule.StatusOpen},
		{name: "monday mid-day", at: onDay(time.Monday, 14, 0), expect: schedule.StatusOpen},
		{name: "monday just before leeway", at: onDay(time.Monday, 19, 59), expect: schedule.StatusOpen},
		{name: "monday exactly two hours before close", at: onDay(time.Monday, 20, 0), expect: schedule.StatusClosingSoon},
		{name: "monday late evening", at: onDay(time.Monday, 21, 5), expect: schedule.StatusClosingSoon},
		{name: "monday at closing", at: onDay(time.Monday, 22, 0), expect: schedule.StatusClosedForToday},
		{name: "monday after closing", at: onDay(time.Monday, 23, 0), expect: schedule.StatusClosedForToday},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, w.Classify(c.at))
		})
	}
}

func TestAcceptsOrders(t *testing.T) {
	w, err := schedule.ParseWindow(weekdays, "09:00", "22:00")
	require.NoError(t, err)

	assert.True(t, w.AcceptsOrders(onDay(time.Monday, 14, 0)))
	assert.True(t, w.AcceptsOrders(onDay(time.Monday, 21, 5)))
	assert.False(t, w.AcceptsOrders(onDay(time.Monday, 8, 0)))
	assert.False(t, w.AcceptsOrders(onDay(time.Monday, 23, 0)))
	assert.False(t, w.AcceptsOrders(onDay(time.Saturday, 10, 0)))
}

func TestNextOpenDay(t *testing.T) {
	w, err := schedule.ParseWindow(weekdays, "09:00", "22:00")
	require.NoError(t, err)

	t.Run("saturday wraps to monday", func(t *testing.T) {
		day, ok := w.NextOpenDay(onDay(time.Saturday, 10, 0))
		require.True(t, ok)
		assert.Equal(t, time.Monday, day)
	})

	t.Run("monday advances to tuesday", func(t *testing.T) {
		day, ok := w.NextOpenDay(onDay(time.Monday, 23, 0))
		require.True(t, ok)
		assert.Equal(t, time.Tuesday, day)
	})

	t.Run("single working day wraps to itself", func(t *testing.T) {
		single, err := schedule.ParseWindow([]string{"Wednesday"}, "09:00", "22:00")
		require.NoError(t, err)
		day, ok := single.NextOpenDay(onDay(time.Wednesday, 10, 0))
		require.True(t, ok)
		assert.Equal(t, time.Wednesday, day)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "closed-today", schedule.StatusClosedToday.String())
	assert.Equal(t, "not-yet-open", schedule.StatusNotYetOpen.String())
	assert.Equal(t, "open", schedule.StatusOpen.String())
	assert.Equal(t, "closing-soon", schedule.StatusClosingSoon.String())
	assert.Equal(t, "closed-for-today", schedule.StatusClosedForToday.String())
}
