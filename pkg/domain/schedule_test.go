package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Validate(t *testing.T) {
	tests := []struct {
		name      string
		dailyTime string
		wantErr   bool
	}{
		{"valid morning", "09:00", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "23:59", false},
		{"hour out of range", "24:00", true},
		{"minute out of range", "09:60", true},
		{"trailing garbage", "09:00x", true},
		{"single digit hour", "9:00", true},
		{"missing separator", "0900", true},
		{"garbage", "not-a-time", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Schedule{EnableDaily: true, DailyTime: tt.dailyTime}
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchedule_NextOccurrence(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)

	t.Run("time still ahead today", func(t *testing.T) {
		s := Schedule{DailyTime: "18:00"}
		next, err := s.NextOccurrence(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 15, 18, 0, 0, 0, time.Local), next)
	})

	t.Run("time already passed rolls to tomorrow", func(t *testing.T) {
		s := Schedule{DailyTime: "09:00"}
		next, err := s.NextOccurrence(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 16, 9, 0, 0, 0, time.Local), next)
	})

	t.Run("exact moment rolls to tomorrow", func(t *testing.T) {
		s := Schedule{DailyTime: "10:30"}
		next, err := s.NextOccurrence(now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 16, 10, 30, 0, 0, time.Local), next)
	})

	t.Run("bad time propagates error", func(t *testing.T) {
		s := Schedule{DailyTime: "25:99"}
		_, err := s.NextOccurrence(now)
		assert.Error(t, err)
	})
}

func TestDateString(t *testing.T) {
	ts := time.Date(2024, 1, 5, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-01-05", DateString(ts))
}
