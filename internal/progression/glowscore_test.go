package progression_test

import (
	"testing"
	"time"

	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func entries(now time.Time, completed, total int, age time.Duration) []entity.HabitEntry {
	result := make([]entity.HabitEntry, 0, total)
	for i := 0; i < total; i++ {
		result = append(result, entity.HabitEntry{
			Date:      now.Add(-age),
			Completed: i < completed,
		})
	}
	return result
}

func TestComputeGlowScore(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc    string
		User    entity.User
		Entries []entity.HabitEntry
		Want    int
	}{
		{
			Desc:    "half completed with streak and level",
			User:    entity.User{CurrentStreak: 7, Level: 2},
			Entries: entries(now, 5, 10, 24*time.Hour),
			Want:    49,
		},
		{
			Desc: "no entries",
			User: entity.User{CurrentStreak: 0, Level: 1},
			Want: 5,
		},
		{
			Desc:    "streak bonus capped at 30",
			User:    entity.User{CurrentStreak: 40, Level: 1},
			Entries: entries(now, 0, 4, time.Hour),
			Want:    35,
		},
		{
			Desc:    "entries outside the window are ignored",
			User:    entity.User{CurrentStreak: 0, Level: 1},
			Entries: append(entries(now, 0, 3, 31*24*time.Hour), entries(now, 1, 1, time.Hour)...),
			Want:    55,
		},
		{
			Desc:    "huge level is clamped",
			User:    entity.User{CurrentStreak: 100, Level: 1000},
			Entries: entries(now, 10, 10, time.Hour),
			Want:    100,
		},
		{
			Desc:    "rounding",
			User:    entity.User{Level: 1},
			Entries: entries(now, 1, 3, time.Hour),
			Want:    22,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got := progression.ComputeGlowScore(&tc.User, tc.Entries, now)
			assert.Equal(t, tc.Want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestComputeGlowScoreIsDeterministic(t *testing.T) {
	now := time.Now()
	user := entity.User{CurrentStreak: 3, Level: 4}
	ledger := entries(now, 7, 9, 48*time.Hour)
	first := progression.ComputeGlowScore(&user, ledger, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, progression.ComputeGlowScore(&user, ledger, now))
	}
	assert.Equal(t, entity.User{CurrentStreak: 3, Level: 4}, user)
}
