package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/entity"
)

func TestProvisionUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := &service.ProvisionUserRequest{
		ID:           "ana",
		Email:        "ana@example.com",
		Name:         "Ana",
		Age:          31,
		SkinType:     entity.SkinDry,
		SkinConcerns: []string{"redness"},
	}

	user, err := f.users.ProvisionUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ana", user.ID)
	assert.Equal(t, 1, user.Level)
	assert.Zero(t, user.XP)
	assert.Equal(t, f.clock.Now(), user.JoinDate)

	_, err = f.users.ProvisionUser(ctx, req)
	assert.ErrorIs(t, err, errorvalues.ErrUserExists)

	generated, err := f.users.ProvisionUser(ctx, &service.ProvisionUserRequest{
		Email:    "bo@example.com",
		Name:     "Bo",
		SkinType: entity.SkinOily,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID)
	assert.NotNil(t, generated.SkinConcerns)

	_, err = f.users.ProvisionUser(ctx, &service.ProvisionUserRequest{Email: "not-an-email", Name: "X", SkinType: entity.SkinOily})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	_, err = f.users.ProvisionUser(ctx, &service.ProvisionUserRequest{Email: "x@example.com", Name: "X", SkinType: "scaly"})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestUpdateProfileMergePatch(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 5, 9, 700)
	ctx := context.Background()
	f.clock.Advance(time.Hour)

	name := "Renamed"
	skin := entity.SkinSensitive
	user, err := f.users.UpdateProfile(ctx, "u1", &service.UpdateProfileRequest{
		Name:     &name,
		SkinType: &skin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, entity.SkinSensitive, user.SkinType)
	assert.Equal(t, "u1@example.com", user.Email, "absent fields keep their value")
	assert.Equal(t, 5, user.CurrentStreak)
	assert.Equal(t, 700, user.XP)
	assert.Equal(t, f.clock.Now(), user.LastActive)
	assert.Equal(t, user, f.user(t, "u1"))

	bad := "nope"
	_, err = f.users.UpdateProfile(ctx, "u1", &service.UpdateProfileRequest{Email: &bad})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	_, err = f.users.UpdateProfile(ctx, "ghost", &service.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "a", 0, 0, 0)
	f.addUser(t, "b", 0, 0, 0)
	ctx := context.Background()

	taken := "a@example.com"
	_, err := f.users.UpdateProfile(ctx, "b", &service.UpdateProfileRequest{Email: &taken})
	assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	assert.ErrorIs(t, err, errorvalues.ErrConflict)
	assert.Equal(t, "b@example.com", f.user(t, "b").Email)

	own := "a@example.com"
	_, err = f.users.UpdateProfile(ctx, "a", &service.UpdateProfileRequest{Email: &own})
	assert.NoError(t, err, "keeping one's own email is not a conflict")
}

func TestGetUserStatsWeeklyProgressCountsWholeDays(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 0, 0, 0)
	ctx := context.Background()

	// 2026-03-10, seven calendar days before the final reading.
	_, err := f.habits.RecordHabit(ctx, habitReq("u1", "a", true))
	require.NoError(t, err)
	f.clock.Advance(14*time.Hour + 30*time.Minute)
	_, err = f.habits.RecordHabit(ctx, habitReq("u1", "b", true))
	require.NoError(t, err)
	// Exactly midnight of 2026-03-17.
	f.clock.Advance(6 * 24 * time.Hour)
	_, err = f.habits.RecordHabit(ctx, habitReq("u1", "c", true))
	require.NoError(t, err)

	stats, err := f.users.GetUserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Insights.CompletedHabitsToday)
	assert.Equal(t, 2, stats.Insights.WeeklyProgress, "the entry from seven days ago is outside the week")
	assert.Equal(t, 3, stats.Stats.TotalHabitsCompleted)
}

func TestRecentActivity(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 0, 0, 0)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.NoError(t, f.storage.Activities().Append(ctx, &entity.UserActivity{
			ID:        "a" + string(rune('a'+i)),
			UserID:    "u1",
			Type:      entity.ActivityHabitCompleted,
			Timestamp: f.clock.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := f.users.RecentActivity(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, got, repository.DefaultActivityLimit)
	assert.Equal(t, "al", got[0].ID)

	got, err = f.users.RecentActivity(ctx, "u1", 1000)
	require.NoError(t, err)
	assert.Len(t, got, 12)

	_, err = f.users.RecentActivity(ctx, "ghost", 5)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestGetUserStats(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 0, 0, 0)
	ctx := context.Background()

	_, err := f.habits.RecordHabit(ctx, &service.RecordHabitRequest{UserID: "u1", TaskID: "a", TaskTitle: "A", Category: entity.CategoryEvening, Completed: true})
	require.NoError(t, err)
	_, err = f.habits.RecordHabit(ctx, &service.RecordHabitRequest{UserID: "u1", TaskID: "b", TaskTitle: "B", Category: entity.CategoryEvening, Completed: true})
	require.NoError(t, err)
	_, err = f.habits.RecordHabit(ctx, &service.RecordHabitRequest{UserID: "u1", TaskID: "c", TaskTitle: "C", Category: entity.CategoryMorning, Completed: false})
	require.NoError(t, err)

	stats, err := f.users.GetUserStats(ctx, "u1")
	require.NoError(t, err)
	u := f.user(t, "u1")

	assert.Equal(t, "u1", stats.User.ID)
	assert.Equal(t, u.GlowScore, stats.User.GlowScore)
	assert.Equal(t, 2, stats.Stats.TotalHabitsCompleted)
	assert.Equal(t, 66.7, stats.Stats.ConsistencyRate)
	assert.Equal(t, entity.CategoryEvening, stats.Stats.FavoriteTimeOfDay)
	assert.Equal(t, u.GlowScore, stats.Stats.AverageGlowScore)
	assert.Equal(t, len(stats.Achievements.Unlocked), stats.Stats.AchievementsUnlocked)
	assert.Equal(t, f.catalog.Len(), stats.Achievements.Total)
	assert.LessOrEqual(t, len(stats.Achievements.RecentUnlocks), 3)
	assert.Equal(t, 2, stats.Insights.CompletedHabitsToday)
	assert.Equal(t, 2, stats.Insights.WeeklyProgress)
	assert.Equal(t, "Every day counts! You're building something amazing!", stats.Insights.MotivationalMessage)
	require.NotNil(t, stats.Insights.NextMilestone)
	// GlowScore 42 puts glow-legend at 42%, ahead of a 2-of-7 streak.
	assert.Equal(t, 42, u.GlowScore)
	assert.Equal(t, "glow-legend", stats.Insights.NextMilestone.ID)
	assert.Equal(t, 58, stats.Insights.NextMilestone.DaysToUnlock)
	assert.NotEmpty(t, stats.Activities)

	_, err = f.users.GetUserStats(ctx, "ghost")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
