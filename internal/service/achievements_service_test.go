package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository/mocks"
	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/entity"
)

func TestEvaluateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 7, 3, 0)
	ctx := context.Background()

	first, err := f.achievements.Evaluate(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, countAchievement(first, "first-glow"))
	assert.Equal(t, 1, countAchievement(first, "consistency-week"))
	for _, ua := range first {
		assert.True(t, ua.IsUnlocked)
		assert.Equal(t, 100, ua.Progress)
		assert.Equal(t, f.clock.Now(), ua.UnlockedAt)
	}
	u := f.user(t, "u1")
	assert.Equal(t, 125, u.XP)
	assert.Equal(t, 1, u.Level)

	second, err := f.achievements.Evaluate(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, 125, f.user(t, "u1").XP)

	n, err := f.storage.Unlocks().Count(ctx, "first-glow")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEvaluateLevelsUp(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 30, 100, 480)

	unlocked, err := f.achievements.Evaluate(context.Background(), "u1")
	require.NoError(t, err)
	// first-glow, consistency-week, two-week-glow, monthly-master, ai-chat-master, century-club
	assert.Len(t, unlocked, 6)
	u := f.user(t, "u1")
	assert.Equal(t, 480+25+100+200+500+250+500, u.XP)
	assert.Equal(t, progression.LevelForXP(u.XP), u.Level)
}

func TestEvaluateConcurrentCallsUnlockOnce(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 7, 1, 0)
	f.addUser(t, "u2", 7, 1, 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := "u1"
			if i%2 == 0 {
				userID = "u2"
			}
			res, err := f.achievements.Evaluate(ctx, userID)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			total += len(res)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, total)
	assert.Equal(t, 125, f.user(t, "u1").XP)
	assert.Equal(t, 125, f.user(t, "u2").XP)
	n, err := f.storage.Unlocks().Count(ctx, "consistency-week")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEvaluateErrors(t *testing.T) {
	f := newFixture(t)
	_, err := f.achievements.Evaluate(context.Background(), "")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
	_, err = f.achievements.Evaluate(context.Background(), "ghost")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

	t.Run("listing failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mocks.NewMockStorage(ctrl)
		users := mocks.NewMockUsersRepositoryI(ctrl)
		userAchievements := mocks.NewMockUserAchievementsRepositoryI(ctrl)
		storage.EXPECT().Users().Return(users)
		storage.EXPECT().UserAchievements().Return(userAchievements)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(&entity.User{ID: "u1", Level: 1}, nil)
		userAchievements.EXPECT().ListByUser(gomock.Any(), "u1").Return(nil, errors.New("timeout"))

		mf := newFixtureWithStorage(t, storage)
		_, err := mf.achievements.Evaluate(context.Background(), "u1")
		assert.EqualError(t, err, "user achievements repository error: timeout")
	})
}

func TestListAchievements(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 7, 3, 0)
	f.addUser(t, "u2", 3, 1, 0)
	ctx := context.Background()
	_, err := f.achievements.Evaluate(ctx, "u1")
	require.NoError(t, err)
	_, err = f.achievements.Evaluate(ctx, "u2")
	require.NoError(t, err)

	overview, err := f.achievements.ListAchievements(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, overview.Achievements, f.catalog.Len())

	first := overview.Achievements[0]
	assert.Equal(t, "first-glow", first.ID)
	assert.True(t, first.UserProgress.IsUnlocked)
	assert.Equal(t, 100, first.UserProgress.Progress)
	assert.NotNil(t, first.UserProgress.UnlockedAt)
	assert.Equal(t, 2, first.GlobalStats.TotalUnlocked)
	assert.Equal(t, 60, first.GlobalStats.RarityPercentage)

	// Locked ones follow, rarest first.
	assert.Equal(t, entity.RarityLegendary, overview.Achievements[1].Rarity)
	for i := 2; i < len(overview.Achievements); i++ {
		prev, cur := overview.Achievements[i-1], overview.Achievements[i]
		assert.False(t, cur.UserProgress.IsUnlocked)
		assert.LessOrEqual(t, progression.RarityRank(prev.Rarity), progression.RarityRank(cur.Rarity))
	}

	for _, v := range overview.Achievements {
		if v.ID == "consistency-week" {
			// streak 3 of 7
			assert.Equal(t, 43, v.UserProgress.Progress)
			assert.Equal(t, 4, v.UserProgress.DaysToUnlock)
			assert.Equal(t, 1, v.GlobalStats.TotalUnlocked)
		}
	}

	assert.Equal(t, service.AchievementsSummary{
		Total:         f.catalog.Len(),
		Unlocked:      1,
		TotalXP:       25,
		RecentUnlocks: overview.Summary.RecentUnlocks,
	}, overview.Summary)
	require.Len(t, overview.Summary.RecentUnlocks, 1)

	_, err = f.achievements.ListAchievements(ctx, "ghost")
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}

func TestUnlockManually(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "u1", 0, 0, 490)
	ctx := context.Background()

	res, err := f.achievements.UnlockManually(ctx, &service.UnlockRequest{UserID: "u1", AchievementID: "glow-legend"})
	require.NoError(t, err)
	assert.Equal(t, 1000, res.XPEarned)
	assert.Equal(t, "glow-legend", res.Achievement.AchievementID)
	assert.Equal(t, "Achievement unlocked successfully!", res.Message)
	u := f.user(t, "u1")
	assert.Equal(t, 1490, u.XP)
	assert.Equal(t, 3, u.Level)

	again, err := f.achievements.UnlockManually(ctx, &service.UnlockRequest{UserID: "u1", AchievementID: "glow-legend"})
	require.NoError(t, err)
	assert.Equal(t, 0, again.XPEarned)
	assert.Equal(t, res.Achievement.ID, again.Achievement.ID)
	assert.Equal(t, 1490, f.user(t, "u1").XP)

	activities, err := f.storage.Activities().Recent(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, entity.ActivityAchievementUnlocked, activities[0].Type)
	assert.Equal(t, "glow-legend", activities[0].Metadata.AchievementID)

	testCases := []struct {
		Desc  string
		Req   *service.UnlockRequest
		Error error
	}{
		{Desc: "unknown achievement", Req: &service.UnlockRequest{UserID: "u1", AchievementID: "nope"}, Error: errorvalues.ErrAchievementNotFound},
		{Desc: "unknown user", Req: &service.UnlockRequest{UserID: "ghost", AchievementID: "first-glow"}, Error: errorvalues.ErrUserNotFound},
		{Desc: "missing achievement", Req: &service.UnlockRequest{UserID: "u1"}, Error: errorvalues.ErrValidation},
		{Desc: "missing user", Req: &service.UnlockRequest{AchievementID: "first-glow"}, Error: errorvalues.ErrValidation},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := f.achievements.UnlockManually(ctx, tc.Req)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}
