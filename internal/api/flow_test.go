package api_test

import (
	"net/http"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peachieglow/glow/internal/api"
	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/keylock"
)

func newMemoryServer(t *testing.T) *testServer {
	t.Helper()
	storage := repository.NewResilientStorage(repository.NewMemoryStorage(), repository.DefaultRetryPolicy(), nil)
	catalog := progression.NewCatalog(progression.DefaultAchievements())
	locks := keylock.New()
	achievements := service.NewAchievementsService(storage, catalog, locks)
	return &testServer{
		serv: api.New(&api.ServicesList{
			HabitsService:       service.NewHabitsService(storage, achievements, locks),
			AchievementsService: achievements,
			UserService:         service.NewUserService(storage, catalog, locks),
			Health:              storage,
		}),
	}
}

func TestHabitFlowOverMemoryStorage(t *testing.T) {
	ts := newMemoryServer(t)

	rr := ts.do(http.MethodPost, "/api/v1/users", service.ProvisionUserRequest{
		ID:           "ana",
		Email:        "ana@example.com",
		Name:         "Ana",
		SkinType:     entity.SkinSensitive,
		SkinConcerns: []string{"redness"},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = ts.do(http.MethodPost, "/api/v1/users", service.ProvisionUserRequest{
		ID:       "ana-2",
		Email:    "ana@example.com",
		Name:     "Ana again",
		SkinType: entity.SkinDry,
	})
	assert.Equal(t, http.StatusConflict, rr.Code)

	habit := service.RecordHabitRequest{
		UserID:    "ana",
		TaskID:    "evening-moisturizer",
		TaskTitle: "Moisturizer",
		Category:  entity.CategoryEvening,
		Completed: true,
	}
	rr = ts.do(http.MethodPost, "/api/v1/habits", habit)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var recorded service.RecordHabitResult
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &recorded))
	assert.Equal(t, 1, recorded.NewStreak)
	assert.Equal(t, progression.HabitCompletionXP, recorded.XPEarned)
	assert.True(t, recorded.Habit.Completed)
	unlockedIDs := make([]string, 0, len(recorded.NewAchievements))
	for _, ua := range recorded.NewAchievements {
		unlockedIDs = append(unlockedIDs, ua.AchievementID)
	}
	assert.Contains(t, unlockedIDs, "first-glow")

	// Same state again changes nothing.
	rr = ts.do(http.MethodPost, "/api/v1/habits", habit)
	require.Equal(t, http.StatusOK, rr.Code)
	var repeated service.RecordHabitResult
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &repeated))
	assert.Equal(t, 0, repeated.XPEarned)
	assert.Empty(t, repeated.NewAchievements)
	assert.Equal(t, 1, repeated.NewStreak)

	rr = ts.do(http.MethodPost, "/api/v1/habits", service.RecordHabitRequest{UserID: "ana", TaskID: "Bad Id", TaskTitle: "x", Category: entity.CategoryAnytime})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.do(http.MethodGet, "/api/v1/habits?userId=ana", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var overview service.HabitsOverview
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &overview))
	require.Len(t, overview.Habits, 1)
	assert.Equal(t, 1, overview.User.CurrentStreak)

	rr = ts.do(http.MethodGet, "/api/v1/achievements?userId=ana", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var achievements service.AchievementsOverview
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &achievements))
	assert.Equal(t, len(progression.DefaultAchievements()), achievements.Summary.Total)
	require.NotEmpty(t, achievements.Achievements)
	assert.True(t, achievements.Achievements[0].UserProgress.IsUnlocked, "unlocked entries come first")
	for _, view := range achievements.Achievements {
		if view.ID == "first-glow" {
			assert.Equal(t, 1, view.GlobalStats.TotalUnlocked)
		}
	}

	rr = ts.do(http.MethodPost, "/api/v1/achievements/unlock", service.UnlockRequest{UserID: "ana", AchievementID: "first-glow"})
	require.Equal(t, http.StatusOK, rr.Code)
	var unlock service.UnlockResult
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &unlock))
	assert.Equal(t, 0, unlock.XPEarned)
	assert.Equal(t, "Achievement already unlocked", unlock.Message)

	rr = ts.do(http.MethodPost, "/api/v1/achievements/evaluate", api.EvaluateRequest{UserID: "ana"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"newAchievements":[]}`, rr.Body.String())

	rr = ts.do(http.MethodPatch, "/api/v1/users/ana", `{"name":"Ana B."}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var user entity.User
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "Ana B.", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, []string{"redness"}, user.SkinConcerns)

	rr = ts.do(http.MethodGet, "/api/v1/users/ana/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats service.UserStats
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Stats.TotalHabitsCompleted)
	assert.Equal(t, 100.0, stats.Stats.ConsistencyRate)
	assert.Equal(t, entity.CategoryEvening, stats.Stats.FavoriteTimeOfDay)
	assert.Equal(t, 1, stats.Insights.CompletedHabitsToday)

	rr = ts.do(http.MethodGet, "/api/v1/users/ana/activities?limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var activities api.ActivitiesResponse
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &activities))
	assert.Len(t, activities.Activities, 1)

	rr = ts.do(http.MethodGet, "/api/v1/users/ghost/activities", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
