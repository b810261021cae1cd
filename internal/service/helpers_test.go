package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/internal/service"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/keylock"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	storage      *repository.MemoryStorage
	clock        *testClock
	catalog      *progression.Catalog
	habits       *service.HabitsService
	achievements *service.AchievementsService
	users        *service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStorage(t, repository.NewMemoryStorage())
}

func newFixtureWithStorage(t *testing.T, storage repository.Storage) *fixture {
	t.Helper()
	clock := newTestClock()
	catalog := progression.NewCatalog(progression.DefaultAchievements())
	locks := keylock.New()
	achievements := service.NewAchievementsService(storage, catalog, locks, service.WithClock(clock.Now))
	f := &fixture{
		clock:        clock,
		catalog:      catalog,
		achievements: achievements,
		habits:       service.NewHabitsService(storage, achievements, locks, service.WithClock(clock.Now)),
		users:        service.NewUserService(storage, catalog, locks, service.WithClock(clock.Now)),
	}
	if ms, ok := storage.(*repository.MemoryStorage); ok {
		f.storage = ms
	}
	return f
}

// addUser stores a user with the given progression counters.
func (f *fixture) addUser(t *testing.T, id string, streak, days, xp int) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:              id,
		Email:           id + "@example.com",
		Name:            id,
		SkinType:        entity.SkinNormal,
		SkinConcerns:    []string{},
		JoinDate:        f.clock.Now(),
		LastActive:      f.clock.Now(),
		CurrentStreak:   streak,
		LongestStreak:   streak,
		TotalDaysActive: days,
		Level:           progression.LevelForXP(xp),
		XP:              xp,
	}
	require.NoError(t, f.storage.Users().Create(context.Background(), u))
	return u
}

func (f *fixture) user(t *testing.T, id string) *entity.User {
	t.Helper()
	u, err := f.storage.Users().GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func habitReq(userID, taskID string, completed bool) *service.RecordHabitRequest {
	return &service.RecordHabitRequest{
		UserID:    userID,
		TaskID:    taskID,
		TaskTitle: "Task " + taskID,
		Category:  entity.CategoryMorning,
		Completed: completed,
	}
}

func countAchievement(list []entity.UserAchievement, id string) int {
	n := 0
	for _, ua := range list {
		if ua.AchievementID == id {
			n++
		}
	}
	return n
}
