package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	errorvalues "github.com/peachieglow/glow/internal/error_values"
	"github.com/peachieglow/glow/pkg/entity"
)

type memoryData struct {
	mu               sync.RWMutex
	users            map[string]entity.User
	habitEntries     map[string][]entity.HabitEntry
	userAchievements map[string][]entity.UserAchievement
	activities       map[string][]entity.UserActivity
}

// MemoryStorage keeps everything in process memory. It is used for demos,
// local development and tests.
type MemoryStorage struct {
	data    *memoryData
	unlocks UnlockIndexI
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: &memoryData{
			users:            make(map[string]entity.User),
			habitEntries:     make(map[string][]entity.HabitEntry),
			userAchievements: make(map[string][]entity.UserAchievement),
			activities:       make(map[string][]entity.UserActivity),
		},
		unlocks: NewMemoryUnlockIndex(),
	}
}

// SetUnlockIndex replaces the built-in unlock index, e.g. with a Redis one.
func (ms *MemoryStorage) SetUnlockIndex(idx UnlockIndexI) {
	ms.unlocks = idx
}

func (ms *MemoryStorage) Users() UsersRepositoryI {
	return &memoryUsers{ms.data}
}

func (ms *MemoryStorage) Habits() HabitEntriesRepositoryI {
	return &memoryHabits{ms.data}
}

func (ms *MemoryStorage) UserAchievements() UserAchievementsRepositoryI {
	return &memoryUserAchievements{ms.data}
}

func (ms *MemoryStorage) Activities() ActivitiesRepositoryI {
	return &memoryActivities{ms.data}
}

func (ms *MemoryStorage) Unlocks() UnlockIndexI {
	return ms.unlocks
}

// WithinTx runs fn directly. Writes to memory cannot fail halfway once the
// caller has checked its preconditions under the per-user lock.
func (ms *MemoryStorage) WithinTx(ctx context.Context, fn func(tx Storage) error) error {
	return fn(ms)
}

func (ms *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

// SeedDemoUser inserts the demo profile used by the marketing pages.
func (ms *MemoryStorage) SeedDemoUser(now time.Time) {
	ms.data.mu.Lock()
	defer ms.data.mu.Unlock()
	ms.data.users["user-1"] = entity.User{
		ID:              "user-1",
		Email:           "demo@peachieglow.com",
		Name:            "Demo User",
		Age:             28,
		SkinType:        entity.SkinCombination,
		SkinConcerns:    []string{"acne", "dark spots", "hydration"},
		JoinDate:        now.Add(-30 * 24 * time.Hour),
		LastActive:      now,
		GlowScore:       67,
		CurrentStreak:   12,
		LongestStreak:   25,
		TotalDaysActive: 28,
		Level:           3,
		XP:              1250,
	}
}

type memoryUsers struct {
	d *memoryData
}

func cloneUser(u entity.User) *entity.User {
	u.SkinConcerns = append([]string(nil), u.SkinConcerns...)
	return &u
}

func (mu *memoryUsers) Create(ctx context.Context, user *entity.User) error {
	mu.d.mu.Lock()
	defer mu.d.mu.Unlock()
	if _, ok := mu.d.users[user.ID]; ok {
		return errorvalues.ErrUserExists
	}
	for _, u := range mu.d.users {
		if user.Email != "" && u.Email == user.Email {
			return errorvalues.ErrUserExists
		}
	}
	mu.d.users[user.ID] = *cloneUser(*user)
	return nil
}

func (mu *memoryUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	mu.d.mu.RLock()
	defer mu.d.mu.RUnlock()
	u, ok := mu.d.users[id]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (mu *memoryUsers) Update(ctx context.Context, user *entity.User) error {
	mu.d.mu.Lock()
	defer mu.d.mu.Unlock()
	if _, ok := mu.d.users[user.ID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	for id, u := range mu.d.users {
		if id != user.ID && user.Email != "" && u.Email == user.Email {
			return errorvalues.ErrUserExists
		}
	}
	mu.d.users[user.ID] = *cloneUser(*user)
	return nil
}

type memoryHabits struct {
	d *memoryData
}

func (mh *memoryHabits) Create(ctx context.Context, entry *entity.HabitEntry) error {
	mh.d.mu.Lock()
	defer mh.d.mu.Unlock()
	for _, e := range mh.d.habitEntries[entry.UserID] {
		if e.TaskID == entry.TaskID && e.Date.Equal(entry.Date) {
			return errorvalues.ErrConflict
		}
	}
	mh.d.habitEntries[entry.UserID] = append(mh.d.habitEntries[entry.UserID], *entry)
	return nil
}

func (mh *memoryHabits) Update(ctx context.Context, entry *entity.HabitEntry) error {
	mh.d.mu.Lock()
	defer mh.d.mu.Unlock()
	entries := mh.d.habitEntries[entry.UserID]
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i].Completed = entry.Completed
			entries[i].CompletedAt = entry.CompletedAt
			entries[i].Streak = entry.Streak
			entries[i].XPEarned = entry.XPEarned
			entries[i].TaskTitle = entry.TaskTitle
			entries[i].Category = entry.Category
			return nil
		}
	}
	return errorvalues.ErrHabitEntryNotFound
}

func (mh *memoryHabits) GetByTaskAndDate(ctx context.Context, userID, taskID string, day time.Time) (*entity.HabitEntry, error) {
	mh.d.mu.RLock()
	defer mh.d.mu.RUnlock()
	for _, e := range mh.d.habitEntries[userID] {
		if e.TaskID == taskID && e.Date.Equal(day) {
			return &e, nil
		}
	}
	return nil, errorvalues.ErrHabitEntryNotFound
}

func (mh *memoryHabits) ListByUser(ctx context.Context, userID string) ([]entity.HabitEntry, error) {
	mh.d.mu.RLock()
	defer mh.d.mu.RUnlock()
	result := append([]entity.HabitEntry(nil), mh.d.habitEntries[userID]...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (mh *memoryHabits) ListByUserAndDate(ctx context.Context, userID string, day time.Time) ([]entity.HabitEntry, error) {
	mh.d.mu.RLock()
	defer mh.d.mu.RUnlock()
	result := make([]entity.HabitEntry, 0)
	for _, e := range mh.d.habitEntries[userID] {
		if e.Date.Equal(day) {
			result = append(result, e)
		}
	}
	return result, nil
}

type memoryUserAchievements struct {
	d *memoryData
}

func (mua *memoryUserAchievements) Create(ctx context.Context, ua *entity.UserAchievement) error {
	mua.d.mu.Lock()
	defer mua.d.mu.Unlock()
	for _, existing := range mua.d.userAchievements[ua.UserID] {
		if existing.AchievementID == ua.AchievementID {
			return errorvalues.ErrAchievementAlreadyUnlocked
		}
	}
	mua.d.userAchievements[ua.UserID] = append(mua.d.userAchievements[ua.UserID], *ua)
	return nil
}

func (mua *memoryUserAchievements) Get(ctx context.Context, userID, achievementID string) (*entity.UserAchievement, error) {
	mua.d.mu.RLock()
	defer mua.d.mu.RUnlock()
	for _, ua := range mua.d.userAchievements[userID] {
		if ua.AchievementID == achievementID {
			return &ua, nil
		}
	}
	return nil, errorvalues.ErrAchievementNotFound
}

func (mua *memoryUserAchievements) ListByUser(ctx context.Context, userID string) ([]entity.UserAchievement, error) {
	mua.d.mu.RLock()
	defer mua.d.mu.RUnlock()
	return append([]entity.UserAchievement(nil), mua.d.userAchievements[userID]...), nil
}

type memoryActivities struct {
	d *memoryData
}

func (ma *memoryActivities) Append(ctx context.Context, activity *entity.UserActivity) error {
	ma.d.mu.Lock()
	defer ma.d.mu.Unlock()
	ma.d.activities[activity.UserID] = append(ma.d.activities[activity.UserID], *activity)
	return nil
}

func (ma *memoryActivities) Recent(ctx context.Context, userID string, limit int) ([]entity.UserActivity, error) {
	ma.d.mu.RLock()
	defer ma.d.mu.RUnlock()
	all := ma.d.activities[userID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}
	result := make([]entity.UserActivity, 0, limit)
	for i := len(all) - 1; i >= len(all)-limit; i-- {
		result = append(result, all[i])
	}
	return result, nil
}

// MemoryUnlockIndex is a set of user ids per achievement behind its own lock,
// independent of any user's lock.
type MemoryUnlockIndex struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

func NewMemoryUnlockIndex() *MemoryUnlockIndex {
	return &MemoryUnlockIndex{sets: make(map[string]map[string]struct{})}
}

func (idx *MemoryUnlockIndex) Add(ctx context.Context, achievementID, userID string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	set, ok := idx.sets[achievementID]
	if !ok {
		set = make(map[string]struct{})
		idx.sets[achievementID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (idx *MemoryUnlockIndex) Count(ctx context.Context, achievementID string) (int, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.sets[achievementID]), nil
}
