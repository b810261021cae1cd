package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/peachieglow/glow/internal/metrics"
	"github.com/peachieglow/glow/pkg/entity"
)

type RecordHabitRequest struct {
	UserID    string               `json:"userId" validate:"required,max=128"`
	TaskID    string               `json:"taskId" validate:"required,slug,max=64"`
	TaskTitle string               `json:"taskTitle" validate:"required,max=200"`
	Category  entity.HabitCategory `json:"category" validate:"required,oneof=morning evening anytime"`
	Completed bool                 `json:"completed"`
}

type RecordHabitResult struct {
	Habit           entity.HabitEntry        `json:"habit"`
	NewGlowScore    int                      `json:"newGlowScore"`
	NewStreak       int                      `json:"newStreak"`
	NewAchievements []entity.UserAchievement `json:"newAchievements"`
	XPEarned        int                      `json:"xpEarned"`
}

type UserSnapshot struct {
	GlowScore     int `json:"glowScore"`
	CurrentStreak int `json:"currentStreak"`
	Level         int `json:"level"`
	XP            int `json:"xp"`
}

type HabitsOverview struct {
	Habits []entity.HabitEntry `json:"habits"`
	Date   time.Time           `json:"date"`
	User   UserSnapshot        `json:"user"`
}

type HabitsServiceI interface {
	// Toggles today's entry of a task and applies the side effects on the user:
	// counters, XP, GlowScore, achievements and activity feed.
	RecordHabit(ctx context.Context, req *RecordHabitRequest) (*RecordHabitResult, error)
	// Lists the user's ledger, optionally only the given day.
	GetHabits(ctx context.Context, userID string, date *time.Time) (*HabitsOverview, error)
}

type UnlockRequest struct {
	UserID        string `json:"userId" validate:"required,max=128"`
	AchievementID string `json:"achievementId" validate:"required,slug,max=64"`
}

type UnlockResult struct {
	Achievement entity.UserAchievement `json:"achievement"`
	XPEarned    int                    `json:"xpEarned"`
	Message     string                 `json:"message"`
}

type UserProgress struct {
	Progress     int        `json:"progress"`
	IsUnlocked   bool       `json:"isUnlocked"`
	UnlockedAt   *time.Time `json:"unlockedAt,omitempty"`
	DaysToUnlock int        `json:"daysToUnlock"`
}

type GlobalStats struct {
	TotalUnlocked    int `json:"totalUnlocked"`
	RarityPercentage int `json:"rarityPercentage"`
}

type AchievementView struct {
	entity.Achievement
	UserProgress UserProgress `json:"userProgress"`
	GlobalStats  GlobalStats  `json:"globalStats"`
}

type AchievementsSummary struct {
	Total         int                      `json:"total"`
	Unlocked      int                      `json:"unlocked"`
	TotalXP       int                      `json:"totalXp"`
	RecentUnlocks []entity.UserAchievement `json:"recentUnlocks"`
}

type AchievementsOverview struct {
	Achievements []AchievementView   `json:"achievements"`
	Summary      AchievementsSummary `json:"summary"`
}

type AchievementsServiceI interface {
	// Unlocks every catalog entry the user newly qualifies for. Safe to repeat.
	Evaluate(ctx context.Context, userID string) ([]entity.UserAchievement, error)
	ListAchievements(ctx context.Context, userID string) (*AchievementsOverview, error)
	UnlockManually(ctx context.Context, req *UnlockRequest) (*UnlockResult, error)
}

type ProvisionUserRequest struct {
	ID           string          `json:"id" validate:"omitempty,slug,max=128"`
	Email        string          `json:"email" validate:"required,email,max=254"`
	Name         string          `json:"name" validate:"required,max=100"`
	Age          int             `json:"age" validate:"omitempty,min=13,max=120"`
	SkinType     entity.SkinType `json:"skinType" validate:"required,oneof=oily dry combination sensitive normal"`
	SkinConcerns []string        `json:"skinConcerns" validate:"max=20,dive,required,max=50"`
}

// UpdateProfileRequest is a merge patch: nil fields keep their value.
type UpdateProfileRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Email        *string          `json:"email" validate:"omitempty,email,max=254"`
	Age          *int             `json:"age" validate:"omitempty,min=13,max=120"`
	SkinType     *entity.SkinType `json:"skinType" validate:"omitempty,oneof=oily dry combination sensitive normal"`
	SkinConcerns []string         `json:"skinConcerns" validate:"omitempty,max=20,dive,required,max=50"`
}

type UserSummary struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	GlowScore     int             `json:"glowScore"`
	CurrentStreak int             `json:"currentStreak"`
	LongestStreak int             `json:"longestStreak"`
	Level         int             `json:"level"`
	XP            int             `json:"xp"`
	SkinType      entity.SkinType `json:"skinType"`
	JoinDate      time.Time       `json:"joinDate"`
}

type Stats struct {
	TotalHabitsCompleted int                  `json:"totalHabitsCompleted"`
	AverageGlowScore     int                  `json:"averageGlowScore"`
	ConsistencyRate      float64              `json:"consistencyRate"`
	FavoriteTimeOfDay    entity.HabitCategory `json:"favoriteTimeOfDay"`
	AchievementsUnlocked int                  `json:"achievementsUnlocked"`
}

type AchievementsBlock struct {
	Unlocked      []entity.UserAchievement `json:"unlocked"`
	Total         int                      `json:"total"`
	RecentUnlocks []entity.UserAchievement `json:"recentUnlocks"`
}

type Milestone struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Progress     int    `json:"progress"`
	DaysToUnlock int    `json:"daysToUnlock"`
}

type Insights struct {
	CompletedHabitsToday int        `json:"completedHabitsToday"`
	WeeklyProgress       int        `json:"weeklyProgress"`
	NextMilestone        *Milestone `json:"nextMilestone,omitempty"`
	MotivationalMessage  string     `json:"motivationalMessage"`
}

type UserStats struct {
	User         UserSummary           `json:"user"`
	Stats        Stats                 `json:"stats"`
	Activities   []entity.UserActivity `json:"activities"`
	Achievements AchievementsBlock     `json:"achievements"`
	Insights     Insights              `json:"insights"`
}

type UserServiceI interface {
	ProvisionUser(ctx context.Context, req *ProvisionUserRequest) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*entity.User, error)
	GetUserStats(ctx context.Context, userID string) (*UserStats, error)
	RecentActivity(ctx context.Context, userID string, limit int) ([]entity.UserActivity, error)
}

type options struct {
	now     func() time.Time
	metrics metrics.Recorder
}

type Option func(*options)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithMetrics(recorder metrics.Recorder) Option {
	return func(o *options) {
		o.metrics = recorder
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:     time.Now,
		metrics: metrics.Noop{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
