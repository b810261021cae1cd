package service

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/peachieglow/glow/internal/progression"
	"github.com/peachieglow/glow/internal/repository"
	"github.com/peachieglow/glow/pkg/entity"
	"github.com/peachieglow/glow/pkg/keylock"
)

const (
	statsActivityLimit = 20
	maxActivityLimit   = 100
)

type UserService struct {
	storage repository.Storage
	catalog *progression.Catalog
	locks   *keylock.KeyedMutex
	now     func() time.Time
}

func NewUserService(storage repository.Storage, catalog *progression.Catalog, locks *keylock.KeyedMutex, opts ...Option) *UserService {
	if storage == nil || catalog == nil || locks == nil {
		log.Fatal("on user service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &UserService{
		storage: storage,
		catalog: catalog,
		locks:   locks,
		now:     o.now,
	}
}

func (us *UserService) ProvisionUser(ctx context.Context, req *ProvisionUserRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := us.now().UTC()
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	concerns := req.SkinConcerns
	if concerns == nil {
		concerns = []string{}
	}
	user := &entity.User{
		ID:           id,
		Email:        req.Email,
		Name:         req.Name,
		Age:          req.Age,
		SkinType:     req.SkinType,
		SkinConcerns: concerns,
		JoinDate:     now,
		LastActive:   now,
		Level:        progression.LevelForXP(0),
	}
	if err := us.storage.Users().Create(ctx, user); err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*entity.User, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	release := us.locks.Lock(userID)
	defer release()

	user, err := us.storage.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.SkinType != nil {
		user.SkinType = *req.SkinType
	}
	if req.SkinConcerns != nil {
		user.SkinConcerns = req.SkinConcerns
	}
	user.LastActive = us.now().UTC()
	if err = us.storage.Users().Update(ctx, user); err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	return user, nil
}

func (us *UserService) RecentActivity(ctx context.Context, userID string, limit int) ([]entity.UserActivity, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = repository.DefaultActivityLimit
	case limit > maxActivityLimit:
		limit = maxActivityLimit
	}
	if _, err := us.storage.Users().GetByID(ctx, userID); err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	activities, err := us.storage.Activities().Recent(ctx, userID, limit)
	if err != nil {
		return nil, passStorageErr(err, "activities repository error")
	}
	return activities, nil
}

func (us *UserService) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	user, err := us.storage.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "users repository error")
	}
	habits, err := us.storage.Habits().ListByUser(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "habit entries repository error")
	}
	userAchievements, err := us.storage.UserAchievements().ListByUser(ctx, userID)
	if err != nil {
		return nil, passStorageErr(err, "user achievements repository error")
	}
	activities, err := us.storage.Activities().Recent(ctx, userID, statsActivityLimit)
	if err != nil {
		return nil, passStorageErr(err, "activities repository error")
	}

	now := us.now().UTC()
	today := repository.DayStart(now)
	// Seven whole days, today included.
	weekStart := today.AddDate(0, 0, -6)
	completed := make([]entity.HabitEntry, 0, len(habits))
	insights := Insights{}
	for _, h := range habits {
		if !h.Completed {
			continue
		}
		completed = append(completed, h)
		if h.Date.Equal(today) {
			insights.CompletedHabitsToday++
		}
		if !h.Date.Before(weekStart) {
			insights.WeeklyProgress++
		}
	}
	consistency := 0.0
	if len(habits) > 0 {
		consistency = math.Round(float64(len(completed))/float64(len(habits))*1000) / 10
	}

	unlocked := recentUnlocks(userAchievements, len(userAchievements))
	insights.NextMilestone = us.nextMilestone(user, unlockedSet(userAchievements))
	insights.MotivationalMessage = motivationalMessage(user.CurrentStreak)

	return &UserStats{
		User: UserSummary{
			ID:            user.ID,
			Name:          user.Name,
			GlowScore:     user.GlowScore,
			CurrentStreak: user.CurrentStreak,
			LongestStreak: user.LongestStreak,
			Level:         user.Level,
			XP:            user.XP,
			SkinType:      user.SkinType,
			JoinDate:      user.JoinDate,
		},
		Stats: Stats{
			TotalHabitsCompleted: len(completed),
			AverageGlowScore:     user.GlowScore,
			ConsistencyRate:      consistency,
			FavoriteTimeOfDay:    favoriteTimeOfDay(completed),
			AchievementsUnlocked: len(unlocked),
		},
		Activities: activities,
		Achievements: AchievementsBlock{
			Unlocked:      unlocked,
			Total:         us.catalog.Len(),
			RecentUnlocks: recentUnlocks(userAchievements, recentUnlocksLimit),
		},
		Insights: insights,
	}, nil
}

// nextMilestone picks the locked achievement the user is closest to. Ties go
// to the one listed first in the catalog.
func (us *UserService) nextMilestone(user *entity.User, unlocked map[string]bool) *Milestone {
	var best *Milestone
	for _, a := range us.catalog.All() {
		if unlocked[a.ID] {
			continue
		}
		progress := progression.Progress(user, a.Requirements)
		if best == nil || progress > best.Progress {
			best = &Milestone{
				ID:           a.ID,
				Title:        a.Title,
				Progress:     progress,
				DaysToUnlock: progression.Remaining(user, a.Requirements),
			}
		}
	}
	return best
}

// favoriteTimeOfDay is the most frequent category among completions. Ties
// resolve to the later category, so no completions at all yields anytime.
func favoriteTimeOfDay(completed []entity.HabitEntry) entity.HabitCategory {
	counts := make(map[entity.HabitCategory]int, 3)
	for _, h := range completed {
		counts[h.Category]++
	}
	favorite := entity.CategoryMorning
	for _, c := range []entity.HabitCategory{entity.CategoryEvening, entity.CategoryAnytime} {
		if counts[c] >= counts[favorite] {
			favorite = c
		}
	}
	return favorite
}

func motivationalMessage(streak int) string {
	switch {
	case streak > 20:
		return "You're on fire! " + strconv.Itoa(streak) + " days strong and climbing!"
	case streak > 7:
		return "Great momentum! Keep building that streak!"
	default:
		return "Every day counts! You're building something amazing!"
	}
}
